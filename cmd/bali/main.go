package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cuthbertlab/bali/pkg/config"
	"github.com/cuthbertlab/bali/pkg/corpus"
	"github.com/cuthbertlab/bali/pkg/drum"
	"github.com/cuthbertlab/bali/pkg/midi"
	"github.com/cuthbertlab/bali/pkg/stats"
	"github.com/cuthbertlab/bali/pkg/tui"
)

// logger is the package-wide structured logger. Usable before initLogger.
var logger = slog.Default()

func initLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	})
	logger = slog.New(h)
	slog.SetDefault(logger)
}

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:])
	if helpRequested(err) {
		os.Exit(0)
	}
	if err != nil {
		fail(err)
	}
	initLogger(cfg.Debug)

	if err := run(cfg); err != nil {
		fail(err)
	}
}

// helpRequested reports whether -h or -help stopped flag parsing. The flag
// package has already printed the usage by then.
func helpRequested(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

func fail(err error) {
	msg := fmsg.GetIssue(err)
	if msg == "" {
		msg = err.Error()
	}
	logger.Debug("fatal", "error", err, "tag", ftag.Get(err))
	fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	os.Exit(1)
}

func run(cfg config.Config) error {
	c := corpus.New(cfg.Taught(), cfg.Transcribed(), logger)
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))

	switch {
	case cfg.Report:
		taught, err := c.Taught()
		if err != nil {
			return err
		}
		return stats.WriteReport(os.Stdout, taught, stats.ReportOptions{
			Trials:   cfg.Trials,
			PerTrial: cfg.PerTrial,
			Rand:     rng,
			Log:      logger,
		})

	case cfg.MidiPath != "":
		return exportMidi(c, cfg)
	}

	taught, err := c.Taught()
	if err != nil && ftag.Get(err) != ftag.NotFound {
		return err
	}
	transcribed, err := c.Transcribed()
	if err != nil && ftag.Get(err) != ftag.NotFound {
		return err
	}
	if len(taught) == 0 && len(transcribed) == 0 {
		return fault.New("empty corpus", fmsg.WithDesc("empty corpus",
			"No patterns found in "+cfg.Taught()+" or "+cfg.Transcribed()), ftag.With(ftag.NotFound))
	}
	logger.Debug("corpus loaded", "taught", len(taught), "transcribed", len(transcribed))

	model := tui.NewModel(taught, transcribed, rng)
	model.Stroke = cfg.Stroke
	model.Level = cfg.BeatLevel()
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fault.Wrap(err, fmsg.With("run browser"), ftag.With(ftag.Internal))
	}
	return nil
}

func exportMidi(c *corpus.Corpus, cfg config.Config) error {
	taught, err := c.Taught()
	if err != nil {
		return err
	}

	var patterns []*drum.Pattern
	if cfg.Index < 0 {
		patterns = corpus.Valid(taught, logger)
	} else {
		for _, p := range taught {
			if p.IndexInFile == cfg.Index {
				patterns = append(patterns, p)
			}
		}
		if len(patterns) == 0 {
			return fault.New("no such pattern", fmsg.WithDesc("no such pattern",
				fmt.Sprintf("There is no taught pattern %d", cfg.Index)), ftag.With(ftag.NotFound))
		}
	}

	if err := writeMidiFile(cfg.MidiPath, patterns, midi.Options{BPM: cfg.BPM, Cycles: cfg.Cycles}); err != nil {
		return err
	}
	logger.Info("midi written", "path", cfg.MidiPath, "patterns", len(patterns), "cycles", cfg.Cycles)
	return nil
}

// writeMidiFile creates path and writes the patterns into it. A file that
// could not be written completely is removed.
func writeMidiFile(path string, patterns []*drum.Pattern, opts midi.Options) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fault.Wrap(err, fmsg.With("create "+path))
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fault.Wrap(cerr, fmsg.With("close "+path), ftag.With(ftag.Internal))
		}
		if err != nil {
			if rerr := os.Remove(path); rerr != nil {
				logger.Warn("could not remove partial midi file", "path", path, "error", rerr)
			}
		}
	}()

	return midi.Write(f, patterns, opts)
}
