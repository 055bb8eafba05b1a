// Package config holds the command-line settings of the bali tool.
package config

import (
	"flag"
	"path/filepath"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"

	"github.com/cuthbertlab/bali/pkg/corpus"
	"github.com/cuthbertlab/bali/pkg/drum"
)

// Config is everything the command line can set.
type Config struct {
	Dir             string
	TaughtPath      string
	TranscribedPath string

	Report   bool
	Trials   int
	PerTrial int
	Seed     uint64

	MidiPath string
	Index    int
	Cycles   int
	BPM      float64

	Stroke string
	Level  string

	Debug bool
}

// Default returns the settings used when no flag is given.
func Default() Config {
	return Config{
		Dir:    ".",
		Seed:   1,
		Index:  -1,
		Cycles: 1,
		BPM:    80,
		Stroke: "e",
		Level:  drum.DefaultBeatLevel.String(),
	}
}

// Bind registers the flags on fs, writing into c.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Dir, "dir", c.Dir, "directory holding "+corpus.TaughtFile+" and "+corpus.TranscribedFile)
	fs.StringVar(&c.TaughtPath, "taught", c.TaughtPath, "taught patterns file (overrides -dir)")
	fs.StringVar(&c.TranscribedPath, "transcribed", c.TranscribedPath, "transcribed patterns file (overrides -dir)")
	fs.BoolVar(&c.Report, "report", c.Report, "print the on-beat report instead of starting the browser")
	fs.IntVar(&c.Trials, "trials", c.Trials, "shuffled baselines per question in the report (0 = none)")
	fs.IntVar(&c.PerTrial, "per-trial", c.PerTrial, "shuffled patterns per baseline (0 = corpus size)")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed for shuffling")
	fs.StringVar(&c.MidiPath, "midi", c.MidiPath, "write the taught pattern at -index to this MIDI file")
	fs.IntVar(&c.Index, "index", c.Index, "taught pattern index for -midi (-1 = all)")
	fs.IntVar(&c.Cycles, "cycles", c.Cycles, "gong cycles per pattern in the MIDI file")
	fs.Float64Var(&c.BPM, "bpm", c.BPM, "beats per minute in the MIDI file")
	fs.StringVar(&c.Stroke, "stroke", c.Stroke, "stroke measured by the browser")
	fs.StringVar(&c.Level, "level", c.Level, "beat level measured by the browser (pulse, double, guntang, twoBeat, fourBeat)")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "debug logging")
}

// Parse reads args into a copy of Default.
func Parse(name string, args []string) (Config, error) {
	c := Default()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, fault.Wrap(err, fmsg.With("parse flags"), ftag.With(ftag.InvalidArgument))
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func invalid(msg string) error {
	return fault.New(msg, fmsg.WithDesc(msg, "Invalid setting: "+msg), ftag.With(ftag.InvalidArgument))
}

// Validate checks the settings against each other.
func (c Config) Validate() error {
	if _, ok := drum.ParseBeatLevel(c.Level); !ok {
		return invalid("unknown beat level " + c.Level)
	}
	if !drum.IsKnown(c.Stroke) {
		return invalid("unknown stroke " + c.Stroke)
	}
	if c.Trials < 0 || c.PerTrial < 0 {
		return invalid("trials must not be negative")
	}
	if c.Cycles < 1 {
		return invalid("cycles must be at least 1")
	}
	if c.BPM <= 0 {
		return invalid("bpm must be positive")
	}
	if c.Index < -1 {
		return invalid("index must be -1 or a pattern index")
	}
	return nil
}

// BeatLevel is Level parsed; Validate guarantees it parses.
func (c Config) BeatLevel() drum.BeatLevel {
	l, _ := drum.ParseBeatLevel(c.Level)
	return l
}

// Taught is the taught file path, from -taught or -dir.
func (c Config) Taught() string {
	if c.TaughtPath != "" {
		return c.TaughtPath
	}
	return filepath.Join(c.Dir, corpus.TaughtFile)
}

// Transcribed is the transcribed file path, from -transcribed or -dir.
func (c Config) Transcribed() string {
	if c.TranscribedPath != "" {
		return c.TranscribedPath
	}
	return filepath.Join(c.Dir, corpus.TranscribedFile)
}
