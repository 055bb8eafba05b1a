package corpus

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"

	"github.com/cuthbertlab/bali/pkg/drum"
)

// Corpus holds the taught and transcribed patterns. Each section is read
// and parsed on first use and never changes afterwards; callers must not
// modify the patterns it hands out.
type Corpus struct {
	TaughtPath      string
	TranscribedPath string

	log *slog.Logger

	taughtOnce      sync.Once
	taught          []*drum.Pattern
	taughtErr       error
	transcribedOnce sync.Once
	transcribed     []*drum.Pattern
	transcribedErr  error
}

// New creates a corpus reading the two section files.
func New(taughtPath, transcribedPath string, log *slog.Logger) *Corpus {
	if log == nil {
		log = slog.Default()
	}
	return &Corpus{
		TaughtPath:      taughtPath,
		TranscribedPath: transcribedPath,
		log:             log,
	}
}

// Open creates a corpus over the default file names in dir.
func Open(dir string, log *slog.Logger) *Corpus {
	return New(filepath.Join(dir, TaughtFile), filepath.Join(dir, TranscribedFile), log)
}

// FromPatterns creates a corpus over patterns already in memory.
func FromPatterns(taught, transcribed []*drum.Pattern) *Corpus {
	c := &Corpus{log: slog.Default(), taught: taught, transcribed: transcribed}
	c.taughtOnce.Do(func() {})
	c.transcribedOnce.Do(func() {})
	return c
}

func (c *Corpus) load(path string, kind drum.Kind) ([]*drum.Pattern, error) {
	if path == "" {
		return nil, nil
	}
	lines, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	patterns := ParseLines(lines, kind)
	invalid := 0
	for _, p := range patterns {
		if err := p.Validate(); err != nil {
			invalid++
			c.log.Warn("malformed pattern", "section", kind, "index", p.IndexInFile, "title", p.Title, "error", err)
		}
	}
	c.log.Info("loaded corpus section", "section", kind, "path", path, "patterns", len(patterns), "malformed", invalid)
	return patterns, nil
}

// Taught returns the taught patterns in file order.
func (c *Corpus) Taught() ([]*drum.Pattern, error) {
	c.taughtOnce.Do(func() {
		c.taught, c.taughtErr = c.load(c.TaughtPath, drum.Taught)
	})
	return c.taught, c.taughtErr
}

// Transcribed returns the transcribed patterns in file order.
func (c *Corpus) Transcribed() ([]*drum.Pattern, error) {
	c.transcribedOnce.Do(func() {
		c.transcribed, c.transcribedErr = c.load(c.TranscribedPath, drum.Transcribed)
	})
	return c.transcribed, c.transcribedErr
}

// Section returns the patterns of one kind.
func (c *Corpus) Section(kind drum.Kind) ([]*drum.Pattern, error) {
	switch kind {
	case drum.Taught:
		return c.Taught()
	case drum.Transcribed:
		return c.Transcribed()
	}
	return nil, fault.New("no such section", fmsg.With(kind.String()), ftag.With(ftag.InvalidArgument))
}

// Next returns the pattern after p in its section, or nil at the end.
func (c *Corpus) Next(p *drum.Pattern) *drum.Pattern {
	return c.neighbour(p, 1)
}

// Previous returns the pattern before p in its section, or nil at the start.
func (c *Corpus) Previous(p *drum.Pattern) *drum.Pattern {
	return c.neighbour(p, -1)
}

func (c *Corpus) neighbour(p *drum.Pattern, step int) *drum.Pattern {
	patterns, err := c.Section(p.Kind)
	if err != nil {
		return nil
	}
	i := p.IndexInFile + step
	if p.IndexInFile < 0 || i < 0 || i >= len(patterns) {
		return nil
	}
	return patterns[i]
}

// TimeAtBeat interpolates the recording time of beat within the transcribed
// pattern at index, using the timestamp of the pattern that follows it.
func (c *Corpus) TimeAtBeat(index, beat int) (drum.Timecode, error) {
	patterns, err := c.Transcribed()
	if err != nil {
		return drum.Timecode{}, err
	}
	if index < 0 || index+1 >= len(patterns) {
		return drum.Timecode{}, fault.New("no following pattern",
			fmsg.WithDesc("time at beat", "Pattern needs a timed successor"),
			ftag.With(ftag.NotFound),
		)
	}
	return patterns[index].TimeAtBeat(patterns[index+1], beat)
}

// SeparateByDrum splits patterns into lanang and wadon patterns, dropping
// those whose drum is unknown.
func SeparateByDrum(patterns []*drum.Pattern) (lanang, wadon []*drum.Pattern) {
	for _, p := range patterns {
		switch p.DrumType() {
		case drum.Lanang:
			lanang = append(lanang, p)
		case drum.Wadon:
			wadon = append(wadon, p)
		}
	}
	return lanang, wadon
}

// ByDrum returns the patterns played on d.
func ByDrum(patterns []*drum.Pattern, d drum.DrumType) []*drum.Pattern {
	var out []*drum.Pattern
	for _, p := range patterns {
		if p.DrumType() == d {
			out = append(out, p)
		}
	}
	return out
}

// Valid drops malformed patterns, logging each one it drops.
func Valid(patterns []*drum.Pattern, log *slog.Logger) []*drum.Pattern {
	out := make([]*drum.Pattern, 0, len(patterns))
	for _, p := range patterns {
		if err := p.Validate(); err != nil {
			if log != nil {
				log.Debug("skipping malformed pattern", "title", p.Title, "error", err)
			}
			continue
		}
		out = append(out, p)
	}
	return out
}
