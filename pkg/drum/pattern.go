package drum

import (
	"fmt"
	"iter"
	"math"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
)

// Kind tags where a pattern came from. It selects how the derived fields
// (drum type, teacher) are computed.
type Kind int

const (
	Untagged Kind = iota
	Taught
	Transcribed
)

func (k Kind) String() string {
	switch k {
	case Taught:
		return "Taught"
	case Transcribed:
		return "Transcribed"
	}
	return "Pattern"
}

// Pattern holds one drum pattern: a title, a gong-cycle marker whose last
// character is the beat length, and the stroke encoding.
type Pattern struct {
	Kind        Kind
	Title       string
	GongPattern string
	DrumPattern string
	Comments    string
	IndexInFile int // -1 until the parser assigns it
}

// NewPattern creates a pattern that has not been placed in a file.
func NewPattern(kind Kind, title, gongPattern, drumPattern string) *Pattern {
	return &Pattern{
		Kind:        kind,
		Title:       title,
		GongPattern: gongPattern,
		DrumPattern: drumPattern,
		IndexInFile: -1,
	}
}

// Clone returns an independent copy of p.
func (p *Pattern) Clone() *Pattern {
	c := *p
	return &c
}

func (p *Pattern) String() string {
	return fmt.Sprintf("%s %s:%s", p.Kind, p.Title, p.DrumPattern)
}

// Strokes decodes DrumPattern. Every call returns a fresh slice, so callers
// may modify it without touching the pattern. A malformed drum pattern
// yields nil.
func (p *Pattern) Strokes() []string {
	s, err := Decode(p.DrumPattern)
	if err != nil {
		return nil
	}
	return s
}

// SetStrokes re-encodes strokes into DrumPattern.
func (p *Pattern) SetStrokes(strokes []string) {
	p.DrumPattern = Encode(strokes)
}

// BeatLength is the number of beats in the gong cycle, read from the last
// character of GongPattern. Only single-digit cycles are representable; a
// gong pattern without a trailing digit has length 0.
func (p *Pattern) BeatLength() int {
	gp := p.GongPattern
	if gp == "" {
		return 0
	}
	c := gp[len(gp)-1]
	if c < '0' || c > '9' {
		return 0
	}
	return int(c - '0')
}

// Slots is the number of quarter-beat positions after beat zero.
func (p *Pattern) Slots() int {
	return QuartersInBeat * p.BeatLength()
}

// Validate checks that the drum pattern decodes and carries exactly
// 4*BeatLength+1 strokes.
func (p *Pattern) Validate() error {
	if p.BeatLength() < 1 {
		return fault.Wrap(&MalformedPatternError{Title: p.Title},
			fmsg.WithDesc("read beat length", "Gong pattern must end with the cycle length"),
			ftag.With(ftag.InvalidArgument),
		)
	}
	strokes, err := Decode(p.DrumPattern)
	if err != nil {
		return fault.Wrap(err, fmsg.With("validate "+p.Title))
	}
	if want := p.Slots() + 1; len(strokes) != want {
		return fault.Wrap(&MalformedPatternError{Title: p.Title, Expected: want, Got: len(strokes)},
			fmsg.With("validate stroke count"),
			ftag.With(ftag.InvalidArgument),
		)
	}
	return nil
}

// IterateStrokes yields (beat, stroke) for every quarter beat from 0.25 up
// to and including maxBeat.
func (p *Pattern) IterateStrokes(maxBeat float64) iter.Seq2[float64, string] {
	return func(yield func(float64, string) bool) {
		strokes := p.Strokes()
		for i := 1; i < len(strokes); i++ {
			beat := float64(i) / QuartersInBeat
			if beat > maxBeat {
				return
			}
			if !yield(beat, strokes[i]) {
				return
			}
		}
	}
}

// TypeOfStrokeByBeat returns the stroke at beat, truncating beat*4 to an
// index. Beats outside the pattern return "".
func (p *Pattern) TypeOfStrokeByBeat(beat float64) string {
	strokes := p.Strokes()
	i := int(beat * QuartersInBeat)
	if i < 0 || i >= len(strokes) {
		return ""
	}
	return strokes[i]
}

// DescriptionOfStroke looks symbol up in the vocabulary.
func (p *Pattern) DescriptionOfStroke(symbol string) (string, error) {
	return Describe(symbol)
}

// LastBeatOfPreviousPattern returns the beat-zero stroke, which is the
// final stroke of the preceding cycle.
func (p *Pattern) LastBeatOfPreviousPattern() string {
	return p.TypeOfStrokeByBeat(0)
}

// IsValidBeat reports whether beat is an integer in [1, BeatLength-1].
// The cycle's final beat is rejected.
func (p *Pattern) IsValidBeat(beat float64) bool {
	return p.ValidateBeat(beat) == nil
}

// ValidateBeat is IsValidBeat with the reason attached. The returned error
// wraps an *InvalidBeatError whose Hint is meant for the person who typed
// the beat.
func (p *Pattern) ValidateBeat(beat float64) error {
	bl := p.BeatLength()
	if beat != math.Trunc(beat) || beat < 1 || beat >= float64(bl) {
		return invalidBeat(beat, bl)
	}
	return nil
}

// strokesForBeat checks beat and the stroke count before a beat-indexed
// query reads the strokes.
func (p *Pattern) strokesForBeat(beat float64) ([]string, error) {
	if err := p.ValidateBeat(beat); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p.Strokes(), nil
}

// AllLeadingUpToBeat returns the four strokes of the quarter-beat group
// ending on beat.
func (p *Pattern) AllLeadingUpToBeat(beat float64) ([]string, error) {
	strokes, err := p.strokesForBeat(beat)
	if err != nil {
		return nil, err
	}
	b := int(beat) * QuartersInBeat
	out := make([]string, 0, QuartersInBeat)
	for i := b - 3; i <= b; i++ {
		out = append(out, strokes[i])
	}
	return out, nil
}

// StrokesLeadingUpToBeat is AllLeadingUpToBeat without ghost strokes.
func (p *Pattern) StrokesLeadingUpToBeat(beat float64) ([]string, error) {
	all, err := p.AllLeadingUpToBeat(beat)
	if err != nil {
		return nil, err
	}
	out := []string{}
	for _, s := range all {
		if s != Ghost {
			out = append(out, s)
		}
	}
	return out, nil
}

// ContiguousStrokesLeadingUpToBeat scans backwards from the quarter before
// beat and collects strokes until the first ghost stroke.
func (p *Pattern) ContiguousStrokesLeadingUpToBeat(beat float64) ([]string, error) {
	strokes, err := p.strokesForBeat(beat)
	if err != nil {
		return nil, err
	}
	b := int(beat) * QuartersInBeat
	out := []string{}
	for i := b - 1; i > b-QuartersInBeat; i-- {
		if strokes[i] == Ghost {
			break
		}
		out = append([]string{strokes[i]}, out...)
	}
	return out, nil
}

// SameStrokesLeadingUpToBeat scans backwards from beat and collects each
// preceding stroke that repeats its right neighbour, stopping at a ghost
// stroke or a change of stroke.
func (p *Pattern) SameStrokesLeadingUpToBeat(beat float64) ([]string, error) {
	strokes, err := p.strokesForBeat(beat)
	if err != nil {
		return nil, err
	}
	b := int(beat) * QuartersInBeat
	out := []string{}
	for i := b; i > b-QuartersInBeat; i-- {
		if strokes[i] == Ghost || strokes[i-1] != strokes[i] {
			break
		}
		out = append([]string{strokes[i-1]}, out...)
	}
	return out, nil
}
