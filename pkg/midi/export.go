// Package midi renders drum patterns as Standard MIDI Files on the
// General MIDI percussion channel.
package midi

import (
	"io"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/cuthbertlab/bali/pkg/drum"
)

// PercussionChannel is channel 10 in one-based numbering.
const PercussionChannel = 9

// Voice is the percussion key and velocity a stroke is played with.
type Voice struct {
	Key      uint8
	Velocity uint8
}

// Voices maps sounding strokes to General MIDI percussion. Strokes missing
// here (ghost strokes, placeholders, unclear strokes) are silent.
var Voices = map[string]Voice{
	"e":  {63, 100}, // open hi conga
	"T":  {64, 100}, // low conga
	"U":  {62, 110}, // mute hi conga
	"C":  {60, 90},  // hi bongo
	"P":  {61, 100}, // low bongo
	"d":  {66, 70},  // low timbale
	"D":  {35, 110}, // acoustic bass drum
	"D.": {36, 80},  // bass drum 1
	"o":  {65, 100}, // high timbale
	"L":  {66, 80},
	"K":  {39, 90}, // hand clap
	"r":  {37, 40}, // side stick
	"l":  {37, 35},
	"G":  {52, 110}, // chinese cymbal
	"pu": {47, 90},  // low-mid tom
	"-":  {76, 60},  // hi wood block
	"n":  {80, 70},  // mute triangle
	"t":  {77, 70},  // low wood block
}

// Options controls tempo and repetition.
type Options struct {
	BPM    float64
	Cycles int
	Ticks  smf.MetricTicks
}

func (o Options) withDefaults() Options {
	if o.BPM <= 0 {
		o.BPM = 80
	}
	if o.Cycles <= 0 {
		o.Cycles = 1
	}
	if o.Ticks == 0 {
		o.Ticks = smf.MetricTicks(960)
	}
	return o
}

// sequencer walks an order of patterns slot by slot, the way a tracker
// walks rows, and writes note on/off pairs into a track.
type sequencer struct {
	track   smf.Track
	step    uint32 // ticks per quarter-beat slot
	pending uint32 // ticks since the last written event
}

func (s *sequencer) rest() {
	s.pending += s.step
}

func (s *sequencer) hit(v Voice) {
	gate := s.step / 2
	s.track.Add(s.pending, midi.NoteOn(PercussionChannel, v.Key, v.Velocity))
	s.track.Add(gate, midi.NoteOff(PercussionChannel, v.Key))
	s.pending = s.step - gate
}

func (s *sequencer) pattern(p *drum.Pattern) {
	strokes := p.Strokes()
	// Beat zero belongs to the previous cycle.
	for i := 1; i < len(strokes); i++ {
		if v, ok := Voices[strokes[i]]; ok {
			s.hit(v)
		} else {
			s.rest()
		}
	}
}

// Build renders the patterns in order, each repeated opts.Cycles times.
func Build(patterns []*drum.Pattern, opts Options) (*smf.SMF, error) {
	opts = opts.withDefaults()
	if len(patterns) == 0 {
		return nil, fault.New("nothing to export", ftag.With(ftag.InvalidArgument))
	}
	for _, p := range patterns {
		if err := p.Validate(); err != nil {
			return nil, fault.Wrap(err, fmsg.WithDesc("export", "Cannot export malformed pattern "+p.Title))
		}
	}

	seq := &sequencer{step: opts.Ticks.Ticks16th()}
	first := patterns[0]
	seq.track.Add(0, smf.MetaTrackSequenceName(first.Title))
	seq.track.Add(0, smf.MetaMeter(uint8(first.BeatLength()), 4))
	seq.track.Add(0, smf.MetaTempo(opts.BPM))
	for _, p := range patterns {
		for c := 0; c < opts.Cycles; c++ {
			seq.pattern(p)
		}
	}
	seq.track.Close(seq.pending)

	s := smf.New()
	s.TimeFormat = opts.Ticks
	if err := s.Add(seq.track); err != nil {
		return nil, fault.Wrap(err, fmsg.With("add track"), ftag.With(ftag.Internal))
	}
	return s, nil
}

// Write renders the patterns and writes the file to w.
func Write(w io.Writer, patterns []*drum.Pattern, opts Options) error {
	s, err := Build(patterns, opts)
	if err != nil {
		return err
	}
	if _, err := s.WriteTo(w); err != nil {
		return fault.Wrap(err, fmsg.With("write midi"), ftag.With(ftag.Internal))
	}
	return nil
}
