// Package drum implements the Balinese drum pattern model: stroke
// encoding, beat arithmetic, stroke transforms and per-pattern metrics.
package drum

import (
	"strconv"
	"strings"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
)

// Symbols with a meaning outside the vocabulary table.
const (
	Ghost          = "_" // rest for the leading-up queries
	RemovedSingle  = "," // written by RemoveSingleStrokes
	RemovedRepeat  = "." // written by RemoveConsecutiveStrokes and ConsecutiveStrokes
	QuartersInBeat = 4
)

// Stroke is one entry of the stroke vocabulary.
type Stroke struct {
	Symbol      string
	Description string
}

// Vocabulary lists every stroke symbol the notation defines, in the order
// the transcribers documented them.
var Vocabulary = []Stroke{
	{"e", "Lanang high stroke"},
	{"T", "Lanang low stroke"},
	{"d", "Wadon stroke, quieter"},
	{"D", "Wadon bass stroke on big drum, louder"},
	{"D.", "dampened Wadon bass stroke on big drum"},
	{"o", "Wadon high stroke"},
	{"L", "left hand Wadon stroke"},
	{"_", "ghost stroke"},
	{"r", "right hand ghost stroke"},
	{"l", "left hand ghost stroke"},
	{"G", "gong stroke"},
	{"pu", "pung stroke"},
	{"?", "unclear stroke"},
	{"U", "taking and giving cue for dancer/singer/end of line in Lanang"},
	{"C", "right hand pitched stroke"},
	{"-", "beat in gong, metronome"},
	{"P", "left hand slap stroke"},
	{"n", "kempyang"},
	{"t", "guntang"},
	{"K", "left hand slap stroke on Wadon"},
	{"`", "nothing"},
}

var descriptions = func() map[string]string {
	m := make(map[string]string, len(Vocabulary))
	for _, s := range Vocabulary {
		m[s.Symbol] = s.Description
	}
	return m
}()

// Describe returns the English description of a stroke symbol.
func Describe(symbol string) (string, error) {
	d, ok := descriptions[symbol]
	if !ok {
		return "", unknownStroke(symbol)
	}
	return d, nil
}

// IsKnown reports whether symbol is in the vocabulary.
func IsKnown(symbol string) bool {
	_, ok := descriptions[symbol]
	return ok
}

// Decode splits a drum pattern string "(X)S1 S2 ... Sn" into its strokes.
// Index 0 holds the beat-zero stroke X, index i the stroke at beat i/4.
// Transcriptions always write X as one character; a longer symbol is read
// up to the closing parenthesis so that shuffled patterns still decode.
func Decode(drumPattern string) ([]string, error) {
	end := strings.IndexByte(drumPattern, ')')
	if len(drumPattern) < 3 || drumPattern[0] != '(' || end < 2 {
		return nil, fault.Wrap(ErrMalformedPattern,
			fmsg.With("decode "+strconv.Quote(drumPattern)),
			ftag.With(ftag.InvalidArgument),
		)
	}
	rest := strings.Fields(drumPattern[end+1:])
	strokes := make([]string, 0, len(rest)+1)
	strokes = append(strokes, drumPattern[1:end])
	return append(strokes, rest...), nil
}

// Encode is the inverse of Decode.
func Encode(strokes []string) string {
	if len(strokes) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(strokes[0])
	b.WriteString(")")
	b.WriteString(strings.Join(strokes[1:], " "))
	return b.String()
}
