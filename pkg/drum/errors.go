package drum

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
)

// Sentinels for errors.Is checks against the typed errors below.
var (
	ErrUnknownStroke    = errors.New("unknown stroke")
	ErrInvalidBeat      = errors.New("invalid beat")
	ErrMalformedPattern = errors.New("malformed drum pattern")
)

// UnknownStrokeError is returned when a stroke symbol is not part of the
// vocabulary and a description was asked for.
type UnknownStrokeError struct {
	Stroke string
}

func (e *UnknownStrokeError) Error() string {
	return fmt.Sprintf("I do not know how to deal with this stroke: %q", e.Stroke)
}

func (e *UnknownStrokeError) Is(target error) bool { return target == ErrUnknownStroke }

// InvalidBeatError is returned by beat-indexed queries given a beat that is
// not an integer in [1, BeatLength-1].
type InvalidBeatError struct {
	Beat       float64
	BeatLength int
}

func (e *InvalidBeatError) Error() string {
	return fmt.Sprintf("wrong beat %s: %s", strconv.FormatFloat(e.Beat, 'g', -1, 64), e.Hint())
}

// Hint is the message shown to a person who entered the beat.
func (e *InvalidBeatError) Hint() string {
	return "Please enter an integer from 1-" + strconv.Itoa(e.BeatLength)
}

func (e *InvalidBeatError) Is(target error) bool { return target == ErrInvalidBeat }

// MalformedPatternError reports a drum pattern whose stroke count does not
// match the gong pattern's beat length.
type MalformedPatternError struct {
	Title    string
	Expected int
	Got      int
}

func (e *MalformedPatternError) Error() string {
	return fmt.Sprintf("pattern %q has %d strokes, expected %d", e.Title, e.Got, e.Expected)
}

func (e *MalformedPatternError) Is(target error) bool { return target == ErrMalformedPattern }

func unknownStroke(stroke string) error {
	return fault.Wrap(&UnknownStrokeError{Stroke: stroke},
		fmsg.WithDesc("describe stroke", "Unknown stroke symbol "+strconv.Quote(stroke)),
		ftag.With(ftag.NotFound),
	)
}

func invalidBeat(beat float64, beatLength int) error {
	e := &InvalidBeatError{Beat: beat, BeatLength: beatLength}
	return fault.Wrap(e,
		fmsg.WithDesc("validate beat", e.Hint()),
		ftag.With(ftag.InvalidArgument),
	)
}
