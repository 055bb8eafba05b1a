// Package stats aggregates per-pattern beat metrics over collections of
// patterns and tests them against shuffled baselines.
package stats

import (
	"errors"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
)

// ErrInsufficientData is matched by InsufficientDataError.
var ErrInsufficientData = errors.New("insufficient data")

// InsufficientDataError is returned when a weighted mean has no weight
// behind it: no pattern in the list contained the stroke.
type InsufficientDataError struct {
	Entries int
}

func (e *InsufficientDataError) Error() string {
	return "There are no matching strokes in this list"
}

func (e *InsufficientDataError) Is(target error) bool { return target == ErrInsufficientData }

// Weighted is one pattern's percentage and the number of strokes behind it.
type Weighted struct {
	Percent float64
	Weight  float64
}

// PercentList accumulates weighted percentages.
type PercentList []Weighted

// Add appends one entry.
func (l *PercentList) Add(percent, weight float64) {
	*l = append(*l, Weighted{Percent: percent, Weight: weight})
}

// Num is the numerator of the weighted mean.
func (l PercentList) Num() float64 {
	var tot float64
	for _, w := range l {
		tot += w.Percent * w.Weight
	}
	return tot
}

// Denom is the total weight.
func (l PercentList) Denom() float64 {
	var tot float64
	for _, w := range l {
		tot += w.Weight
	}
	return tot
}

// WeightedTotal is Num/Denom. It fails when Denom is zero.
func (l PercentList) WeightedTotal() (float64, error) {
	d := l.Denom()
	if d == 0 {
		return 0, fault.Wrap(&InsufficientDataError{Entries: len(l)},
			fmsg.WithDesc("weighted total", "No pattern contains the stroke"),
			ftag.With(ftag.InvalidArgument),
		)
	}
	return l.Num() / d, nil
}
