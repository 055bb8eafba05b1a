package stats

import (
	"log/slog"

	"github.com/cuthbertlab/bali/pkg/drum"
)

// Transform derives a filtered pattern before it is measured.
type Transform struct {
	Name  string
	Apply func(*drum.Pattern) *drum.Pattern
}

// RemoveSingles replaces isolated occurrences of stroke.
func RemoveSingles(stroke string) Transform {
	return Transform{
		Name: "remove single " + stroke,
		Apply: func(p *drum.Pattern) *drum.Pattern {
			return p.RemoveSingleStrokes(stroke)
		},
	}
}

// RemoveFirstOfPairs keeps only the last stroke of every run of stroke.
func RemoveFirstOfPairs(stroke string) Transform {
	return Transform{
		Name: "remove first of consecutive " + stroke,
		Apply: func(p *drum.Pattern) *drum.Pattern {
			return p.RemoveConsecutiveStrokes(stroke, true, false)
		},
	}
}

// RemoveRuns drops every stroke that belongs to a run, keeping singles.
func RemoveRuns(stroke string) Transform {
	return Transform{
		Name: "remove consecutive " + stroke,
		Apply: func(p *drum.Pattern) *drum.Pattern {
			return p.RemoveConsecutiveStrokes(stroke, true, true)
		},
	}
}

// Question is one rhythmic hypothesis: how often does Stroke, on patterns
// played on Drum, fall on (or off) the Level grid after Pipeline ran.
type Question struct {
	Name     string
	Drum     drum.DrumType
	Stroke   string
	Level    drum.BeatLevel
	OffBeat  bool
	Pipeline []Transform

	// Threshold is the weighted result on the taught corpus. A scrambled
	// pattern reaching it counts as beating the theory.
	Threshold float64
}

// Measure returns p's percentage for q and the weight behind it.
func (q Question) Measure(p *drum.Pattern) (percent, weight float64) {
	for _, t := range q.Pipeline {
		p = t.Apply(p)
	}
	percent = p.PercentOnBeat(q.Stroke, q.Level)
	if q.OffBeat {
		percent = 100 - percent
	}
	return percent, float64(p.BeatsInPattern(q.Stroke))
}

// Evaluate measures every pattern played on q.Drum. Malformed patterns are
// logged and left out; they do not abort the run.
func (q Question) Evaluate(patterns []*drum.Pattern, log *slog.Logger) PercentList {
	var l PercentList
	for _, p := range patterns {
		if p.DrumType() != q.Drum {
			continue
		}
		if err := p.Validate(); err != nil {
			if log != nil {
				log.Warn("pattern skipped", "question", q.Name, "title", p.Title, "error", err)
			}
			continue
		}
		l.Add(q.Measure(p))
	}
	return l
}

// Questions lists the hypotheses of the lanang/wadon on-beat study.
func Questions() []Question {
	return []Question{
		{
			Name:      "lanang e on beat (double)",
			Drum:      drum.Lanang,
			Stroke:    "e",
			Level:     drum.Double,
			Threshold: 58.6,
		},
		{
			Name:      "lanang single e on beat (double)",
			Drum:      drum.Lanang,
			Stroke:    "e",
			Level:     drum.Double,
			Pipeline:  []Transform{RemoveRuns("e")},
			Threshold: 68.7,
		},
		{
			Name:      "lanang paired e off beat (guntang)",
			Drum:      drum.Lanang,
			Stroke:    "e",
			Level:     drum.Guntang,
			OffBeat:   true,
			Pipeline:  []Transform{RemoveSingles("e"), RemoveFirstOfPairs("e")},
			Threshold: 75.9,
		},
		{
			Name:      "lanang T off beat (guntang)",
			Drum:      drum.Lanang,
			Stroke:    "T",
			Level:     drum.Guntang,
			OffBeat:   true,
			Threshold: 97.2,
		},
		{
			Name:      "lanang T off beat (double)",
			Drum:      drum.Lanang,
			Stroke:    "T",
			Level:     drum.Double,
			OffBeat:   true,
			Threshold: 92.7,
		},
		{
			Name:      "wadon single o off beat (double)",
			Drum:      drum.Wadon,
			Stroke:    "o",
			Level:     drum.Double,
			OffBeat:   true,
			Pipeline:  []Transform{RemoveRuns("o")},
			Threshold: 90.7,
		},
		{
			Name:      "wadon D on beat (guntang)",
			Drum:      drum.Wadon,
			Stroke:    "D",
			Level:     drum.Guntang,
			Threshold: 26,
		},
		{
			Name:      "wadon D on beat (double)",
			Drum:      drum.Wadon,
			Stroke:    "D",
			Level:     drum.Double,
			Threshold: 44,
		},
		{
			Name:      "wadon paired o on beat (guntang)",
			Drum:      drum.Wadon,
			Stroke:    "o",
			Level:     drum.Guntang,
			Pipeline:  []Transform{RemoveSingles("o"), RemoveFirstOfPairs("o")},
			Threshold: 62,
		},
	}
}

// HalfQuestion asks in which half of the gong cycle Stroke lands on Phase
// after the first of every pair is dropped.
type HalfQuestion struct {
	Name   string
	Drum   drum.DrumType
	Stroke string
	Phase  drum.Phase
}

// Evaluate sums the half-cycle counts over patterns played on q.Drum.
func (q HalfQuestion) Evaluate(patterns []*drum.Pattern, log *slog.Logger) drum.Halves {
	var total drum.Halves
	for _, p := range patterns {
		if p.DrumType() != q.Drum {
			continue
		}
		if err := p.Validate(); err != nil {
			if log != nil {
				log.Warn("pattern skipped", "question", q.Name, "title", p.Title, "error", err)
			}
			continue
		}
		h := p.HalfCycleCounts(q.Stroke, q.Phase)
		total.FirstHalf += h.FirstHalf
		total.SecondHalf += h.SecondHalf
	}
	return total
}

// HalfQuestions lists the half-cycle distributions of the study.
func HalfQuestions() []HalfQuestion {
	return []HalfQuestion{
		{"lanang T on first quarter", drum.Lanang, "T", drum.PhaseFirst},
		{"lanang T on third quarter", drum.Lanang, "T", drum.PhaseThird},
		{"wadon D on first quarter", drum.Wadon, "D", drum.PhaseFirst},
		{"wadon D on third quarter", drum.Wadon, "D", drum.PhaseThird},
	}
}
