package stats

import (
	"log/slog"
	"math/rand/v2"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"

	"github.com/cuthbertlab/bali/pkg/drum"
)

// RandomPatterns cycles through the well-formed patterns and returns n
// shuffled copies. The copies keep their titles, so taught patterns keep
// their drum type.
func RandomPatterns(patterns []*drum.Pattern, n int, rng *rand.Rand) []*drum.Pattern {
	var pool []*drum.Pattern
	for _, p := range patterns {
		if p.Validate() == nil {
			pool = append(pool, p)
		}
	}
	if len(pool) == 0 || n <= 0 {
		return nil
	}
	out := make([]*drum.Pattern, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, pool[i%len(pool)].ShuffleStrokes(rng))
	}
	return out
}

// Scrambled is a question evaluated on shuffled patterns.
type Scrambled struct {
	Percents PercentList
	// BeatTheory holds the drum patterns whose own percentage reached the
	// question's threshold.
	BeatTheory []string
}

// BeatsTheory reports whether a pattern's percentage for q reaches the
// threshold. On-beat questions include the threshold; off-beat questions
// need to exceed it.
func (q Question) BeatsTheory(percent float64) bool {
	if q.OffBeat {
		return percent > q.Threshold
	}
	return percent >= q.Threshold
}

// Scrambled evaluates q on already shuffled patterns.
func (q Question) Scrambled(random []*drum.Pattern, log *slog.Logger) Scrambled {
	var s Scrambled
	for _, p := range random {
		if p.DrumType() != q.Drum {
			continue
		}
		if err := p.Validate(); err != nil {
			if log != nil {
				log.Warn("scrambled pattern skipped", "question", q.Name, "error", err)
			}
			continue
		}
		percent, weight := q.Measure(p)
		if weight > 0 && q.BeatsTheory(percent) {
			s.BeatTheory = append(s.BeatTheory, p.DrumPattern)
		}
		s.Percents.Add(percent, weight)
	}
	return s
}

// Significance compares a question's observed result with the results of
// repeated shuffled baselines.
type Significance struct {
	Question string
	Observed float64
	Trials   int // baselines with at least one matching stroke
	Exceeded int // baselines at or above Observed
}

// P is the add-one estimate of the probability of a shuffled baseline
// reaching the observed result.
func (s Significance) P() float64 {
	return float64(s.Exceeded+1) / float64(s.Trials+1)
}

// Test runs trials shuffled baselines of perTrial patterns each.
func Test(q Question, patterns []*drum.Pattern, trials, perTrial int, rng *rand.Rand, log *slog.Logger) (Significance, error) {
	observed, err := q.Evaluate(patterns, log).WeightedTotal()
	if err != nil {
		return Significance{}, fault.Wrap(err, fmsg.With("observe "+q.Name))
	}
	s := Significance{Question: q.Name, Observed: observed}
	for i := 0; i < trials; i++ {
		baseline, err := q.Scrambled(RandomPatterns(patterns, perTrial, rng), log).Percents.WeightedTotal()
		if err != nil {
			continue
		}
		s.Trials++
		if baseline >= observed {
			s.Exceeded++
		}
	}
	if log != nil {
		log.Debug("significance", "question", q.Name, "observed", observed, "trials", s.Trials, "exceeded", s.Exceeded)
	}
	return s, nil
}
