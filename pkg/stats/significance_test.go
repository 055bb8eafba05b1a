package stats

import (
	"math/rand/v2"
	"reflect"
	"strings"
	"testing"

	"github.com/cuthbertlab/bali/pkg/drum"
)

const gong4 = "(4)- ● - 1 - ● - 2 - ● - 3 - ● – 4"

func counts(strokes []string) map[string]int {
	m := map[string]int{}
	for _, s := range strokes {
		m[s]++
	}
	return m
}

func TestRandomPatterns(t *testing.T) {
	patterns := taught(t)
	rng := rand.New(rand.NewPCG(11, 12))
	random := RandomPatterns(patterns, 20, rng)
	if len(random) != 20 {
		t.Fatalf("got %d patterns, want 20", len(random))
	}

	var pool []*drum.Pattern
	for _, p := range patterns {
		if p.Validate() == nil {
			pool = append(pool, p)
		}
	}
	for i, r := range random {
		src := pool[i%len(pool)]
		if r.Title != src.Title {
			t.Errorf("random[%d] title %q, want %q", i, r.Title, src.Title)
		}
		if !reflect.DeepEqual(counts(r.Strokes()), counts(src.Strokes())) {
			t.Errorf("random[%d] strokes %q are not a permutation of %q", i, r.DrumPattern, src.DrumPattern)
		}
	}

	if got := RandomPatterns(nil, 5, rng); got != nil {
		t.Errorf("RandomPatterns(nil) = %v", got)
	}
}

func TestScrambled(t *testing.T) {
	patterns := taught(t)
	q := questionByName(t, "lanang e on beat (double)")
	q.Threshold = 0
	s := q.Scrambled(RandomPatterns(patterns, 14, rand.New(rand.NewPCG(5, 6))), quiet)
	// 14 shuffled copies cycle twice through the seven well-formed patterns,
	// three of which are lanang and all of those contain e.
	if len(s.Percents) != 6 {
		t.Errorf("got %d entries, want 6", len(s.Percents))
	}
	if len(s.BeatTheory) != 6 {
		t.Errorf("got %d patterns beating a zero threshold, want 6", len(s.BeatTheory))
	}
	// An e shuffled onto beat zero is not counted.
	if d := s.Percents.Denom(); d > 48 || d < 42 {
		t.Errorf("Denom() = %v, want 42..48", d)
	}
	for _, dp := range s.BeatTheory {
		if !strings.HasPrefix(dp, "(") {
			t.Errorf("BeatTheory entry %q is not a drum pattern", dp)
		}
	}
}

func TestBeatsTheory(t *testing.T) {
	tests := []struct {
		offBeat   bool
		threshold float64
		percent   float64
		want      bool
	}{
		{false, 58.6, 58.6, true},
		{false, 58.6, 58.5, false},
		{false, 58.6, 100, true},
		{true, 90.7, 90.7, false},
		{true, 90.7, 90.8, true},
		{true, 97.2, 100, true},
		{true, 97.2, 0, false},
	}
	for _, tt := range tests {
		q := Question{OffBeat: tt.offBeat, Threshold: tt.threshold}
		if got := q.BeatsTheory(tt.percent); got != tt.want {
			t.Errorf("offBeat=%v threshold %v: BeatsTheory(%v) = %v, want %v", tt.offBeat, tt.threshold, tt.percent, got, tt.want)
		}
	}
}

func TestScrambledThresholdBoundary(t *testing.T) {
	p := drum.NewPattern(drum.Taught, "Pak Tama Lanang 0 (intro)", gong4, "(_)_ _ e e _ e _ e _ e _ e _ e T _")
	on := p.PercentOnBeat("e", drum.Double)

	onBeat := Question{Name: "on", Drum: drum.Lanang, Stroke: "e", Level: drum.Double, Threshold: on}
	if got := onBeat.Scrambled([]*drum.Pattern{p}, quiet).BeatTheory; len(got) != 1 {
		t.Errorf("on-beat at threshold: BeatTheory = %v, want the pattern", got)
	}

	offBeat := Question{Name: "off", Drum: drum.Lanang, Stroke: "e", Level: drum.Double, OffBeat: true, Threshold: 100 - on}
	if got := offBeat.Scrambled([]*drum.Pattern{p}, quiet).BeatTheory; len(got) != 0 {
		t.Errorf("off-beat at threshold: BeatTheory = %v, want none", got)
	}
}

func TestSignificance(t *testing.T) {
	patterns := taught(t)
	q := questionByName(t, "lanang e on beat (double)")
	sig, err := Test(q, patterns, 25, 14, rand.New(rand.NewPCG(1, 1)), quiet)
	if err != nil {
		t.Fatal(err)
	}
	if sig.Trials != 25 {
		t.Errorf("Trials = %d, want 25", sig.Trials)
	}
	if sig.Exceeded < 0 || sig.Exceeded > sig.Trials {
		t.Errorf("Exceeded = %d", sig.Exceeded)
	}
	if p := sig.P(); p <= 0 || p > 1 {
		t.Errorf("P() = %v", p)
	}

	none := Question{Name: "wadon e", Drum: drum.Wadon, Stroke: "e", Level: drum.Double}
	if _, err := Test(none, patterns, 5, 14, rand.New(rand.NewPCG(1, 1)), quiet); err == nil {
		t.Error("Test on a stroke that never occurs succeeded")
	}
}
