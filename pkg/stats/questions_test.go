package stats

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/cuthbertlab/bali/pkg/corpus"
	"github.com/cuthbertlab/bali/pkg/drum"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func taught(t *testing.T) []*drum.Pattern {
	t.Helper()
	patterns, err := corpus.Open("../corpus/testdata", quiet).Taught()
	if err != nil {
		t.Fatal(err)
	}
	return patterns
}

func questionByName(t *testing.T, name string) Question {
	t.Helper()
	for _, q := range Questions() {
		if q.Name == name {
			return q
		}
	}
	t.Fatalf("no question %q", name)
	return Question{}
}

func TestQuestions(t *testing.T) {
	patterns := taught(t)
	tData := []struct {
		name    string
		entries int
		denom   float64
		want    float64
	}{
		{"lanang e on beat (double)", 3, 24, 58.333},
		{"lanang single e on beat (double)", 3, 16, 62.5},
		{"lanang paired e off beat (guntang)", 3, 4, 75},
		{"lanang T off beat (guntang)", 3, 5, 80},
		{"lanang T off beat (double)", 3, 5, 80},
		{"wadon single o off beat (double)", 3, 11, 45.454},
		{"wadon D on beat (guntang)", 3, 10, 30},
		{"wadon D on beat (double)", 3, 10, 50},
		{"wadon paired o on beat (guntang)", 3, 3, 33.333},
	}
	for _, tc := range tData {
		l := questionByName(t, tc.name).Evaluate(patterns, quiet)
		if len(l) != tc.entries {
			t.Errorf("%s: %d entries, want %d", tc.name, len(l), tc.entries)
		}
		if l.Denom() != tc.denom {
			t.Errorf("%s: Denom() = %v, want %v", tc.name, l.Denom(), tc.denom)
		}
		got, err := l.WeightedTotal()
		if err != nil {
			t.Errorf("%s: %v", tc.name, err)
			continue
		}
		if math.Abs(got-tc.want) > 0.01 {
			t.Errorf("%s: WeightedTotal() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestQuestionPerPattern(t *testing.T) {
	l := questionByName(t, "lanang paired e off beat (guntang)").Evaluate(taught(t), quiet)
	// The intro's surviving e sits on beat 1; the first pattern of Pak Dewa
	// keeps two e strokes, both between beats.
	if l[0].Percent != 0 || l[0].Weight != 1 {
		t.Errorf("intro entry = %+v", l[0])
	}
	if l[2].Percent != 100 || l[2].Weight != 2 {
		t.Errorf("Pak Dewa entry = %+v", l[2])
	}
}

func TestHalfQuestions(t *testing.T) {
	patterns := taught(t)
	want := map[string]drum.Halves{
		"lanang T on first quarter": {},
		"lanang T on third quarter": {FirstHalf: 2, SecondHalf: 2},
		"wadon D on first quarter":  {FirstHalf: 2, SecondHalf: 1},
		"wadon D on third quarter":  {FirstHalf: 1, SecondHalf: 1},
	}
	for _, q := range HalfQuestions() {
		if got := q.Evaluate(patterns, quiet); got != want[q.Name] {
			t.Errorf("%s = %+v, want %+v", q.Name, got, want[q.Name])
		}
	}
}

func TestMeasureOffBeatWithoutStroke(t *testing.T) {
	p := drum.NewPattern(drum.Taught, "Pak A Lanang", "(4)4", "(_)e _ _ _ _ _ _ _ _ _ _ _ _ _ _ _")
	q := Question{Drum: drum.Lanang, Stroke: "T", Level: drum.Guntang, OffBeat: true}
	percent, weight := q.Measure(p)
	if weight != 0 {
		t.Errorf("weight = %v, want 0", weight)
	}
	if percent != 100 {
		t.Errorf("percent = %v, want 100", percent)
	}
}
