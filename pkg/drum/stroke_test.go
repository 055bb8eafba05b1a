package drum

import (
	"errors"
	"math/rand/v2"
	"reflect"
	"testing"
)

func TestDecode(t *testing.T) {
	got, err := Decode("(r)l l T")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"r", "l", "l", "T"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Decode = %v, want %v", got, want)
	}

	for _, bad := range []string{"", "()", "e e T", "(e e T", "_)e e"} {
		if _, err := Decode(bad); !errors.Is(err, ErrMalformedPattern) {
			t.Errorf("Decode(%q) error = %v, want ErrMalformedPattern", bad, err)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for n := 0; n < 200; n++ {
		k := 1 + rng.IntN(6)
		s := make([]string, 4*k+1)
		for i := range s {
			s[i] = Vocabulary[rng.IntN(len(Vocabulary))].Symbol
		}
		got, err := Decode(Encode(s))
		if err != nil {
			t.Fatalf("Decode(Encode(%v)): %v", s, err)
		}
		if !reflect.DeepEqual(got, s) {
			t.Fatalf("round trip of %v gave %v", s, got)
		}
	}
}

func TestDescribe(t *testing.T) {
	for _, s := range Vocabulary {
		d, err := Describe(s.Symbol)
		if err != nil || d != s.Description {
			t.Errorf("Describe(%q) = %q, %v", s.Symbol, d, err)
		}
	}
}
