package drum

import "math/rand/v2"

// Transforms never modify the receiver; each works on a fresh stroke slice
// and returns a clone carrying the result.

func (p *Pattern) withStrokes(strokes []string) *Pattern {
	c := p.Clone()
	c.SetStrokes(strokes)
	return c
}

// RemoveSingleStrokes replaces every occurrence of stroke that has no
// identical neighbour with RemovedSingle. The first and last positions
// only have one neighbour to compare against.
func (p *Pattern) RemoveSingleStrokes(stroke string) *Pattern {
	orig := p.Strokes()
	out := p.Strokes()
	for i, s := range orig {
		if s != stroke {
			continue
		}
		left := i > 0 && orig[i-1] == stroke
		right := i < len(orig)-1 && orig[i+1] == stroke
		if !left && !right {
			out[i] = RemovedSingle
		}
	}
	return p.withStrokes(out)
}

// RemoveConsecutiveStrokes looks at every adjacent pair of stroke and
// replaces the first member (removeFirst) and/or the second member
// (removeSecond) with RemovedRepeat. Pairs are judged on the untransformed
// strokes, so a run of three with removeFirst keeps only its last stroke,
// with removeSecond only its first, and with both nothing.
func (p *Pattern) RemoveConsecutiveStrokes(stroke string, removeFirst, removeSecond bool) *Pattern {
	orig := p.Strokes()
	out := p.Strokes()
	for i := 0; i < len(orig)-1; i++ {
		if orig[i] != stroke || orig[i+1] != stroke {
			continue
		}
		if removeFirst {
			out[i] = RemovedRepeat
		}
		if removeSecond {
			out[i+1] = RemovedRepeat
		}
	}
	return p.withStrokes(out)
}

// ShuffleStrokes returns a copy whose strokes, beat zero included, are a
// uniform permutation of p's.
func (p *Pattern) ShuffleStrokes(rng *rand.Rand) *Pattern {
	strokes := p.Strokes()
	rng.Shuffle(len(strokes), func(i, j int) {
		strokes[i], strokes[j] = strokes[j], strokes[i]
	})
	return p.withStrokes(strokes)
}

// ConsecutiveStrokes marks with RemovedRepeat every non-ghost stroke that
// equals its right neighbour. Beat zero and the final stroke are left alone.
func (p *Pattern) ConsecutiveStrokes() []string {
	orig := p.Strokes()
	out := p.Strokes()
	for i := 1; i < len(orig)-1; i++ {
		if orig[i] != Ghost && orig[i] == orig[i+1] {
			out[i] = RemovedRepeat
		}
	}
	return out
}
