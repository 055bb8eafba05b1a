package drum

import "strconv"

// BeatLevel is the number of quarter-beat slots between two on-beat
// positions of the analysis grid.
type BeatLevel int

const (
	Pulse    BeatLevel = 1
	Double   BeatLevel = 2
	Guntang  BeatLevel = 4
	TwoBeat  BeatLevel = 8
	FourBeat BeatLevel = 16
)

// DefaultBeatLevel is the grid used when a question names none.
const DefaultBeatLevel = Double

var beatLevelNames = map[BeatLevel]string{
	Pulse:    "pulse",
	Double:   "double",
	Guntang:  "guntang",
	TwoBeat:  "twoBeat",
	FourBeat: "fourBeat",
}

func (l BeatLevel) String() string {
	if n, ok := beatLevelNames[l]; ok {
		return n
	}
	return "level(" + strconv.Itoa(int(l)) + ")"
}

// ParseBeatLevel accepts the names printed by BeatLevel.String.
func ParseBeatLevel(name string) (BeatLevel, bool) {
	for l, n := range beatLevelNames {
		if n == name {
			return l, true
		}
	}
	return 0, false
}

// BeatLevels lists the levels from finest to coarsest.
func BeatLevels() []BeatLevel {
	return []BeatLevel{Pulse, Double, Guntang, TwoBeat, FourBeat}
}

// OnBeat reports whether slot i (beat i/4) lies on the level's grid.
func (l BeatLevel) OnBeat(slot int) bool {
	if l <= 0 {
		return false
	}
	return slot%int(l) == 0
}

// Phase selects one quarter of every beat.
type Phase int

const (
	PhaseFirst  Phase = 1
	PhaseSecond Phase = 2
	PhaseThird  Phase = 3
	PhaseFourth Phase = 0
)

func phaseOf(slot int) Phase {
	return Phase(slot % QuartersInBeat)
}

// OddQuarters counts strokes on the first and third quarter of each beat.
type OddQuarters struct {
	First, Third int
}

// EvenQuarters counts strokes on the second and fourth quarter of each beat.
// The fourth quarter is the beat itself.
type EvenQuarters struct {
	Second, Fourth int
}

// Halves splits a count between the two halves of the gong cycle.
type Halves struct {
	FirstHalf, SecondHalf int
}

// slotsOf returns the slots after beat zero that hold stroke.
func (p *Pattern) slotsOf(stroke string) []int {
	strokes := p.Strokes()
	var slots []int
	for i := 1; i < len(strokes); i++ {
		if strokes[i] == stroke {
			slots = append(slots, i)
		}
	}
	return slots
}

// BeatsInPattern counts occurrences of stroke after beat zero. It is the
// weight of the pattern's PercentOnBeat.
func (p *Pattern) BeatsInPattern(stroke string) int {
	return len(p.slotsOf(stroke))
}

// PercentOnBeat is the share, in percent, of stroke occurrences that fall on
// the level's grid. A pattern without the stroke returns 0.
func (p *Pattern) PercentOnBeat(stroke string, level BeatLevel) float64 {
	slots := p.slotsOf(stroke)
	if len(slots) == 0 {
		return 0
	}
	on := 0
	for _, s := range slots {
		if level.OnBeat(s) {
			on++
		}
	}
	return 100 * float64(on) / float64(len(slots))
}

// FirstOrThirdBeat tallies stroke on the first and third quarter of each beat.
func (p *Pattern) FirstOrThirdBeat(stroke string) OddQuarters {
	var q OddQuarters
	for _, s := range p.slotsOf(stroke) {
		switch phaseOf(s) {
		case PhaseFirst:
			q.First++
		case PhaseThird:
			q.Third++
		}
	}
	return q
}

// SecondOrFourthBeat tallies stroke on the second and fourth quarter of each beat.
func (p *Pattern) SecondOrFourthBeat(stroke string) EvenQuarters {
	var q EvenQuarters
	for _, s := range p.slotsOf(stroke) {
		switch phaseOf(s) {
		case PhaseSecond:
			q.Second++
		case PhaseFourth:
			q.Fourth++
		}
	}
	return q
}

// HalfCycleCounts drops the first stroke of every consecutive pair of
// stroke, then counts what remains on the given phase by half of the cycle.
func (p *Pattern) HalfCycleCounts(stroke string, phase Phase) Halves {
	reduced := p.RemoveConsecutiveStrokes(stroke, true, false)
	mid := reduced.Slots() / 2
	var h Halves
	for _, s := range reduced.slotsOf(stroke) {
		if phaseOf(s) != phase {
			continue
		}
		if s <= mid {
			h.FirstHalf++
		} else {
			h.SecondHalf++
		}
	}
	return h
}

// WhenLanangOffT is HalfCycleCounts for the lanang low stroke.
func (p *Pattern) WhenLanangOffT(phase Phase) Halves {
	return p.HalfCycleCounts("T", phase)
}

// WhenWadonOffD is HalfCycleCounts for the wadon bass stroke.
func (p *Pattern) WhenWadonOffD(phase Phase) Halves {
	return p.HalfCycleCounts("D", phase)
}
