package drum

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
)

var timecodePrefix = regexp.MustCompile(`^\s*(\d+):(\d+):(\d+)`)

// Timecode is a position in a recording as minute:second:centisecond.
type Timecode struct {
	Minutes      int
	Seconds      int
	Centiseconds float64
}

// ParseTimecode reads the timestamp a transcribed pattern's title starts with.
func ParseTimecode(title string) (Timecode, error) {
	m := timecodePrefix.FindStringSubmatch(title)
	if m == nil {
		return Timecode{}, fault.Wrap(fault.New("no timecode in title"),
			fmsg.WithDesc("parse timecode", "Title "+strconv.Quote(title)+" does not start with a time"),
			ftag.With(ftag.InvalidArgument),
		)
	}
	mins, _ := strconv.Atoi(m[1])
	secs, _ := strconv.Atoi(m[2])
	cs, _ := strconv.Atoi(m[3])
	return Timecode{Minutes: mins, Seconds: secs, Centiseconds: float64(cs)}, nil
}

// Total returns the timecode in centiseconds.
func (t Timecode) Total() float64 {
	return float64(t.Minutes*6000+t.Seconds*100) + t.Centiseconds
}

func timecodeFromTotal(total float64) Timecode {
	mins := int(total / 6000)
	secs := int((total - float64(mins)*6000) / 100)
	return Timecode{
		Minutes:      mins,
		Seconds:      secs,
		Centiseconds: total - float64(mins)*6000 - float64(secs)*100,
	}
}

func (t Timecode) String() string {
	return fmt.Sprintf("%d:%d:%s", t.Minutes, t.Seconds, strconv.FormatFloat(t.Centiseconds, 'f', -1, 64))
}

// TimeAtBeat interpolates the time of beat between the timestamp in p's
// title and the one in next's title.
func (p *Pattern) TimeAtBeat(next *Pattern, beat int) (Timecode, error) {
	start, err := ParseTimecode(p.Title)
	if err != nil {
		return Timecode{}, err
	}
	end, err := ParseTimecode(next.Title)
	if err != nil {
		return Timecode{}, err
	}
	strokes := p.Strokes()
	if len(strokes) < 2 {
		return Timecode{}, fault.Wrap(ErrMalformedPattern, fmsg.With("time at beat"), ftag.With(ftag.InvalidArgument))
	}
	elapsed := max(0, min(beat*QuartersInBeat, len(strokes)))
	point := float64(elapsed) / float64(len(strokes)-1)
	return timecodeFromTotal(start.Total() + point*(end.Total()-start.Total())), nil
}
