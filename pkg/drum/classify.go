package drum

import (
	"regexp"
	"slices"
	"strings"
)

// DrumType is the drum a pattern is played on.
type DrumType int

const (
	UnknownDrum DrumType = iota
	Lanang
	Wadon
)

func (d DrumType) String() string {
	switch d {
	case Lanang:
		return "Lanang"
	case Wadon:
		return "Wadon"
	}
	return "unknown"
}

var (
	lanangStrokes = []string{"e", "T", "U"}
	wadonStrokes  = []string{"d", "D", "D.", "o", "K"}
	teacherPrefix = regexp.MustCompile(`^(Pak\s\w+)\s`)
)

// DrumType classifies p. Taught patterns name the drum in their title;
// transcribed patterns are classified by the strokes they contain.
func (p *Pattern) DrumType() DrumType {
	if p.Kind == Transcribed {
		return p.InferDrumType()
	}
	return p.TitleDrumType()
}

// TitleDrumType looks for "lanang" or "wadon" in the title, ignoring case.
func (p *Pattern) TitleDrumType() DrumType {
	t := strings.ToLower(p.Title)
	switch {
	case strings.Contains(t, "lanang"):
		return Lanang
	case strings.Contains(t, "wadon"):
		return Wadon
	}
	return UnknownDrum
}

// InferDrumType classifies by stroke content. Any lanang stroke wins over
// wadon strokes.
func (p *Pattern) InferDrumType() DrumType {
	strokes := p.Strokes()
	for _, s := range lanangStrokes {
		if slices.Contains(strokes, s) {
			return Lanang
		}
	}
	for _, s := range wadonStrokes {
		if slices.Contains(strokes, s) {
			return Wadon
		}
	}
	return UnknownDrum
}

// TeacherName extracts the teacher from a taught pattern's title: "Sudi"
// anywhere in the title, otherwise a leading "Pak <Name>". Other kinds of
// pattern have no teacher.
func (p *Pattern) TeacherName() string {
	if p.Kind != Taught {
		return ""
	}
	if strings.Contains(p.Title, "Sudi") {
		return "Sudi"
	}
	if m := teacherPrefix.FindStringSubmatch(p.Title); m != nil {
		return m[1]
	}
	return ""
}
