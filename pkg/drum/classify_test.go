package drum

import "testing"

func TestTitleDrumType(t *testing.T) {
	tData := []struct {
		title string
		want  DrumType
	}{
		{"Pak Tama Lanang 0 (intro)", Lanang},
		{"Pak Dewa wadon 3", Wadon},
		{"Sudi pengawak", UnknownDrum},
	}
	for _, tc := range tData {
		p := NewPattern(Taught, tc.title, gong4, "")
		if got := p.DrumType(); got != tc.want {
			t.Errorf("DrumType(%q) = %v, want %v", tc.title, got, tc.want)
		}
	}
}

func TestInferDrumType(t *testing.T) {
	tData := []struct {
		drum string
		want DrumType
	}{
		{"(r)l l T r e e T r e e T r e e T e", Lanang},
		{"(_)o o _ D _ d _ K _ _ _ _ _ _ _ _", Wadon},
		{"(_)D. _ _ _ _ _ _ _ _ _ _ _ _ _ _ _", Wadon},
		{"(_)r l r l _ _ _ _ _ _ _ _ _ _ _ _", UnknownDrum},
	}
	for _, tc := range tData {
		p := NewPattern(Transcribed, "00:00:08", gong4, tc.drum)
		if got := p.DrumType(); got != tc.want {
			t.Errorf("DrumType(%q) = %v, want %v", tc.drum, got, tc.want)
		}
	}
}

func TestTeacherName(t *testing.T) {
	tData := []struct {
		kind  Kind
		title string
		want  string
	}{
		{Taught, "Pak Tama Lanang 0 (intro)", "Pak Tama"},
		{Taught, "Lanang from Sudi 2", "Sudi"},
		{Taught, "Bu Ayu Wadon", ""},
		{Transcribed, "Pak Tama Lanang", ""},
	}
	for _, tc := range tData {
		p := NewPattern(tc.kind, tc.title, gong4, "")
		if got := p.TeacherName(); got != tc.want {
			t.Errorf("TeacherName(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestTimeAtBeat(t *testing.T) {
	gong8 := "(8)- ● - 1 - ● - 2 - ● - 3 - ● – 4 - ● - 5 - ● - 6 - ● - 7 - ● – 8"
	cur := NewPattern(Transcribed, "00:00:08", gong8, "(r)l r e e T e T e T e T e T e T e T e T e T e T r e e T e T e T r")
	next := NewPattern(Transcribed, "00:00:11", gong8, "(r)l l T r e e T r e e T r e e T e T r e e r e T r l r T r U _ T l")
	if err := cur.Validate(); err != nil {
		t.Fatal(err)
	}
	tc, err := cur.TimeAtBeat(next, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got := tc.String(); got != "0:0:8.75" {
		t.Errorf("TimeAtBeat(2) = %q, want 0:0:8.75", got)
	}

	_, err = cur.TimeAtBeat(NewPattern(Transcribed, "no time", gong8, ""), 2)
	if err == nil {
		t.Error("TimeAtBeat with an untimed neighbour succeeded")
	}
}

func TestParseTimecode(t *testing.T) {
	tc, err := ParseTimecode("01:02:03 pengecet")
	if err != nil {
		t.Fatal(err)
	}
	if tc != (Timecode{Minutes: 1, Seconds: 2, Centiseconds: 3}) {
		t.Errorf("ParseTimecode = %+v", tc)
	}
	if tc.Total() != 6203 {
		t.Errorf("Total() = %v, want 6203", tc.Total())
	}
	if _, err := ParseTimecode("intro"); err == nil {
		t.Error("ParseTimecode(intro) succeeded")
	}
}
