package midi

import (
	"bytes"
	"testing"

	"github.com/Southclaws/fault/ftag"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/cuthbertlab/bali/pkg/drum"
)

const gong4 = "(4)- ● - 1 - ● - 2 - ● - 3 - ● – 4"

func TestWrite(t *testing.T) {
	p := drum.NewPattern(drum.Taught, "Pak Tama Lanang 0 (intro)", gong4, "(_)_ _ e e _ e _ e _ e _ e _ e T _")
	var buf bytes.Buffer
	if err := Write(&buf, []*drum.Pattern{p}, Options{Cycles: 2, Ticks: 960}); err != nil {
		t.Fatal(err)
	}

	rd, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if len(rd.Tracks) != 1 {
		t.Fatalf("got %d tracks, want 1", len(rd.Tracks))
	}

	var (
		ticks uint32
		keys  = map[uint8]int{}
	)
	for _, ev := range rd.Tracks[0] {
		ticks += ev.Delta
		var ch, key, vel uint8
		if midi.Message(ev.Message).GetNoteOn(&ch, &key, &vel) {
			if ch != PercussionChannel {
				t.Errorf("note on channel %d", ch)
			}
			keys[key]++
		}
	}
	if keys[Voices["e"].Key] != 14 || keys[Voices["T"].Key] != 2 {
		t.Errorf("note counts = %v, want 14 e and 2 T", keys)
	}
	if want := uint32(2 * 16 * 240); ticks != want {
		t.Errorf("track length = %d ticks, want %d", ticks, want)
	}
}

func TestBuildErrors(t *testing.T) {
	if _, err := Build(nil, Options{}); ftag.Get(err) != ftag.InvalidArgument {
		t.Errorf("Build(nil) = %v", err)
	}
	bad := drum.NewPattern(drum.Taught, "broken", gong4, "(_)e e T")
	if _, err := Build([]*drum.Pattern{bad}, Options{}); err == nil {
		t.Error("Build accepted a malformed pattern")
	}
}

func TestVoicesCoverSoundingStrokes(t *testing.T) {
	for symbol := range Voices {
		if !drum.IsKnown(symbol) {
			t.Errorf("voice for unknown stroke %q", symbol)
		}
	}
	for _, silent := range []string{drum.Ghost, drum.RemovedSingle, drum.RemovedRepeat, "?", "`"} {
		if _, ok := Voices[silent]; ok {
			t.Errorf("stroke %q should be silent", silent)
		}
	}
}
