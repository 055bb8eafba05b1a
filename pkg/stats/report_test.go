package stats

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"
)

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReport(&buf, taught(t), ReportOptions{Log: quiet}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"lanang e on beat (double)",
		"58.3%",
		"wadon D on first quarter",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report lacks %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "exceeded") {
		t.Error("report has a significance table without trials")
	}
}

func TestWriteReportSignificance(t *testing.T) {
	var buf bytes.Buffer
	opts := ReportOptions{Trials: 3, Rand: rand.New(rand.NewPCG(2, 3)), Log: quiet}
	if err := WriteReport(&buf, taught(t), opts); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "exceeded") {
		t.Errorf("report lacks the significance table:\n%s", buf.String())
	}
}
