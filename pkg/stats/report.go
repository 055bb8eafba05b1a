package stats

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/cuthbertlab/bali/pkg/drum"
)

// ReportOptions controls the significance section of a report. Trials of
// zero leaves it out.
type ReportOptions struct {
	Trials   int
	PerTrial int
	Rand     *rand.Rand
	Log      *slog.Logger
}

func pct(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

// WriteReport evaluates every question on patterns and writes the results
// as tables.
func WriteReport(w io.Writer, patterns []*drum.Pattern, opts ReportOptions) error {
	qs := Questions()

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("question", "weighted", "strokes", "patterns")
	for _, q := range qs {
		l := q.Evaluate(patterns, opts.Log)
		total := "n/a"
		if v, err := l.WeightedTotal(); err == nil {
			total = pct(v)
		}
		t.Row(q.Name, total, strconv.FormatFloat(l.Denom(), 'f', -1, 64), strconv.Itoa(len(l)))
	}
	if _, err := fmt.Fprintln(w, t.String()); err != nil {
		return err
	}

	h := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("distribution", "first half", "second half")
	for _, q := range HalfQuestions() {
		d := q.Evaluate(patterns, opts.Log)
		h.Row(q.Name, strconv.Itoa(d.FirstHalf), strconv.Itoa(d.SecondHalf))
	}
	if _, err := fmt.Fprintln(w, h.String()); err != nil {
		return err
	}

	if opts.Trials <= 0 || opts.Rand == nil {
		return nil
	}
	perTrial := opts.PerTrial
	if perTrial <= 0 {
		perTrial = len(patterns)
	}
	s := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("question", "observed", "trials", "exceeded", "p")
	for _, q := range qs {
		sig, err := Test(q, patterns, opts.Trials, perTrial, opts.Rand, opts.Log)
		if err != nil {
			s.Row(q.Name, "n/a", "0", "0", "-")
			continue
		}
		s.Row(q.Name, pct(sig.Observed), strconv.Itoa(sig.Trials), strconv.Itoa(sig.Exceeded),
			strconv.FormatFloat(sig.P(), 'f', 3, 64))
	}
	_, err := fmt.Fprintln(w, s.String())
	return err
}
