// Package tui implements the terminal pattern browser
package tui

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cuthbertlab/bali/pkg/drum"
)

// PairMode is how consecutive repeats of the measured stroke are thinned.
type PairMode int

const (
	KeepPairs PairMode = iota
	DropFirstOfPair
	DropRuns
)

func (m PairMode) String() string {
	switch m {
	case DropFirstOfPair:
		return "first of pair removed"
	case DropRuns:
		return "runs removed"
	default:
		return "pairs kept"
	}
}

// Model is the browser state
type Model struct {
	Sections map[drum.Kind][]*drum.Pattern
	Section  drum.Kind
	Cursor   int

	// Measurement
	Stroke string
	Level  drum.BeatLevel

	// Transformations of the displayed pattern
	RemoveSingles bool
	Pairs         PairMode
	shuffled      *drum.Pattern
	rng           *rand.Rand

	// View state
	Width    int
	Height   int
	ShowHelp bool
	help     help.Model
}

// NewModel creates a browser over the two corpus sections.
func NewModel(taught, transcribed []*drum.Pattern, rng *rand.Rand) Model {
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 2))
	}
	section := drum.Taught
	if len(taught) == 0 && len(transcribed) > 0 {
		section = drum.Transcribed
	}
	return Model{
		Sections: map[drum.Kind][]*drum.Pattern{
			drum.Taught:      taught,
			drum.Transcribed: transcribed,
		},
		Section: section,
		Stroke:  "e",
		Level:   drum.DefaultBeatLevel,
		rng:     rng,
		Width:   100,
		Height:  30,
		help:    help.New(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	patterns := m.patterns()
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.ShowHelp = !m.ShowHelp
		m.help.ShowAll = m.ShowHelp

	case key.Matches(msg, keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
			m.shuffled = nil
		}

	case key.Matches(msg, keys.Down):
		if m.Cursor < len(patterns)-1 {
			m.Cursor++
			m.shuffled = nil
		}

	case key.Matches(msg, keys.Top):
		m.Cursor = 0
		m.shuffled = nil

	case key.Matches(msg, keys.Bottom):
		m.Cursor = max(0, len(patterns)-1)
		m.shuffled = nil

	case key.Matches(msg, keys.Section):
		if m.Section == drum.Taught {
			m.Section = drum.Transcribed
		} else {
			m.Section = drum.Taught
		}
		m.Cursor = 0
		m.shuffled = nil

	case key.Matches(msg, keys.Stroke):
		m.Stroke = cycleStroke(m.Stroke, 1)

	case key.Matches(msg, keys.StrokeBack):
		m.Stroke = cycleStroke(m.Stroke, -1)

	case key.Matches(msg, keys.Level):
		m.Level = cycleLevel(m.Level)

	case key.Matches(msg, keys.Singles):
		m.RemoveSingles = !m.RemoveSingles

	case key.Matches(msg, keys.Consecutive):
		m.Pairs = (m.Pairs + 1) % 3

	case key.Matches(msg, keys.Shuffle):
		if m.shuffled != nil {
			m.shuffled = nil
		} else if p := m.selected(); p != nil && p.Validate() == nil {
			m.shuffled = p.ShuffleStrokes(m.rng)
		}
	}
	return m, nil
}

func cycleStroke(current string, step int) string {
	n := len(drum.Vocabulary)
	for i, s := range drum.Vocabulary {
		if s.Symbol == current {
			return drum.Vocabulary[(i+step+n)%n].Symbol
		}
	}
	return drum.Vocabulary[0].Symbol
}

func cycleLevel(current drum.BeatLevel) drum.BeatLevel {
	levels := drum.BeatLevels()
	for i, l := range levels {
		if l == current {
			return levels[(i+1)%len(levels)]
		}
	}
	return drum.DefaultBeatLevel
}

func (m Model) patterns() []*drum.Pattern {
	return m.Sections[m.Section]
}

func (m Model) selected() *drum.Pattern {
	patterns := m.patterns()
	if m.Cursor < 0 || m.Cursor >= len(patterns) {
		return nil
	}
	return patterns[m.Cursor]
}

func (m Model) next() *drum.Pattern {
	patterns := m.patterns()
	if m.Cursor+1 >= len(patterns) {
		return nil
	}
	return patterns[m.Cursor+1]
}

// Displayed is the selected pattern after shuffling and stroke removal.
func (m Model) Displayed() *drum.Pattern {
	p := m.selected()
	if p == nil {
		return nil
	}
	if m.shuffled != nil {
		p = m.shuffled
	}
	if p.Validate() != nil {
		return p
	}
	if m.RemoveSingles {
		p = p.RemoveSingleStrokes(m.Stroke)
	}
	switch m.Pairs {
	case DropFirstOfPair:
		p = p.RemoveConsecutiveStrokes(m.Stroke, true, false)
	case DropRuns:
		p = p.RemoveConsecutiveStrokes(m.Stroke, true, true)
	}
	return p
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n\n")
	b.WriteString(m.listView())
	b.WriteString("\n\n")
	b.WriteString(m.patternView())
	b.WriteString("\n")
	b.WriteString(m.statsView())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(keys))

	return b.String()
}

func (m Model) headerView() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("14")).
		Render("BALI")

	var flags []string
	if m.RemoveSingles {
		flags = append(flags, "singles removed")
	}
	if m.Pairs != KeepPairs {
		flags = append(flags, m.Pairs.String())
	}
	if m.shuffled != nil {
		flags = append(flags, lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render("SHUFFLED"))
	}

	info := fmt.Sprintf(" │ %s %d/%d │ Stroke:%s Level:%s",
		m.Section, min(m.Cursor+1, len(m.patterns())), len(m.patterns()), m.Stroke, m.Level)
	if len(flags) > 0 {
		info += " │ " + strings.Join(flags, ", ")
	}
	return title + info
}

func (m Model) listView() string {
	patterns := m.patterns()
	if len(patterns) == 0 {
		return "No patterns"
	}

	visible := max(3, (m.Height-20)/2)
	top := max(0, min(m.Cursor-visible/2, len(patterns)-visible))

	var lines []string
	for i := top; i < top+visible && i < len(patterns); i++ {
		p := patterns[i]
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		cursor := " "
		if i == m.Cursor {
			cursor = ">"
			style = style.Foreground(lipgloss.Color("11")).Bold(true)
		}
		line := fmt.Sprintf("%s%3d %-8s %s", cursor, p.IndexInFile, p.DrumType(), p.Title)
		if p.Validate() != nil {
			line += " (malformed)"
		}
		lines = append(lines, style.Render(line))
	}
	return strings.Join(lines, "\n")
}

func (m Model) patternView() string {
	p := m.Displayed()
	if p == nil {
		return ""
	}
	if err := p.Validate(); err != nil {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(err.Error())
	}
	strokes := p.Strokes()

	var lines []string
	lines = append(lines, m.renderRow(p, 0, strokes[:1]))
	for beat := 1; beat <= p.BeatLength(); beat++ {
		lo := (beat-1)*drum.QuartersInBeat + 1
		lines = append(lines, m.renderRow(p, beat, strokes[lo:lo+drum.QuartersInBeat]))
	}
	return strings.Join(lines, "\n")
}

// renderRow draws one beat: the three quarters leading up to it and the
// beat itself. Row zero holds only the last stroke of the previous cycle.
func (m Model) renderRow(p *drum.Pattern, beat int, strokes []string) string {
	rowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	if beat%4 == 0 {
		rowStyle = rowStyle.Foreground(lipgloss.Color("14"))
	}
	line := rowStyle.Render(fmt.Sprintf("%2d", beat)) + "│"

	first := beat*drum.QuartersInBeat - len(strokes) + 1
	if beat == 0 {
		first = 0
		line += strings.Repeat("    ", drum.QuartersInBeat-1)
	}
	for i, s := range strokes {
		line += " " + m.renderCell(s, first+i)
	}

	if p.Kind == drum.Transcribed && beat > 0 {
		if next := m.next(); next != nil {
			if tc, err := p.TimeAtBeat(next, beat); err == nil {
				line += "  " + lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(tc.String())
			}
		}
	}
	return line
}

func (m Model) renderCell(stroke string, slot int) string {
	style := lipgloss.NewStyle().Width(3)
	switch {
	case stroke == m.Stroke:
		style = style.Foreground(lipgloss.Color("11")).Bold(true)
	case stroke == drum.Ghost || stroke == drum.RemovedSingle || stroke == drum.RemovedRepeat:
		style = style.Foreground(lipgloss.Color("8"))
	default:
		style = style.Foreground(lipgloss.Color("15"))
	}
	if slot > 0 && m.Level.OnBeat(slot) {
		style = style.Background(lipgloss.Color("4"))
	}
	return style.Render(stroke)
}

func (m Model) statsView() string {
	p := m.Displayed()
	if p == nil || p.Validate() != nil {
		return ""
	}
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	desc, err := drum.Describe(m.Stroke)
	if err != nil {
		desc = "?"
	}
	odd := p.FirstOrThirdBeat(m.Stroke)
	even := p.SecondOrFourthBeat(m.Stroke)

	rows := []string{
		label.Render("Stroke   ") + fmt.Sprintf("%s (%s): %d in pattern, %.1f%% on %s beats",
			m.Stroke, desc, p.BeatsInPattern(m.Stroke), p.PercentOnBeat(m.Stroke, m.Level), m.Level),
		label.Render("Quarters ") + fmt.Sprintf("1st:%d 2nd:%d 3rd:%d 4th:%d", odd.First, even.Second, odd.Third, even.Fourth),
		label.Render("Drum     ") + fmt.Sprintf("%s (inferred %s)", p.DrumType(), p.InferDrumType()),
	}
	if t := p.TeacherName(); t != "" {
		rows = append(rows, label.Render("Teacher  ")+t)
	}
	if p.Comments != "" {
		rows = append(rows, label.Render("Comments ")+p.Comments)
	}
	return strings.Join(rows, "\n")
}
