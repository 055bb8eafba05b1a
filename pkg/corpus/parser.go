package corpus

import (
	"io"
	"strings"

	"github.com/cuthbertlab/bali/pkg/drum"
)

// section accumulates the lines of one record until the blank line that
// closes it.
type section struct {
	lines []string
}

func (s *section) empty() bool { return len(s.lines) == 0 }

func (s *section) add(line string) {
	// Lines past the fourth replace the comment.
	if len(s.lines) == 4 {
		s.lines[3] = line
		return
	}
	s.lines = append(s.lines, line)
}

func (s *section) pattern(kind drum.Kind, index int) *drum.Pattern {
	field := func(i int) string {
		if i < len(s.lines) {
			return s.lines[i]
		}
		return ""
	}
	p := drum.NewPattern(kind, strings.TrimSuffix(field(0), ":"), field(1), field(2))
	p.Comments = field(3)
	p.IndexInFile = index
	return p
}

// ParseLines turns trimmed lines into patterns. A record is up to four
// non-blank lines (title, gong pattern, drum pattern, comment) closed by a
// blank line; blank lines between records are skipped and a record without
// its closing blank line is dropped. Records are returned in file order and
// are not validated.
func ParseLines(lines []string, kind drum.Kind) []*drum.Pattern {
	var (
		patterns []*drum.Pattern
		cur      section
	)
	for _, line := range lines {
		switch {
		case line == "" && cur.empty():
			continue
		case line == "":
			patterns = append(patterns, cur.pattern(kind, len(patterns)))
			cur = section{}
		default:
			cur.add(line)
		}
	}
	return patterns
}

// Parse reads r and parses its lines.
func Parse(r io.Reader, kind drum.Kind) ([]*drum.Pattern, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}
	return ParseLines(lines, kind), nil
}
