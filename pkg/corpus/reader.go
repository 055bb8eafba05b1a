// Package corpus loads the taught and transcribed pattern files and parses
// them into drum patterns.
package corpus

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
)

// Default file names, relative to the corpus directory.
const (
	TaughtFile      = "taught_patterns.txt"
	TranscribedFile = "all_patterns.txt"
)

// ReadLines reads r and returns every line with surrounding whitespace
// removed. Blank lines are kept; they delimit sections.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, fault.Wrap(err, fmsg.With("scan lines"), ftag.With(ftag.Internal))
	}
	return lines, nil
}

// ReadFile is ReadLines on the file at path.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fault.Wrap(err,
			fmsg.WithDesc("open corpus file", "Could not open "+path),
			ftag.With(ftag.NotFound),
		)
	}
	defer f.Close()
	lines, err := ReadLines(f)
	if err != nil {
		return nil, fault.Wrap(err, fmsg.With("read "+path))
	}
	return lines, nil
}
