package elitecorn

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ParseError points at the line and column (both 1-based) where the input
// stopped looking like a grid of digits.
type ParseError struct {
	Line   int
	Column int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Reason)
}

func parseHeight(c rune) (Height, bool) {
	if c >= '0' && c <= '9' {
		return Height(c - '0'), true
	}
	return -1, false
}

// GridFromReader reads one row per line, with no limit on row length.
// Trailing whitespace is stripped but leading whitespace is not, and blank
// lines at the very end are ignored; a blank line with more rows after it is
// an error.
func GridFromReader(r io.Reader) (*Grid, error) {
	rows := make([][]Height, 0)
	blank := 0
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		txt := strings.TrimRight(scanner.Text(), " \t\r\n")
		if len(txt) == 0 {
			if blank == 0 {
				blank = lineNo
			}
			continue
		}
		if blank > 0 {
			return nil, &ParseError{Line: blank, Column: 1, Reason: "empty line where a row is expected"}
		}
		row := make([]Height, 0, len(txt))
		col := 1
		for _, c := range txt {
			h, ok := parseHeight(c)
			if !ok {
				return nil, &ParseError{Line: lineNo, Column: col, Reason: fmt.Sprintf("%q is not a digit", c)}
			}
			row = append(row, h)
			col++
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading grid")
	}
	return NewGrid(rows)
}

func GridFromString(input string) (*Grid, error) {
	return GridFromReader(strings.NewReader(input))
}

func GetGridFromFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening grid file %s", path)
	}
	defer f.Close()
	g, err := GridFromReader(f)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	return g, nil
}
