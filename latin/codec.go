package latin

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads a grid from text: one row per line, blank-separated
// integers, 0 for an empty cell. '#' starts a comment running to end
// of line; blank lines are ignored. Shape and range violations surface
// as ErrNotSquare/ErrSymbolRange, lexical problems as ErrParse.
func Parse(s string) (Grid, error) {
	return ParseReader(strings.NewReader(s))
}

// ParseReader is Parse over an io.Reader.
func ParseReader(r io.Reader) (Grid, error) {
	var (
		rows [][]int
		line string
		no   int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		no++
		line = stripComment(sc.Text())
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		row := make([]int, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return Grid{}, fmt.Errorf("%w: line %d: %q is not an integer", ErrParse, no, f)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return Grid{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(rows) == 0 {
		return Grid{}, fmt.Errorf("%w: no rows", ErrParse)
	}

	return FromRows(rows)
}

// ParseSquare parses like Parse and converts the result with ToSquare,
// so the text must describe a complete, valid Latin square.
func ParseSquare(s string) (Square, error) {
	g, err := Parse(s)
	if err != nil {
		return Square{}, err
	}

	return g.ToSquare()
}

// ParseTransversal reads a transversal from text: one "row col" pair
// per line, with the same comment and blank-line rules as Parse. The
// cell count defines the order.
func ParseTransversal(s string) (Transversal, error) {
	var (
		cells []Cell
		no    int
	)
	sc := bufio.NewScanner(strings.NewReader(s))
	for sc.Scan() {
		no++
		fields := strings.Fields(stripComment(sc.Text()))
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return Transversal{}, fmt.Errorf("%w: line %d: want \"row col\", got %d fields", ErrParse, no, len(fields))
		}
		r, err := strconv.Atoi(fields[0])
		if err != nil {
			return Transversal{}, fmt.Errorf("%w: line %d: %q is not an integer", ErrParse, no, fields[0])
		}
		c, err := strconv.Atoi(fields[1])
		if err != nil {
			return Transversal{}, fmt.Errorf("%w: line %d: %q is not an integer", ErrParse, no, fields[1])
		}
		cells = append(cells, Cell{Row: r, Col: c})
	}
	if len(cells) == 0 {
		return Transversal{}, fmt.Errorf("%w: no cells", ErrParse)
	}

	return NewTransversal(cells)
}

// stripComment drops everything from the first '#' on.
func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i]
	}

	return line
}
