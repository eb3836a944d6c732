package space

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Parse reads one "x,y,z" point per line from r.
// Surrounding whitespace is trimmed and blank lines are skipped.
// An empty input yields an empty, non-nil PointSet.
func Parse(r io.Reader) (PointSet, error) {
	ps := make(PointSet, 0, 64)
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		p, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		ps = append(ps, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("space: read input: %w", err)
	}

	return ps, nil
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) (PointSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("space: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

func parseLine(line string) (Point, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return Point{}, fmt.Errorf("%w: %q has %d fields, want 3", ErrMalformedLine, line, len(fields))
	}

	var coords [3]uint64
	for i, f := range fields {
		v, err := strconv.ParseUint(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return Point{}, fmt.Errorf("%w: %q: %v", ErrMalformedLine, line, err)
		}
		if v > MaxCoord {
			return Point{}, fmt.Errorf("%w: %d > %d", ErrCoordRange, v, MaxCoord)
		}
		coords[i] = v
	}

	return Point{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}
