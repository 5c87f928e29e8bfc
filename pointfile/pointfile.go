// Package pointfile reads and writes control points stored as plain text.
//
// Each non-blank line holds one point as three comma separated coordinates,
// optionally followed by a trailing comma:
//
//	1.5, 0, -2,
//	3, 1.25, 0
//
// Lines starting with '#' are comments.
package pointfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rtrproject/curve"
	"github.com/spf13/cast"
)

// DefaultScale is the factor point files are usually authored for. Paths are
// drawn in a tenth of world units.
const DefaultScale = 10

var errFieldCount = errors.New("want three coordinates")

// ParseError describes a line that couldn't be parsed.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %q: %s", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Read parses points from r, multiplying every coordinate by scale.
func Read(r io.Reader, scale float64) ([]curve.Point, error) {
	var pts []curve.Point
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		pt, err := parseLine(text)
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
		pts = append(pts, pt.Scale(scale))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading points: %w", err)
	}
	return pts, nil
}

func parseLine(text string) (curve.Point, error) {
	fields := strings.Split(strings.TrimSuffix(text, ","), ",")
	if len(fields) != 3 {
		return curve.Point{}, errFieldCount
	}
	var xyz [3]float64
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			return curve.Point{}, errFieldCount
		}
		v, err := cast.ToFloat64E(f)
		if err != nil {
			return curve.Point{}, err
		}
		xyz[i] = v
	}
	return curve.Pt(xyz[0], xyz[1], xyz[2]), nil
}

// ReadFile is like [Read] but reads from the named file.
func ReadFile(path string, scale float64) ([]curve.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	pts, err := Read(f, scale)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pts, nil
}

// Write writes points to w in the format understood by [Read], without any
// scaling.
func Write(w io.Writer, points []curve.Point) error {
	bw := bufio.NewWriter(w)
	for _, pt := range points {
		if _, err := fmt.Fprintf(bw, "%s, %s, %s,\n",
			cast.ToString(pt.X), cast.ToString(pt.Y), cast.ToString(pt.Z)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
