package pointfile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rtrproject/curve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	const input = `# control points
0.5, 1, -2,
3,4,5

  -1.25 , 0 , 1e-1
`
	pts, err := Read(strings.NewReader(input), 1)
	require.NoError(t, err)
	assert.Equal(t, []curve.Point{
		curve.Pt(0.5, 1, -2),
		curve.Pt(3, 4, 5),
		curve.Pt(-1.25, 0, 0.1),
	}, pts)
}

func TestReadScale(t *testing.T) {
	pts, err := Read(strings.NewReader("1, -2, 0.5,\n"), DefaultScale)
	require.NoError(t, err)
	require.Len(t, pts, 1)
	assert.InDelta(t, 10, pts[0].X, 1e-12)
	assert.InDelta(t, -20, pts[0].Y, 1e-12)
	assert.InDelta(t, 5, pts[0].Z, 1e-12)
}

func TestReadEmpty(t *testing.T) {
	pts, err := Read(strings.NewReader("\n# nothing here\n"), 1)
	require.NoError(t, err)
	assert.Empty(t, pts)
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{"too few", "1, 2,\n", 1},
		{"too many", "0, 0, 0\n1, 2, 3, 4\n", 2},
		{"empty field", "1, , 3\n", 1},
		{"not a number", "0, 0, 0\n\n1, two, 3\n", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input), 1)
			require.Error(t, err)
			var perr *ParseError
			require.True(t, errors.As(err, &perr), "got %T, want *ParseError", err)
			assert.Equal(t, tt.line, perr.Line)
			assert.Contains(t, err.Error(), perr.Text)
		})
	}
}

func TestWriteRoundTrip(t *testing.T) {
	want := []curve.Point{
		curve.Pt(0, 0, 0),
		curve.Pt(1.0/3.0, -2.5, 1e10),
		curve.Pt(-0.1, 42, 7),
	}
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, want))
	assert.True(t, strings.HasPrefix(buf.String(), "0, 0, 0,\n"), buf.String())

	got, err := Read(&buf, 1)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "path.txt")
	require.NoError(t, os.WriteFile(path, []byte("1, 2, 3,\n4, 5, 6,\n"), 0o644))

	pts, err := ReadFile(path, 2)
	require.NoError(t, err)
	assert.Equal(t, []curve.Point{curve.Pt(2, 4, 6), curve.Pt(8, 10, 12)}, pts)

	_, err = ReadFile(filepath.Join(dir, "missing.txt"), 1)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("x, y, z\n"), 0o644))
	_, err = ReadFile(bad, 1)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, err.Error(), bad)
}
