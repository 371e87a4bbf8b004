package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const unitSquare = `# x y z
0 0 0
1,0,1

0	1	2
1 1 3 42
`

func TestReadRecords(t *testing.T) {
	records, err := readRecords(strings.NewReader(unitSquare))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{
		{0, 0, 0},
		{1, 0, 1},
		{0, 1, 2},
		{1, 1, 3, 42},
	}, records)

	_, err = readRecords(strings.NewReader("0 0 0\n1 x 2\n"))
	assert.EqualError(t, err, `line 2: strconv.ParseFloat: parsing "x": invalid syntax`)
}

func TestParseQuery(t *testing.T) {
	x, y, err := parseQuery("0.5,0.25")
	require.NoError(t, err)
	assert.Equal(t, 0.5, x)
	assert.Equal(t, 0.25, y)

	for _, bad := range []string{"1", "1,2,3", "a,1", "1,b"} {
		_, _, err := parseQuery(bad)
		assert.Error(t, err, bad)
	}
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	opts := options{
		queries: []string{"0.5,0.5", "2,2"},
		indices: true,
	}
	require.NoError(t, run(opts, strings.NewReader(unitSquare), &out, zap.NewNop()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "4 points, 2 triangles, area 1", lines[0])
	assert.Equal(t, "0.5 0.5 1.5", lines[1])
	assert.Equal(t, "2 2 not found", lines[2])
	for _, line := range lines[3:] {
		assert.Len(t, strings.Fields(line), 3)
	}
	assert.Contains(t, out.String(), "42", "external index is reported")
}

func TestRun_Config(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("epsilon: 1e-6\n"), 0o644))

	var out bytes.Buffer
	opts := options{
		configPath: configPath,
		pngPath:    filepath.Join(dir, "mesh.png"),
		scale:      50,
	}
	require.NoError(t, run(opts, strings.NewReader(unitSquare), &out, zap.NewNop()))
	_, err := os.Stat(opts.pngPath)
	assert.NoError(t, err)
}

func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer
	err := run(options{}, strings.NewReader("0 0 0\n1 1 1\n"), &out, zap.NewNop())
	assert.ErrorContains(t, err, "need at least 3 points")

	err = run(options{configPath: filepath.Join(t.TempDir(), "missing.yaml")}, strings.NewReader(unitSquare), &out, zap.NewNop())
	assert.Error(t, err)

	err = run(options{queries: []string{"nope"}}, strings.NewReader(unitSquare), &out, zap.NewNop())
	assert.Error(t, err)
}

func TestRun_Imgcat(t *testing.T) {
	defer func(original func(string, io.Writer) error) { catFile = original }(catFile)

	var catted string
	catFile = func(path string, w io.Writer) error {
		catted = path
		return nil
	}
	opts := options{
		pngPath: filepath.Join(t.TempDir(), "mesh.png"),
		scale:   10,
		imgcat:  true,
	}
	var out bytes.Buffer
	require.NoError(t, run(opts, strings.NewReader(unitSquare), &out, zap.NewNop()))
	assert.Equal(t, opts.pngPath, catted)

	catFile = func(string, io.Writer) error { return errors.New("not a terminal") }
	err := run(opts, strings.NewReader(unitSquare), &out, zap.NewNop())
	assert.EqualError(t, err, "could not print image: not a terminal")
}
