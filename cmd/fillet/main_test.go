// seehuhn.de/go/fillet - rounded and chamfered corners for vector paths
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/fillet/pathio"
	"seehuhn.de/go/fillet/pathvec"
)

const square = `{"path": [
	{"cmd": "M", "pts": [[0, 0]]},
	{"cmd": "L", "pts": [[100, 0]]},
	{"cmd": "L", "pts": [[100, 100]]},
	{"cmd": "L", "pts": [[0, 100]]},
	{"cmd": "Z", "pts": []}
]}`

func runCLI(t *testing.T, args ...string) pathvec.PathVector {
	t.Helper()
	out := &bytes.Buffer{}
	require.NoError(t, run(args, strings.NewReader(square), out))
	pv, err := pathio.ReadJSON(out)
	require.NoError(t, err)
	return pv
}

func TestRun(t *testing.T) {
	pv := runCLI(t, "-radius", "10")
	require.Len(t, pv, 1)
	assert.Len(t, pv[0].Curves, 8) // four lines, four arcs written as cubics

	pv = runCLI(t, "-radius", "10", "-mode", "C", "-steps", "2")
	require.Len(t, pv, 1)
	assert.Len(t, pv[0].Curves, 12)

	pv = runCLI(t, "-satellites", "F,0,0,1,0,0,0,1 @ C,0,0,1,0,10,0,1 @ F,0,0,1,0,0,0,1 @ F,0,0,1,0,0,0,1")
	require.Len(t, pv, 1)
	assert.Len(t, pv[0].Curves, 5)
}

func TestRunFiles(t *testing.T) {
	dir := t.TempDir()
	pdfName := filepath.Join(dir, "out.pdf")
	pngName := filepath.Join(dir, "out.png")
	runCLI(t, "-radius", "5", "-pdf", pdfName, "-png", pngName)
	assert.FileExists(t, pdfName)
	assert.FileExists(t, pngName)
}

func TestRunErrors(t *testing.T) {
	for _, args := range [][]string{
		{"-mode", "Q"},
		{"-method", "spline"},
		{"-unit", "cubit"},
		{"-satellites", "F,0"},
		{"-in", "/nonexistent/path.json"},
	} {
		err := run(args, strings.NewReader(square), &bytes.Buffer{})
		assert.Error(t, err, args)
	}
}

func TestRunParamsFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "params.toml")
	require.NoError(t, os.WriteFile(name, []byte("mode = \"C\"\nradius = 10.0\n"), 0o644))

	pv := runCLI(t, "-params", name)
	require.Len(t, pv, 1)
	assert.Len(t, pv[0].Curves, 8)
	for _, c := range pv[0].Curves {
		assert.Equal(t, pathvec.LineKind, c.Kind)
	}
}

func TestRunRadiusConversion(t *testing.T) {
	const triangle = `{"path": [
		{"cmd": "M", "pts": [[0, 0]]},
		{"cmd": "L", "pts": [[100, 0]]},
		{"cmd": "L", "pts": [[0, 100]]},
		{"cmd": "Z", "pts": []}
	]}`
	name := filepath.Join(t.TempDir(), "params.toml")
	params := "mode = \"C\"\nradius = 10.0\nuse_knot_distance = false\napply_with_radius = false\n"
	require.NoError(t, os.WriteFile(name, []byte(params), 0o644))

	out := &bytes.Buffer{}
	require.NoError(t, run([]string{"-params", name}, strings.NewReader(triangle), out))
	pv, err := pathio.ReadJSON(out)
	require.NoError(t, err)
	require.Len(t, pv, 1)

	// at the 45° corner, a radius of 10 touches the sides 10/tan(22.5°)
	// away from the node
	d := 10 / math.Tan(math.Pi/8)
	first := pv[0].Curves[0]
	assert.InDelta(t, 10, first.Initial().X, 1e-6)
	assert.InDelta(t, 100-d, first.Final().X, 1e-3)
}
