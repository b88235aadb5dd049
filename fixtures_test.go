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

package fillet_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/fillet/internal/fixture"
	"seehuhn.de/go/fillet/pathvec"
	"seehuhn.de/go/fillet/testcases"
)

func runCase(t *testing.T, tc testcases.TestCase) pathvec.PathVector {
	t.Helper()
	out, err := fixture.Apply(tc)
	require.NoError(t, err)
	return out
}

func TestFixtures(t *testing.T) {
	for category, cases := range testcases.All {
		for _, tc := range cases {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				in := pathvec.FromData(tc.Path)
				out := runCase(t, tc)
				for _, p := range out {
					for _, c := range p.Curves {
						for _, v := range []float64{c.P0.X, c.P0.Y, c.P1.X, c.P1.Y, c.P2.X, c.P2.Y, c.P3.X, c.P3.Y} {
							require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "non-finite coordinate in %v", c)
						}
					}
				}

				nonEmpty := 0
				for i := range in {
					if !in[i].Empty() {
						nonEmpty++
					}
				}
				require.Len(t, out, nonEmpty)

				k := 0
				for i := range in {
					if in[i].Empty() {
						continue
					}
					assert.Equal(t, in[i].Closed, out[k].Closed, "sub-path %d", i)
					for j := 1; j < len(out[k].Curves); j++ {
						prev := out[k].Curves[j-1].Final()
						next := out[k].Curves[j].Initial()
						assert.True(t, pathvec.AreNear(prev, next, 1e-6),
							"sub-path %d: gap before curve %d", i, j)
					}
					k++
				}
			})
		}
	}
}

func TestFixtureFilletArea(t *testing.T) {
	tc := testcases.All["polygon"][0]
	require.Equal(t, "rectangle", tc.Name)

	out := runCase(t, tc)
	r := tc.Corner.Radius
	want := 48*32 - (4-math.Pi)*r*r
	assert.InDelta(t, want, math.Abs(area(out)), 1e-2)
}

// area returns the signed area enclosed by the closed sub-paths of pv.
// Curves are flattened into short line segments.
func area(pv pathvec.PathVector) float64 {
	const n = 256
	var a float64
	for i := range pv {
		p := &pv[i]
		if !p.Closed {
			continue
		}
		for j := range p.CurveCount() {
			c := p.At(j)
			prev := c.Initial()
			for k := 1; k <= n; k++ {
				next := c.PointAt(float64(k) / n)
				a += (prev.X*next.Y - next.X*prev.Y) / 2
				prev = next
			}
		}
	}
	return a
}
