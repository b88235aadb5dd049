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

package fillet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertUnit(t *testing.T) {
	cases := []struct {
		v        float64
		from, to string
		want     float64
	}{
		{1, "in", "px", 96},
		{72, "pt", "in", 1},
		{10, "mm", "cm", 1},
		{1, "pc", "pt", 12},
		{1, "ft", "in", 12},
		{3, "px", "px", 3},
	}
	for _, tc := range cases {
		got, err := ConvertUnit(tc.v, tc.from, tc.to)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got, 1e-9, "%g %s -> %s", tc.v, tc.from, tc.to)
	}

	_, err := ConvertUnit(1, "furlong", "px")
	assert.ErrorIs(t, err, ErrUnknownUnit)
	_, err = ConvertUnit(1, "px", "")
	assert.ErrorIs(t, err, ErrUnknownUnit)
}
