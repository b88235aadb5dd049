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
	"errors"
	"fmt"
)

// ErrUnknownUnit is returned for unit abbreviations which are not
// recognised.
var ErrUnknownUnit = errors.New("unknown unit")

// pxPerUnit gives the size of each supported unit in CSS pixels, at 96
// pixels per inch.
var pxPerUnit = map[string]float64{
	"px": 1,
	"pt": 96.0 / 72.0,
	"pc": 16,
	"mm": 96.0 / 25.4,
	"cm": 96.0 / 2.54,
	"in": 96,
	"ft": 96 * 12,
	"m":  96.0 / 0.0254,
}

// ConvertUnit converts the length v from unit from to unit to.
func ConvertUnit(v float64, from, to string) (float64, error) {
	f, ok := pxPerUnit[from]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownUnit, from)
	}
	t, ok := pxPerUnit[to]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownUnit, to)
	}
	if from == to {
		return v, nil
	}
	return v * f / t, nil
}
