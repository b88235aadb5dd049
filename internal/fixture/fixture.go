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

// Package fixture applies the corner settings of a test case.
package fixture

import (
	"seehuhn.de/go/fillet"
	"seehuhn.de/go/fillet/pathvec"
	"seehuhn.de/go/fillet/testcases"
)

// Params converts the corner settings of a test case into effect settings.
func Params(c testcases.Corner) (fillet.Params, error) {
	params := fillet.DefaultParams()
	mode, err := fillet.ParseNodeSatelliteType(c.Mode)
	if err != nil {
		return fillet.Params{}, err
	}
	params.Mode = mode
	if c.Method != "" {
		if err := params.Method.UnmarshalText([]byte(c.Method)); err != nil {
			return fillet.Params{}, err
		}
	}
	params.Radius = c.Radius
	params.ChamferSteps = max(c.Steps, 1)
	params.Flexible = c.Flexible
	params.UseKnotDistance = !c.UseRadius
	return params, nil
}

// Apply runs the effect on the path of tc and returns the result.
func Apply(tc testcases.TestCase) (pathvec.PathVector, error) {
	params, err := Params(tc.Corner)
	if err != nil {
		return nil, err
	}
	e := fillet.New(nil, params)
	item := &fillet.Item{Path: pathvec.FromData(tc.Path), Transform: tc.CTM}
	if err := e.DoBeforeEffect(item); err != nil {
		return nil, err
	}
	if err := e.UpdateAmount(tc.CTM); err != nil {
		return nil, err
	}
	if err := e.DoBeforeEffect(item); err != nil {
		return nil, err
	}
	return e.DoEffect(item.Path), nil
}
