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

// Command export writes the test cases and the corresponding effect output
// to JSON, for comparison with other implementations.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/fillet"
	"seehuhn.de/go/fillet/pathio"
	"seehuhn.de/go/fillet/pathvec"
	"seehuhn.de/go/fillet/testcases"
	"seehuhn.de/go/fillet/internal/fixture"
)

func main() {
	fillet.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(fmt.Errorf("%s_%s: %w", category, tc.Name, err))
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name         string           `json:"name"`
	Width        int              `json:"width"`
	Height       int              `json:"height"`
	Path         []pathio.Segment `json:"path"`
	Mode         string           `json:"mode"`
	Method       string           `json:"method"`
	Radius       float64          `json:"radius"`
	ChamferSteps int              `json:"chamfer_steps"`
	Flexible     bool             `json:"flexible,omitempty"`
	UseRadius    bool             `json:"use_radius,omitempty"`
	CTM          []float64        `json:"ctm,omitempty"`
	Satellites   string           `json:"satellites"`
	Result       []pathio.Segment `json:"result"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	params, err := fixture.Params(tc.Corner)
	if err != nil {
		return jsonTestCase{}, err
	}
	result, err := fixture.Apply(tc)
	if err != nil {
		return jsonTestCase{}, err
	}

	jtc := jsonTestCase{
		Name:         category + "_" + tc.Name,
		Width:        tc.Width,
		Height:       tc.Height,
		Path:         pathio.Segments(pathvec.FromData(tc.Path)),
		Mode:         params.Mode.String(),
		Method:       params.Method.String(),
		Radius:       params.Radius,
		ChamferSteps: params.ChamferSteps,
		Flexible:     params.Flexible,
		UseRadius:    !params.UseKnotDistance,
		Result:       pathio.Segments(result),
	}
	if tc.CTM != (matrix.Matrix{}) {
		jtc.CTM = tc.CTM[:]
	}
	jtc.Satellites, err = satellites(tc)
	if err != nil {
		return jsonTestCase{}, err
	}
	return jtc, nil
}

// satellites returns the persisted node satellites after the effect was
// applied to tc.
func satellites(tc testcases.TestCase) (string, error) {
	params, err := fixture.Params(tc.Corner)
	if err != nil {
		return "", err
	}
	e := fillet.New(nil, params)
	item := &fillet.Item{Path: pathvec.FromData(tc.Path), Transform: tc.CTM}
	if err := e.DoOnApply(item); err != nil {
		return "", err
	}
	return e.Satellites(), nil
}
