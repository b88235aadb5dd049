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

// Command genpdf generates reference images for the corner test cases.
// For every test case it writes the effect output as a PDF file and as a
// PNG preview.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/fillet"
	"seehuhn.de/go/fillet/pathio"
	"seehuhn.de/go/fillet/pathvec"
	"seehuhn.de/go/fillet/testcases"
	"seehuhn.de/go/fillet/internal/fixture"
)

func main() {
	refDir := flag.String("o", "testdata/reference", "output directory")
	flag.Parse()

	fillet.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := os.MkdirAll(*refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := generate(tc, filepath.Join(*refDir, name)); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generate(tc testcases.TestCase, base string) error {
	pv, err := fixture.Apply(tc)
	if err != nil {
		return err
	}
	pg := pathio.Page{Width: tc.Width, Height: tc.Height, CTM: tc.CTM}

	if err := pathio.WritePDF(base+".pdf", pv, pg); err != nil {
		return err
	}

	f, err := os.Create(base + ".png")
	if err != nil {
		return err
	}
	if err := pathio.WritePNG(f, pv, pg); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	// the input path, for side by side comparison
	f, err = os.Create(base + "_input.png")
	if err != nil {
		return err
	}
	defer f.Close()
	return pathio.WritePNG(f, pathvec.FromData(tc.Path), pg)
}
