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

// Command fillet rounds or chamfers the corners of a path.
//
// The path is read as JSON from the file given by -in, or from standard
// input.  The result is written as JSON to standard output, and optionally
// as PDF and PNG files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"seehuhn.de/go/fillet"
	"seehuhn.de/go/fillet/pathio"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "fillet:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("fillet", flag.ContinueOnError)
	inName := fs.String("in", "", "input path file (JSON), default stdin")
	paramsName := fs.String("params", "", "effect parameters (YAML, or TOML if the name ends in .toml)")
	sats := fs.String("satellites", "", "node satellites in persisted form")
	radius := fs.Float64("radius", 0, "corner size")
	mode := fs.String("mode", "", "corner type: F, IF, C or IC")
	method := fs.String("method", "", "corner shape: auto, arc or bezier")
	steps := fs.Int("steps", 0, "number of chamfer steps")
	unit := fs.String("unit", "", "unit of the radius")
	useRadius := fs.Bool("use-radius", false, "interpret -radius as a fillet radius")
	flexible := fs.Bool("flexible", false, "interpret -radius as a percentage")
	pdfName := fs.String("pdf", "", "also write the result as PDF")
	pngName := fs.String("png", "", "also write a PNG preview")
	printSats := fs.Bool("print-satellites", false, "print the node satellites to stderr")
	verbose := fs.Bool("v", false, "log warnings to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *verbose {
		fillet.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	params := fillet.DefaultParams()
	if *paramsName != "" {
		var err error
		params, err = pathio.LoadParamsFile(*paramsName)
		if err != nil {
			return err
		}
	}

	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		var err error
		switch f.Name {
		case "radius":
			params.Radius = *radius
		case "mode":
			params.Mode, err = fillet.ParseNodeSatelliteType(*mode)
		case "method":
			err = params.Method.UnmarshalText([]byte(*method))
		case "steps":
			params.ChamferSteps = *steps
		case "unit":
			_, err = fillet.ConvertUnit(1, *unit, "px")
			params.Unit = *unit
		case "use-radius":
			params.UseKnotDistance = !*useRadius
		case "flexible":
			params.Flexible = *flexible
		}
		flagErr = errors.Join(flagErr, err)
	})
	if flagErr != nil {
		return flagErr
	}

	in := stdin
	if *inName != "" {
		f, err := os.Open(*inName)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	pv, err := pathio.ReadJSON(in)
	if err != nil {
		return err
	}

	e := fillet.New(nil, params)
	item := &fillet.Item{Path: pv}
	if *sats != "" {
		if err := e.LoadSatellites(*sats); err != nil {
			return err
		}
	}
	if err := e.DoBeforeEffect(item); err != nil {
		return err
	}
	if *sats == "" && !params.UseKnotDistance {
		// new satellites store knot distances, convert all of them from
		// the radius
		saved := e.Params
		e.Params.ApplyNoRadius, e.Params.ApplyWithRadius = true, true
		e.Params.OnlySelected = false
		err := e.UpdateAmount(item.Transform)
		e.Params = saved
		if err != nil {
			return err
		}
	}
	out := e.DoEffect(item.Path)

	if *printSats {
		fmt.Fprintln(os.Stderr, e.Satellites())
	}
	if err := pathio.WriteJSON(stdout, out); err != nil {
		return err
	}

	pg := pathio.FitPage(out, 8)
	if *pdfName != "" {
		if err := pathio.WritePDF(*pdfName, out, pg); err != nil {
			return err
		}
	}
	if *pngName != "" {
		f, err := os.Create(*pngName)
		if err != nil {
			return err
		}
		if err := pathio.WritePNG(f, out, pg); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}
