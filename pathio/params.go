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

package pathio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/fillet"
)

// LoadParams reads effect settings from a YAML document.  Settings missing
// from the document keep their default values, unknown keys are an error.
// An empty document gives the defaults.
func LoadParams(r io.Reader) (fillet.Params, error) {
	params := fillet.DefaultParams()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&params); err != nil && !errors.Is(err, io.EOF) {
		return fillet.Params{}, fmt.Errorf("reading parameters: %w", err)
	}
	return checkParams(params)
}

// LoadParamsTOML is like [LoadParams], but reads a TOML document.
func LoadParamsTOML(r io.Reader) (fillet.Params, error) {
	params := fillet.DefaultParams()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&params); err != nil {
		return fillet.Params{}, fmt.Errorf("reading parameters: %w", err)
	}
	return checkParams(params)
}

// LoadParamsFile reads effect settings from a file.  Files ending in
// ".toml" are read as TOML, all others as YAML.
func LoadParamsFile(name string) (fillet.Params, error) {
	f, err := os.Open(name)
	if err != nil {
		return fillet.Params{}, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(name), ".toml") {
		return LoadParamsTOML(f)
	}
	return LoadParams(f)
}

func checkParams(params fillet.Params) (fillet.Params, error) {
	if _, err := fillet.ConvertUnit(1, params.Unit, "px"); err != nil {
		return fillet.Params{}, fmt.Errorf("reading parameters: %w", err)
	}
	return params, nil
}

// SaveParams writes effect settings as a YAML document.
func SaveParams(w io.Writer, params fillet.Params) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(params); err != nil {
		return err
	}
	return enc.Close()
}

// SaveParamsTOML writes effect settings as a TOML document.
func SaveParamsTOML(w io.Writer, params fillet.Params) error {
	return toml.NewEncoder(w).Encode(params)
}
