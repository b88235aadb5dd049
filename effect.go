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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/fillet/pathvec"
)

// ErrNotShape is returned when the effect is applied to an item without a
// path, for example a group.
var ErrNotShape = errors.New("fillet/chamfer can only be applied to shapes")

// Params are the user settings of an [Effect].
type Params struct {
	// Unit is the unit of Radius, unless Flexible is set.
	Unit string `yaml:"unit" toml:"unit"`

	Method Method            `yaml:"method" toml:"method"`
	Mode   NodeSatelliteType `yaml:"mode" toml:"mode"`

	// Radius is the corner size.  If Flexible is set, it is a percentage
	// of the adjacent curves.
	Radius       float64 `yaml:"radius" toml:"radius"`
	ChamferSteps int     `yaml:"chamfer_steps" toml:"chamfer_steps"`
	Flexible     bool    `yaml:"flexible" toml:"flexible"`

	OnlySelected    bool `yaml:"only_selected" toml:"only_selected"`
	UseKnotDistance bool `yaml:"use_knot_distance" toml:"use_knot_distance"`
	HideKnots       bool `yaml:"hide_knots" toml:"hide_knots"`
	ApplyNoRadius   bool `yaml:"apply_no_radius" toml:"apply_no_radius"`
	ApplyWithRadius bool `yaml:"apply_with_radius" toml:"apply_with_radius"`
}

// DefaultParams returns the settings of a newly created effect.
func DefaultParams() Params {
	return Params{
		Unit:            "px",
		Method:          MethodAuto,
		Mode:            Fillet,
		ChamferSteps:    1,
		UseKnotDistance: true,
		ApplyNoRadius:   true,
		ApplyWithRadius: true,
	}
}

// Host gives access to the document an effect is used in.
type Host interface {
	// DocumentScale returns the number of user units per document unit.
	DocumentScale() float64

	// DocumentUnit returns the abbreviation of the document unit.
	DocumentUnit() string

	// IsNodeSelected reports whether the node at p is selected in the
	// editor.
	IsNodeSelected(p vec.Vec2) bool
}

// Item is a document object the effect is applied to.
type Item struct {
	// Path is the shape of the item.  It is nil for items which are not
	// shapes.
	Path pathvec.PathVector

	// Transform maps item coordinates to the parent coordinates.  The zero
	// value is treated as the identity.
	Transform matrix.Matrix

	// Rect is set if the item is a rectangle.
	Rect *RoundedRect
}

// RoundedRect is an axis-aligned rectangle with optional rounded corners.
type RoundedRect struct {
	X, Y, Width, Height float64
	RX, RY              float64
}

// shape returns the path of the item.
func (item *Item) shape() pathvec.PathVector {
	if item.Path == nil && item.Rect != nil {
		return item.Rect.Path()
	}
	return item.Path
}

// Path returns the outline of the rectangle, without rounded corners.
func (r *RoundedRect) Path() pathvec.PathVector {
	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.Width, r.Y+r.Height
	p := pathvec.NewPath(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
	return pathvec.PathVector{*p}
}

// Effect is the fillet/chamfer path effect.  The zero value is not usable;
// use [New] to create an Effect.
//
// An Effect is not safe for concurrent use.
type Effect struct {
	Params Params

	host  Host
	store *PathVectorNodeSatellites

	loaded     NodeSatellites // satellites read from the persisted form
	isLoad     bool
	adjustPath bool
}

// New returns an effect with the given settings.
func New(host Host, params Params) *Effect {
	return &Effect{
		Params: params,
		host:   host,
	}
}

// LoadSatellites restores the satellites from their persisted form.  They
// are matched to the path on the next call to DoBeforeEffect.
func (e *Effect) LoadSatellites(str string) error {
	sats, err := ParseNodeSatellites(str)
	if err != nil {
		return fmt.Errorf("loading satellites: %w", err)
	}
	e.loaded = sats
	e.isLoad = true
	e.store = nil
	return nil
}

// Satellites returns the persisted form of the current satellites.
func (e *Effect) Satellites() string {
	return FormatNodeSatellites(e.data())
}

// NodeSatellites returns a copy of the current satellites.
func (e *Effect) NodeSatellites() NodeSatellites {
	return e.data().Clone()
}

// data returns the current satellites.
func (e *Effect) data() NodeSatellites {
	if e.store != nil {
		return e.store.sats
	}
	return e.loaded
}

// AdjustForNewPath requests that the satellites are matched to a changed
// path on the next call to DoBeforeEffect.
func (e *Effect) AdjustForNewPath() {
	e.adjustPath = true
}

// documentScale returns the host's document scale, or 1 without host.
func (e *Effect) documentScale() float64 {
	if e.host == nil {
		return 1
	}
	if s := e.host.DocumentScale(); s > 0 {
		return s
	}
	return 1
}

// power returns the corner size for new satellites, converted from the
// configured unit into user units of the item.
func (e *Effect) power(radius float64, transform matrix.Matrix) (float64, error) {
	if e.Params.Flexible {
		return radius, nil
	}
	px, err := ConvertUnit(radius, e.Params.Unit, "px")
	if err != nil {
		return 0, err
	}
	return px / e.documentScale() * inverseExpansion(transform), nil
}

// defaultSatellite returns the satellite used for new nodes.
func (e *Effect) defaultSatellite(amount float64) NodeSatellite {
	s := NewNodeSatellite(e.Params.Mode)
	s.SetSteps(e.Params.ChamferSteps)
	s.SetAmount(amount)
	s.IsTime = e.Params.Flexible
	s.HasMirror = true
	s.Hidden = e.Params.HideKnots
	return s
}

// DoOnApply initialises the satellites when the effect is added to item.
//
// Rounded corners of rectangles are removed from the item, and their
// radius becomes the radius of the effect.
func (e *Effect) DoOnApply(item *Item) error {
	if item == nil || (item.Path == nil && item.Rect == nil) {
		Logger().Warn("fillet/chamfer applied to an item which is not a shape")
		return ErrNotShape
	}

	pv := item.shape().ToCubics()
	radius := e.Params.Radius
	if r := item.Rect; r != nil {
		if a := max(r.RX, r.RY); a != 0 {
			r.RX, r.RY = 0, 0
			pv = r.Path()
			item.Path = pv
			a /= e.documentScale()
			if e.host != nil && e.host.DocumentUnit() != "" {
				e.Params.Unit = e.host.DocumentUnit()
			}
			e.Params.Flexible = false
			e.Params.Radius = a
			radius = a
		}
	}

	power, err := e.power(radius, item.Transform)
	if err != nil {
		return fmt.Errorf("applying fillet/chamfer: %w", err)
	}

	if e.store == nil {
		e.store = &PathVectorNodeSatellites{}
	}
	e.store.RecalculateForNewPathVector(pv, e.defaultSatellite(power))
	return nil
}

// DoBeforeEffect synchronises the satellites with the current path of
// item.  It must be called before every call to DoEffect.
func (e *Effect) DoBeforeEffect(item *Item) error {
	if item == nil || (item.Path == nil && item.Rect == nil) {
		Logger().Warn("fillet/chamfer applied to an item which is not a shape")
		return ErrNotShape
	}

	sats := e.data().Clone()
	if len(sats) == 0 {
		if err := e.DoOnApply(item); err != nil {
			return err
		}
		sats = e.data().Clone()
	}
	pv := item.shape().ToCubics()

	for i := range sats {
		if i >= len(pv) {
			// more satellite rows than sub-paths, for example after
			// paths were combined
			break
		}
		path := &pv[i]
		curves := path.CurveCount()
		for j := range sats[i] {
			if j >= curves {
				break
			}
			s := &sats[i][j]
			c := path.At(j)
			if s.IsTime != e.Params.Flexible {
				s.IsTime = e.Params.Flexible
				if s.IsTime {
					s.Amount = TimeAtArcLength(s.Amount, c)
				} else {
					s.Amount = ArcLengthAt(s.Amount, c)
				}
			}
			s.Hidden = e.Params.HideKnots
			if e.Params.OnlySelected && e.host != nil && e.host.IsNodeSelected(c.Initial()) {
				s.Selected = true
			}
		}
		if !path.Closed && len(sats[i]) > 0 {
			sats[i][0].Amount = 0
			sats[i][len(sats[i])-1].Amount = 0
		}
	}

	if e.store == nil {
		e.store = &PathVectorNodeSatellites{}
	}
	if e.isLoad || e.adjustPath {
		power := e.Params.Radius
		if !e.Params.Flexible {
			px, err := ConvertUnit(power, e.Params.Unit, "px")
			if err != nil {
				return fmt.Errorf("preparing fillet/chamfer: %w", err)
			}
			power = px / e.documentScale()
		}
		e.isLoad = false
		e.adjustPath = false

		e.store.SetNodeSatellites(sats)
		e.store.RecalculateForNewPathVector(pv, e.defaultSatellite(power))
		e.loaded = nil
	} else {
		e.store.SetPathVector(pv)
		e.store.SetNodeSatellites(sats)
	}
	return nil
}

// DoEffect returns the path with all corners replaced.  If no satellites
// are available, the input is returned unchanged.
func (e *Effect) DoEffect(in pathvec.PathVector) pathvec.PathVector {
	if e.store == nil {
		Logger().Warn("fillet/chamfer: no node satellites", "subpaths", len(in))
		return in
	}
	return ApplyCorners(e.store.pathv, e.store.sats, e.Params.Method)
}

// syncSelection updates the selection flags from the host.
func (e *Effect) syncSelection() {
	if e.host == nil {
		e.store.SyncSelection(false, nil)
		return
	}
	e.store.SyncSelection(e.Params.OnlySelected, e.host.IsNodeSelected)
}

// UpdateAmount applies the current radius to the satellites.  The item
// transform is used to convert the radius into item coordinates.
func (e *Effect) UpdateAmount(transform matrix.Matrix) error {
	if e.store == nil {
		return nil
	}
	e.syncSelection()
	power, err := e.power(e.Params.Radius, transform)
	if err != nil {
		return fmt.Errorf("updating radius: %w", err)
	}
	e.store.UpdateAmount(power, e.Params.ApplyNoRadius, e.Params.ApplyWithRadius,
		e.Params.OnlySelected, e.Params.UseKnotDistance, e.Params.Flexible)
	return nil
}

// UpdateChamferSteps applies the current number of chamfer steps to the
// satellites.
func (e *Effect) UpdateChamferSteps() {
	if e.store == nil {
		return
	}
	e.syncSelection()
	e.store.UpdateSteps(e.Params.ChamferSteps, e.Params.ApplyNoRadius,
		e.Params.ApplyWithRadius, e.Params.OnlySelected)
}

// UpdateNodeSatelliteType changes the corner type of the satellites and
// makes t the mode for new nodes.
func (e *Effect) UpdateNodeSatelliteType(t NodeSatelliteType) {
	if e.store == nil {
		return
	}
	e.Params.Mode = t
	e.syncSelection()
	e.store.UpdateNodeSatelliteType(t, e.Params.ApplyNoRadius,
		e.Params.ApplyWithRadius, e.Params.OnlySelected)
}

// SetUnit changes the unit of the radius.  Amounts which are stored as
// lengths are converted to the new unit.
func (e *Effect) SetUnit(unit string) error {
	if _, err := ConvertUnit(0, unit, "px"); err != nil {
		return err
	}
	old := e.Params.Unit
	e.Params.Unit = unit
	if e.store == nil || e.Params.Flexible || old == unit {
		return nil
	}
	return e.store.ConvertUnit(old, unit, e.Params.ApplyNoRadius, e.Params.ApplyWithRadius)
}

// inverseExpansion returns the mean of the horizontal and vertical
// expansion of the inverse of m.
func inverseExpansion(m matrix.Matrix) float64 {
	if m == (matrix.Matrix{}) {
		return 1
	}
	det := m[0]*m[3] - m[1]*m[2]
	if det == 0 {
		return 1
	}
	// rows of the inverse are (m3, -m1)/det and (-m2, m0)/det
	ex := math.Hypot(m[3], m[1]) / math.Abs(det)
	ey := math.Hypot(m[2], m[0]) / math.Abs(det)
	return (ex + ey) / 2
}
