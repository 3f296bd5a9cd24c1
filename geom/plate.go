// Copyright 2026 The Connecty Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"github.com/cpmech/gosl/chk"
)

// Plate is an axis-aligned bearing plate rectangle in the (y,z) plane,
// specified by two opposing corners. The neutral-axis tension model
// uses its extents to locate compression edges
type Plate struct {
	Ymin, Ymax float64
	Zmin, Zmax float64
}

// NewPlate returns a plate from two opposing corners (any order)
func NewPlate(ya, za, yb, zb float64) (*Plate, error) {
	p := &Plate{Ymin: ya, Ymax: yb, Zmin: za, Zmax: zb}
	if p.Ymin > p.Ymax {
		p.Ymin, p.Ymax = p.Ymax, p.Ymin
	}
	if p.Zmin > p.Zmax {
		p.Zmin, p.Zmax = p.Zmax, p.Zmin
	}
	if p.DepthY() <= 0 || p.DepthZ() <= 0 {
		return nil, chk.Err("plate corners are degenerate: depthY=%g depthZ=%g", p.DepthY(), p.DepthZ())
	}
	return p, nil
}

// DepthY returns the plate depth along y
func (o *Plate) DepthY() float64 { return o.Ymax - o.Ymin }

// DepthZ returns the plate depth along z
func (o *Plate) DepthZ() float64 { return o.Zmax - o.Zmin }
