// Copyright 2026 The Connecty Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"github.com/cpmech/gosl/chk"
)

// BoltGroup holds an ordered set of fastener positions in the local
// (y,z) plane of the connection. Each bolt carries equal unit weight
type BoltGroup struct {
	Y, Z     []float64 // bolt positions
	Diameter float64   // nominal bolt diameter (characteristic size)
}

// NewBoltGroup returns a bolt group from parallel coordinate slices
func NewBoltGroup(y, z []float64, diameter float64) (*BoltGroup, error) {
	if len(y) != len(z) {
		return nil, chk.Err("bolt group: y and z must have the same length. %d != %d", len(y), len(z))
	}
	if len(y) < 1 {
		return nil, chk.Err("bolt group: at least one bolt is required")
	}
	return &BoltGroup{Y: y, Z: z, Diameter: diameter}, nil
}

// Props computes the centroid and second-moment summary of the group.
// The centroid is the arithmetic mean of the positions and the polar
// moment is the sum of squared radial distances from it
func (o *BoltGroup) Props() (*Props, error) {
	n := len(o.Y)
	if n < 1 || len(o.Z) != n {
		return nil, chk.Err("bolt group is empty or inconsistent: ny=%d nz=%d", n, len(o.Z))
	}
	var p Props
	p.N = n
	p.A = float64(n)
	for i := 0; i < n; i++ {
		p.Cy += o.Y[i]
		p.Cz += o.Z[i]
	}
	p.Cy /= float64(n)
	p.Cz /= float64(n)
	for i := 0; i < n; i++ {
		dy := o.Y[i] - p.Cy
		dz := o.Z[i] - p.Cz
		p.Iz += dy * dy
		p.Iy += dz * dz
	}
	p.Ip = p.Iy + p.Iz
	return &p, nil
}
