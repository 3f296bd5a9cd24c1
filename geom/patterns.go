// Copyright 2026 The Connecty Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// RectBoltPattern returns an nrow×ncol bolt grid centred at (cy,cz)
// with row spacing sy (along y) and column spacing sz (along z)
func RectBoltPattern(cy, cz float64, nrow, ncol int, sy, sz, diameter float64) (*BoltGroup, error) {
	if nrow < 1 || ncol < 1 {
		return nil, chk.Err("bolt pattern needs nrow ≥ 1 and ncol ≥ 1. nrow=%d ncol=%d", nrow, ncol)
	}
	n := nrow * ncol
	y := make([]float64, 0, n)
	z := make([]float64, 0, n)
	for i := 0; i < nrow; i++ {
		yi := cy + (float64(i)-float64(nrow-1)/2.0)*sy
		for j := 0; j < ncol; j++ {
			zj := cz + (float64(j)-float64(ncol-1)/2.0)*sz
			y = append(y, yi)
			z = append(z, zj)
		}
	}
	return NewBoltGroup(y, z, diameter)
}

// CircBoltPattern returns n bolts equally spaced on a circle of the
// given radius centred at (cy,cz), starting at angle α0 (radians)
func CircBoltPattern(cy, cz, radius float64, n int, α0, diameter float64) (*BoltGroup, error) {
	if n < 1 {
		return nil, chk.Err("bolt pattern needs n ≥ 1. n=%d", n)
	}
	if radius <= 0 {
		return nil, chk.Err("bolt circle radius must be positive. radius=%g", radius)
	}
	y := make([]float64, n)
	z := make([]float64, n)
	for i := 0; i < n; i++ {
		α := α0 + 2.0*math.Pi*float64(i)/float64(n)
		y[i] = cy + radius*math.Sin(α)
		z[i] = cz + radius*math.Cos(α)
	}
	return NewBoltGroup(y, z, diameter)
}

// LineWeld returns a single-segment weld path from (ya,za) to (yb,zb)
func LineWeld(ya, za, yb, zb float64) []Segment {
	return []Segment{{Y0: ya, Z0: za, Y1: yb, Z1: zb}}
}

// RectWeldPath returns a closed rectangular weld path of height h
// (along y) and width b (along z) centred at (cy,cz), traced CCW
func RectWeldPath(cy, cz, h, b float64) []Segment {
	y0, y1 := cy-h/2.0, cy+h/2.0
	z0, z1 := cz-b/2.0, cz+b/2.0
	return []Segment{
		{Y0: y0, Z0: z0, Y1: y0, Z1: z1},
		{Y0: y0, Z0: z1, Y1: y1, Z1: z1},
		{Y0: y1, Z0: z1, Y1: y1, Z1: z0},
		{Y0: y1, Z0: z0, Y1: y0, Z1: z0},
	}
}

// CircleWeld returns a closed circular weld path approximated by n
// straight chords around centre (cy,cz)
func CircleWeld(cy, cz, radius float64, n int) []Segment {
	if n < 3 {
		n = 36
	}
	segs := make([]Segment, n)
	for i := 0; i < n; i++ {
		αa := 2.0 * math.Pi * float64(i) / float64(n)
		αb := 2.0 * math.Pi * float64(i+1) / float64(n)
		segs[i] = Segment{
			Y0: cy + radius*math.Sin(αa), Z0: cz + radius*math.Cos(αa),
			Y1: cy + radius*math.Sin(αb), Z1: cz + radius*math.Cos(αb),
		}
	}
	return segs
}
