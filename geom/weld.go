// Copyright 2026 The Connecty Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// weld kinds
const (
	Fillet = "fillet" // fillet weld (effective throat = leg/√2)
	Cjp    = "cjp"    // complete joint penetration
	Pjp    = "pjp"    // partial joint penetration
)

// Segment is one straight piece of a weld path in the (y,z) plane
type Segment struct {
	Y0, Z0 float64 // start point
	Y1, Z1 float64 // end point
}

// Length returns the segment length
func (o Segment) Length() float64 {
	return math.Hypot(o.Y1-o.Y0, o.Z1-o.Z0)
}

// Tangent returns the unit tangent along the segment
func (o Segment) Tangent() (ty, tz float64) {
	l := o.Length()
	if l < 1e-14 {
		return 0, 0
	}
	return (o.Y1 - o.Y0) / l, (o.Z1 - o.Z0) / l
}

// Station is one discretized weld element: a short length of weld with
// its midpoint position and the local path tangent
type Station struct {
	Y, Z   float64 // midpoint position
	Ds     float64 // element length
	Ty, Tz float64 // unit tangent of the weld path at the station
}

// Weld describes a weld group as a path of straight segments with an
// effective throat thickness per unit length
type Weld struct {
	Segs   []Segment // ordered path segments
	Kind   string    // weld kind: Fillet, Cjp or Pjp
	Leg    float64   // fillet leg size w
	Throat float64   // effective throat thickness
	Fexx   float64   // electrode tensile strength
	Ndiv   int       // subdivisions per segment (default 20)
}

// FilletWeld returns a fillet weld along the given path. The effective
// throat is leg/√2
func FilletWeld(segs []Segment, leg, fexx float64) (*Weld, error) {
	if len(segs) < 1 {
		return nil, chk.Err("weld path must contain at least one segment")
	}
	if leg <= 0 {
		return nil, chk.Err("fillet leg size must be positive. leg=%g is invalid", leg)
	}
	return &Weld{Segs: segs, Kind: Fillet, Leg: leg, Throat: leg / math.Sqrt2, Fexx: fexx}, nil
}

// Discretize splits every segment into Ndiv elements and returns the
// stations with midpoint positions, lengths, and local tangents.
// Zero-length segments are skipped
func (o *Weld) Discretize() (stations []Station) {
	ndiv := o.Ndiv
	if ndiv < 1 {
		ndiv = 20
	}
	for _, seg := range o.Segs {
		l := seg.Length()
		if l < 1e-14 {
			continue
		}
		ty, tz := seg.Tangent()
		edges := utl.LinSpace(0, l, ndiv+1)
		for i := 0; i < ndiv; i++ {
			s := (edges[i] + edges[i+1]) / 2.0
			stations = append(stations, Station{
				Y:  seg.Y0 + s*ty,
				Z:  seg.Z0 + s*tz,
				Ds: edges[i+1] - edges[i],
				Ty: ty,
				Tz: tz,
			})
		}
	}
	return
}

// Props computes the area-weighted centroid and second-moment summary.
// Each station contributes its own local second moment (t·ds³/12 about
// the station midpoint, projected by the tangent) in addition to the
// parallel-axis term, so coarse discretizations do not under-estimate
// the inertia
func (o *Weld) Props() (*Props, error) {
	if o.Throat <= 0 {
		return nil, chk.Err("weld throat thickness must be positive. throat=%g is invalid", o.Throat)
	}
	stations := o.Discretize()
	if len(stations) < 1 {
		return nil, chk.Err("weld has no discretized stations; the path is empty or degenerate")
	}
	var p Props
	p.N = len(stations)
	for _, st := range stations {
		da := o.Throat * st.Ds
		p.A += da
		p.L += st.Ds
		p.Cy += st.Y * da
		p.Cz += st.Z * da
	}
	if p.A < 1e-12 {
		return nil, chk.Err("weld has zero area: the group is degenerate")
	}
	p.Cy /= p.A
	p.Cz /= p.A
	for _, st := range stations {
		da := o.Throat * st.Ds
		dy := st.Y - p.Cy
		dz := st.Z - p.Cz
		ilocal := o.Throat * st.Ds * st.Ds * st.Ds / 12.0
		p.Iy += dz*dz*da + ilocal*st.Tz*st.Tz
		p.Iz += dy*dy*da + ilocal*st.Ty*st.Ty
	}
	p.Ip = p.Iy + p.Iz
	return &p, nil
}
