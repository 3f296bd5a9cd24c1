// Copyright 2026 The Connecty Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/EdwardAstill/connecty/geom"
	"github.com/EdwardAstill/connecty/load"
)

// neutral-axis placement modes
const (
	NaConservative = "conservative" // neutral axis at the plate mid-depth
	NaAccurate     = "accurate"     // neutral axis at one sixth of the depth from the compression edge
)

// naRow is one row of bolts sharing a coordinate along the bending depth
type naRow struct {
	y    float64 // row coordinate from the neutral axis, positive toward tension
	idxs []int   // bolt indices in the row
}

// naTension distributes one out-of-plane bending moment over the bolt
// rows by the neutral-axis method. u holds the bolt coordinates along
// the plate depth, umin and umax the plate extent along the same
// direction, and m the moment with tension on the umax side when
// positive. Contributions are signed: rows on the compression side of
// the neutral axis come out negative so that biaxial bending can
// cancel before the final clamp
func naTension(u []float64, umin, umax, m float64, mode string) (tens []float64, err error) {
	depth := umax - umin
	if depth < posTol {
		return nil, geomErr("plate has zero depth for bending: extent [%g,%g]", umin, umax)
	}

	// compression edge and a sign mapping the depth coordinate onto a
	// neutral-axis coordinate positive toward the tension side
	compEdge, s := umin, 1.0
	if m < 0 {
		compEdge, s = umax, -1.0
	}
	var na float64
	switch mode {
	case NaConservative:
		na = (umin + umax) / 2.0
	case NaAccurate:
		na = compEdge + s*depth/6.0
	default:
		return nil, usageErr("unknown neutral-axis mode %q", mode)
	}
	yc := -math.Abs(compEdge - na) // compression resultant location

	// cluster the bolts into rows along the depth
	rowTol := 1e-8 * depth
	var rows []naRow
	for i, ui := range u {
		y := s * (ui - na)
		found := false
		for k := range rows {
			if math.Abs(rows[k].y-y) <= rowTol {
				rows[k].idxs = append(rows[k].idxs, i)
				found = true
				break
			}
		}
		if !found {
			rows = append(rows, naRow{y: y, idxs: []int{i}})
		}
	}

	// farthest tension row sets the linear strain profile
	y1 := 0.0
	for _, r := range rows {
		if r.y > y1 {
			y1 = r.y
		}
	}
	if y1 < posTol {
		return nil, geomErr("no bolt rows on the tension side of the neutral axis: moment %g cannot be resisted", m)
	}

	// moment equilibrium about the compression resultant
	denom := 0.0
	for _, r := range rows {
		if r.y > 0 {
			denom += r.y * (r.y - yc) / y1
		}
	}
	if denom < posTol {
		return nil, geomErr("degenerate neutral-axis lever arms: moment %g cannot be resisted", m)
	}
	T1 := math.Abs(m) / denom

	tens = make([]float64, len(u))
	for _, r := range rows {
		Trow := T1 * r.y / y1
		for _, i := range r.idxs {
			tens[i] = Trow / float64(len(r.idxs))
		}
	}
	return tens, nil
}

// PlateTension distributes the out-of-plane load components (direct
// tension Fx plus the bending moments My and Mz taken at the bolt
// group centroid) across the bolt group by the neutral-axis method,
// with the plate outline setting the compression edges. The two
// bending contributions are combined with their signs and the result
// is clamped to tension-only once, after the combination, so that
// biaxial bending may cancel on shared bolts
func PlateTension(bg *geom.BoltGroup, pl *geom.Plate, lod load.Load, mode string) (tens []float64, err error) {
	if mode != NaConservative && mode != NaAccurate {
		return nil, usageErr("unknown neutral-axis mode %q", mode)
	}
	props, err := bg.Props()
	if err != nil {
		return nil, geomErr("%v", err)
	}
	_, my, mz := lod.MomentsAbout(0, props.Cy, props.Cz)

	tens = make([]float64, props.N)
	if lod.Fx > 0 {
		for i := range tens {
			tens[i] = lod.Fx / float64(props.N)
		}
	}

	// bending about the z axis through the plate: tension on the +z
	// side for positive My, depth along z
	if math.Abs(my) > zeroTol {
		ty, err := naTension(bg.Z, pl.Zmin, pl.Zmax, my, mode)
		if err != nil {
			return nil, err
		}
		for i := range tens {
			tens[i] += ty[i]
		}
	}

	// bending with depth along y: tension on the +y side for positive Mz
	if math.Abs(mz) > zeroTol {
		tz, err := naTension(bg.Y, pl.Ymin, pl.Ymax, mz, mode)
		if err != nil {
			return nil, err
		}
		for i := range tens {
			tens[i] += tz[i]
		}
	}

	// single tension-only clamp after all contributions are combined
	for i := range tens {
		if tens[i] < 0 {
			tens[i] = 0
		}
	}
	return tens, nil
}
