// Copyright 2026 The Connecty Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/EdwardAstill/connecty/geom"
	"github.com/EdwardAstill/connecty/load"
)

// numerical tolerances shared by the distributors
const (
	zeroTol = 1e-12 // near-zero load components
	posTol  = 1e-9  // positions and distances
)

// ElasticBolts distributes all six load components across the bolt
// group by linear superposition: uniform direct shares, the in-plane
// torsional term Mx·r/Ip, and the out-of-plane bending terms
// My·Δz/Iy + Mz·Δy/Iz. The applied load is first transferred to the
// group centroid
func ElasticBolts(bg *geom.BoltGroup, lod load.Load) (*Result, error) {
	props, err := bg.Props()
	if err != nil {
		return nil, geomErr("%v", err)
	}
	mx, my, mz := lod.MomentsAbout(0, props.Cy, props.Cz)
	if math.Abs(mx) > zeroTol && props.Ip < posTol {
		return nil, geomErr("bolt group has zero polar moment: torsion Mx=%g cannot be distributed", mx)
	}
	if math.Abs(my) > zeroTol && props.Iy < posTol {
		return nil, geomErr("bolt group has zero Iy: bending My=%g cannot be distributed", my)
	}
	if math.Abs(mz) > zeroTol && props.Iz < posTol {
		return nil, geomErr("bolt group has zero Iz: bending Mz=%g cannot be distributed", mz)
	}
	demands := make([]Demand, props.N)
	for i := 0; i < props.N; i++ {
		dy := bg.Y[i] - props.Cy
		dz := bg.Z[i] - props.Cz
		vy := lod.Fy / props.A
		vz := lod.Fz / props.A
		if math.Abs(mx) > zeroTol {
			vy += -mx * dz / props.Ip
			vz += mx * dy / props.Ip
		}
		n := lod.Fx / props.A
		if math.Abs(my) > zeroTol {
			n += my * dz / props.Iy
		}
		if math.Abs(mz) > zeroTol {
			n += mz * dy / props.Iz
		}
		demands[i] = Demand{Y: bg.Y[i], Z: bg.Z[i], Vy: vy, Vz: vz, N: n}
	}
	return &Result{Method: MethodElastic, Demands: demands}, nil
}

// ElasticWeld distributes all six load components across the weld
// stations as stresses: uniform direct shares, the in-plane torsional
// term Mx·r/Ip, and the out-of-plane bending terms My·Δz/Iy + Mz·Δy/Iz
func ElasticWeld(w *geom.Weld, lod load.Load) (*Result, error) {
	props, err := w.Props()
	if err != nil {
		return nil, geomErr("%v", err)
	}
	stations := w.Discretize()
	mx, my, mz := lod.MomentsAbout(0, props.Cy, props.Cz)
	if math.Abs(mx) > zeroTol && props.Ip < posTol {
		return nil, geomErr("weld group has zero polar moment: torsion Mx=%g cannot be distributed", mx)
	}
	if math.Abs(my) > zeroTol && props.Iy < posTol {
		return nil, geomErr("weld group has zero Iy: bending My=%g cannot be distributed", my)
	}
	if math.Abs(mz) > zeroTol && props.Iz < posTol {
		return nil, geomErr("weld group has zero Iz: bending Mz=%g cannot be distributed", mz)
	}
	demands := make([]Demand, len(stations))
	for i, st := range stations {
		dy := st.Y - props.Cy
		dz := st.Z - props.Cz

		// in-plane: direct + torsion (both components together)
		vy := lod.Fy / props.A
		vz := lod.Fz / props.A
		if math.Abs(mx) > zeroTol {
			vy += -mx * dz / props.Ip
			vz += mx * dy / props.Ip
		}

		// out-of-plane: direct axial + bending, summed algebraically
		n := lod.Fx / props.A
		if math.Abs(my) > zeroTol {
			n += my * dz / props.Iy
		}
		if math.Abs(mz) > zeroTol {
			n += mz * dy / props.Iz
		}

		demands[i] = Demand{Y: st.Y, Z: st.Z, Vy: vy, Vz: vz, N: n}
	}
	return &Result{Method: MethodElastic, Demands: demands}, nil
}
