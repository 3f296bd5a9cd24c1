// Copyright 2026 The Connecty Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geom defines connector element groups (bolt patterns and weld
// paths), plates, and their derived geometric properties
package geom

// Props holds the derived geometric quantities of an element group.
// Props values are read-only summaries; they are recomputed from the
// group and never mutated in place
type Props struct {
	N      int     // number of elements (bolts) or stations (welds)
	A      float64 // total weight: bolt count, or throat area for welds
	L      float64 // total weld length (welds only)
	Cy, Cz float64 // centroid
	Iy     float64 // second moment about y: Σ Δz²·dA
	Iz     float64 // second moment about z: Σ Δy²·dA
	Ip     float64 // polar moment: Iy + Iz
}
