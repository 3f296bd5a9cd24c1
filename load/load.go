// Copyright 2026 The Connecty Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package load defines applied force/moment sets and their transfer to
// other points of a rigid connection
//
//  Coordinate system (section local axes):
//   x -- along the member, out of the connection plane
//   y -- vertical in the connection plane (up positive)
//   z -- horizontal in the connection plane (right positive)
//
//  Sign conventions:
//   Fx: + = tension (out-of-plane)
//   Mx: + = CCW torsion when viewed from +x
//   My: + = tension on the +z side
//   Mz: + = tension on the +y side
package load

import "math"

// Load holds six force/moment components acting at a 3-D point. Loads
// are immutable values; analyses never modify their inputs
type Load struct {
	Fx, Fy, Fz float64 // force components
	Mx, My, Mz float64 // moment components about the application point
	X, Y, Z    float64 // application point
}

// Shear returns the in-plane shear resultant
func (o Load) Shear() float64 {
	return math.Hypot(o.Fy, o.Fz)
}

// Norm returns the magnitude of the total force vector
func (o Load) Norm() float64 {
	return math.Sqrt(o.Fx*o.Fx + o.Fy*o.Fy + o.Fz*o.Fz)
}

// MomentsAbout returns the total moments about the point (x,y,z); i.e.
// the applied moments plus the contribution of the force acting through
// the position offset r = application point - target:
//  ΔM = r × F
func (o Load) MomentsAbout(x, y, z float64) (mx, my, mz float64) {
	dx := o.X - x
	dy := o.Y - y
	dz := o.Z - z
	mx = o.Mx + dy*o.Fz - dz*o.Fy
	my = o.My + dz*o.Fx - dx*o.Fz
	mz = o.Mz + dx*o.Fy - dy*o.Fx
	return
}

// TransferTo returns the equivalent load acting at (x,y,z): the net
// force is unchanged and the moments absorb the force eccentricity, so
// the effect on any rigid body is preserved
func (o Load) TransferTo(x, y, z float64) (res Load) {
	res = o
	res.Mx, res.My, res.Mz = o.MomentsAbout(x, y, z)
	res.X, res.Y, res.Z = x, y, z
	return
}
