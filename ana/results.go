// Copyright 2026 The Connecty Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "math"

// Demand is the per-element demand record: two in-plane components
// (bolt forces or weld stresses) and the signed out-of-plane axial
// component (tension positive). A fresh slice is created per analysis
// call and never shared
type Demand struct {
	Y, Z float64 // element position
	Vy   float64 // in-plane demand, y component
	Vz   float64 // in-plane demand, z component
	N    float64 // axial demand (tension positive)
}

// InPlane returns the resultant in-plane demand magnitude
func (o Demand) InPlane() float64 {
	return math.Hypot(o.Vy, o.Vz)
}

// Resultant returns the magnitude of the full demand vector
func (o Demand) Resultant() float64 {
	return math.Sqrt(o.N*o.N + o.Vy*o.Vy + o.Vz*o.Vz)
}

// Method tags which distributor produced an in-plane result
type Method int

const (
	MethodElastic Method = iota + 1 // closed-form linear superposition
	MethodICR                       // instantaneous-centre redistribution
)

// String returns the method name
func (o Method) String() string {
	switch o {
	case MethodElastic:
		return "elastic"
	case MethodICR:
		return "icr"
	}
	return "unknown"
}

// Result holds the completed demand stream of one analysis call. When
// Method is MethodICR the solved instantaneous-centre coordinates are
// available as diagnostic data
type Result struct {
	Method   Method
	Demands  []Demand
	Icy, Icz float64 // instantaneous centre (MethodICR only)
}

// Peak returns the index and value of the governing (largest resultant)
// demand; idx is -1 for an empty stream
func (o *Result) Peak() (idx int, peak float64) {
	idx = -1
	for i, d := range o.Demands {
		if r := d.Resultant(); idx < 0 || r > peak {
			idx, peak = i, r
		}
	}
	return
}

// MinResultant returns the smallest resultant demand in the stream
func (o *Result) MinResultant() (min float64) {
	for i, d := range o.Demands {
		if r := d.Resultant(); i == 0 || r < min {
			min = r
		}
	}
	return
}
