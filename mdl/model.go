// Copyright 2026 The Connecty Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mdl implements force-deformation laws for connector elements.
// The instantaneous-centre solver is parameterized by these laws: the
// Crawford-Kulak curve for fastener shear and the AISC directional
// curve for fillet welds
package mdl

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Model defines the interface for force-deformation laws
//  Limit returns the ultimate deformation Δu for the angle θ [deg]
//  between the local force direction and the weld path tangent
//  (fastener laws ignore θ)
//  Value returns the force (fasteners) or stress (welds) magnitude at
//  deformation Δ and angle θ [deg]
type Model interface {
	Init(prms utl.Params) error // initialises model parameters
	GetPrms() utl.Params        // gets (an example) of parameters
	Limit(θ float64) float64    // ultimate deformation
	Value(Δ, θ float64) float64 // force/stress magnitude
}

// New returns a new force-deformation model
func New(name string) (Model, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'mdl' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models; name => allocator
var allocators = map[string]func() Model{}
