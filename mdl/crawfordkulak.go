// Copyright 2026 The Connecty Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// CrawfordKulak implements the empirical fastener shear curve
//  R = Rult·(1 - exp(-μ·Δ/Δult))^λ
//  Reference:
//   [1] Crawford SF and Kulak GL (1971) Eccentrically loaded bolted
//       connections. Journal of the Structural Division, 97(3), 765-783
type CrawfordKulak struct {

	// parameters
	Rult float64 // ultimate element capacity
	Mu   float64 // curve sharpness μ
	Lam  float64 // curve exponent λ
	Dult float64 // ultimate deformation Δult of the critical element
}

// add model to database
func init() {
	allocators["ck"] = func() Model { return new(CrawfordKulak) }
}

// Init initialises model with given parameters; absent parameters keep
// the published constants (μ=10, λ=0.55, Δult=8.64 mm)
func (o *CrawfordKulak) Init(prms utl.Params) (err error) {
	o.Rult, o.Mu, o.Lam, o.Dult = 1.0, 10.0, 0.55, 8.64
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "rult":
			o.Rult = p.V
		case "mu":
			o.Mu = p.V
		case "lam":
			o.Lam = p.V
		case "dult":
			o.Dult = p.V
		default:
			return chk.Err("ck: parameter named %q is incorrect", p.N)
		}
	}
	if o.Dult <= 0 {
		return chk.Err("ck: 'dult' must be positive. dult=%g is invalid", o.Dult)
	}
	if o.Rult <= 0 {
		return chk.Err("ck: 'rult' must be positive. rult=%g is invalid", o.Rult)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o CrawfordKulak) GetPrms() utl.Params {
	return []*utl.P{
		&utl.P{N: "rult", V: 1.0},
		&utl.P{N: "mu", V: 10.0},
		&utl.P{N: "lam", V: 0.55},
		&utl.P{N: "dult", V: 8.64},
	}
}

// Limit returns the ultimate deformation (angle-independent)
func (o CrawfordKulak) Limit(θ float64) float64 {
	return o.Dult
}

// Value computes the shear force at deformation Δ. An unloaded element
// carries no force; the floor on ρ only guards the curve evaluation at
// vanishing but nonzero deformations
func (o CrawfordKulak) Value(Δ, θ float64) float64 {
	if Δ <= 0 {
		return 0
	}
	ρ := Δ / o.Dult
	if ρ < 1e-6 {
		ρ = 1e-6
	}
	if ρ > 1 {
		ρ = 1
	}
	return o.Rult * math.Pow(1.0-math.Exp(-o.Mu*ρ), o.Lam)
}
