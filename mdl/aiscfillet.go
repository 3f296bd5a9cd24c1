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

// AiscFillet implements the AISC directional load-deformation curve for
// fillet welds
//  f  = 0.60·Fexx·kds(θ)·[p·(1.9 - 0.9·p)]^0.3   with p = Δ/Δm(θ)
//  Δm = 0.209·(θ+2)^(-0.32)·w
//  Δu = min(0.17·w, 1.087·(θ+6)^(-0.65)·w)
//  θ in degrees between the local force direction and the weld tangent
type AiscFillet struct {

	// parameters
	Leg  float64 // leg size w
	Fexx float64 // electrode tensile strength
}

// add model to database
func init() {
	allocators["aiscfillet"] = func() Model { return new(AiscFillet) }
}

// Init initialises model. 'leg' and 'fexx' are required
func (o *AiscFillet) Init(prms utl.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "leg":
			o.Leg = p.V
		case "fexx":
			o.Fexx = p.V
		default:
			return chk.Err("aiscfillet: parameter named %q is incorrect", p.N)
		}
	}
	if o.Leg <= 0 {
		return chk.Err("aiscfillet: 'leg' must be positive. leg=%g is invalid", o.Leg)
	}
	if o.Fexx <= 0 {
		return chk.Err("aiscfillet: 'fexx' must be positive. fexx=%g is invalid", o.Fexx)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o AiscFillet) GetPrms() utl.Params {
	return []*utl.P{
		&utl.P{N: "leg", V: 8.0},
		&utl.P{N: "fexx", V: 490.0},
	}
}

// Limit returns the ultimate deformation Δu(θ)
func (o AiscFillet) Limit(θ float64) float64 {
	return math.Min(0.17*o.Leg, 1.087*math.Pow(θ+6.0, -0.65)*o.Leg)
}

// Dm returns the deformation Δm(θ) at maximum stress
func (o AiscFillet) Dm(θ float64) float64 {
	return 0.209 * math.Pow(θ+2.0, -0.32) * o.Leg
}

// Value computes the weld stress at deformation Δ and angle θ
func (o AiscFillet) Value(Δ, θ float64) float64 {
	Δu := o.Limit(θ)
	if Δ > Δu {
		Δ = Δu
	}
	p := Δ / o.Dm(θ)
	if p < 1e-6 {
		p = 1e-6
	}
	if p > 2.1 {
		p = 2.1
	}
	term := p * (1.9 - 0.9*p)
	if term < 1e-6 {
		term = 1e-6
	}
	return 0.60 * o.Fexx * Kds(θ) * math.Pow(term, 0.3)
}

// Kds returns the AISC directional strength factor for the angle θ
// [deg] between the force direction and the weld axis
//  kds = 1.0 + 0.5·sin^1.5(θ)
func Kds(θ float64) float64 {
	s := math.Sin(θ * math.Pi / 180.0)
	if s < 0 {
		s = 0
	}
	return 1.0 + 0.5*math.Pow(s, 1.5)
}
