// Copyright 2026 The Connecty Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ana distributes connection forces over bolt groups and weld
// paths. The applied load is transferred to the group centroid and
// split into two streams: the in-plane components (Fy, Fz, Mx) go
// through either the elastic distributor or the instantaneous-centre
// solver, the out-of-plane components (Fx, My, Mz) through the elastic
// axial distributor or the neutral-axis tension method. The streams
// are merged into one demand record per element
package ana

import (
	"github.com/EdwardAstill/connecty/geom"
	"github.com/EdwardAstill/connecty/load"
)

// split separates the load, already transferred to the centroid, into
// its in-plane and out-of-plane parts
func split(lodC load.Load) (inPlane, outPlane load.Load) {
	inPlane = load.Load{Fy: lodC.Fy, Fz: lodC.Fz, Mx: lodC.Mx, X: lodC.X, Y: lodC.Y, Z: lodC.Z}
	outPlane = load.Load{Fx: lodC.Fx, My: lodC.My, Mz: lodC.Mz, X: lodC.X, Y: lodC.Y, Z: lodC.Z}
	return
}

// Bolts analyses a bolt group under the given load. The in-plane
// stream follows the requested method; out-of-plane effects are
// distributed by the neutral-axis method when a plate outline is given
// and elastically otherwise. naMode selects the neutral-axis placement
// and is ignored when pl is nil; cfg may be nil for the default
// instantaneous-centre controls
func Bolts(bg *geom.BoltGroup, pl *geom.Plate, lod load.Load, method Method, naMode string, cfg *IcrConfig) (*Result, error) {
	props, err := bg.Props()
	if err != nil {
		return nil, geomErr("%v", err)
	}
	lodC := lod.TransferTo(0, props.Cy, props.Cz)
	inPlane, outPlane := split(lodC)

	var res *Result
	switch method {
	case MethodElastic:
		res, err = ElasticBolts(bg, inPlane)
	case MethodICR:
		res, err = IcrBolts(bg, inPlane, cfg)
	default:
		return nil, usageErr("unknown analysis method %v", method)
	}
	if err != nil {
		return nil, err
	}

	if pl != nil {
		tens, err := PlateTension(bg, pl, outPlane, naMode)
		if err != nil {
			return nil, err
		}
		for i := range res.Demands {
			res.Demands[i].N = tens[i]
		}
		return res, nil
	}
	axial, err := ElasticBolts(bg, outPlane)
	if err != nil {
		return nil, err
	}
	for i := range res.Demands {
		res.Demands[i].N = axial.Demands[i].N
	}
	return res, nil
}

// FilletWeld analyses a fillet weld under the given load. The in-plane
// stream follows the requested method; out-of-plane effects are always
// distributed elastically over the weld stations. cfg may be nil for
// the default instantaneous-centre controls
func FilletWeld(w *geom.Weld, lod load.Load, method Method, cfg *IcrConfig) (*Result, error) {
	if w.Kind != geom.Fillet {
		return nil, usageErr("weld kind %q is not a fillet weld", w.Kind)
	}
	props, err := w.Props()
	if err != nil {
		return nil, geomErr("%v", err)
	}
	lodC := lod.TransferTo(0, props.Cy, props.Cz)
	inPlane, outPlane := split(lodC)

	var res *Result
	switch method {
	case MethodElastic:
		res, err = ElasticWeld(w, inPlane)
	case MethodICR:
		res, err = IcrWeld(w, inPlane, cfg)
	default:
		return nil, usageErr("unknown analysis method %v", method)
	}
	if err != nil {
		return nil, err
	}

	axial, err := ElasticWeld(w, outPlane)
	if err != nil {
		return nil, err
	}
	for i := range res.Demands {
		res.Demands[i].N = axial.Demands[i].N
	}
	return res, nil
}
