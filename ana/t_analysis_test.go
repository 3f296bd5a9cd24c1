// Copyright 2026 The Connecty Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/EdwardAstill/connecty/geom"
	"github.com/EdwardAstill/connecty/load"
)

func Test_analysis01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("analysis01. bolts: merged in-plane and tension streams")

	bg, err := geom.NewBoltGroup(
		[]float64{50, 50, -50, -50},
		[]float64{50, -50, 50, -50}, 20)
	if err != nil {
		tst.Errorf("group failed: %v\n", err)
		return
	}
	pl, err := geom.NewPlate(-100, -100, 100, 100)
	if err != nil {
		tst.Errorf("plate failed: %v\n", err)
		return
	}

	lod := load.Load{Fx: 4000, Fy: -1000, Mx: 1e5, My: 1.5e6, Mz: 1.5e6}
	res, err := Bolts(bg, pl, lod, MethodICR, NaConservative, nil)
	if err != nil {
		tst.Errorf("analysis failed: %v\n", err)
		return
	}
	chk.IntAssert(int(res.Method), int(MethodICR))

	// the axial stream carries the neutral-axis result
	chk.Float64(tst, "N bolt (+50,+50)", 1e-8, res.Demands[0].N, 11000)
	chk.Float64(tst, "N bolt (+50,-50)", 1e-8, res.Demands[1].N, 1000)
	chk.Float64(tst, "N bolt (-50,+50)", 1e-8, res.Demands[2].N, 1000)
	chk.Float64(tst, "N bolt (-50,-50)", 1e-15, res.Demands[3].N, 0)

	// the in-plane stream still closes against the applied shear
	var sumVy, sumVz float64
	for _, d := range res.Demands {
		sumVy += d.Vy
		sumVz += d.Vz
	}
	chk.Float64(tst, "ΣVy", 1e-6, sumVy, -1000)
	chk.Float64(tst, "ΣVz", 1e-6, sumVz, 0)

	// an eccentric application point must produce the same demands as
	// the pre-transferred load: at z=+100 the shear adds +1e5 to Mx and
	// the axial force adds +4e5 to My
	lodEcc := load.Load{Fx: 4000, Fy: -1000, My: 1.1e6, Mz: 1.5e6, Z: 100}
	resEcc, err := Bolts(bg, pl, lodEcc, MethodICR, NaConservative, nil)
	if err != nil {
		tst.Errorf("analysis failed: %v\n", err)
		return
	}
	for i := range res.Demands {
		chk.Float64(tst, io.Sf("ecc Vy bolt %d", i), 1e-8, resEcc.Demands[i].Vy, res.Demands[i].Vy)
		chk.Float64(tst, io.Sf("ecc Vz bolt %d", i), 1e-8, resEcc.Demands[i].Vz, res.Demands[i].Vz)
		chk.Float64(tst, io.Sf("ecc N bolt %d", i), 1e-8, resEcc.Demands[i].N, res.Demands[i].N)
	}
}

func Test_analysis02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("analysis02. bolts without a plate: elastic axial stream")

	bg, err := geom.NewBoltGroup(
		[]float64{50, 50, -50, -50},
		[]float64{50, -50, 50, -50}, 20)
	if err != nil {
		tst.Errorf("group failed: %v\n", err)
		return
	}

	// Iy = 4*50² = 10000 so My*dz/Iy = ±10000; the elastic axial stream
	// is signed and never clamped
	lod := load.Load{Fx: 4000, My: 2e6}
	res, err := Bolts(bg, nil, lod, MethodElastic, "", nil)
	if err != nil {
		tst.Errorf("analysis failed: %v\n", err)
		return
	}
	chk.Float64(tst, "N bolt (+50,+50)", 1e-9, res.Demands[0].N, 11000)
	chk.Float64(tst, "N bolt (+50,-50)", 1e-9, res.Demands[1].N, -9000)
	chk.Float64(tst, "N bolt (-50,+50)", 1e-9, res.Demands[2].N, 11000)
	chk.Float64(tst, "N bolt (-50,-50)", 1e-9, res.Demands[3].N, -9000)
}

func Test_analysis03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("analysis03. fillet weld: merged stress streams")

	w, err := geom.FilletWeld(geom.LineWeld(-100, 0, 100, 0), 10, 490)
	if err != nil {
		tst.Errorf("weld failed: %v\n", err)
		return
	}
	t := w.Throat
	A := t * 200.0
	Iz := t * 200.0 * 200.0 * 200.0 / 12.0

	lod := load.Load{Fx: 5000, Fy: -1000, Mz: 1e6}
	res, err := FilletWeld(w, lod, MethodElastic, nil)
	if err != nil {
		tst.Errorf("analysis failed: %v\n", err)
		return
	}
	chk.IntAssert(int(res.Method), int(MethodElastic))
	for i, d := range res.Demands {
		chk.Float64(tst, io.Sf("vy station %d", i), 1e-11, d.Vy, -1000/A)
		chk.Float64(tst, io.Sf("n station %d", i), 1e-9, d.N, 5000/A+1e6*d.Y/Iz)
	}
}

func Test_analysis04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("analysis04. caller contract violations")

	bg, err := geom.NewBoltGroup(
		[]float64{50, -50},
		[]float64{50, -50}, 20)
	if err != nil {
		tst.Errorf("group failed: %v\n", err)
		return
	}

	var ae *Error
	_, err = Bolts(bg, nil, load.Load{Fy: -1000}, Method(99), "", nil)
	if !errors.As(err, &ae) || ae.Kind != KindUsage {
		tst.Errorf("expected a usage error. got: %v\n", err)
		return
	}

	w, err := geom.FilletWeld(geom.LineWeld(-100, 0, 100, 0), 10, 490)
	if err != nil {
		tst.Errorf("weld failed: %v\n", err)
		return
	}
	w.Kind = geom.Pjp
	_, err = FilletWeld(w, load.Load{Fy: -1000}, MethodElastic, nil)
	if !errors.As(err, &ae) || ae.Kind != KindUsage {
		tst.Errorf("expected a usage error. got: %v\n", err)
	}
}
