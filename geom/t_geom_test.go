// Copyright 2026 The Connecty Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_bolts01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bolts01. square group properties")

	// 4 bolts at the corners of a 100×100 square
	bg, err := NewBoltGroup(
		[]float64{-50, -50, 50, 50},
		[]float64{-50, 50, 50, -50},
		20,
	)
	if err != nil {
		tst.Errorf("NewBoltGroup failed: %v\n", err)
		return
	}
	p, err := bg.Props()
	if err != nil {
		tst.Errorf("Props failed: %v\n", err)
		return
	}
	if chk.Verbose {
		io.Pf("Cy=%v Cz=%v Ip=%v\n", p.Cy, p.Cz, p.Ip)
	}
	chk.Float64(tst, "N", 1e-17, float64(p.N), 4)
	chk.Float64(tst, "Cy", 1e-15, p.Cy, 0)
	chk.Float64(tst, "Cz", 1e-15, p.Cz, 0)
	chk.Float64(tst, "Iy", 1e-12, p.Iy, 4*50*50)
	chk.Float64(tst, "Iz", 1e-12, p.Iz, 4*50*50)
	chk.Float64(tst, "Ip", 1e-12, p.Ip, 20000)
}

func Test_bolts02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bolts02. centroid invariance under translation")

	bg, _ := RectBoltPattern(0, 0, 3, 2, 80, 60, 20)
	p0, err := bg.Props()
	if err != nil {
		tst.Errorf("Props failed: %v\n", err)
		return
	}

	// translate every bolt by a constant offset
	dy, dz := 123.4, -56.7
	y := make([]float64, len(bg.Y))
	z := make([]float64, len(bg.Z))
	for i := range bg.Y {
		y[i] = bg.Y[i] + dy
		z[i] = bg.Z[i] + dz
	}
	bg2, _ := NewBoltGroup(y, z, 20)
	p1, err := bg2.Props()
	if err != nil {
		tst.Errorf("Props failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Cy", 1e-12, p1.Cy, p0.Cy+dy)
	chk.Float64(tst, "Cz", 1e-12, p1.Cz, p0.Cz+dz)
	chk.Float64(tst, "Iy", 1e-9, p1.Iy, p0.Iy)
	chk.Float64(tst, "Iz", 1e-9, p1.Iz, p0.Iz)
	chk.Float64(tst, "Ip", 1e-9, p1.Ip, p0.Ip)
}

func Test_bolts03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bolts03. empty and inconsistent groups fail")

	if _, err := NewBoltGroup(nil, nil, 20); err == nil {
		tst.Errorf("empty group must fail\n")
		return
	}
	if _, err := NewBoltGroup([]float64{1, 2}, []float64{1}, 20); err == nil {
		tst.Errorf("inconsistent group must fail\n")
		return
	}
}

func Test_patterns01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("patterns01. rectangular and circular patterns")

	bg, err := RectBoltPattern(10, -5, 2, 3, 100, 80, 24)
	if err != nil {
		tst.Errorf("RectBoltPattern failed: %v\n", err)
		return
	}
	p, _ := bg.Props()
	chk.Float64(tst, "n", 1e-17, float64(p.N), 6)
	chk.Float64(tst, "Cy", 1e-12, p.Cy, 10)
	chk.Float64(tst, "Cz", 1e-12, p.Cz, -5)

	cg, err := CircBoltPattern(0, 0, 120, 8, 0, 24)
	if err != nil {
		tst.Errorf("CircBoltPattern failed: %v\n", err)
		return
	}
	pc, _ := cg.Props()
	chk.Float64(tst, "Cy circ", 1e-12, pc.Cy, 0)
	chk.Float64(tst, "Cz circ", 1e-12, pc.Cz, 0)
	chk.Float64(tst, "Ip circ", 1e-9, pc.Ip, 8*120*120)
}
