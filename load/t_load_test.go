// Copyright 2026 The Connecty Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package load

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_transfer01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("transfer01. eccentric shear to centroid")

	// vertical shear applied at z = +150 of the target point
	lod := Load{Fy: -1000, Y: 0, Z: 150}

	mx, my, mz := lod.MomentsAbout(0, 0, 0)
	if chk.Verbose {
		io.Pf("Mx=%v My=%v Mz=%v\n", mx, my, mz)
	}
	chk.Float64(tst, "Mx", 1e-15, mx, 150000) // -Fy*dz = 1000*150
	chk.Float64(tst, "My", 1e-15, my, 0)
	chk.Float64(tst, "Mz", 1e-15, mz, 0)
}

func Test_transfer02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("transfer02. axial force eccentric in y and z")

	lod := Load{Fx: 500, Y: 40, Z: -20}

	mx, my, mz := lod.MomentsAbout(0, 0, 0)
	chk.Float64(tst, "Mx", 1e-15, mx, 0)
	chk.Float64(tst, "My", 1e-15, my, 500*-20) // Fx*dz
	chk.Float64(tst, "Mz", 1e-15, mz, -500*40) // -Fx*dy
}

func Test_transfer03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("transfer03. transfer preserves net effect")

	lod := Load{Fx: 100, Fy: -200, Fz: 300, Mx: 4000, My: -5000, Mz: 6000, X: 10, Y: 20, Z: -30}

	// equivalent load at an arbitrary point
	equiv := lod.TransferTo(-5, 7, 11)
	chk.Float64(tst, "Fx", 1e-15, equiv.Fx, lod.Fx)
	chk.Float64(tst, "Fy", 1e-15, equiv.Fy, lod.Fy)
	chk.Float64(tst, "Fz", 1e-15, equiv.Fz, lod.Fz)

	// moments of both about a third point must agree
	mxa, mya, mza := lod.MomentsAbout(1, -2, 3)
	mxb, myb, mzb := equiv.MomentsAbout(1, -2, 3)
	chk.Float64(tst, "Mx@p", 1e-10, mxb, mxa)
	chk.Float64(tst, "My@p", 1e-10, myb, mya)
	chk.Float64(tst, "Mz@p", 1e-10, mzb, mza)

	// transferring back recovers the original moments
	back := equiv.TransferTo(lod.X, lod.Y, lod.Z)
	chk.Float64(tst, "Mx back", 1e-10, back.Mx, lod.Mx)
	chk.Float64(tst, "My back", 1e-10, back.My, lod.My)
	chk.Float64(tst, "Mz back", 1e-10, back.Mz, lod.Mz)
}

func Test_resultants01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("resultants01. shear and total force magnitudes")

	lod := Load{Fx: 2, Fy: 3, Fz: 6}
	chk.Float64(tst, "shear", 1e-15, lod.Shear(), 6.708203932499369)
	chk.Float64(tst, "norm", 1e-15, lod.Norm(), 7)
}
