// Copyright 2026 The Connecty Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/utl"

	"github.com/EdwardAstill/connecty/geom"
	"github.com/EdwardAstill/connecty/load"
	"github.com/EdwardAstill/connecty/mdl"
)

// IcrConfig holds the search controls of the instantaneous-centre
// solver. The zero value is not usable; pass nil to the solver entry
// points to use DefaultIcrConfig
type IcrConfig struct {
	MaxIt int        // bisection iteration cap of the residual search
	Tol   float64    // relative tolerance on the moment/shear ratio residual
	Ncand int        // coarse scan candidates along the search line
	Prms  utl.Params // force-deformation law parameter overrides
}

// DefaultIcrConfig returns the default search controls
func DefaultIcrConfig() *IcrConfig {
	return &IcrConfig{MaxIt: 100, Tol: 1e-6, Ncand: 60}
}

// icrElement is the solver-internal view of one connector element
type icrElement struct {
	y, z   float64 // position
	w      float64 // resisting weight: 1 for bolts, throat·ds for welds
	ty, tz float64 // weld path tangent (zero for bolts)
}

// icrTrial holds the transient state of one candidate centre; it is
// discarded once the search converges
type icrTrial struct {
	icy, icz float64   // trial centre
	ratio    float64   // moment/shear ratio of the trial force field
	pbase    float64   // magnitude of the summed trial force vector
	val      []float64 // law value per element (force or stress)
	diry     []float64 // force direction per element (aligned with the load)
	dirz     []float64
	θ        []float64 // local force angle per element [deg]
}

// icrSolver performs the instantaneous-centre equilibrium search: the
// group rotates rigidly about a trial centre on the line through the
// centroid perpendicular to the applied shear resultant; the nonlinear
// law shapes the force field, a single rescale pins the force
// resultant, and a 1-D search drives the torsion residual to zero.
// The search line is a documented approximation: geometries exist
// where the true equilibrium centre is off this line. The rescale is a
// scalar, so it pins the magnitude of the summed force but not its
// direction: when the applied shear is skewed relative to the group
// axes the force closure can be off by a few percent even though the
// torsion closes to tolerance (the flip guard in evaluate only rules
// out an opposing resultant)
type icrSolver struct {
	elems    []icrElement
	model    mdl.Model
	cfg      *IcrConfig
	cy, cz   float64 // group centroid
	fy, fz   float64 // applied shear
	mx       float64 // applied torsion at the centroid
	ptot     float64 // shear resultant
	py, pz   float64 // unit vector perpendicular to the shear
	sgn      float64 // search side selector from the torsion sign
	target   float64 // target moment/shear ratio Mx/P
	charSize float64 // characteristic element size (diameter or leg)
}

func newIcrSolver(elems []icrElement, model mdl.Model, cy, cz, fy, fz, mx, charSize float64, cfg *IcrConfig) *icrSolver {
	if cfg == nil {
		cfg = DefaultIcrConfig()
	}
	o := &icrSolver{
		elems: elems, model: model, cfg: cfg,
		cy: cy, cz: cz, fy: fy, fz: fz, mx: mx,
		charSize: charSize,
	}
	o.ptot = math.Hypot(fy, fz)
	o.py = -fz / o.ptot
	o.pz = fy / o.ptot
	o.sgn = 1.0
	if mx < 0 {
		o.sgn = -1.0
	}
	o.target = mx / o.ptot
	return o
}

// evaluate builds the trial force field for a centre at the given
// distance from the centroid along the search line. ok is false when
// the trial is unusable (coincident centre or vanishing base shear)
func (o *icrSolver) evaluate(dist float64) (t *icrTrial, ok bool) {
	n := len(o.elems)
	t = &icrTrial{
		icy: o.cy + o.sgn*o.py*dist,
		icz: o.cz + o.sgn*o.pz*dist,
		val: make([]float64, n), diry: make([]float64, n), dirz: make([]float64, n),
		θ: make([]float64, n),
	}
	c := make([]float64, n)
	λlim := math.Inf(1)
	for i, e := range o.elems {
		dy := e.y - t.icy
		dz := e.z - t.icz
		ci := math.Hypot(dy, dz)
		if ci < posTol {
			ci = posTol
		}
		c[i] = ci

		// force direction tangent to the circle about the centre
		t.diry[i] = -dz / ci
		t.dirz[i] = dy / ci

		// angle between the force direction and the weld path tangent
		cosθ := math.Abs(t.diry[i]*e.ty + t.dirz[i]*e.tz)
		if cosθ > 1 {
			cosθ = 1
		}
		t.θ[i] = math.Acos(cosθ) * 180.0 / math.Pi

		// the critical element reaches its deformation limit first
		if r := o.model.Limit(t.θ[i]) / ci; r < λlim {
			λlim = r
		}
	}
	if !(λlim > posTol) || math.IsInf(λlim, 1) {
		return nil, false
	}

	// law values and base resultant
	var sumFy, sumFz float64
	for i, e := range o.elems {
		Δ := λlim * c[i]
		if u := o.model.Limit(t.θ[i]); Δ > u {
			Δ = u
		}
		t.val[i] = o.model.Value(Δ, t.θ[i])
		sumFy += t.val[i] * e.w * t.diry[i]
		sumFz += t.val[i] * e.w * t.dirz[i]
	}

	// align the field with the applied shear
	if o.fy*sumFy+o.fz*sumFz < 0 {
		for i := range t.diry {
			t.diry[i] = -t.diry[i]
			t.dirz[i] = -t.dirz[i]
		}
		sumFy = -sumFy
		sumFz = -sumFz
	}
	t.pbase = math.Hypot(sumFy, sumFz)
	if t.pbase < posTol || math.IsNaN(t.pbase) {
		return nil, false
	}

	// moment of the trial field about the group centroid
	var sumM float64
	for i, e := range o.elems {
		sumM += (e.y-o.cy)*t.val[i]*e.w*t.dirz[i] - (e.z-o.cz)*t.val[i]*e.w*t.diry[i]
	}
	t.ratio = sumM / t.pbase
	return t, true
}

// bounds returns the search interval for the centre distance
func (o *icrSolver) bounds() (distMin, distMax float64) {
	var ymin, ymax, zmin, zmax float64
	for i, e := range o.elems {
		if i == 0 {
			ymin, ymax, zmin, zmax = e.y, e.y, e.z, e.z
			continue
		}
		ymin = math.Min(ymin, e.y)
		ymax = math.Max(ymax, e.y)
		zmin = math.Min(zmin, e.z)
		zmax = math.Max(zmax, e.z)
	}
	cs := o.charSize
	if cs <= 0 {
		cs = 1.0
	}
	ecc := math.Abs(o.mx) / o.ptot
	charLen := math.Max(math.Max(ymax-ymin, zmax-zmin), math.Max(2.0*cs, 1.0))
	distMin = math.Max(posTol, math.Max(0.02*charLen, 0.1*cs))
	distMax = math.Max(50.0*distMin, math.Max(10.0*charLen, 5.0*ecc))
	if distMax <= distMin {
		distMax = 10.0 * distMin
	}
	return
}

// solve runs the two-phase search: a coarse scan over log-spaced
// candidate distances to bracket the residual sign change, then
// bisection refinement. It fails with a convergence error when the
// iteration cap is reached outside tolerance
func (o *icrSolver) solve() (*icrTrial, error) {
	distMin, distMax := o.bounds()
	ratioTol := o.cfg.Tol * math.Max(1.0, math.Abs(o.target))

	// log-spaced candidates, seeded with the eccentricity
	n := o.cfg.Ncand
	if n < 2 {
		n = 2
	}
	exps := utl.LinSpace(math.Log(distMin), math.Log(distMax), n)
	cands := make([]float64, 0, n+1)
	ecc := math.Abs(o.mx) / o.ptot
	seeded := ecc <= distMin || ecc >= distMax
	for _, e := range exps {
		d := math.Exp(e)
		if !seeded && ecc < d {
			cands = append(cands, ecc)
			seeded = true
		}
		cands = append(cands, d)
	}

	// phase 1: coarse scan
	var best *icrTrial
	bestErr := math.Inf(1)
	havePrev := false
	var prevRatio, prevDist float64
	haveBracket := false
	var lo, hi, ratioLo float64
	for _, d := range cands {
		t, ok := o.evaluate(d)
		if !ok {
			continue
		}
		res := math.Abs(t.ratio - o.target)
		if havePrev && (t.ratio-o.target)*(prevRatio-o.target) < 0 {
			lo, hi, ratioLo = prevDist, d, prevRatio
			haveBracket = true
		}
		havePrev = true
		prevRatio, prevDist = t.ratio, d
		if res < bestErr {
			best, bestErr = t, res
		}
		if res <= ratioTol {
			return t, nil
		}
	}

	// phase 2: bisection refinement within the bracket
	if haveBracket {
		for it := 0; it < o.cfg.MaxIt; it++ {
			mid := (lo + hi) / 2.0
			t, ok := o.evaluate(mid)
			if !ok {
				break
			}
			res := math.Abs(t.ratio - o.target)
			if res < bestErr {
				best, bestErr = t, res
			}
			if res <= ratioTol {
				return t, nil
			}
			if (t.ratio-o.target)*(ratioLo-o.target) < 0 {
				hi = mid
			} else {
				lo = mid
				ratioLo = t.ratio
			}
		}
	}

	if best != nil && bestErr <= ratioTol {
		return best, nil
	}
	return nil, convErr("instantaneous-centre search did not converge: residual=%g tolerance=%g after %d iterations", bestErr, ratioTol, o.cfg.MaxIt)
}

// IcrBolts distributes the in-plane load components across the bolt
// group by the instantaneous-centre method with the Crawford-Kulak
// force-deformation law. When the shear resultant or the torsion is
// numerically zero the centre search is degenerate and the elastic
// result is returned instead, tagged MethodElastic
func IcrBolts(bg *geom.BoltGroup, lod load.Load, cfg *IcrConfig) (*Result, error) {
	props, err := bg.Props()
	if err != nil {
		return nil, geomErr("%v", err)
	}
	mx, my, mz := lod.MomentsAbout(0, props.Cy, props.Cz)
	if math.Abs(lod.Fx) > zeroTol || math.Abs(my) > zeroTol || math.Abs(mz) > zeroTol {
		return nil, usageErr("icr handles in-plane components only: Fx=%g My=%g Mz=%g must go through the tension distributor", lod.Fx, my, mz)
	}
	if lod.Shear() < zeroTol || math.Abs(mx) < zeroTol {
		return ElasticBolts(bg, lod)
	}
	if props.Ip < posTol {
		return nil, geomErr("bolt group has zero polar moment: torsion Mx=%g cannot be redistributed", mx)
	}
	model, err := mdl.New("ck")
	if err != nil {
		return nil, usageErr("%v", err)
	}
	if err := model.Init(cfg.prms()); err != nil {
		return nil, usageErr("%v", err)
	}
	elems := make([]icrElement, props.N)
	for i := 0; i < props.N; i++ {
		elems[i] = icrElement{y: bg.Y[i], z: bg.Z[i], w: 1}
	}
	solver := newIcrSolver(elems, model, props.Cy, props.Cz, lod.Fy, lod.Fz, mx, bg.Diameter, cfg)
	trial, err := solver.solve()
	if err != nil {
		return nil, err
	}
	scale := solver.ptot / trial.pbase
	demands := make([]Demand, props.N)
	for i := range elems {
		r := trial.val[i] * scale
		demands[i] = Demand{Y: bg.Y[i], Z: bg.Z[i], Vy: r * trial.diry[i], Vz: r * trial.dirz[i]}
	}
	return &Result{Method: MethodICR, Demands: demands, Icy: trial.icy, Icz: trial.icz}, nil
}

// IcrWeld distributes the in-plane load components across the weld
// stations by the instantaneous-centre method with the AISC directional
// fillet law. Demands are reported as equivalent base stresses: the
// directional strength factor kds(θ) is divided out so the caller can
// compare directly against 0.60·Fexx capacities. The same zero-shear /
// zero-torsion fallback as IcrBolts applies
func IcrWeld(w *geom.Weld, lod load.Load, cfg *IcrConfig) (*Result, error) {
	if w.Kind != geom.Fillet {
		return nil, usageErr("icr is only valid for fillet welds. kind=%q is invalid", w.Kind)
	}
	if w.Leg <= 0 || w.Throat <= 0 {
		return nil, usageErr("icr requires positive leg and throat sizes. leg=%g throat=%g", w.Leg, w.Throat)
	}
	if w.Fexx <= 0 {
		return nil, usageErr("icr requires the electrode strength. fexx=%g is invalid", w.Fexx)
	}
	props, err := w.Props()
	if err != nil {
		return nil, geomErr("%v", err)
	}
	mx, my, mz := lod.MomentsAbout(0, props.Cy, props.Cz)
	if math.Abs(lod.Fx) > zeroTol || math.Abs(my) > zeroTol || math.Abs(mz) > zeroTol {
		return nil, usageErr("icr handles in-plane components only: Fx=%g My=%g Mz=%g must go through the elastic distributor", lod.Fx, my, mz)
	}
	if lod.Shear() < zeroTol || math.Abs(mx) < zeroTol {
		return ElasticWeld(w, lod)
	}
	if props.Ip < posTol {
		return nil, geomErr("weld group has zero polar moment: torsion Mx=%g cannot be redistributed", mx)
	}
	model, err := mdl.New("aiscfillet")
	if err != nil {
		return nil, usageErr("%v", err)
	}
	prms := utl.Params{
		&utl.P{N: "leg", V: w.Leg},
		&utl.P{N: "fexx", V: w.Fexx},
	}
	prms = append(prms, cfg.prms()...)
	if err := model.Init(prms); err != nil {
		return nil, usageErr("%v", err)
	}
	stations := w.Discretize()
	elems := make([]icrElement, len(stations))
	for i, st := range stations {
		elems[i] = icrElement{y: st.Y, z: st.Z, w: w.Throat * st.Ds, ty: st.Ty, tz: st.Tz}
	}
	solver := newIcrSolver(elems, model, props.Cy, props.Cz, lod.Fy, lod.Fz, mx, w.Leg, cfg)
	trial, err := solver.solve()
	if err != nil {
		return nil, err
	}
	scale := solver.ptot / trial.pbase
	demands := make([]Demand, len(stations))
	for i, st := range stations {
		f := trial.val[i] * scale / mdl.Kds(trial.θ[i])
		demands[i] = Demand{Y: st.Y, Z: st.Z, Vy: f * trial.diry[i], Vz: f * trial.dirz[i]}
	}
	return &Result{Method: MethodICR, Demands: demands, Icy: trial.icy, Icz: trial.icz}, nil
}

// prms returns the law parameter overrides, tolerating a nil config
func (o *IcrConfig) prms() utl.Params {
	if o == nil {
		return nil
	}
	return o.Prms
}
