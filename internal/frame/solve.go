package frame

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/statikdev/gostatik/internal/beam"
	"github.com/statikdev/gostatik/internal/statics"
)

const samplesPerMember = 60

// model is an assembled planar frame: joints, members, nodal loads and
// support constraints. girders marks the members whose transverse
// deflection governs serviceability.
type model struct {
	nodes       []node
	members     []member
	nodalLoads  map[int][2]float64 // node → (fx, fy), kN
	constrained map[int][3]bool    // node → fixed dofs (ux, uy, θ)
	girders     map[int]bool       // member index
	supports    []int              // base nodes, left to right
	span        float64            // governing girder span, m
}

type memberState struct {
	l, c, s float64
	klocal  [6][6]float64
	t       [6][6]float64
	eq      [6]float64
	ulocal  [6]float64 // filled after the solve
	end     [6]float64 // member end forces, local axes
}

// solve assembles the global stiffness matrix, reduces it by the support
// conditions and solves for joint displacements, then recovers member end
// forces and builds the sampled result along the unwrapped member axis.
func (mo *model) solve() (*statics.SolveResult, error) {
	n := len(mo.nodes)
	ndof := 3 * n
	k := mat.NewDense(ndof, ndof, nil)
	f := make([]float64, ndof)
	states := make([]memberState, len(mo.members))

	for mi, mb := range mo.members {
		l, c, s := mb.geometry(mo.nodes)
		st := memberState{
			l: l, c: c, s: s,
			klocal: mb.localStiffness(l),
			t:      transform(c, s),
			eq:     mb.equivalentLoads(l, c, s),
		}
		states[mi] = st

		dofs := memberDofs(mb)
		for a := 0; a < 6; a++ {
			for b := 0; b < 6; b++ {
				// K_e = Tᵀ k_l T
				sum := 0.0
				for p := 0; p < 6; p++ {
					for q := 0; q < 6; q++ {
						sum += st.t[p][a] * st.klocal[p][q] * st.t[q][b]
					}
				}
				k.Set(dofs[a], dofs[b], k.At(dofs[a], dofs[b])+sum)
			}
		}
		geq := matTmul6(st.t, st.eq)
		for a := 0; a < 6; a++ {
			f[dofs[a]] += geq[a]
		}
	}
	for ni, fl := range mo.nodalLoads {
		f[3*ni] += fl[0]
		f[3*ni+1] += fl[1]
	}

	free := make([]int, 0, ndof)
	for ni := 0; ni < n; ni++ {
		fixed := mo.constrained[ni]
		for d := 0; d < 3; d++ {
			if !fixed[d] {
				free = append(free, 3*ni+d)
			}
		}
	}

	kff := mat.NewDense(len(free), len(free), nil)
	ff := mat.NewVecDense(len(free), nil)
	for a, ga := range free {
		ff.SetVec(a, f[ga])
		for b, gb := range free {
			kff.Set(a, b, k.At(ga, gb))
		}
	}

	var df mat.VecDense
	if err := df.SolveVec(kff, ff); err != nil {
		return nil, &statics.UnstableStructureError{Detail: "global stiffness matrix is singular (check supports)"}
	}
	d := make([]float64, ndof)
	for a, ga := range free {
		d[ga] = df.AtVec(a)
	}

	for mi, mb := range mo.members {
		st := &states[mi]
		dofs := memberDofs(mb)
		var dg [6]float64
		for a := 0; a < 6; a++ {
			dg[a] = d[dofs[a]]
		}
		st.ulocal = matVec6(st.t, dg)
		ku := matVec6(st.klocal, st.ulocal)
		for a := 0; a < 6; a++ {
			st.end[a] = ku[a] - st.eq[a]
		}
	}

	res := &statics.SolveResult{GoverningSpan: mo.span}
	mo.recoverReactions(k, d, f, res)
	mo.buildCurves(states, res)
	return res, nil
}

func memberDofs(mb member) [6]int {
	return [6]int{3 * mb.i, 3*mb.i + 1, 3*mb.i + 2, 3 * mb.j, 3*mb.j + 1, 3*mb.j + 2}
}

func (mo *model) recoverReactions(k *mat.Dense, d, f []float64, res *statics.SolveResult) {
	for si, ni := range mo.supports {
		var r [3]float64
		for dof := 0; dof < 3; dof++ {
			g := 3*ni + dof
			sum := -f[g]
			for j := 0; j < len(d); j++ {
				sum += k.At(g, j) * d[j]
			}
			r[dof] = sum
		}
		if !mo.constrained[ni][2] {
			r[2] = 0
		}
		res.Reactions = append(res.Reactions, statics.Reaction{
			Support:    si,
			Horizontal: r[0],
			Vertical:   r[1],
			Moment:     r[2],
		})
	}
}

// buildCurves rebuilds each member's internal distribution from its end
// moments, the same way the beam solver treats a span with prescribed end
// moments, and concatenates the samples along the unwrapped frame axis.
// Sampled deflections are transverse to the member: chord-relative bending
// plus the interpolated joint displacements.
func (mo *model) buildCurves(states []memberState, res *statics.SolveResult) {
	offset := 0.0
	for mi, mb := range mo.members {
		st := &states[mi]
		// Sagging-positive end moments from the local end forces.
		ma, mbEnd := -st.end[2], st.end[5]
		wTrans := mb.vertical * st.c // transverse gravity component, down-positive
		span := beam.SpanWithEndMoments(st.l, mb.e*mb.iy, wTrans, ma, mbEnd)

		// Down-positive transverse joint movement, linear along the member.
		nodal := func(x float64) float64 {
			return -(st.ulocal[1] + (st.ulocal[4]-st.ulocal[1])*x/st.l)
		}
		total := func(x float64) float64 { return span.Deflection(x) + nodal(x) }

		maxM := span.MomentExtremum()
		if math.Abs(maxM.Value) > math.Abs(res.MaxMoment.Value) {
			res.MaxMoment = statics.Extremum{Value: maxM.Value, X: offset + maxM.X}
		}
		maxV := span.ShearExtremum()
		if math.Abs(maxV.Value) > math.Abs(res.MaxShear.Value) {
			res.MaxShear = statics.Extremum{Value: maxV.Value, X: offset + maxV.X}
		}

		var extremumX float64
		if mo.girders[mi] {
			bestX, bestV := 0.0, 0.0
			for i := 0; i <= 400; i++ {
				x := st.l * float64(i) / 400
				if v := total(x); math.Abs(v) > math.Abs(bestV) {
					bestX, bestV = x, v
				}
			}
			lo := math.Max(0, bestX-st.l/400)
			hi := math.Min(st.l, bestX+st.l/400)
			for hi-lo > 1e-12*st.l {
				m1 := lo + (hi-lo)/3
				m2 := hi - (hi-lo)/3
				if math.Abs(total(m1)) < math.Abs(total(m2)) {
					lo = m1
				} else {
					hi = m2
				}
			}
			x := (lo + hi) / 2
			if v := total(x); math.Abs(v*1000) > math.Abs(res.MaxDeflection.Value) {
				res.MaxDeflection = statics.Extremum{Value: v * 1000, X: offset + x}
				extremumX = x
			}
		}

		for i := 0; i <= samplesPerMember; i++ {
			x := st.l * float64(i) / samplesPerMember
			res.Samples = append(res.Samples, statics.Sample{
				X:          offset + x,
				Moment:     span.Moment(x),
				Shear:      span.Shear(x),
				Deflection: total(x) * 1000,
			})
		}
		if extremumX > 0 && res.MaxDeflection.X == offset+extremumX {
			res.Samples = insertSample(res.Samples, statics.Sample{
				X:          offset + extremumX,
				Moment:     span.Moment(extremumX),
				Shear:      span.Shear(extremumX),
				Deflection: total(extremumX) * 1000,
			})
		}
		offset += st.l
	}
}

// insertSample keeps the sample sequence ordered by position.
func insertSample(samples []statics.Sample, s statics.Sample) []statics.Sample {
	for i := len(samples) - 1; i >= 0; i-- {
		if samples[i].X <= s.X {
			if samples[i].X == s.X {
				samples[i] = s
				return samples
			}
			samples = append(samples, statics.Sample{})
			copy(samples[i+2:], samples[i+1:])
			samples[i+1] = s
			return samples
		}
	}
	return append([]statics.Sample{s}, samples...)
}
