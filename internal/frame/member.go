package frame

import "math"

// node is a frame joint in global coordinates (x right, y up), meters.
type node struct {
	x, y float64
}

// member is one prismatic frame element between two joints. vertical is a
// gravity line load in kN per meter of member length, positive downward.
type member struct {
	i, j     int
	e        float64 // kN/m²
	iy       float64 // m⁴
	area     float64 // m²
	vertical float64 // kN/m
}

func (m *member) geometry(nodes []node) (l, c, s float64) {
	dx := nodes[m.j].x - nodes[m.i].x
	dy := nodes[m.j].y - nodes[m.i].y
	l = math.Hypot(dx, dy)
	return l, dx / l, dy / l
}

// localStiffness returns the 6×6 stiffness of the member in its local
// axes, dof order [u1, w1, θ1, u2, w2, θ2].
func (m *member) localStiffness(l float64) [6][6]float64 {
	ea := m.e * m.area / l
	ei := m.e * m.iy
	b12 := 12 * ei / (l * l * l)
	b6 := 6 * ei / (l * l)
	b4 := 4 * ei / l
	b2 := 2 * ei / l
	return [6][6]float64{
		{ea, 0, 0, -ea, 0, 0},
		{0, b12, b6, 0, -b12, b6},
		{0, b6, b4, 0, -b6, b2},
		{-ea, 0, 0, ea, 0, 0},
		{0, -b12, -b6, 0, b12, -b6},
		{0, b6, b2, 0, -b6, b4},
	}
}

// transform maps global nodal dofs into the member's local axes.
func transform(c, s float64) [6][6]float64 {
	var t [6][6]float64
	for _, o := range []int{0, 3} {
		t[o][o] = c
		t[o][o+1] = s
		t[o+1][o] = -s
		t[o+1][o+1] = c
		t[o+2][o+2] = 1
	}
	return t
}

// equivalentLoads returns the work-equivalent local nodal load vector of
// the member's gravity line load. The local load components follow from
// projecting the vertical load onto the member axes.
func (m *member) equivalentLoads(l, c, s float64) [6]float64 {
	if m.vertical == 0 {
		return [6]float64{}
	}
	// Global load per unit length (0, −w) in local axes.
	qa := -m.vertical * s // axial
	qt := -m.vertical * c // transverse
	return [6]float64{
		qa * l / 2,
		qt * l / 2,
		qt * l * l / 12,
		qa * l / 2,
		qt * l / 2,
		-qt * l * l / 12,
	}
}

func matVec6(a [6][6]float64, v [6]float64) [6]float64 {
	var out [6]float64
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			out[i] += a[i][j] * v[j]
		}
	}
	return out
}

func matTmul6(t [6][6]float64, v [6]float64) [6]float64 {
	var out [6]float64
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			out[i] += t[j][i] * v[j]
		}
	}
	return out
}
