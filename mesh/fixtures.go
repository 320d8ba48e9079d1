package mesh

import "gonum.org/v1/gonum/spatial/r3"

// Cube returns the unit cube as a polyhedral mesh: 8 vertices, 6 quad
// faces, 12 interior edges. Faces wind counter-clockwise seen from outside.
// It is the standard closed fixture for solver tests and examples.
func Cube() *Mesh {
	v := []r3.Vec{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
	}
	d := []int{4, 4, 4, 4, 4, 4}
	f := [][]int{
		{0, 3, 2, 1}, // bottom
		{4, 5, 6, 7}, // top
		{0, 1, 5, 4}, // front
		{1, 2, 6, 5}, // right
		{2, 3, 7, 6}, // back
		{3, 0, 4, 7}, // left
	}
	ev := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {0, 3},
		{4, 5}, {5, 6}, {6, 7}, {4, 7},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	ef := [][2]int{
		{0, 2}, {0, 3}, {0, 4}, {0, 5},
		{1, 2}, {1, 3}, {1, 4}, {1, 5},
		{2, 5}, {2, 3}, {3, 4}, {4, 5},
	}

	m, err := New(v, d, f, ev, ef)
	if err != nil {
		panic("mesh: cube fixture is malformed: " + err.Error())
	}
	return m
}

// Quad returns a single unit square face: 4 vertices, 1 face, 4 boundary
// edges. It is the minimal open (disk-topology) fixture.
func Quad() *Mesh {
	v := []r3.Vec{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
	}
	d := []int{4}
	f := [][]int{{0, 1, 2, 3}}
	ev := [][2]int{{0, 1}, {1, 2}, {2, 3}, {0, 3}}
	ef := [][2]int{{0, BoundaryFace}, {0, BoundaryFace}, {0, BoundaryFace}, {BoundaryFace, 0}}

	m, err := New(v, d, f, ev, ef)
	if err != nil {
		panic("mesh: quad fixture is malformed: " + err.Error())
	}
	return m
}
