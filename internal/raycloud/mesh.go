package raycloud

// Mesh is a triangle mesh suitable for rendering.
// All arrays are flat: vertices has 3 floats per vertex (x,y,z),
// indices has 3 uint32s per triangle.
type Mesh struct {
	Vertices []float32 // [x0,y0,z0, x1,y1,z1, ...]
	Indices  []uint32  // [i0,i1,i2, ...] triangles
	Name     string
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Vertex returns vertex i.
func (m *Mesh) Vertex(i int) Point {
	return Point{X: Real(m.Vertices[3*i]), Y: Real(m.Vertices[3*i+1]), Z: Real(m.Vertices[3*i+2])}
}

func (m *Mesh) addVertex(p Point) {
	m.Vertices = append(m.Vertices, float32(p.X), float32(p.Y), float32(p.Z))
}

func (m *Mesh) addTriangle(i, j, k int) {
	m.Indices = append(m.Indices, uint32(i), uint32(j), uint32(k))
}

// addGrid triangulates rows*cols vertices laid out row-major.
func (m *Mesh) addGrid(rows, cols int) {
	for r := 0; r+1 < rows; r++ {
		for c := 0; c+1 < cols; c++ {
			v := r*cols + c
			m.addTriangle(v, v+1, v+cols)
			m.addTriangle(v+1, v+cols+1, v+cols)
		}
	}
}
