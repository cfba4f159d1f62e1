package raycloud

var (
	Debug    = false // set to true for verbose debug output
	Progress = false // set to true to print [PROGRESS] lines from parallel stages
	// Compile time checks to ensure that the index interface is implemented by all backends
	_ SpatialIndex = (*KDTreeIndex)(nil)
	_ SpatialIndex = (*RTreeIndex)(nil)
	// and that every render variant is a Shape
	_ Shape = PointShape{}
	_ Shape = VectorShape{}
	_ Shape = LineShape{}
	_ Shape = SurfaceShape{}
	_ Shape = SquareShape{}
	_ Shape = SubspaceShape{}
)
