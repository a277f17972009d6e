package raycast

var (
	Debug    = false // set to true to record per-ray statistics
	Progress = false // set to true to print render progress
	PNG      = true  // set to false to skip writing the PNG image
	RAW      = false // set to true to also dump raw RGB8 pixels
	Workers  = 0     // scanline workers for RenderParallel; 0 means runtime.NumCPU()
	// Compile time checks that every shape and light implements its interface
	_ Geometry = (*Sphere)(nil)
	_ Light    = (*AmbientLight)(nil)
	_ Light    = (*DirectionLight)(nil)
	_ Light    = (*PointLight)(nil)
)
