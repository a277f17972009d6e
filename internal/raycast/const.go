package raycast

// Channel indices for readability.
const (
	ChR           = 0
	ChG           = 1
	ChB           = 2
	DefaultWidth  = 640
	DefaultHeight = 480
	HFOVDeg       = 90 // horizontal field of view of the pinhole camera
	PNGOut        = "output.png"
	GIFOut        = "orbit.gif"
	GIFDelay      = 5 // 100ths of a second per frame
	OrbitDegStep  = 10
)
