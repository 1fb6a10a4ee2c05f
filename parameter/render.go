package parameter

// Planar Rendering
const (
	// GridUnit is the quantization step in pixels; every planar coordinate
	// is floored to a multiple of this before drawing
	GridUnit = 3.0

	// BreatheRate is the breathing phase advance in radians per millisecond
	BreatheRate = 0.003

	// BreatheDepth is the amplitude of the breathing alpha modulation
	BreatheDepth = 0.25
)

// Volumetric Rendering
const (
	// RotationSpeed is the yaw increment in radians per millisecond of
	// animation time
	RotationSpeed = 0.0003

	// FocalLength is the perspective projection focal distance
	FocalLength = 300.0

	// DepthFadeFloor is the minimum alpha multiplier for distant particles
	DepthFadeFloor = 0.1

	// DepthFadeRange is the z distance over which alpha fades to the floor
	DepthFadeRange = 200.0

	// ProximityBoostMax adds up to +80% brightness for near particles
	ProximityBoostMax = 0.8

	// ProximityRange is the z distance over which the boost tapers off
	ProximityRange = 150.0

	// CullMargin extends the viewport bounds before off-screen culling
	CullMargin = 4

	// CellAspect doubles X to compensate terminal cell height:width of 2:1
	CellAspect = 2.0
)

// Frame Loop
const (
	// ViewerFPS is the viewer's target frame rate
	ViewerFPS = 30
)
