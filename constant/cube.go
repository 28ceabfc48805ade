package constant

import (
	"time"
)

// Screen geometry, in terminal cells
const (
	ScreenWidth  = 60
	ScreenHeight = 26

	// BackgroundGlyph fills every cell not covered by a face
	BackgroundGlyph = ' '
)

// Cube geometry and sampling
const (
	// CubeHalfWidth is the distance from the cube center to each face
	CubeHalfWidth = 16.0

	// SampleStep is the spacing between surface samples along each face axis
	SampleStep = 0.6

	// CameraDistance is added to rotated z before projection
	CameraDistance = 100.0

	// ProjectionScale (K1) maps camera-space units to cells
	ProjectionScale = 40.0

	// AspectX compensates for terminal cells being roughly twice as tall as wide
	AspectX = 2.0

	// MinDepth is the smallest |z| accepted as a projection divisor
	MinDepth = 1e-6
)

// Rotation speed, radians per frame
const (
	DeltaA = 0.05
	DeltaB = 0.05
	DeltaC = 0.01
)

// FrameDelay is the sleep after each frame (~41 FPS cap)
const FrameDelay = 24 * time.Millisecond
