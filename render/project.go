package render

import (
	"math"

	"github.com/lixenwraith/spin-cube/constant"
	"github.com/lixenwraith/spin-cube/vmath"
)

// ScreenPoint is a projected cell position plus inverse depth
type ScreenPoint struct {
	X, Y int
	OOZ  float64
}

// invalidPoint is returned for degenerate projections; it fails both bounds and depth tests
var invalidPoint = ScreenPoint{X: -1, Y: -1, OOZ: 0}

// Project maps a camera-space point (z already offset by the camera distance) onto a width x height grid
// Horizontal offset is doubled for terminal cell aspect 1:2
func Project(p vmath.Vec3F, width, height int) ScreenPoint {
	if math.IsNaN(p.Z) || math.IsInf(p.Z, 0) || math.Abs(p.Z) < constant.MinDepth {
		return invalidPoint
	}
	ooz := 1.0 / p.Z

	fx := float64(width)/2.0 + constant.ProjectionScale*p.X*ooz*constant.AspectX
	fy := float64(height)/2.0 + constant.ProjectionScale*p.Y*ooz

	sx, ok := truncCell(fx)
	if !ok {
		return invalidPoint
	}
	sy, ok := truncCell(fy)
	if !ok {
		return invalidPoint
	}
	return ScreenPoint{X: sx, Y: sy, OOZ: ooz}
}

// truncCell truncates toward zero, rejecting values that cannot be a cell index
func truncCell(f float64) (int, bool) {
	if math.IsNaN(f) || f <= math.MinInt32 || f >= math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}
