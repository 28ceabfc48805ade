package render

import (
	"github.com/lixenwraith/spin-cube/vmath"
)

// Face is one side of the cube: a signed permutation of the sampling
// coordinates (x, y, z) into object space, drawn with a fixed glyph
type Face struct {
	Name  string
	Glyph rune
	Map   func(x, y, z float64) vmath.Vec3F
}

// Faces share one sample grid where z is held at -halfWidth
//
//	Face    Glyph  Object point
//	Front   .      ( x,  y,  z)
//	Right   #      (-z,  y,  x)
//	Left    ~      ( z,  y, -x)
//	Back    $      (-x,  y, -z)
//	Bottom  ;      ( x, -z, -y)
//	Top     +      ( x,  z,  y)
var Faces = [6]Face{
	{"front", '.', func(x, y, z float64) vmath.Vec3F { return vmath.Vec3F{X: x, Y: y, Z: z} }},
	{"right", '#', func(x, y, z float64) vmath.Vec3F { return vmath.Vec3F{X: -z, Y: y, Z: x} }},
	{"left", '~', func(x, y, z float64) vmath.Vec3F { return vmath.Vec3F{X: z, Y: y, Z: -x} }},
	{"back", '$', func(x, y, z float64) vmath.Vec3F { return vmath.Vec3F{X: -x, Y: y, Z: -z} }},
	{"bottom", ';', func(x, y, z float64) vmath.Vec3F { return vmath.Vec3F{X: x, Y: -z, Z: -y} }},
	{"top", '+', func(x, y, z float64) vmath.Vec3F { return vmath.Vec3F{X: x, Y: z, Z: y} }},
}
