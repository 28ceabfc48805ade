package vmath

import (
	"math"
)

// Euler caches the sines and cosines of three rotation angles
// Built once per frame and shared by every sample of that frame
type Euler struct {
	sinA, cosA float64
	sinB, cosB float64
	sinC, cosC float64
}

// NewEuler precomputes trig terms for angles a (roll), b (pitch), c (yaw)
func NewEuler(a, b, c float64) Euler {
	return Euler{
		sinA: math.Sin(a), cosA: math.Cos(a),
		sinB: math.Sin(b), cosB: math.Cos(b),
		sinC: math.Sin(c), cosC: math.Cos(c),
	}
}

// Apply rotates p by the cached angles
func (e Euler) Apply(p Vec3F) Vec3F {
	i, j, k := p.X, p.Y, p.Z

	x := j*e.sinA*e.sinB*e.cosC -
		k*e.cosA*e.sinB*e.cosC +
		j*e.cosA*e.sinC +
		k*e.sinA*e.sinC +
		i*e.cosB*e.cosC

	y := j*e.cosA*e.cosC +
		k*e.sinA*e.cosC -
		j*e.sinA*e.sinB*e.sinC +
		k*e.cosA*e.sinB*e.sinC -
		i*e.cosB*e.sinC

	z := k*e.cosA*e.cosB -
		j*e.sinA*e.cosB +
		i*e.sinB

	return Vec3F{x, y, z}
}

// Rotate is the one-shot form of NewEuler(a, b, c).Apply(p)
func Rotate(p Vec3F, a, b, c float64) Vec3F {
	return NewEuler(a, b, c).Apply(p)
}
