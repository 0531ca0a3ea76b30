package geom

import (
	"math"
	"math/rand"
)

// Vec3 is a float64 world-space vector. Y is up; X and Z span the ground.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) LenSq() float64 { return v.Dot(v) }

func (v Vec3) Len() float64 { return math.Sqrt(v.LenSq()) }

// Normalize returns the unit vector along v, or the zero vector when v has
// no length.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	inv := 1 / l
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// Horizontal drops the vertical component.
func (v Vec3) Horizontal() Vec3 { return Vec3{X: v.X, Z: v.Z} }

// Dist returns the full 3D distance between two points.
func Dist(a, b Vec3) float64 { return a.Sub(b).Len() }

// HorizontalDist ignores height, which is how enemy ranges are measured:
// the player's eye height must not push them out of chase range.
func HorizontalDist(a, b Vec3) float64 { return a.Sub(b).Horizontal().Len() }

// RandomHorizontalDir returns a random unit vector on the XZ plane.
func RandomHorizontalDir(rng *rand.Rand) Vec3 {
	for {
		v := Vec3{X: rng.Float64() - 0.5, Z: rng.Float64() - 0.5}
		if v.LenSq() > 1e-9 {
			return v.Normalize()
		}
	}
}

// RandRange returns a uniform value in [lo, hi).
func RandRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// RandSpread returns a uniform value in [-spread/2, spread/2).
func RandSpread(rng *rand.Rand, spread float64) float64 {
	return spread * (rng.Float64() - 0.5)
}
