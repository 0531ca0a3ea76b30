package geom

import "math"

// Ray is a half-line starting at Origin. Dir should be a unit vector; the
// distances returned by intersection tests are in units of Dir.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) Vec3 { return r.Origin.Add(r.Dir.Scale(t)) }

// AABB is an axis-aligned box.
type AABB struct {
	Min, Max Vec3
}

// BoxAround builds the box centered on c with the given half extents.
func BoxAround(c, half Vec3) AABB {
	return AABB{Min: c.Sub(half), Max: c.Add(half)}
}

// Contains reports whether p lies inside or on the box.
func (b AABB) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Intersects reports whether two boxes overlap.
func (b AABB) Intersects(o AABB) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y &&
		b.Min.Z <= o.Max.Z && b.Max.Z >= o.Min.Z
}

// IntersectRay runs the slab test and returns the entry distance of r into b.
// A ray starting inside the box hits at distance 0. Hits beyond maxDist are
// reported as misses.
func (b AABB) IntersectRay(r Ray, maxDist float64) (float64, bool) {
	tMin, tMax := 0.0, maxDist
	origin := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float64{r.Dir.X, r.Dir.Y, r.Dir.Z}
	lo := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	hi := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}

	for i := range 3 {
		if math.Abs(dir[i]) < 1e-12 {
			// Parallel to this slab: must already be between its planes.
			if origin[i] < lo[i] || origin[i] > hi[i] {
				return 0, false
			}
			continue
		}
		inv := 1 / dir[i]
		t1 := (lo[i] - origin[i]) * inv
		t2 := (hi[i] - origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}
