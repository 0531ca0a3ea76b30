package generate

import (
	"math/rand"

	"fps-arena/internal/geom"
)

// maxCenterAttempts bounds the rejection sampling in SafeCenters.
const maxCenterAttempts = 1000

// RandomCenter returns a point on the ground plane with X and Z uniform in
// ±spread/2. Y is left at zero; the enemy factory puts it on the ground.
func RandomCenter(rng *rand.Rand, spread float64) geom.Vec3 {
	return geom.Vec3{X: geom.RandSpread(rng, spread), Z: geom.RandSpread(rng, spread)}
}

// GroupPositions scatters size points around center, each offset by a uniform
// ±offset on X and Z.
func GroupPositions(rng *rand.Rand, center geom.Vec3, size int, offset float64) []geom.Vec3 {
	if size <= 0 {
		return nil
	}
	out := make([]geom.Vec3, 0, size)
	for range size {
		out = append(out, geom.Vec3{
			X: center.X + geom.RandRange(rng, -offset, offset),
			Y: center.Y,
			Z: center.Z + geom.RandRange(rng, -offset, offset),
		})
	}
	return out
}

// SafeCenters draws count random centers that are farther than safe from the
// player on the ground plane. If rejection sampling keeps failing (a tiny
// spread around the player) the last candidate is accepted anyway so the
// caller always gets count centers.
func SafeCenters(rng *rand.Rand, player geom.Vec3, count int, spread, safe float64) []geom.Vec3 {
	if count <= 0 {
		return nil
	}
	out := make([]geom.Vec3, 0, count)
	for len(out) < count {
		var c geom.Vec3
		for attempt := 0; attempt < maxCenterAttempts; attempt++ {
			c = RandomCenter(rng, spread)
			if geom.HorizontalDist(c, player) > safe {
				break
			}
		}
		out = append(out, c)
	}
	return out
}
