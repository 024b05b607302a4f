package mapengine

import (
	"fmt"
	"math/rand"

	"click4news/types"
)

// jitterRange is the half-width of the uniform offset applied per axis
// to a duplicate point, in degrees.
const jitterRange = 0.005

// JitterOverlappingPoints nudges points that land on the same rounded
// coordinate so coincident articles stay individually clickable. The
// first feature at a coordinate keeps its position; every later feature
// sharing the key gets an independent offset on both axes. Order,
// cardinality and properties are untouched.
func JitterOverlappingPoints(features []types.Feature) []types.Feature {
	seen := make(map[string]bool)

	out := make([]types.Feature, 0, len(features))
	for _, f := range features {
		lng, lat := f.Longitude(), f.Latitude()
		key := coordKey(lng, lat)
		if seen[key] {
			lng += (rand.Float64() - 0.5) * jitterRange * 2
			lat += (rand.Float64() - 0.5) * jitterRange * 2
		}
		seen[key] = true

		jittered := f
		jittered.Geometry = types.Geometry{
			Type:        f.Geometry.Type,
			Coordinates: []float64{lng, lat},
		}
		out = append(out, jittered)
	}
	return out
}

// coordKey rounds each axis to 4 decimal places, roughly 11 meters at
// the equator.
func coordKey(lng, lat float64) string {
	return fmt.Sprintf("%.4f|%.4f", lng, lat)
}
