package mapengine

import "math"

// tileSize matches the 512px vector tiles the map renderer uses, so
// pixel distances line up with what the user sees on screen.
const tileSize = 512.0

// MercatorProjector returns a Projector for the Web-Mercator projection
// at the given zoom. Latitude is clamped to the projection's valid range.
func MercatorProjector(zoom float64) Projector {
	worldSize := tileSize * math.Pow(2, zoom)
	return func(lng, lat float64) (float64, float64) {
		x := (lng + 180) / 360 * worldSize

		lat = math.Max(-85.051129, math.Min(85.051129, lat))
		latRad := lat * math.Pi / 180
		y := (1 - math.Log(math.Tan(latRad)+1/math.Cos(latRad))/math.Pi) / 2 * worldSize
		return x, y
	}
}
