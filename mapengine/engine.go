package mapengine

import (
	"math"
	"strings"

	"click4news/types"
)

// tierTolerance is how close a zoom value must be to a tier's canonical
// zoom for the tier label to follow it.
const tierTolerance = 0.6

// flyToDuration is how long the camera animates when a tier button or
// reset commands the zoom. Scroll-driven zooms never animate.
const flyToDurationMS = 300

// clickThresholdPixels bounds the screen distance between a click and a
// feature for the feature to count as a candidate.
const clickThresholdPixels = 30.0

// Camera receives animation commands the engine cannot carry out itself;
// the rendering surface owns the actual pan/zoom.
type Camera interface {
	FlyTo(lng, lat, zoom float64, durationMS int)
}

// Engine owns the camera state and the loaded feature set for one
// session. Methods are not safe for concurrent use; the session layer
// serializes access.
type Engine struct {
	view     types.ViewState
	features []types.Feature
	camera   Camera
}

// NewEngine starts with the default world view and no features loaded.
func NewEngine(camera Camera) *Engine {
	return &Engine{
		view: types.ViewState{
			Longitude: types.DefaultLongitude,
			Latitude:  types.DefaultLatitude,
			Zoom:      types.TierZoomMap[types.TierWorld],
			Tier:      types.TierWorld,
			Theme:     types.DefaultTheme,
		},
		camera: camera,
	}
}

func (e *Engine) View() types.ViewState {
	return e.view
}

func (e *Engine) Features() []types.Feature {
	return e.features
}

func (e *Engine) SetTheme(theme string) {
	e.view.Theme = theme
}

// Load runs the jitter pass over the raw features and keeps the result
// for the rest of the session. Called once, at mount.
func (e *Engine) Load(raw []types.Feature) {
	e.features = JitterOverlappingPoints(raw)
}

// SetZoom records a zoom change and keeps the tier label consistent: the
// tier whose canonical zoom is within the tolerance wins, otherwise the
// previous tier stays. Tier and reset origins animate the camera.
func (e *Engine) SetZoom(zoom float64, origin types.ZoomOrigin) {
	e.view.Zoom = zoom
	if tier, ok := matchTier(zoom); ok {
		e.view.Tier = tier
	}
	if origin != types.OriginScroll && e.camera != nil {
		e.camera.FlyTo(e.view.Longitude, e.view.Latitude, zoom, flyToDurationMS)
	}
}

// SetTier jumps to a tier's canonical zoom. Reset additionally recenters
// on the default camera position.
func (e *Engine) SetTier(tier types.ZoomTier, reset bool) {
	zoom, ok := types.TierZoomMap[tier]
	if !ok {
		return
	}
	origin := types.OriginTier
	if reset {
		origin = types.OriginReset
		e.view.Longitude = types.DefaultLongitude
		e.view.Latitude = types.DefaultLatitude
	}
	e.SetZoom(zoom, origin)
}

func matchTier(zoom float64) (types.ZoomTier, bool) {
	for tier, canonical := range types.TierZoomMap {
		if math.Abs(canonical-zoom) < tierTolerance {
			return tier, true
		}
	}
	return "", false
}

// Projector maps geographic coordinates to screen pixels. The rendering
// surface supplies it; handlers use the Web-Mercator one from project.go.
type Projector func(lng, lat float64) (x, y float64)

// ResolveClick projects the click and every filtered feature to screen
// space and keeps all features within the pixel threshold, in their
// original relative order. An empty result means the click selects
// nothing.
func ResolveClick(project Projector, clickLng, clickLat float64, filtered []types.Feature) []types.Feature {
	cx, cy := project(clickLng, clickLat)

	var nearby []types.Feature
	for _, f := range filtered {
		fx, fy := project(f.Longitude(), f.Latitude())
		dx := fx - cx
		dy := fy - cy
		if math.Sqrt(dx*dx+dy*dy) < clickThresholdPixels {
			nearby = append(nearby, f)
		}
	}
	return nearby
}

// FilteredFeatures applies the keyword and category predicates. A feature
// passes when the keyword is a case-insensitive substring of its combined
// title, summary and category text, and its category is in the selected
// set (empty set admits everything). The input is never mutated.
func FilteredFeatures(features []types.Feature, filter types.FilterState) []types.Feature {
	keyword := strings.ToLower(filter.Keyword)

	var out []types.Feature
	for _, f := range features {
		combined := strings.ToLower(f.Properties.Title + " " + f.Properties.Summary + " " + f.Properties.Category)
		if keyword != "" && !strings.Contains(combined, keyword) {
			continue
		}
		if len(filter.Categories) > 0 && !contains(filter.Categories, f.Properties.Category) {
			continue
		}
		out = append(out, f)
	}
	return out
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
