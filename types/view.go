package types

// ZoomTier is one of the named zoom levels offered by the view controls.
type ZoomTier string

const (
	TierWorld   ZoomTier = "world"
	TierCountry ZoomTier = "country"
	TierState   ZoomTier = "state"
	TierCity    ZoomTier = "city"
)

// TierZoomMap gives each tier its canonical zoom value.
var TierZoomMap = map[ZoomTier]float64{
	TierWorld:   2,
	TierCountry: 4,
	TierState:   6,
	TierCity:    10,
}

// ZoomOrigin tags where a zoom change came from. Tier and reset changes
// animate the camera; raw scroll changes only record state, otherwise the
// camera's own pan/zoom events would re-trigger themselves.
type ZoomOrigin string

const (
	OriginTier   ZoomOrigin = "tier"
	OriginScroll ZoomOrigin = "scroll"
	OriginReset  ZoomOrigin = "reset"
)

// ViewState is the camera: where the map is looking and how close.
// Tier tracks Zoom within a fixed tolerance (see mapengine).
type ViewState struct {
	Longitude float64  `json:"longitude"`
	Latitude  float64  `json:"latitude"`
	Zoom      float64  `json:"zoom"`
	Tier      ZoomTier `json:"tier"`
	Theme     string   `json:"theme"`
}

// Default camera matches the client's first paint over the continental US.
const (
	DefaultLongitude = -105.0
	DefaultLatitude  = 39.7392
	DefaultTheme     = "light"
)

// FilterState narrows which features are displayed. An empty Categories
// set means no category restriction.
type FilterState struct {
	Keyword    string   `json:"keyword"`
	Categories []string `json:"categories"`
}
