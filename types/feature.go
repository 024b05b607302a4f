package types

// FeatureCollection is the root of the geodata document served by the
// news feed endpoint. Feature order is preserved end to end.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature is one news event pinned to a point on the map.
type Feature struct {
	Type       string         `json:"type"`
	Geometry   Geometry       `json:"geometry"`
	Properties NewsProperties `json:"properties"`
}

// Geometry holds a GeoJSON Point. Coordinates are [longitude, latitude].
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// NewsProperties carries the article payload attached to a feature.
type NewsProperties struct {
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Link      string `json:"link"`
	Category  string `json:"category"`
	Timestamp int64  `json:"timestamp"` // unix seconds
	Likes     int    `json:"likes"`
	FakeFlags int    `json:"fakeflags"`
	MessageID string `json:"message_id"`
	UserID    string `json:"userid"`
}

// CategoryUserGenerated marks articles submitted through the client
// rather than ingested from a news source.
const CategoryUserGenerated = "User-Generated"

func (f Feature) Longitude() float64 {
	if len(f.Geometry.Coordinates) > 0 {
		return f.Geometry.Coordinates[0]
	}
	return 0
}

func (f Feature) Latitude() float64 {
	if len(f.Geometry.Coordinates) > 1 {
		return f.Geometry.Coordinates[1]
	}
	return 0
}

// NewPointFeature builds a Point feature from a lon/lat pair.
func NewPointFeature(lng, lat float64, props NewsProperties) Feature {
	return Feature{
		Type: "Feature",
		Geometry: Geometry{
			Type:        "Point",
			Coordinates: []float64{lng, lat},
		},
		Properties: props,
	}
}
