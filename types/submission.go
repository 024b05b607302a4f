package types

// SubmissionForm is what the add-news modal collects from the user.
// Coordinates come from the browser geolocation query, not the form.
type SubmissionForm struct {
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Link     string `json:"link"`
	Category string `json:"category"`
}

// Submission is the fixed-shape payload posted to the news intake
// endpoint. Date and Time are the two halves of an ISO-8601 timestamp.
type Submission struct {
	MessageID string  `json:"message_id"`
	Title     string  `json:"title"`
	Summary   string  `json:"summary"`
	Link      string  `json:"link"`
	Category  string  `json:"category"` // always "User-Generated"
	Language  string  `json:"language"`
	Date      string  `json:"date"` // 2006-01-02
	Time      string  `json:"time"` // 15:04:05Z
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	UserID    string  `json:"userid"`
	PlaceName string  `json:"place_name,omitempty"`
}

// Coordinates is a lon/lat pair as delivered by the geolocation query.
type Coordinates struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}
