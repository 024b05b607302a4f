// Package fetch holds the one-shot remote calls the client makes: the
// geodata feed, the per-user stats lookup, and the best-effort posts for
// votes and submissions.
package fetch

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"click4news/types"
)

// Client wraps the remote endpoints. Zero retries, zero backoff: every
// call is attempted at most once per user action, and fetch failures
// degrade to empty values rather than surfacing to the user.
type Client struct {
	GeoJSONURL    string
	StatsURL      string
	VoteURL       string
	SubmissionURL string
	HTTP          *http.Client

	inflight sync.WaitGroup
}

func NewClient(geoJSONURL, statsURL, voteURL, submissionURL string) *Client {
	return &Client{
		GeoJSONURL:    geoJSONURL,
		StatsURL:      statsURL,
		VoteURL:       voteURL,
		SubmissionURL: submissionURL,
		HTTP:          http.DefaultClient,
	}
}

// FetchGeoJSON pulls the news feature collection. On any failure it
// returns an empty collection; the map renders nothing rather than
// blocking the user.
func (c *Client) FetchGeoJSON() types.FeatureCollection {
	empty := types.FeatureCollection{Type: "FeatureCollection", Features: []types.Feature{}}

	resp, err := c.HTTP.Get(c.GeoJSONURL)
	if err != nil {
		log.Printf("Error fetching geojson: %v", err)
		return empty
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Geojson endpoint returned status: %s", resp.Status)
		return empty
	}

	var collection types.FeatureCollection
	if err := json.NewDecoder(resp.Body).Decode(&collection); err != nil {
		log.Printf("Error decoding geojson: %v", err)
		return empty
	}
	if collection.Features == nil {
		collection.Features = []types.Feature{}
	}
	return collection
}
