package fetch

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"

	"click4news/types"
)

// FetchUserStats posts the user id to the stats endpoint and returns the
// credibility snapshot. Failures come back as zeroed stats, never as a
// blocking error.
func (c *Client) FetchUserStats(userID string) types.UserStats {
	var stats types.UserStats

	payload, err := json.Marshal(map[string]string{"userid": userID})
	if err != nil {
		log.Printf("Error marshaling stats request: %v", err)
		return stats
	}

	resp, err := c.HTTP.Post(c.StatsURL, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		log.Printf("Error fetching user stats: %v", err)
		return stats
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Stats endpoint returned status: %s", resp.Status)
		return stats
	}

	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		log.Printf("Error decoding user stats: %v", err)
		return types.UserStats{}
	}
	return stats
}
