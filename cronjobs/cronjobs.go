package cronjobs

import (
	"log"
	"sync"

	"github.com/robfig/cron/v3"

	"click4news/fetch"
	"click4news/types"
)

// SnapshotCache holds the most recent geodata pull. New sessions copy it
// once at creation; it is never pushed into a live session, so each
// mount keeps the one-shot load semantics.
type SnapshotCache struct {
	mu       sync.RWMutex
	features []types.Feature
}

func NewSnapshotCache() *SnapshotCache {
	return &SnapshotCache{features: []types.Feature{}}
}

// Snapshot returns the cached feature set.
func (c *SnapshotCache) Snapshot() []types.Feature {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.features
}

// Refresh pulls the feed and swaps the cache. A failed fetch yields an
// empty collection, which is kept: stale data is not preferred over the
// feed's current truth.
func (c *SnapshotCache) Refresh(client *fetch.Client) {
	collection := client.FetchGeoJSON()
	c.mu.Lock()
	c.features = collection.Features
	c.mu.Unlock()
	log.Printf("Geodata snapshot refreshed: %d features", len(collection.Features))
}

// InitCronJobs schedules the periodic snapshot refresh and primes the
// cache immediately so the first session does not start empty.
func InitCronJobs(client *fetch.Client, cache *SnapshotCache) *cron.Cron {
	log.Println("\nStarting Cron Jobs -------------------------------------------------------")
	c := cron.New()

	cache.Refresh(client)

	// Geodata feed: run every 10 minutes
	_, err := c.AddFunc("*/10 * * * *", func() {
		log.Println("\nCronJob: Geodata Refresh Running")
		cache.Refresh(client)
	})
	if err != nil {
		log.Println("Error scheduling Geodata Refresh:", err)
	}

	c.Start()
	return c
}
