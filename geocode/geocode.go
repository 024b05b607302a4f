package geocode

import (
	"context"
	"fmt"
	"os"
	"sync"

	"googlemaps.github.io/maps"
)

// mapsClient is a singleton maps client instance.
var (
	mapsClient *maps.Client
	clientOnce sync.Once
)

// InitMapsClient initializes and returns a singleton Google Maps client.
func InitMapsClient() (*maps.Client, error) {
	var err error
	clientOnce.Do(func() {
		apiKey := os.Getenv("MAPS_CREDENTIALS")
		if apiKey == "" {
			err = fmt.Errorf("MAPS_CREDENTIALS environment variable not set")
			return
		}
		mapsClient, err = maps.NewClient(maps.WithAPIKey(apiKey))
	})
	if mapsClient == nil && err == nil {
		err = fmt.Errorf("maps client not initialized")
	}
	return mapsClient, err
}

// ReversePlaceName turns a submission's coordinates into a formatted
// address for the payload. Best effort: callers treat an error as "no
// place name", never as a reason to block the submission.
func ReversePlaceName(ctx context.Context, lat, lng float64) (string, error) {
	client, err := InitMapsClient()
	if err != nil {
		return "", err
	}

	req := &maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: lat, Lng: lng},
	}

	results, err := client.ReverseGeocode(ctx, req)
	if err != nil {
		return "", err
	}
	if len(results) == 0 {
		return "", fmt.Errorf("no reverse geocoding results for (%v, %v)", lat, lng)
	}
	return results[0].FormattedAddress, nil
}
