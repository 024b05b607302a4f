package submit

import (
	"context"
	"errors"

	"click4news/types"
)

// ErrPermissionDenied mirrors the browser's geolocation denial.
var ErrPermissionDenied = errors.New("geolocation permission denied")

// FixedGeolocator reports coordinates already granted by the caller's
// browser. The HTTP surface builds one per submission from the request;
// a request without coordinates behaves like a denied permission prompt.
type FixedGeolocator struct {
	Coords  *types.Coordinates
	Granted bool
}

func (g FixedGeolocator) CurrentPosition(ctx context.Context) (types.Coordinates, error) {
	if !g.Granted || g.Coords == nil {
		return types.Coordinates{}, ErrPermissionDenied
	}
	return *g.Coords, nil
}
