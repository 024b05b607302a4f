package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"click4news/session"
	"click4news/types"
)

// GetGeoJSON serves the session's loaded (jittered) feature collection.
func GetGeoJSON(c *gin.Context, sessions *session.Manager) {
	s := sessions.Get(currentUserID(c))
	c.JSON(http.StatusOK, types.FeatureCollection{
		Type:     "FeatureCollection",
		Features: s.Features(),
	})
}

// GetFilteredFeatures serves the subset passing the session's filter.
func GetFilteredFeatures(c *gin.Context, sessions *session.Manager) {
	s := sessions.Get(currentUserID(c))
	c.JSON(http.StatusOK, types.FeatureCollection{
		Type:     "FeatureCollection",
		Features: s.FilteredFeatures(),
	})
}

// SetFilter replaces the keyword/category filter.
func SetFilter(c *gin.Context, sessions *session.Manager) {
	var filter types.FilterState
	if err := c.ShouldBindJSON(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s := sessions.Get(currentUserID(c))
	s.SetFilter(filter)
	c.JSON(http.StatusOK, gin.H{"filter": filter})
}

// SetZoom records a zoom change with its origin tag.
func SetZoom(c *gin.Context, sessions *session.Manager) {
	var req struct {
		Zoom   float64          `json:"zoom"`
		Origin types.ZoomOrigin `json:"origin"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Origin == "" {
		req.Origin = types.OriginScroll
	}

	s := sessions.Get(currentUserID(c))
	c.JSON(http.StatusOK, gin.H{"view": s.SetZoom(req.Zoom, req.Origin)})
}

// SetTier jumps to a named zoom tier; reset recenters the camera.
func SetTier(c *gin.Context, sessions *session.Manager) {
	var req struct {
		Tier  types.ZoomTier `json:"tier"`
		Reset bool           `json:"reset"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, ok := types.TierZoomMap[req.Tier]; !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown tier"})
		return
	}

	s := sessions.Get(currentUserID(c))
	c.JSON(http.StatusOK, gin.H{"view": s.SetTier(req.Tier, req.Reset)})
}

// SetTheme switches between the light and dark map styles.
func SetTheme(c *gin.Context, sessions *session.Manager) {
	var req struct {
		Theme string `json:"theme"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Theme != "light" && req.Theme != "dark" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown theme"})
		return
	}

	s := sessions.Get(currentUserID(c))
	c.JSON(http.StatusOK, gin.H{"view": s.SetTheme(req.Theme)})
}

// Click resolves a map click to nearby articles and starts the ring
// feedback. An empty candidate set is a no-op for popup purposes.
func Click(c *gin.Context, sessions *session.Manager) {
	var req struct {
		Longitude float64 `json:"longitude"`
		Latitude  float64 `json:"latitude"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s := sessions.Get(currentUserID(c))
	candidates := s.Click(req.Longitude, req.Latitude)
	c.JSON(http.StatusOK, gin.H{"candidates": len(candidates)})
}
