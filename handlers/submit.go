package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"click4news/fetch"
	"click4news/moderation"
	"click4news/submit"
	"click4news/types"
)

// SubmitNews runs the add-news flow. Coordinates come from the browser's
// geolocation grant; a request without them behaves like a denied
// permission prompt and aborts before any network call. The response
// confirms initiation, not delivery — the post is fire-and-forget.
func SubmitNews(c *gin.Context, client *fetch.Client, checker *moderation.Checker) {
	var req struct {
		types.SubmissionForm
		Coordinates *types.Coordinates `json:"coordinates"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	geo := submit.FixedGeolocator{Coords: req.Coordinates, Granted: req.Coordinates != nil}
	submitter := submit.NewSubmitter(geo, client, checker)
	user := &types.User{UID: currentUserID(c)}

	sub, err := submitter.Submit(c.Request.Context(), user, req.SubmissionForm)
	switch {
	case errors.Is(err, submit.ErrTitleRequired), errors.Is(err, submit.ErrSummaryRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, submit.ErrNoLocation):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{
			"message":    "News article submitted!",
			"submission": sub,
		})
	}
}

// GetUserStats fetches the credibility snapshot for the signed-in user.
func GetUserStats(c *gin.Context, client *fetch.Client) {
	stats := client.FetchUserStats(currentUserID(c))
	c.JSON(http.StatusOK, stats)
}
