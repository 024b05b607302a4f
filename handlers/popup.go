package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"click4news/session"
	"click4news/types"
)

// GetPopup reports the popup state; before the ring animation finishes
// only the ring radius is populated.
func GetPopup(c *gin.Context, sessions *session.Manager) {
	s := sessions.Get(currentUserID(c))
	c.JSON(http.StatusOK, s.Popup())
}

// NextArticle cycles to the next candidate, wrapping to the first.
func NextArticle(c *gin.Context, sessions *session.Manager) {
	s := sessions.Get(currentUserID(c))
	s.NextArticle()
	c.JSON(http.StatusOK, s.Popup())
}

// DismissPopup clears the selection and cancels the ring animation.
func DismissPopup(c *gin.Context, sessions *session.Manager) {
	s := sessions.Get(currentUserID(c))
	s.Dismiss()
	c.JSON(http.StatusOK, gin.H{"message": "dismissed"})
}

// CastVote toggles like/flag on the currently shown article.
func CastVote(c *gin.Context, sessions *session.Manager) {
	var req struct {
		Type types.VoteKind `json:"type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Type != types.VoteLiked && req.Type != types.VoteFakeFlagged {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown vote type"})
		return
	}

	s := sessions.Get(currentUserID(c))
	state, ok := s.CastVote(req.Type)
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": "no article selected"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"votes": state})
}
