package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"click4news/auth"
)

const userIDKey = "userID"

// RequireUser verifies the Bearer ID token with the Firebase verifier
// and stashes the uid for the handler. Auth notifications are the source
// of truth: the uid always comes from the token, never from a cached
// identity.
func RequireUser(verifier auth.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		idToken := strings.TrimPrefix(header, "Bearer ")
		if idToken == "" || idToken == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		token, err := verifier.VerifyIDToken(c.Request.Context(), idToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(userIDKey, token.UID)
		c.Next()
	}
}

func currentUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
