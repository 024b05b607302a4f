package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"click4news/auth"
	"click4news/session"
)

// SignIn handles both login and registration against the identity
// provider. Errors are returned inline for the form to display; they
// never end the session.
func SignIn(c *gin.Context, provider *auth.Provider) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Register bool   `json:"register"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	signIn := provider.SignInWithEmail
	if req.Register {
		signIn = provider.Register
	}

	user, err := signIn(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// GoogleSignIn exchanges a Google credential for a session user.
func GoogleSignIn(c *gin.Context, provider *auth.Provider) {
	var req struct {
		IDToken string `json:"id_token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := provider.SignInWithGoogle(req.IDToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// SignOut clears provider state and drops the user's map session.
func SignOut(c *gin.Context, provider *auth.Provider, sessions *session.Manager) {
	provider.SignOut()
	if uid := currentUserID(c); uid != "" {
		sessions.Drop(uid)
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// PasswordReset emails a reset link.
func PasswordReset(c *gin.Context, provider *auth.Provider) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := provider.SendPasswordReset(req.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password reset email sent."})
}
