package routes

import (
	"github.com/gin-gonic/gin"

	"click4news/auth"
	"click4news/fetch"
	"click4news/handlers"
	"click4news/moderation"
	"click4news/session"
)

// SetupRouter wires the client surface. Clients are injected through
// closures; nothing reaches for process-global state.
func SetupRouter(
	provider *auth.Provider,
	verifier auth.TokenVerifier,
	sessions *session.Manager,
	client *fetch.Client,
	checker *moderation.Checker,
) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Hello, welcome to Click4News!",
		})
	})

	// Interactive sign-in has no token yet.
	authGroup := r.Group("/api/click4news/auth")
	{
		authGroup.POST("/signin", func(c *gin.Context) {
			handlers.SignIn(c, provider)
		})
		authGroup.POST("/google", func(c *gin.Context) {
			handlers.GoogleSignIn(c, provider)
		})
		authGroup.POST("/reset", func(c *gin.Context) {
			handlers.PasswordReset(c, provider)
		})
	}

	// Everything else runs inside a verified user session.
	api := r.Group("/api/click4news")
	api.Use(handlers.RequireUser(verifier))
	{
		api.POST("/auth/signout", func(c *gin.Context) {
			handlers.SignOut(c, provider, sessions)
		})

		api.GET("/geojson", func(c *gin.Context) {
			handlers.GetGeoJSON(c, sessions)
		})
		api.GET("/features", func(c *gin.Context) {
			handlers.GetFilteredFeatures(c, sessions)
		})
		api.POST("/filter", func(c *gin.Context) {
			handlers.SetFilter(c, sessions)
		})
		api.POST("/view/zoom", func(c *gin.Context) {
			handlers.SetZoom(c, sessions)
		})
		api.POST("/view/tier", func(c *gin.Context) {
			handlers.SetTier(c, sessions)
		})
		api.POST("/view/theme", func(c *gin.Context) {
			handlers.SetTheme(c, sessions)
		})
		api.POST("/click", func(c *gin.Context) {
			handlers.Click(c, sessions)
		})

		api.GET("/popup", func(c *gin.Context) {
			handlers.GetPopup(c, sessions)
		})
		api.POST("/popup/next", func(c *gin.Context) {
			handlers.NextArticle(c, sessions)
		})
		api.POST("/popup/dismiss", func(c *gin.Context) {
			handlers.DismissPopup(c, sessions)
		})
		api.POST("/vote", func(c *gin.Context) {
			handlers.CastVote(c, sessions)
		})

		api.POST("/submit", func(c *gin.Context) {
			handlers.SubmitNews(c, client, checker)
		})
		api.GET("/stats", func(c *gin.Context) {
			handlers.GetUserStats(c, client)
		})
	}

	return r
}
