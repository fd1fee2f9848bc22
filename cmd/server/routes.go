package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"rideathon.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	authHandler       *handlers.AuthHandler
	teamHandler       *handlers.TeamHandler
	challengeHandler  *handlers.ChallengeHandler
	uploadHandler     *handlers.UploadHandler
	scoreboardHandler *handlers.ScoreboardHandler
	adminHandler      *handlers.AdminHandler
	authMiddleware    gin.HandlerFunc
	adminMiddleware   gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", d.authHandler.Login)
		}

		// Team routes (public read)
		teams := v1.Group("/teams")
		{
			teams.GET("", d.teamHandler.ListTeams)
		}

		// Challenge routes (read is public, transitions need a team session)
		challenges := v1.Group("/challenges")
		{
			challenges.GET("", d.challengeHandler.ListChallenges)
			challenges.GET("/:id", d.challengeHandler.GetChallenge)
			challenges.POST("/:id/activate", d.authMiddleware, d.challengeHandler.ActivateChallenge)
			challenges.POST("/:id/complete", d.authMiddleware, d.challengeHandler.CompleteChallenge)
			challenges.POST("/:id/forfeit", d.authMiddleware, d.challengeHandler.ForfeitChallenge)
		}

		// Track upload routes (protected)
		uploads := v1.Group("/uploads")
		uploads.Use(d.authMiddleware)
		{
			uploads.POST("", d.uploadHandler.UploadTrack)
			uploads.GET("", d.uploadHandler.ListUploads)
		}

		// Scoreboard routes (public)
		scoreboard := v1.Group("/scoreboard")
		{
			scoreboard.GET("", d.scoreboardHandler.GetLeaderboard)
			scoreboard.GET("/teams/:id", d.scoreboardHandler.GetTeamScorecard)
		}

		// Admin routes (protected by the operator secret)
		admin := v1.Group("/admin")
		admin.Use(d.adminMiddleware)
		{
			admin.POST("/teams", d.adminHandler.CreateTeam)
			admin.GET("/teams/:id/modifiers", d.adminHandler.ListTeamModifiers)
			admin.GET("/teams/:id/offsets", d.adminHandler.ListTeamOffsets)

			admin.POST("/challenges", d.adminHandler.CreateChallenge)

			admin.POST("/modifiers", d.adminHandler.CreateModifier)
			admin.POST("/modifiers/:id/close", d.adminHandler.CloseModifier)
			admin.POST("/offsets", d.adminHandler.CreateOffset)

			admin.POST("/recompute", d.adminHandler.RecomputeScorecards)
		}
	}
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Admin-Secret, X-Request-ID")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "rideathon-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
