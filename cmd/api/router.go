package main

import (
	"context"
	"net/http"
	"time"

	"blog-backend/internal/shared/middleware"
	"blog-backend/pkg/container"
	"blog-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// authBodyLimit caps register/login payloads.
const authBodyLimit = 16 << 10

func SetupRouter(c *container.Container, limiter *middleware.RateLimiter) *gin.Engine {
	router := gin.New()
	if err := router.SetTrustedProxies(c.Config.App.TrustedProxies); err != nil {
		logger.Error("invalid trusted proxies, forwarding headers ignored", err)
		_ = router.SetTrustedProxies(nil)
	}

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
		middleware.Metrics(),
		limiter.Handler(),
	)

	router.GET("/metrics", gin.WrapH(middleware.MetricsHandler()))

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		requireAuth := middleware.AuthMiddleware(c.JWTManager)

		setupAuthRoutes(api, c, requireAuth)
		setupUserRoutes(api, c, requireAuth)
		setupCategoryRoutes(api, c, requireAuth)
		setupPostRoutes(api, c, requireAuth)
		setupCommentRoutes(api, c, requireAuth)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(api *gin.RouterGroup, c *container.Container, requireAuth gin.HandlerFunc) {
	auth := api.Group("/auth", middleware.MaxBodySize(authBodyLimit))
	{
		auth.POST("/register", c.AuthHandler.Register)
		auth.POST("/login", c.AuthHandler.Login)
	}

	api.GET("/users/me", requireAuth, c.AuthHandler.Me)
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(api *gin.RouterGroup, c *container.Container, requireAuth gin.HandlerFunc) {
	users := api.Group("/user", requireAuth)
	{
		users.POST("", c.UserHandler.Create)
		users.GET("/:email", c.UserHandler.GetByEmail)
		users.PUT("/:id", c.UserHandler.Update)
		users.DELETE("/:email", c.UserHandler.DeleteByEmail)
	}
}

// ========================================
// CATEGORY ROUTES
// ========================================
func setupCategoryRoutes(api *gin.RouterGroup, c *container.Container, requireAuth gin.HandlerFunc) {
	categories := api.Group("/categories")
	{
		categories.GET("", c.CategoryHandler.GetAll)
		categories.GET("/:id", c.CategoryHandler.GetByID)

		categories.POST("", requireAuth, c.CategoryHandler.Create)
		categories.PUT("/:id", requireAuth, c.CategoryHandler.Update)
		categories.DELETE("/:id", requireAuth, c.CategoryHandler.Delete)
	}
}

// ========================================
// POST ROUTES
// ========================================
func setupPostRoutes(api *gin.RouterGroup, c *container.Container, requireAuth gin.HandlerFunc) {
	posts := api.Group("/posts")
	{
		posts.GET("", c.PostHandler.GetAll)
		posts.GET("/:id", c.PostHandler.GetByID)
		posts.GET("/:id/relation", c.PostHandler.GetRelation)

		posts.POST("", requireAuth, c.PostHandler.Create)
		posts.PUT("/:id", requireAuth, c.PostHandler.Update)
		posts.DELETE("/:id", requireAuth, c.PostHandler.Delete)
	}
}

// ========================================
// COMMENT ROUTES
// ========================================
func setupCommentRoutes(api *gin.RouterGroup, c *container.Container, requireAuth gin.HandlerFunc) {
	comments := api.Group("/comments", requireAuth)
	{
		comments.GET("", c.CommentHandler.GetAll)
		comments.GET("/:id", c.CommentHandler.GetByID)
		comments.POST("", c.CommentHandler.Create)
		comments.PUT("/:id", c.CommentHandler.Update)
		comments.DELETE("/:id", c.CommentHandler.Delete)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		}
		if appCtx.Config != nil {
			health["version"] = appCtx.Config.App.Version
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = "error: " + err.Error()
			} else if stats, err := appCtx.DB.Stats(); err == nil {
				health["pool"] = stats
			}
		}

		// Redis is optional; its state is reported but never degrades the
		// overall status.
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = "error: " + err.Error()
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			health["status"] = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
