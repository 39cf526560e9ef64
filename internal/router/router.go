package router

import (
	"github.com/gin-gonic/gin"
	"github.com/ikkim/cosmos-backend/config"
	"github.com/ikkim/cosmos-backend/internal/app/controller"
	"github.com/ikkim/cosmos-backend/internal/middleware"
)

type Router struct {
	authController         *controller.AuthController
	galaxyController       *controller.GalaxyController
	planetController       *controller.PlanetController
	commentController      *controller.CommentController
	notificationController *controller.NotificationController
	uploadController       *controller.UploadController
	authMiddleware         *middleware.AuthMiddleware
	config                 *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	galaxyController *controller.GalaxyController,
	planetController *controller.PlanetController,
	commentController *controller.CommentController,
	notificationController *controller.NotificationController,
	uploadController *controller.UploadController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:         authController,
		galaxyController:       galaxyController,
		planetController:       planetController,
		commentController:      commentController,
		notificationController: notificationController,
		uploadController:       uploadController,
		authMiddleware:         authMiddleware,
		config:                 cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "COSMOS API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.authController.Login)
			auth.POST("/logout", r.authMiddleware.Authenticate(), r.authController.Logout)
			auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.GetMe)
			auth.PUT("/me", r.authMiddleware.Authenticate(), r.authController.UpdateMe)
		}

		galaxies := v1.Group("/galaxies")
		{
			galaxies.GET("", r.galaxyController.GetGalaxies)
			galaxies.GET("/:id", r.galaxyController.GetGalaxy)
			galaxies.POST("", r.authMiddleware.Authenticate(), r.galaxyController.CreateGalaxy)
			galaxies.PUT("/:id", r.authMiddleware.Authenticate(), r.galaxyController.UpdateGalaxy)
			galaxies.DELETE("/:id", r.authMiddleware.Authenticate(), r.galaxyController.DeleteGalaxy)
		}

		planets := v1.Group("/planets")
		{
			planets.GET("", r.planetController.GetPlanets)
			planets.GET("/:id", r.planetController.GetPlanet)
			planets.POST("", r.authMiddleware.Authenticate(), r.planetController.CreatePlanet)
			planets.PUT("/:id", r.authMiddleware.Authenticate(), r.planetController.UpdatePlanet)
			planets.DELETE("/:id", r.authMiddleware.Authenticate(), r.planetController.DeletePlanet)
		}

		// 댓글 조회는 비로그인도 가능하지만 로그인 시 is_liked가 채워진다
		comments := v1.Group("/comments")
		{
			comments.GET("", r.authMiddleware.OptionalAuthenticate(), r.commentController.GetComments)
			comments.GET("/:id", r.authMiddleware.OptionalAuthenticate(), r.commentController.GetComment)
			comments.POST("", r.authMiddleware.Authenticate(), r.commentController.CreateComment)
			comments.POST("/:id/like", r.authMiddleware.Authenticate(), r.commentController.ToggleCommentLike)
			comments.DELETE("/:id", r.authMiddleware.Authenticate(), r.commentController.DeleteComment)
		}

		notifications := v1.Group("/notifications")
		notifications.Use(r.authMiddleware.Authenticate())
		{
			notifications.GET("", r.notificationController.GetNotifications)
			notifications.GET("/unread-count", r.notificationController.GetUnreadCount)
			notifications.PATCH("/:id/read", r.notificationController.MarkAsRead)
			notifications.PATCH("/read-all", r.notificationController.MarkAllAsRead)
			notifications.DELETE("/:id", r.notificationController.DeleteNotification)
		}

		// WebSocket은 쿼리 파라미터 토큰 인증도 허용
		v1.GET("/ws/notifications", r.authMiddleware.Authenticate(), r.notificationController.WebSocketHandler)

		upload := v1.Group("/upload")
		upload.Use(r.authMiddleware.Authenticate())
		{
			upload.POST("/presigned-url", r.uploadController.GeneratePresignedURL)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
