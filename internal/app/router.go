package app

import (
	"bible_challenge_backend/docs"
	"bible_challenge_backend/internal/config"
	"bible_challenge_backend/internal/middleware"
	"bible_challenge_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 공개 라우트 (로그인 불필요)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.POST("/reset-password", c.auth.ResetPassword)
		public.GET("/canon", c.reading.GetCanon)
	}

	// 인증 필요한 라우트
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.auth.GetProfile)

		authGroup.POST("/readings", c.reading.LogDaily)
		authGroup.POST("/readings/chapters", c.reading.MarkChapter)
		authGroup.GET("/readings/recent", c.reading.GetRecent)
		authGroup.GET("/readings/chapter-map", c.reading.GetChapterMap)

		authGroup.GET("/leaderboard/my-group", c.leaderboard.GetMyGroup)
		authGroup.GET("/leaderboard/groups", c.leaderboard.GetMonthly)
	}
}
