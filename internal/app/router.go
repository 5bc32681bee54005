package app

import (
	"estudo_backend/docs"
	"estudo_backend/internal/config"
	"estudo_backend/internal/middleware"
	"estudo_backend/internal/model"
	"estudo_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	router.GET("/health", c.health.HealthCheck)
	router.GET("/ping", c.health.Ping)
	router.POST("/signup", c.auth.Signup)
	router.POST("/login", c.auth.Login)

	// 2. 需要授权的路由
	authorized := router.Group("/")
	authorized.Use(middleware.AuthMiddleware(cfg.JWT.Secret, a.services.Auth))
	{
		authorized.GET("/me", c.auth.Me)
		authorized.POST("/logout", c.auth.Logout)
		authorized.POST("/users/me/photo", c.user.UploadPhoto)

		authorized.GET("/questions", c.question.List)
		authorized.GET("/questions/:id", c.question.Get)

		authorized.POST("/responses", c.response.Submit)
		authorized.GET("/users/:userId/responses", c.response.ListForUser)
		authorized.GET("/users/:userId/progress", c.response.Progress)
		authorized.GET("/users/:userId/performance", c.response.Performance)

		// 教师相关接口
		authorized.GET("/responses", middleware.RoleMiddleware(model.Professor), c.response.ListAll)
	}
}
