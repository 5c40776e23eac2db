package app

import (
	"satisfaction_survey_backend/docs"
	"satisfaction_survey_backend/internal/config"
	"satisfaction_survey_backend/internal/middleware"
	"satisfaction_survey_backend/internal/model"
	"satisfaction_survey_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config, rdb *redis.Client) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Public surface: the survey page and login need no session.
	router.GET("/api/health", c.health.Check)
	router.POST("/api/auth/login", c.auth.Login)
	router.POST("/api/submit-response", c.survey.SubmitResponse)
	router.GET("/api/departments", c.survey.ListDepartments)
	router.GET("/api/questions", c.survey.ListQuestions)
	router.GET("/api/qrcode/central.png", c.department.CentralQR)

	auth := router.Group("/api")
	auth.Use(middleware.AuthMiddleware(cfg, rdb))
	{
		auth.POST("/auth/logout", c.auth.Logout)
		auth.GET("/auth/me", c.auth.Me)

		auth.GET("/departments/:code/summary", c.department.Summary)
		auth.GET("/departments/:code/yearly", c.department.Yearly)
		auth.GET("/departments/:code/export.xlsx", c.department.ExportExcel)
		auth.GET("/departments/:code/export.pdf", c.department.ExportPdf)

		auth.GET("/comments/search", c.comment.Search)
		auth.GET("/comments/summary", c.comment.Summary)
		auth.GET("/comments/actions", c.comment.ListActions)
		auth.POST("/comments/actions", middleware.RoleMiddleware(model.DeptHead), c.comment.CreateAction)
		auth.PUT("/comments/actions", middleware.RoleMiddleware(model.Staff), c.comment.UpdateAction)

		exec := auth.Group("/exec")
		exec.Use(middleware.RoleMiddleware(model.Exec))
		{
			exec.GET("/rank", c.exec.Rank)
			exec.GET("/heatmap", c.exec.Heatmap)
			exec.GET("/trend", c.exec.Trend)
		}

		admin := auth.Group("/admin")
		admin.Use(middleware.RoleMiddleware(model.Admin))
		{
			admin.GET("/departments", c.survey.ListDepartments)
			admin.POST("/departments", c.department.CreateDepartment)
			admin.PUT("/departments/:id", c.department.UpdateDepartment)
			admin.DELETE("/departments/:id", c.department.DeleteDepartment)
			admin.POST("/departments/:id/qrcode", c.department.RegenerateQR)

			admin.GET("/questions", c.question.List)
			admin.POST("/questions", c.question.Create)
			admin.PUT("/questions/:id", c.question.Update)
			admin.DELETE("/questions/:id", c.question.Delete)

			admin.GET("/users", c.user.List)
			admin.POST("/users", c.user.Create)
			admin.PUT("/users/:id", c.user.Update)
			admin.DELETE("/users/:id", c.user.Delete)
		}
	}
}
