package app

import (
	"exam_prep_backend/docs"
	"exam_prep_backend/internal/config"
	"exam_prep_backend/internal/middleware"
	"exam_prep_backend/internal/model"
	"exam_prep_backend/internal/util"
	"exam_prep_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.NoRoute(util.NotFound)

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由，角色每次从数据库读取
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg, repos.user))
	{
		authGroup.GET("/profile", c.auth.Profile)
		authGroup.GET("/subjects", c.subject.ListSubjects)

		a.registerStudentRoutes(authGroup, c)
		a.registerAuthorRoutes(authGroup, c)
		a.registerAdminRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}
}

func (a *App) registerStudentRoutes(group *gin.RouterGroup, c *controllers) {
	student := group.Group("/student")
	student.Use(middleware.RoleMiddleware(model.Student))
	{
		student.PUT("/primary-subject", c.student.SetPrimarySubject)
		student.GET("/daily-set", c.dailySet.GetDailySet)
		student.POST("/daily-set", c.dailySet.SubmitDailySet)
		student.GET("/attempts", c.student.AttemptHistory)
	}
}

func (a *App) registerAuthorRoutes(group *gin.RouterGroup, c *controllers) {
	author := group.Group("/author")
	author.Use(middleware.RoleMiddleware(model.QAuthor))
	{
		author.POST("/questions", c.question.CreateQuestion)
		author.GET("/questions", c.question.ListQuestions)
		author.GET("/questions/:id", c.question.GetQuestion)
		author.PUT("/questions/:id", c.question.UpdateQuestion)
		author.DELETE("/questions/:id", c.question.DeleteQuestion)
		author.POST("/questions/:id/image", c.question.UploadQuestionImage)
	}
}

func (a *App) registerAdminRoutes(group *gin.RouterGroup, c *controllers) {
	admin := group.Group("/admin")
	admin.Use(middleware.RoleMiddleware(model.SuperAdmin))
	{
		admin.POST("/subjects", c.subject.CreateSubject)
		admin.PUT("/subjects/:id", c.subject.UpdateSubject)
		admin.DELETE("/subjects/:id", c.subject.DeleteSubject)

		admin.GET("/users", c.admin.ListUsers)
		admin.PUT("/users/:id/role", c.admin.UpdateUserRole)
		admin.POST("/users/:id/disable", c.admin.DisableUser)

		admin.GET("/stats", c.admin.Stats)
	}
}
