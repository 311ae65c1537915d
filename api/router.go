package api

import (
	"github.com/slugspace/slugspace/api/handlers"
	"github.com/slugspace/slugspace/api/middleware"
	"github.com/slugspace/slugspace/configs"

	"github.com/gin-gonic/gin"
)

// SetupRouter 设置API路由
func SetupRouter(router *gin.Engine, cfg *configs.Config) {
	router.Use(middleware.RateLimit(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst))

	// 公共API
	public := router.Group("/api")
	{
		// 认证相关
		public.POST("/auth/login", handlers.Login)
		public.POST("/auth/register", handlers.Register)

		// 书院测评
		public.GET("/survey/questions", handlers.GetSurveyQuestions)
		public.POST("/survey", handlers.SubmitSurvey)
		public.POST("/colleges/match", handlers.MatchCollegesByTags)
	}

	// 需要认证的API
	authorized := router.Group("/api")
	authorized.Use(middleware.Auth())
	{
		// 用户相关
		authorized.GET("/user", handlers.GetCurrentUser)
		authorized.GET("/user/profile", handlers.GetUserProfile)
		authorized.PUT("/user/profile", handlers.UpdateUserProfile)
		authorized.POST("/auth/logout", handlers.Logout)

		// 社团相关
		authorized.GET("/clubs", handlers.ListClubs)
		authorized.GET("/clubs/:id", handlers.GetClub)
		authorized.POST("/clubs/:id/join", handlers.JoinClub)
		authorized.DELETE("/clubs/:id/join", handlers.LeaveClub)
		authorized.GET("/clubs/:id/members", handlers.GetClubMembers)

		// 课程与学习小组
		authorized.GET("/courses", handlers.ListCourses)
		authorized.POST("/study-groups/join", handlers.JoinStudyGroup)
		authorized.DELETE("/study-groups/:code", handlers.LeaveStudyGroup)
		authorized.GET("/study-groups/:code/members", handlers.GetStudyGroupMembers)

		// 书院
		authorized.GET("/colleges", handlers.ListColleges)

		// 搜索
		authorized.GET("/search", handlers.Search)

		// 推荐
		recHandler := handlers.NewRecommendationHandler(cfg)
		recHandler.RegisterRoutes(authorized)
	}

	// 管理员API
	admin := router.Group("/api/admin")
	admin.Use(middleware.Auth(), middleware.AdminOnly())
	{
		admin.POST("/clubs", handlers.CreateClub)
		admin.GET("/analytics", handlers.GetAnalyticsDashboard)
	}
}
