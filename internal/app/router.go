package app

import (
	"learnhub_backend/docs"
	"learnhub_backend/internal/config"
	"learnhub_backend/internal/middleware"
	"learnhub_backend/internal/model"
	"learnhub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	api := router.Group("/api")

	// public routes; optional auth personalizes paywall state and
	// attributes checkout sessions
	api.POST("/auth/register", c.auth.Register)
	api.POST("/auth/login", c.auth.Login)

	browse := api.Group("/")
	browse.Use(middleware.TryAuthMiddleware(cfg))
	{
		browse.GET("/courses", c.course.ListCourses)
		browse.GET("/courses/:courseId", c.course.GetCourse)
		browse.GET("/courses/:courseId/materials/:materialId/quiz/leaderboard", c.quiz.GetLeaderboard)
		browse.GET("/courses/:courseId/materials/:materialId/quiz/stats", c.quiz.GetStats)
		browse.GET("/courses/:courseId/materials/:materialId/comments", c.forum.ListComments)
		browse.GET("/leaderboard", c.achievement.GetGlobalLeaderboard)
		browse.GET("/forum/threads", c.forum.ListThreads)
		browse.GET("/forum/threads/:threadId", c.forum.GetThread)
		browse.POST("/checkout", c.checkout.CreateSession)
	}

	authed := api.Group("/")
	authed.Use(middleware.AuthMiddleware(cfg))
	{
		authed.GET("/auth/me", c.auth.Me)
		authed.PUT("/profile", c.user.UpdateProfile)

		authed.POST("/courses/:courseId/enroll", c.course.Enroll)
		authed.GET("/enrollments", c.course.ListEnrollments)
		authed.GET("/courses/:courseId/progress", c.course.GetCourseProgress)
		authed.PUT("/courses/:courseId/progress", c.course.SetCourseProgress)
		authed.GET("/courses/:courseId/materials/:materialId/progress", c.course.GetMaterialProgress)
		authed.PUT("/courses/:courseId/materials/:materialId/progress", c.course.MarkMaterial)

		authed.GET("/courses/:courseId/materials/:materialId/quiz", c.quiz.GetQuiz)
		authed.POST("/courses/:courseId/materials/:materialId/quiz", c.quiz.SubmitQuiz)
		authed.GET("/courses/:courseId/materials/:materialId/quiz/score", c.quiz.GetMyScore)

		authed.GET("/achievements", c.achievement.GetUserAchievements)

		authed.POST("/forum/threads", c.forum.CreateThread)
		authed.PUT("/forum/threads/:threadId", c.forum.UpdateThread)
		authed.DELETE("/forum/threads/:threadId", c.forum.DeleteThread)
		authed.POST("/forum/threads/:threadId/replies", c.forum.CreateReply)
		authed.PUT("/forum/replies/:replyId", c.forum.UpdateReply)
		authed.DELETE("/forum/replies/:replyId", c.forum.DeleteReply)

		authed.POST("/courses/:courseId/materials/:materialId/comments", c.forum.CreateComment)
		authed.PUT("/comments/:commentId", c.forum.UpdateComment)
		authed.DELETE("/comments/:commentId", c.forum.DeleteComment)

		authed.POST("/purchases/confirm", c.checkout.ConfirmPurchase)
		authed.GET("/purchases", c.checkout.ListPurchases)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/users", c.user.ListUsers)
		admin.PATCH("/users/:userId/role", c.user.UpdateUserRole)
		admin.POST("/courses/:courseId/image", c.course.UploadCourseImage)
	}

	adminForum := api.Group("/forum")
	adminForum.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		adminForum.PATCH("/threads/:threadId/pin", c.forum.PinThread)
	}
}
