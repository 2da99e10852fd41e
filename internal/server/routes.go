package server

import (
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"

	"techblog/internal/server/handlers"
	"techblog/internal/server/middleware"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authHandler *handlers.AuthHandler,
	questionHandler *handlers.QuestionHandler,
	answerHandler *handlers.AnswerHandler,
	voteHandler *handlers.VoteHandler,
	tagHandler *handlers.TagHandler,
	userHandler *handlers.UserHandler,
) {
	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check route
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		public.GET("/questions", questionHandler.ListQuestions)
		public.GET("/questions/:id", questionHandler.GetQuestion)
		public.GET("/questions/:id/answers", answerHandler.ListAnswers)
		public.GET("/tags", tagHandler.ListTags)
	}

	// Protected routes (require JWT authentication)
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuth(jwtSecret))
	{
		protected.GET("/profile", userHandler.GetProfile)
		protected.POST("/profile/avatar", userHandler.UploadAvatar)
		protected.GET("/profile/reputation", userHandler.ReputationHistory)

		protected.POST("/questions", questionHandler.CreateQuestion)
		protected.DELETE("/questions/:id", questionHandler.DeleteQuestion)
		protected.POST("/questions/:id/comments", questionHandler.AddComment)
		protected.POST("/questions/:id/answers", answerHandler.CreateAnswer)
		protected.POST("/questions/:id/vote", voteHandler.CastQuestionVote)

		protected.POST("/answers/:id/accept", answerHandler.AcceptAnswer)
		protected.POST("/answers/:id/comments", answerHandler.AddComment)
		protected.POST("/answers/:id/vote", voteHandler.CastAnswerVote)
	}

	// Admin routes (require JWT + admin claim)
	admin := router.Group("/api/v1/admin")
	admin.Use(middleware.JWTAuth(jwtSecret), middleware.AdminOnly())
	{
		admin.PUT("/questions/:id/status", questionHandler.UpdateStatus)
		admin.PUT("/answers/:id/status", answerHandler.UpdateStatus)
		admin.PUT("/tags/:name", tagHandler.DefineTag)
	}
}
