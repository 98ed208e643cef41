package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/surveyforge/question-server/controllers"
	"github.com/surveyforge/question-server/middleware"
)

func SetupRoutes(r *gin.Engine) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")
	{
		user := api.Group("/user")
		{
			user.POST("/register", controllers.Register)
			user.POST("/login", controllers.Login)
			user.POST("/google/login", controllers.GoogleLogin)
			user.GET("/info", middleware.AuthJWT(), controllers.UserInfo)
		}

		question := api.Group("/question")
		question.Use(middleware.AuthJWT())
		{
			question.POST("", middleware.RateLimitQuestionCreate(), controllers.CreateQuestion)
			question.GET("", controllers.ListQuestions)
			question.GET("/:id", controllers.GetQuestion)
			question.PATCH("/:id", middleware.CheckQuestionOwner(), controllers.UpdateQuestion)
			question.DELETE("/:id", middleware.CheckQuestionOwner(), controllers.DeleteQuestion)
			question.DELETE("", controllers.DeleteManyQuestions)
			question.POST("/duplicate/:id", controllers.DuplicateQuestion)
			question.POST("/:id/export", middleware.CheckQuestionOwner(), controllers.CreateExport)
		}

		// Submissions come from respondents, no login required.
		api.POST("/answer", middleware.RateLimitAnswerSubmit(), controllers.SubmitAnswer)

		stat := api.Group("/stat")
		stat.Use(middleware.AuthJWT())
		{
			stat.GET("/:id", controllers.GetStatList)
			stat.GET("/:id/:componentFeId", controllers.GetComponentStat)
		}

		api.GET("/exports/:job_id", middleware.AuthJWT(), controllers.GetExport)
	}
}
