package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/DavidBatoDev/pup-alumni-portal-server/controllers"
	"github.com/DavidBatoDev/pup-alumni-portal-server/middleware"
)

func SetupRoutes(r *gin.Engine) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", controllers.Register)
			auth.POST("/login", controllers.Login)
		}

		protected := api.Group("/")
		protected.Use(middleware.AuthJWT())
		{
			protected.GET("/me", controllers.Me)

			protected.GET("/profile", controllers.GetProfile)
			protected.POST("/profile", controllers.UpdateProfile)
			protected.POST("/profile/addresses", controllers.AddAddress)
			protected.PUT("/profile/addresses/:id", controllers.UpdateAddress)
			protected.POST("/profile/employment-history", controllers.AddEmploymentHistory)
			protected.PUT("/profile/employment-history/:id", controllers.UpdateEmploymentHistory)
			protected.POST("/profile/education-history", controllers.AddEducationHistory)
			protected.PUT("/profile/education-history/:id", controllers.UpdateEducationHistory)

			protected.GET("/alumni", controllers.GetAllAlumniExceptSelf)
			protected.GET("/alumni/:id", controllers.GetSpecificAlumni)
			protected.GET("/notifications", controllers.GetNotifications)

			surveys := protected.Group("/surveys")
			{
				surveys.GET("", controllers.GetAllSurveys)
				surveys.GET("/unanswered", controllers.GetUnansweredSurveys)
				surveys.GET("/answered", controllers.GetAnsweredSurveys)
				surveys.GET("/:id", controllers.GetSurveyWithQuestions)
				surveys.POST("/:id/responses", controllers.SubmitSurveyResponse)
			}
			protected.GET("/survey-responses/:responseId", controllers.GetResponseDetail)

			events := protected.Group("/events")
			{
				events.GET("", controllers.GetEvents)
				events.GET("/:id", controllers.GetEventDetails)
				events.GET("/:id/status", controllers.GetEventDetailsWithStatus)
				events.POST("/:id/register", controllers.RegisterAlumniToEvent)
				events.POST("/:id/feedback", controllers.SubmitEventFeedback)
				events.GET("/:id/feedback", controllers.GetEventFeedbacks)
			}

			protected.POST("/quick-survey", controllers.SubmitQuickSurvey)
			protected.GET("/quick-survey/status", controllers.CheckQuickSurveyStatus)

			admin := protected.Group("/")
			admin.Use(middleware.RequireAdmin())
			{
				admin.POST("/surveys", middleware.RateLimitCreate(), controllers.CreateSurvey)
				admin.DELETE("/surveys/:id", controllers.DeleteSurvey)
				admin.GET("/surveys/:id/responses", controllers.GetSurveyResponses)
				admin.GET("/survey-responses", controllers.GetAllResponsesWithAlumni)

				admin.POST("/events", middleware.RateLimitCreate(), controllers.CreateEvent)
				admin.PUT("/events/:id", controllers.UpdateEvent)
				admin.DELETE("/events/:id", controllers.DeleteEvent)
				admin.PUT("/events/:id/end", controllers.EndEvent)
				admin.PUT("/events/:id/unend", controllers.UnendEvent)
				admin.GET("/events/inactive", controllers.GetInactiveEvents)
				admin.GET("/events/:id/registrations", controllers.GetRegisteredAlumniForEvent)

				admin.POST("/admin/emails/survey-invite", controllers.SendSurveyInviteEmail)

				admin.POST("/surveys/:id/export", controllers.CreateExport)
				admin.GET("/exports/:job_id", controllers.GetExport)
			}
		}
	}
}
