package routes

import (
	"backend/controllers"
	"backend/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires every endpoint. Controllers backed by services come in as
// structs; the rest are plain handler functions.
func SetupRouter(
	mc *controllers.MessageController,
	dc *controllers.DeviceController,
	rc *controllers.RealtimeController,
) *gin.Engine {
	r := gin.Default()

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.POST("/auth/change-password", controllers.ChangePassword)

		user := api.Group("/user")
		{
			user.GET("/profile", controllers.GetProfile)
			user.PUT("/profile", controllers.UpdateProfile)
			user.DELETE("/profile", controllers.DeleteAccount)
			user.PUT("/mfa", controllers.UpdateMFA)
			user.GET("/settings", controllers.GetSettings)
			user.PUT("/settings", controllers.UpdateSettings)
		}

		personal := api.Group("/personal-info")
		{
			personal.GET("", controllers.GetPersonalInfo)
			personal.PUT("", controllers.UpdatePersonalInfo)
			personal.DELETE("", controllers.DeletePersonalInfo)
		}

		global := api.Group("/global-info")
		{
			global.GET("", controllers.GetGlobalInfo)
			global.PUT("", controllers.UpdateGlobalInfo)
		}

		professional := api.Group("/professional-info")
		{
			professional.GET("", controllers.GetProfessionalInfo)
			professional.POST("/:section", controllers.AddProfessionalRecord)
			professional.PUT("/:section/:id", controllers.UpdateProfessionalRecord)
			professional.DELETE("/:section/:id", controllers.DeleteProfessionalRecord)
		}

		swot := api.Group("/swot")
		{
			swot.GET("", controllers.GetSwot)
			swot.POST("/:section", controllers.AddSwotItem)
			swot.PUT("/:section/:id", controllers.UpdateSwotItem)
			swot.DELETE("/:section/:id", controllers.DeleteSwotItem)
		}

		goals := api.Group("/goals")
		{
			goals.GET("", controllers.ListMainGoals)
			goals.POST("", controllers.CreateMainGoal)
			goals.PUT("/:id", controllers.UpdateMainGoal)
			goals.DELETE("/:id", controllers.DeleteMainGoal)
			goals.POST("/:id/subgoals", controllers.CreateSubGoal)
			goals.PUT("/:id/subgoals/:subId", controllers.UpdateSubGoal)
			goals.DELETE("/:id/subgoals/:subId", controllers.DeleteSubGoal)
		}

		habits := api.Group("/habits")
		{
			habits.GET("", controllers.ListHabits)
			habits.POST("", controllers.CreateHabit)
			habits.PUT("/:id", controllers.UpdateHabit)
			habits.DELETE("/:id", controllers.DeleteHabit)
			habits.POST("/:id/complete", controllers.CompleteHabit)
			habits.POST("/:id/reset-streak", controllers.ResetHabitStreak)
		}

		courses := api.Group("/courses")
		{
			courses.GET("", controllers.ListCourses)
			courses.POST("", controllers.CreateCourse)
			courses.GET("/purchased", controllers.ListPurchasedCourses)
			courses.GET("/:id", controllers.GetCourse)
			courses.PUT("/:id", controllers.UpdateCourse)
			courses.DELETE("/:id", controllers.DeleteCourse)
			courses.POST("/:id/purchase", controllers.PurchaseCourse)
			courses.GET("/:id/lectures", controllers.ListLectures)
			courses.POST("/:id/lectures", controllers.AddLecture)
			courses.POST("/:id/lectures/:lectureId/quizzes", controllers.AddQuiz)
		}

		coaches := api.Group("/coaches")
		{
			coaches.GET("", controllers.ListCoaches)
			coaches.POST("", controllers.CreateCoachProfile)
			coaches.GET("/me", controllers.GetMyCoachProfile)
			coaches.PUT("/me", controllers.UpdateMyCoachProfile)
			coaches.GET("/me/requests", controllers.ListCoachRequests)
			coaches.PUT("/me/requests/:id", controllers.HandleCoachRequest)
			coaches.GET("/requests", controllers.ListMyCoachRequests)
			coaches.GET("/:id", controllers.GetCoach)
			coaches.POST("/:id/request", controllers.RequestCoach)
		}

		moods := api.Group("/moods")
		{
			moods.POST("", controllers.RecordMood)
			moods.GET("/today", controllers.GetTodayMood)
			moods.GET("/history", controllers.GetMoodHistory)
		}

		accomplishments := api.Group("/accomplishments")
		{
			accomplishments.GET("", controllers.ListAccomplishments)
			accomplishments.POST("", controllers.CreateAccomplishment)
			accomplishments.GET("/public", controllers.ListPublicAccomplishments)
			accomplishments.GET("/stats", controllers.GetAccomplishmentStats)
			accomplishments.PUT("/:id", controllers.UpdateAccomplishment)
			accomplishments.DELETE("/:id", controllers.DeleteAccomplishment)
			accomplishments.POST("/:id/share", controllers.ShareAccomplishment)
		}

		jobs := api.Group("/jobs")
		{
			jobs.GET("", controllers.ListJobs)
			jobs.POST("", controllers.CreateJob)
			jobs.PUT("/:id", controllers.UpdateJob)
			jobs.DELETE("/:id", controllers.DeleteJob)
		}

		workItems := api.Group("/work-items")
		{
			workItems.GET("", controllers.ListWorkItems)
			workItems.POST("", controllers.CreateWorkItem)
			workItems.PUT("/:id", controllers.UpdateWorkItem)
			workItems.DELETE("/:id", controllers.DeleteWorkItem)
		}

		documents := api.Group("/documents")
		{
			documents.GET("", controllers.ListDocuments)
			documents.POST("", controllers.UploadDocument)
			documents.DELETE("/:id", controllers.DeleteDocument)
		}

		activities := api.Group("/activities")
		{
			activities.GET("", controllers.ListActivities)
			activities.POST("", controllers.CreateActivity)
			activities.PUT("/:id", controllers.UpdateActivity)
			activities.DELETE("/:id", controllers.DeleteActivity)
		}

		notes := api.Group("/notes")
		{
			notes.GET("", controllers.ListNotes)
			notes.POST("", controllers.CreateNote)
			notes.PUT("/:id", controllers.UpdateNote)
			notes.DELETE("/:id", controllers.DeleteNote)
		}

		conversations := api.Group("/conversations")
		{
			conversations.GET("", mc.ListConversations)
			conversations.POST("", mc.CreateConversation)
			conversations.GET("/:id/messages", mc.ListMessages)
			conversations.POST("/:id/messages", mc.SendMessage)
			conversations.POST("/:id/read", mc.MarkAsRead)
		}

		devices := api.Group("/devices")
		{
			devices.POST("", dc.Register)
			devices.GET("", dc.List)
			devices.PUT("/:id", dc.Toggle)
		}

		api.GET("/ws", rc.MessagesWS)
	}

	return r
}
