package routes

import (
	"fittrack/controllers"
	"fittrack/middlewares"

	"github.com/gin-gonic/gin"
)

type Deps struct {
	Stats    *controllers.StatsController
	Profile  *controllers.ProfileController
	Chat     *controllers.ChatController
	Coach    *controllers.CoachController
	Recipes  *controllers.RecipeController
	Devices  *controllers.DeviceController
	Realtime *controllers.RealtimeController
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.Default()

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		user := api.Group("/user")
		{
			user.GET("/me", controllers.GetMe)
			user.PUT("/display-name", controllers.UpdateDisplayName)
			user.POST("/avatar", controllers.UploadAvatar)
		}

		profile := api.Group("/profile")
		{
			profile.GET("", deps.Profile.GetProfile)
			profile.PUT("", deps.Profile.UpdateProfile)
		}

		stats := api.Group("/stats")
		{
			stats.GET("/summary", deps.Stats.GetSummary)
			stats.GET("/today", deps.Stats.GetToday)
			stats.POST("/metrics", deps.Stats.SaveMetric)
			stats.GET("/weekly", deps.Stats.GetWeekly)
			stats.GET("/streak", deps.Stats.GetStreak)
		}

		chat := api.Group("/chat")
		{
			chat.GET("/messages", deps.Chat.ListMessages)
			chat.POST("/messages", deps.Chat.SendText)
			chat.POST("/messages/audio", deps.Chat.SendAudio)
		}

		api.POST("/coach/chat", deps.Coach.Chat)

		recipes := api.Group("/recipes")
		{
			recipes.GET("/search", deps.Recipes.Search)
			recipes.GET("/category/:category", deps.Recipes.ByCategory)
			recipes.GET("/:id", deps.Recipes.Lookup)
		}

		training := api.Group("/training")
		{
			training.GET("/muscles", controllers.ListMuscleGroups)
			training.GET("/muscles/:key", controllers.GetMuscleGroup)
		}

		devices := api.Group("/devices")
		{
			devices.POST("/register", deps.Devices.RegisterDevice)
			devices.PUT("/notifications", deps.Devices.ToggleNotifications)
		}
		api.GET("/alerts", deps.Devices.ListAlerts)

		api.GET("/ws", deps.Realtime.Connect)
	}

	return r
}
