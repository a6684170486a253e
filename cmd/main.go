package main

import (
	"log"
	"os"

	"fittrack/config"
	"fittrack/controllers"
	"fittrack/routes"
	"fittrack/services"
	"fittrack/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	hub := services.NewRealtimeHub()

	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push notifications disabled: %v", err)
		push = nil
	}
	services.InitAlertDeps(config.DB, hub, push)

	stats := services.NewStatsService(config.DB)
	profiles := services.NewProfileService(config.DB)
	chat := services.NewChatService(config.DB, hub)

	deps := routes.Deps{
		Stats:    controllers.NewStatsController(stats, profiles, hub),
		Profile:  controllers.NewProfileController(profiles),
		Chat:     controllers.NewChatController(chat),
		Coach:    controllers.NewCoachController(services.NewCoachService()),
		Recipes:  controllers.NewRecipeController(services.NewRecipeService()),
		Devices:  controllers.NewDeviceController(push),
		Realtime: controllers.NewRealtimeController(hub),
	}

	r := routes.SetupRouter(deps)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
