package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/verdantea/teahouse-web/apiclient"
	"github.com/verdantea/teahouse-web/config"
	"github.com/verdantea/teahouse-web/router"
	"github.com/verdantea/teahouse-web/session"
	"github.com/verdantea/teahouse-web/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}
	utils.InitLogger()
}

func main() {
	cfg := config.Load()

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	store := session.NewStore(cfg.SessionTTL)
	store.StartCleanup(context.Background(), 15*time.Minute)

	client := apiclient.New(cfg.APIBaseURL, session.TokenSource{Store: store})

	r := router.SetupRouter(store, client)

	utils.InfoLogger.Printf("Backend API at %s", cfg.APIBaseURL)
	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
