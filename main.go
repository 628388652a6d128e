package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/pelayanandata/portal-go/config"
	"github.com/pelayanandata/portal-go/db"
	_ "github.com/pelayanandata/portal-go/docs"
	"github.com/pelayanandata/portal-go/handlers"
	"github.com/pelayanandata/portal-go/middleware"
	"github.com/pelayanandata/portal-go/minio"
	"github.com/pelayanandata/portal-go/repositories"
	"github.com/pelayanandata/portal-go/routes"
	"github.com/pelayanandata/portal-go/services"
	"github.com/pelayanandata/portal-go/websocket"
	"github.com/pelayanandata/portal-go/workflow"
)

// @title Portal Pelayanan Data API
// @version 1.0
// @description Citizen data-request lifecycle, satisfaction survey and editorial content for the public data portal.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection (migrates and seeds the SKM catalog)
	db.Init()

	// Initialize object storage for uploaded documents
	minio.InitMinio()

	repos := repositories.New()

	questions, err := repos.Skm.ListQuestions()
	if err != nil {
		log.Fatalf("Failed to load SKM question catalog: %v", err)
	}

	gate := workflow.RoleGate{
		DataOfficerRoles:    config.DataOfficerRoles,
		EditorialAdminRoles: config.EditorialAdminRoles,
	}
	hub := websocket.NewRequestHub()
	svc := services.New(repos, gate, workflow.NewSurveyGate(questions), hub)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router, handlers.New(svc, hub))

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
