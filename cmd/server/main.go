package main

import (
	"log"
	"net/http"

	"smartcoach/internal/config"
	"smartcoach/internal/logger"
	"smartcoach/internal/middleware"
	"smartcoach/internal/notify"
	"smartcoach/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	config.InitDB()

	// Configure outbound mail
	notify.Setup(
		config.GetEnv("SMTP_HOST", ""),
		config.GetEnv("SMTP_PORT", "587"),
		config.GetEnv("SMTP_USER", ""),
		config.GetEnv("SMTP_PASSWORD", ""),
		config.GetEnv("SMTP_FROM", "noreply@smartcoach.com"),
	)

	// Setup Gin router (recovery and request logging included)
	r := routes.SetupRouter()

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	addr := "0.0.0.0:" + config.GetEnv("PORT", "8080")
	log.Printf("🚀 Server running at %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
