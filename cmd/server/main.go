package main

import (
	"fmt"

	"github.com/MKhiriev/go-action-web/internal/config"
	"github.com/MKhiriev/go-action-web/internal/handler"
	"github.com/MKhiriev/go-action-web/internal/logger"
	"github.com/MKhiriev/go-action-web/internal/server"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("action-web", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger(cfg.App.Name, cfg.App.LogLevel)
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("engine", cfg.Server.Engine).
		Str("routes", cfg.RoutesFilePath).
		Str("bus", cfg.Bus.RemoteAddress).
		Msg("received configs")

	handlers, err := handler.NewHandlers(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	routes, err := config.LoadRoutes(cfg.RoutesFilePath)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading routes")
	}

	httpHandler, err := handlers.HTTP.Init(cfg.Server, routes)
	if err != nil {
		log.Fatal().Err(err).Msg("error registering routes")
	}

	srv, err := server.NewServer(httpHandler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
