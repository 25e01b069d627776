package main

import (
	"fmt"

	"github.com/MKhiriev/go-pin-keeper/internal/client"
	"github.com/MKhiriev/go-pin-keeper/internal/config"
	"github.com/MKhiriev/go-pin-keeper/internal/crypto"
	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/internal/service"
	"github.com/MKhiriev/go-pin-keeper/internal/store"
	"github.com/MKhiriev/go-pin-keeper/internal/tui"
	"github.com/MKhiriev/go-pin-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewTUILogger("atm")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	codec, err := crypto.NewXORCodec([]byte(cfg.App.ObfuscationKey))
	if err != nil {
		log.Fatal().Err(err).Msg("create record codec")
	}

	repository, err := store.NewAccountFileRepository(cfg.Storage.Files.AccountsFile, codec, log)
	if err != nil {
		log.Fatal().Err(err).Msg("open accounts store")
	}

	services, err := service.NewServices(repository, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create services")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init atm app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("atm run error")
	}
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
