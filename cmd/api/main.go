// @title Campus Registration API
// @version 1.0
// @description Student course registration service backed by flat-file storage.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/oguzk/campusreg/internal/bootstrap"
	"github.com/oguzk/campusreg/internal/server"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := bootstrap.LoadConfigAndSetupLogger(*configPath)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	deps, err := bootstrap.BuildDependencies(cfg)
	if err != nil {
		log.Error().Err(err).Msg("Failed to build dependencies")
		os.Exit(1)
	}

	router := bootstrap.SetupRouter(deps)

	srv := server.NewServer(cfg, router, log.Logger)
	if err := srv.Run(); err != nil {
		log.Error().Err(err).Msg("Server exited with error")
		os.Exit(1)
	}
}
