// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command page-gate-server publishes a static site containing encrypted
// pages. Pages are served as they are; unlocking happens in the client.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-page-gate/internal/config"
	"github.com/MKhiriev/go-page-gate/internal/handler"
	"github.com/MKhiriev/go-page-gate/internal/logger"
	"github.com/MKhiriev/go-page-gate/internal/server"
	"github.com/MKhiriev/go-page-gate/internal/service"
	"github.com/MKhiriev/go-page-gate/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(info.String())

	log := logger.NewLogger("page-gate-server")
	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	services, err := service.NewServices(cfg, info.BuildVersion(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err = srv.RunServer(ctx); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}
