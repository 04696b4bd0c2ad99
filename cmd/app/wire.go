//go:build wireinject
// +build wireinject

package main

import (
	"orgchart/config"
	"orgchart/internal/command"
	"orgchart/internal/cron"
	"orgchart/internal/database"
	"orgchart/internal/handler"
	"orgchart/internal/middleware"
	"orgchart/internal/router"
	"orgchart/internal/service"
	"orgchart/internal/telemetry"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// wireApp init application.
func wireApp(*config.Configuration, *zap.Logger) (*App, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			service.ProviderSet,
			handler.ProviderSet,
			middleware.ProviderSet,
			router.ProviderSet,
			cron.ProviderSet,
			newHttpServer,
			telemetry.ProviderSet,
			newApp,
		),
	)
}

// wireCommand init application.
func wireCommand(*config.Configuration, *zap.Logger) (*command.Command, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			telemetry.ProviderSet,
			service.NewHierarchyService,
			command.ProviderSet,
		),
	)
}
