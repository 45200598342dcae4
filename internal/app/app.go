// Package app wires repositories, services, and the HTTP handler from the
// external dependencies main() provides.
package app

import (
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"provider-catalog/internal/api"
	"provider-catalog/internal/config"
	"provider-catalog/internal/db/repository"
	"provider-catalog/internal/service"
)

// Deps holds the external dependencies the app cannot create itself: the
// connection pool, config, and logger.
type Deps struct {
	Cfg    *config.Config
	Pool   *pgxpool.Pool
	Logger *slog.Logger
}

// App is the fully-wired application.
type App struct {
	Metadata *service.MetadataService
	Catalog  *service.CatalogService
	Handler  *api.Handler
}

// New wires repositories, services, and the API handler.
func New(deps Deps) (*App, error) {
	metadataRepo := repository.NewMetadataRepo(deps.Pool, deps.Logger.With("component", "metadata-repo"))
	catalogRepo, err := repository.NewCatalogRepo(deps.Pool, deps.Cfg.TargetSchema, deps.Logger.With("component", "catalog-repo"))
	if err != nil {
		return nil, fmt.Errorf("catalog repository: %w", err)
	}

	metadataSvc := service.NewMetadataService(metadataRepo, deps.Cfg.Database.Name, deps.Logger.With("component", "metadata-service"))
	catalogSvc := service.NewCatalogService(catalogRepo, deps.Logger.With("component", "catalog-service"))

	return &App{
		Metadata: metadataSvc,
		Catalog:  catalogSvc,
		Handler:  api.NewHandler(metadataSvc, catalogSvc, deps.Logger.With("component", "api")),
	}, nil
}
