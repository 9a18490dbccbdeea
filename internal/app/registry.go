package app

import (
	"database/sql"

	"licitahub/internal/dashboard"
	"licitahub/internal/documento"
	"licitahub/internal/empresa"
	"licitahub/internal/licitacao"
	"licitahub/internal/middleware"
	"licitahub/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type registryDeps struct {
	db        *sql.DB
	gormDB    *gorm.DB
	rdb       *redis.Client
	store     storage.Storage
	publisher documento.EventPublisher
}

func registerModules(router *gin.Engine, deps registryDeps) error {
	// --- Repositories ---
	empresaRepo := empresa.NewRepository(deps.gormDB)
	documentoRepo := documento.NewRepository(deps.gormDB)
	licitacaoRepo := licitacao.NewRepository(deps.gormDB)

	// --- Services ---
	empresaService := empresa.NewService(deps.db, empresaRepo)
	documentoService := documento.NewService(deps.db, documentoRepo, empresaRepo, deps.store, deps.publisher)
	licitacaoService := licitacao.NewService(deps.db, licitacaoRepo, empresaRepo)
	dashboardService := dashboard.NewService(empresaRepo, documentoRepo, licitacaoRepo)

	// --- Handlers ---
	empresaHandler := empresa.NewHandler(empresaService)
	documentoHandler := documento.NewHandler(documentoService)
	licitacaoHandler := licitacao.NewHandler(licitacaoService)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	// --- Routes Registration ---
	api := router.Group("/api")
	api.Use(middleware.RequestID())
	{
		empresa.RegisterRoutes(api, empresaHandler)
		documento.RegisterRoutes(api, documentoHandler, deps.rdb)
		licitacao.RegisterRoutes(api, licitacaoHandler)
		dashboard.RegisterRoutes(api, dashboardHandler)
	}

	return nil
}
