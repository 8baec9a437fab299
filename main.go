package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"assetflow/config"
	"assetflow/controllers"
	"assetflow/routes"
	"assetflow/services"
	"assetflow/services/logger"
	"assetflow/services/notification"
	"assetflow/store"
	"assetflow/tracing"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	appLogger := logger.NewDefaultLogger(logger.ParseLevel(cfg.App.LogLevel))

	ctx := context.Background()
	shutdownTracing, err := tracing.Init(ctx, appLogger, cfg.Tracing.Endpoint, cfg.App.Name, cfg.Database.Env)
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}

	st, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer closeStore()

	var cache services.ListCache = services.NopCache{}
	rdb, err := config.ConnectRedis(ctx, cfg.Redis)
	if err != nil {
		// cache là tùy chọn, lỗi Redis không chặn khởi động
		appLogger.Warn("Không kết nối được Redis, chạy không cache: %v", err)
	} else if rdb != nil {
		cache = services.NewRedisCache(rdb)
		defer rdb.Close()
	}

	router, m := config.InitApp(cfg)

	inventoryService := services.NewInventoryService(services.InventoryServiceOptions{
		Store:         st,
		Cache:         cache,
		Notifier:      notification.NewMelodyService(m),
		Logger:        appLogger,
		Location:      services.LoadLocation(cfg.App.Timezone),
		PublicBaseURL: cfg.App.PublicBaseURL,
	})
	maintenanceService := services.NewMaintenanceService(services.MaintenanceConfig{
		APIKey:  cfg.OpenAI.APIKey,
		BaseURL: cfg.OpenAI.BaseURL,
		Model:   cfg.OpenAI.Model,
		Timeout: cfg.OpenAI.Timeout,
	}, appLogger)

	routes.SetupRoutes(router, routes.Dependencies{
		Inventory:   controllers.NewInventoryController(inventoryService),
		Maintenance: controllers.NewMaintenanceController(maintenanceService),
		Melody:      m,
		AuthSecret:  cfg.Auth.JWTSecret,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           otelhttp.NewHandler(router, cfg.App.Name),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		log.Println("Server starting on port " + cfg.Server.Port + "...")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := m.Close(); err != nil {
		appLogger.Warn("close websocket hub: %v", err)
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown: %v", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		appLogger.Warn("shutdown tracing: %v", err)
	}
	log.Println("Server stopped gracefully")
}

// openStore chọn store theo STORE; với gorm thì chạy AutoMigrate khi được bật
func openStore(cfg *config.Config) (store.Store, func(), error) {
	if cfg.App.Store == config.StoreMemory {
		log.Println("Using in-memory store")
		return store.NewMemoryStore(), func() {}, nil
	}

	db, err := config.ConnectDB(cfg.Database, cfg.App.Timezone)
	if err != nil {
		return nil, nil, err
	}
	gs := store.NewGormStore(db)
	if cfg.App.AutoMigrate {
		if err := gs.AutoMigrate(); err != nil {
			return nil, nil, err
		}
	}

	closeFn := func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	return gs, closeFn, nil
}
