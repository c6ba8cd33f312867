package main

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"

	"unmute/config"
	"unmute/di"
	"unmute/driver/unmute_db"
	"unmute/rest"
	"unmute/utils/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.InitLoggerWithLevel(cfg.Logging.Level)
	log.Info("starting feed engine", "port", cfg.Server.Port)

	ctx := context.Background()
	pool, err := unmute_db.InitDBConnection(ctx)
	if err != nil {
		logger.Logger.Error("failed to connect to database", "error", err)
		panic(err)
	}
	defer pool.Close()

	container := di.NewApplicationComponents(pool, cfg)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout

	rest.RegisterRoutes(e, container, cfg)

	if err := e.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		logger.Logger.Error("server stopped", "error", err)
		panic(err)
	}
}
