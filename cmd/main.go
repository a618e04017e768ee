package main

import (
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Shaman-786/Hostel-Management-System-Desktop-Application/config"
	"github.com/Shaman-786/Hostel-Management-System-Desktop-Application/database"
	"github.com/Shaman-786/Hostel-Management-System-Desktop-Application/idcard"
	"github.com/Shaman-786/Hostel-Management-System-Desktop-Application/registration"
	"github.com/Shaman-786/Hostel-Management-System-Desktop-Application/routes"
	"github.com/Shaman-786/Hostel-Management-System-Desktop-Application/store"
)

func main() {
	cfg := config.Load()

	var logger *slog.Logger
	if cfg.AppEnv == "dev" {
		logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	slog.SetDefault(logger)

	if err := cfg.EnsureDirs(); err != nil {
		logger.Error("create storage dirs", "err", err)
		os.Exit(1)
	}

	// Fail fast when the database is unreachable.
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Error("database", "err", err)
		os.Exit(1)
	}

	residents := store.NewGormStore(db)
	deps := routes.Deps{
		Residents: residents,
		Hostels:   store.NewGormHostelStore(db),
		Users:     store.NewGormUserStore(db),
		Workflow:  registration.NewWorkflow(residents, nil),
		Generator: idcard.New(cfg.AssetDir),
		CardDir:   cfg.CardDir,
		PhotoDir:  cfg.PhotoDir,
		JWTSecret: cfg.JWTSecret,
		JWTTTL:    cfg.JWTTTL,
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	routes.Register(e, deps)

	addr := ":" + cfg.AppPort
	logger.Info("server listening", "addr", addr, "env", cfg.AppEnv)
	if err := e.Start(addr); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
