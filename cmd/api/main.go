// Command api runs the task-manager HTTP server.
package main

import (
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/dheurymy/api-task-manager/internal/auth"
	"github.com/dheurymy/api-task-manager/internal/config"
	"github.com/dheurymy/api-task-manager/internal/router"
	"github.com/dheurymy/api-task-manager/internal/tasks"
	"github.com/dheurymy/api-task-manager/internal/users"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		log.Error("error opening database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Error("error pinging database", "error", err)
		os.Exit(1)
	}

	tokens := auth.NewTokenService([]byte(cfg.JWTSecret), cfg.TokenTTL)
	userHandler := users.NewHandler(users.NewRepository(db), tokens)
	taskHandler := tasks.NewHandler(tasks.NewRepository(db))

	app := fiber.New(fiber.Config{
		ErrorHandler: router.ErrorHandler,
	})
	app.Use(router.CorsMiddleware(cfg.CORSOrigin))
	app.Use(router.RequestLogger(log))

	r := &router.Router{
		UserHandler: userHandler,
		TaskHandler: taskHandler,
		AuthMW:      auth.Middleware(tokens),
	}
	r.RegisterRoutes(app)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info("shutting down")
		_ = app.Shutdown()
	}()

	log.Info("listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
