package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/databases"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/middlewares"
	loggerMiddleware "sekolahku_backend/internals/middlewares/logger"
	"sekolahku_backend/internals/route"
	"sekolahku_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	if err := databases.ConnectDB(); err != nil {
		log.Fatalf("[BOOT] database: %v", err)
	}
	defer databases.CloseDB()

	migrateCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	if err := databases.RunMigrations(migrateCtx); err != nil {
		cancel()
		log.Fatalf("[BOOT] migrations: %v", err)
	}
	cancel()

	if err := seeds.SeedSuperadmin(databases.DB); err != nil {
		log.Fatalf("[BOOT] seed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "sekolahku-backend",
		ErrorHandler: helper.ErrorHandler,
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ReadTimeout:  configs.GetEnvDuration("HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout: configs.GetEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:  configs.GetEnvDuration("HTTP_IDLE_TIMEOUT", 60*time.Second),
		BodyLimit:    1 * 1024 * 1024,
	})

	middlewares.SetupRecovery(app)
	app.Use(middlewares.RequestID())
	loggerMiddleware.Setup(app)
	middlewares.SetupCORS(app)
	app.Use(compress.New())
	app.Use(etag.New())
	app.Use(middlewares.GlobalRateLimiter())

	route.SetupRoutes(app, databases.DB)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("[BOOT] shutting down...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("[BOOT] shutdown: %v", err)
		}
	}()

	port := configs.GetEnv("PORT", "8080")
	log.Printf("[BOOT] listening on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("[BOOT] listen: %v", err)
	}
}
