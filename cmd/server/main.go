package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/bazaar/internal/config"
	"github.com/example/bazaar/internal/database"
	"github.com/example/bazaar/internal/routes"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)

	app := fiber.New(fiber.Config{
		AppName:      "Bazaar Backend",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())

	otpService := routes.Register(app, db, cfg)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		log.Println("Shutting down")
		if err := app.Shutdown(); err != nil {
			log.Printf("fiber.Shutdown error: %v", err)
		}
	}()

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}

	if err := otpService.Close(); err != nil {
		log.Printf("otp sweeper shutdown error: %v", err)
	}
	if err := database.Close(db); err != nil {
		log.Printf("database close error: %v", err)
	}
}

// errorHandler shapes every error into the response envelope. Expected
// errors arrive as *fiber.Error with their status already chosen; anything
// else is logged and answered with a generic 500.
func errorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"success": false,
			"message": fiberErr.Message,
			"data":    nil,
			"error":   fiberErr.Message,
		})
	}

	log.Printf("[HTTP] unexpected error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "Server Issue Occurred",
		"data":    nil,
		"error":   nil,
	})
}
