package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Abraxas-365/insightshub/pkg/errx"
	"github.com/Abraxas-365/insightshub/pkg/logx"
	"github.com/Abraxas-365/insightshub/pipeline/analytics/analyticsapi"
	"github.com/Abraxas-365/insightshub/pipeline/bottleneck/bottleneckapi"
	"github.com/Abraxas-365/insightshub/pipeline/dataset/datasetapi"
	"github.com/Abraxas-365/insightshub/pipeline/report/reportapi"
	"github.com/Abraxas-365/insightshub/pipeline/skills/skillsapi"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load .env if present, then initialize logger
	if err := godotenv.Load(); err != nil {
		logx.Debugf("No .env file loaded: %v", err)
	}
	logx.SetLevel(logx.LevelInfo)
	logx.Info("Starting Hiring Insights Hub API Server...")

	// 2. Initialize Dependency Container
	container := NewContainer()
	defer container.Redis.Close()
	if container.DB != nil {
		defer container.DB.Close()
	}

	// 3. Load the dataset snapshot before serving
	if err := container.DatasetService.Load(context.Background()); err != nil {
		logx.Fatalf("Failed to load dataset: %v", err)
	}

	// 4. Create Fiber App with Config
	app := fiber.New(fiber.Config{
		AppName:               "Hiring Insights Hub API",
		DisableStartupMessage: true,
		ErrorHandler:          globalErrorHandler,
	})

	// 5. Global Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*", // Configure for production
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, HEAD",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// 6. Health Check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"redis":  container.Redis.Ping(c.Context()).Err() == nil,
		})
	})

	// 7. Register Routes
	datasetapi.RegisterRoutes(app, container.DatasetHandlers)
	analyticsapi.RegisterRoutes(app, container.AnalyticsHandlers)
	bottleneckapi.RegisterRoutes(app, container.BottleneckHandlers)
	skillsapi.RegisterRoutes(app, container.SkillsHandlers)
	reportapi.RegisterRoutes(app, container.ReportHandlers)

	// 8. Start report workers
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	container.ReportWorker.Start(workerCtx)

	// 9. Start Server with Graceful Shutdown
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	go func() {
		logx.Infof("Server listening on port %s", port)
		if err := app.Listen(":" + port); err != nil {
			logx.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c // Wait for signal
	logx.Info("Shutting down server...")
	stopWorkers()

	if err := app.Shutdown(); err != nil {
		logx.Errorf("Server forced to shutdown: %v", err)
	}

	logx.Info("Server exited")
}

// globalErrorHandler converts internal errors to standard HTTP responses
func globalErrorHandler(c *fiber.Ctx, err error) error {
	// If it's a Fiber error (e.g., 404 handler not found)
	if e, ok := err.(*fiber.Error); ok {
		return c.Status(e.Code).JSON(fiber.Map{
			"error": e.Message,
			"code":  e.Code,
		})
	}

	// If it's our custom errx.Error
	if e, ok := err.(*errx.Error); ok {
		return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
	}

	// Default unknown error
	logx.Errorf("Internal Server Error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Internal Server Error",
		"type":    "INTERNAL",
		"code":    "INTERNAL_ERROR",
		"message": "An unexpected error occurred",
	})
}
