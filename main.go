package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/template/html/v2"

	"muhibacademy/config"
	"muhibacademy/i18n"
	"muhibacademy/middleware"
	"muhibacademy/notify"
	"muhibacademy/routes"
	"muhibacademy/storage"
	"muhibacademy/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Initialize translations
	if err := i18n.Init(); err != nil {
		log.Fatalf("Error loading translations: %v", err)
	}

	// Initialize database
	store, err := storage.Open(cfg, logger)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	if err := store.Migrate(); err != nil {
		log.Fatalf("Error running migrations: %v", err)
	}
	if err := store.Seed(); err != nil {
		log.Fatalf("Error seeding database: %v", err)
	}

	// Upload directory must exist before the first course image arrives
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("Error creating upload directory: %v", err)
	}

	// Telegram notifier (best effort, may be disabled)
	notifier := notify.New(cfg.TelegramBotToken, cfg.TelegramChatID, logger)

	// Template engine
	engine := html.New("./templates", ".html")
	engine.AddFunc("t", i18n.Translate)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/main",
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Static files (uploaded course images included)
	app.Static("/static", "./static")

	// Setup routes
	routes.SetupRoutes(app, store, cfg, notifier, logger)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
