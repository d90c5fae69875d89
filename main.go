package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"orderdesk/internal/config"
	"orderdesk/internal/handlers"
	"orderdesk/internal/middleware"
	"orderdesk/internal/models"
	"orderdesk/internal/repositories"
	"orderdesk/internal/services"
	"orderdesk/pkg/rabbitmq"
	"orderdesk/pkg/slack"
)

func main() {
	cfg := config.Load()

	// --- Database ---
	db, err := openDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}, &models.OrderItem{}, &models.Product{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Notification Sink (Slack webhook) ---
	// A missing webhook URL is a supported configuration: notifications
	// become logged no-ops and order creation is unaffected.
	slackClient := slack.NewClient(slack.Config{
		WebhookURL: cfg.SlackWebhookURL,
		Timeout:    cfg.NotifyTimeout,
	})

	// --- Optional order-event publisher ---
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Println("RABBITMQ_URL not set, order event publishing disabled")
	}

	// --- Repositories ---
	orderRepo := repositories.NewGORMOrderRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)

	// --- Services ---
	productService := services.NewProductService(productRepo)
	if err := productService.SeedIfEmpty(); err != nil {
		log.Printf("Warning: failed to seed product catalog: %v", err)
	}

	var events services.EventPublisher
	if mqClient != nil {
		events = mqClient
	}
	orderService := services.NewOrderService(orderRepo, slackClient, events)
	statusService := services.NewStatusService(orderRepo)
	reportService := services.NewReportService(orderRepo)
	authService, err := services.NewAuthService(cfg.AdminPassword, cfg.JWTSecret)
	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}
	if cfg.AdminPassword == "" {
		log.Println("ADMIN_PASSWORD not set, admin login disabled")
	}

	// --- Handlers ---
	orderHandler := handlers.NewOrderHandler(orderService)
	statusHandler := handlers.NewStatusHandler(statusService, reportService)
	productHandler := handlers.NewProductHandler(productService)
	reportHandler := handlers.NewReportHandler(reportService)
	authHandler := handlers.NewAuthHandler(authService)

	// --- Fiber App ---
	app := fiber.New()
	app.Use(logger.New())

	apiV1 := app.Group("/api/v1")
	authHandler.RegisterRoutes(apiV1)
	productHandler.RegisterRoutes(apiV1)
	// Status routes go first so /orders/status is not captured by /orders/:id.
	statusHandler.RegisterPublicRoutes(apiV1)
	orderHandler.RegisterRoutes(apiV1)

	adminRoutes := apiV1.Group("", middleware.AdminRequired(authService))
	statusHandler.RegisterAdminRoutes(adminRoutes)
	reportHandler.RegisterRoutes(adminRoutes)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Order event consumer ---
	// Downstream processing stub: logs every order.created event so a worker
	// can be split out later without touching the HTTP service.
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for order events...")
			handler := func(msg amqp.Delivery) error {
				log.Printf("Received order event (tag %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeOrderEvents(handler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// openDatabase connects to Postgres when DATABASE_URL is set, otherwise to a
// local SQLite file.
func openDatabase(cfg config.Config) (*gorm.DB, error) {
	if cfg.DatabaseURL != "" {
		return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
}
