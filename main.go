package main

import (
	"log"

	"github.com/gymdesk/gymdesk-backend/config"
	"github.com/gymdesk/gymdesk-backend/internal/handler"
	"github.com/gymdesk/gymdesk-backend/internal/middleware"
	"github.com/gymdesk/gymdesk-backend/internal/repository"
	"github.com/gymdesk/gymdesk-backend/internal/service"
	"github.com/gymdesk/gymdesk-backend/internal/token"
	"github.com/gymdesk/gymdesk-backend/pkg/database"
	"github.com/gymdesk/gymdesk-backend/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// RabbitMQ is optional: without a broker the service runs, it just
	// skips lifecycle events.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		var err error
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	resourceRepo := repository.NewResourceRepository(db)
	timeSlotRepo := repository.NewTimeSlotRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	// Services
	tokens := token.NewManager(cfg.JWTSecret)
	authSvc := service.NewAuthService(userRepo, tokens)
	reservationSvc := service.NewReservationService(reservationRepo, userRepo, resourceRepo, timeSlotRepo, publisher)
	resourceSvc := service.NewResourceService(resourceRepo, timeSlotRepo)
	exportSvc := service.NewExportService(reservationRepo, userRepo)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "gymdesk-backend"})
	})

	handler.NewAuthHandler(authSvc).RegisterRoutes(e.Group("/api/v1/auth"))

	api := e.Group("/api/v1", middleware.JWT(tokens))
	handler.NewReservationHandler(reservationSvc).RegisterRoutes(api)
	handler.NewResourceHandler(resourceSvc).RegisterRoutes(api)
	handler.NewTimeSlotHandler(resourceSvc, timeSlotRepo, resourceRepo, reservationRepo).RegisterRoutes(api)
	handler.NewExportHandler(exportSvc).RegisterRoutes(api)

	log.Printf("GymDesk backend starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
