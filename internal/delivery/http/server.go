package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/floatchat-backend/internal/config"
	"github.com/floatchat-backend/internal/delivery/http/handler"
	"github.com/floatchat-backend/internal/delivery/http/middleware"
)

// Server wraps the Fiber app and its route table.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	queryHandler     *handler.QueryHandler
	chartHandler     *handler.ChartHandler
	routeHandler     *handler.RouteHandler
	shareHandler     *handler.ShareHandler
	emergencyHandler *handler.EmergencyHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	queryHandler *handler.QueryHandler,
	chartHandler *handler.ChartHandler,
	routeHandler *handler.RouteHandler,
	shareHandler *handler.ShareHandler,
	emergencyHandler *handler.EmergencyHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "FloatChat Backend",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		queryHandler:     queryHandler,
		chartHandler:     chartHandler,
		routeHandler:     routeHandler,
		shareHandler:     shareHandler,
		emergencyHandler: emergencyHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Conversational query routes
	api.Post("/query", s.queryHandler.Process)
	api.Post("/resummarize", s.queryHandler.Resummarize)

	// Chart selection
	api.Post("/chart/suggest", s.chartHandler.Suggest)

	// Maritime routing
	api.Get("/route/info", s.routeHandler.Info)
	api.Get("/route/ports", s.routeHandler.Ports)

	// Conversation sharing
	api.Post("/share", s.shareHandler.Create)
	api.Get("/history/:id", s.shareHandler.Get)
	api.Get("/history/:id/qr", s.shareHandler.QR)

	// Emergency contact
	api.Get("/emergency/contact", s.emergencyHandler.Contact)
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
