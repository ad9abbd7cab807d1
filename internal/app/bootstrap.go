package app

import (
	"fmt"
	"strings"

	"recruiter-pro/internal/config"
	"recruiter-pro/internal/delivery/http/handler"
	"recruiter-pro/internal/delivery/http/middleware"
	"recruiter-pro/internal/delivery/http/routes"
	"recruiter-pro/internal/ws"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
	})

	registry := routes.Registry{
		Health:  handler.NewHealthHandler(c.DB, c.Cache),
		Auth:    handler.NewAuthHandler(c.Auth),
		Match:   handler.NewMatchHandler(c.Matcher, c.Batch),
		Jobs:    handler.NewJobsHandler(c.Catalog),
		History: handler.NewHistoryHandler(c.History),
		WS:      ws.NewHandler(c.Hub, c.Logger),

		ErrorMW:     middleware.NewErrorMiddleware(c.Logger),
		AccessLogMW: middleware.NewAccessLogMiddleware(c.Logger),
		AuthMW:      middleware.NewAuthMiddleware(c.JWT),
	}
	registry.Register(f)

	go c.Hub.Run()

	cleanup := func() error {
		return c.Close()
	}
	return &App{Fiber: f, Container: c}, cleanup, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
