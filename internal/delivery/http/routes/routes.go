package routes

import (
	"recruiter-pro/internal/delivery/http/handler"
	"recruiter-pro/internal/delivery/http/middleware"
	"recruiter-pro/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	Health  *handler.HealthHandler
	Auth    *handler.AuthHandler
	Match   *handler.MatchHandler
	Jobs    *handler.JobsHandler
	History *handler.HistoryHandler
	WS      *ws.Handler

	ErrorMW     *middleware.ErrorMiddleware
	AccessLogMW *middleware.AccessLogMiddleware
	AuthMW      *middleware.AuthMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	if r.ErrorMW != nil {
		app.Use(r.ErrorMW.Middleware())
	}
	if r.AccessLogMW != nil {
		app.Use(r.AccessLogMW.Middleware())
	}

	if r.Health != nil {
		r.Health.RegisterRoutes(app)
	}
	if r.WS != nil {
		app.Get("/ws/progress", r.WS.HandleProgressWS)
	}

	api := app.Group("/api")
	v1 := api.Group("/v1")

	if r.Auth != nil {
		r.Auth.RegisterRoutes(v1)
	}
	if r.Jobs != nil {
		r.Jobs.RegisterRoutes(v1)
	}

	if r.AuthMW != nil {
		v1.Use("/matches", r.AuthMW.Middleware())
		v1.Use("/candidates", r.AuthMW.Middleware())
	}
	if r.Match != nil {
		r.Match.RegisterRoutes(v1)
	}
	if r.History != nil {
		r.History.RegisterRoutes(v1)
	}
}
