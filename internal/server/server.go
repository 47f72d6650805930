// Package server assembles the HTTP API the calendar talks to. Data lives in
// memory and is lost on restart.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/hilbertsen/teamcal/internal/config"
	"github.com/hilbertsen/teamcal/internal/handlers"
	"github.com/hilbertsen/teamcal/internal/logging"
	authmw "github.com/hilbertsen/teamcal/internal/middleware"
	"github.com/hilbertsen/teamcal/internal/services"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
)

type Services struct {
	Events    *services.EventService
	Teams     *services.TeamService
	Employees *services.EmployeeService
	Auth      *services.AuthService
}

func NewServices(password string, sessionExpiry time.Duration) (*Services, error) {
	auth, err := services.NewAuthService(password, sessionExpiry)
	if err != nil {
		return nil, err
	}
	teams := services.NewTeamService()
	employees := services.NewEmployeeService()
	return &Services{
		Events:    services.NewEventService(teams, employees),
		Teams:     teams,
		Employees: employees,
		Auth:      auth,
	}, nil
}

type Server struct {
	http.Handler
	run      func(addr string) error
	services *Services
	logger   *slog.Logger
}

// New wires handlers and routes. Reads are public; writes need a session
// unless auth is disabled.
func New(cfg *config.Config, svc *Services, logger *slog.Logger) *Server {
	authHandler := handlers.NewAuthHandler(svc.Auth, cfg.Server.IsProduction(), !cfg.Auth)
	eventHandler := handlers.NewEventHandler(svc.Events)
	teamHandler := handlers.NewTeamHandler(svc.Teams)
	employeeHandler := handlers.NewEmployeeHandler(svc.Employees)

	app := drift.New()

	if cfg.Server.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.Origins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", authmw.RequestIDHeader},
		MaxAge:       86400,
	}))
	app.Use(middleware.BodyParser())
	app.Use(authmw.RequestLogger(logger))

	app.Get("/health", func(c *drift.Context) {
		_ = c.JSON(200, map[string]string{"status": "ok"})
	})

	app.Post("/login", authHandler.Login)
	app.Post("/logout", authHandler.Logout)
	app.Get("/logged_in", authHandler.LoggedIn)

	app.Get("/events", eventHandler.List)
	app.Get("/teams", teamHandler.List)
	app.Get("/employees", employeeHandler.List)

	protected := app.Group("")
	if cfg.Auth {
		protected.Use(authmw.Session(svc.Auth))
	}

	protected.Post("/change_password", authHandler.ChangePassword)

	protected.Post("/events", eventHandler.Create)
	protected.Put("/events", eventHandler.Update)
	protected.Delete("/events/:id", eventHandler.Delete)

	protected.Post("/teams", teamHandler.Create)
	protected.Put("/teams", teamHandler.Update)
	protected.Delete("/teams/:id", teamHandler.Delete)

	protected.Post("/employees", employeeHandler.Create)
	protected.Put("/employees", employeeHandler.Update)
	protected.Delete("/employees/:id", employeeHandler.Delete)

	return &Server{Handler: app, run: app.Run, services: svc, logger: logger}
}

// Run serves on addr and drops expired sessions every hour until ctx is done.
func (s *Server) Run(ctx context.Context, addr string) error {
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := s.services.Auth.CleanupExpired(ctx); n > 0 {
					logging.Component(ctx, s.logger, "server", "cleanup").Debug("expired sessions removed", "count", n)
				}
			}
		}
	}()
	return s.run(addr)
}
