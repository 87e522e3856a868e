package app

import (
	"github.com/campusbridge/campus-bridge/internal/data/db"
	"github.com/campusbridge/campus-bridge/internal/http"
	httpH "github.com/campusbridge/campus-bridge/internal/http/handlers"
	httpMW "github.com/campusbridge/campus-bridge/internal/http/middleware"
	"github.com/campusbridge/campus-bridge/internal/platform/logger"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health  *httpH.HealthHandler
	Home    *httpH.HomeHandler
	Auth    *httpH.AuthHandler
	Student *httpH.StudentHandler
}

func wireMiddleware(log *logger.Logger, cfg Config, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, services.Auth, cfg.SecureCookies),
	}
}

func wireHandlers(log *logger.Logger, database *db.Database, clients Clients, services Services, middleware Middleware) Handlers {
	log.Info("Wiring handlers...")
	checks := map[string]httpH.Pinger{"database": database}
	if clients.SessionRevocations != nil {
		checks["redis"] = clients.SessionRevocations
	}
	return Handlers{
		Health:  httpH.NewHealthHandler(log, checks),
		Home:    httpH.NewHomeHandler(),
		Auth:    httpH.NewAuthHandler(log, services.Auth, middleware.Auth, httpMW.SessionCookieName),
		Student: httpH.NewStudentHandler(log, services.Student),
	}
}

func wireServer(log *logger.Logger, cfg Config, handlers Handlers, middleware Middleware) (*http.Server, error) {
	serviceName := ""
	if cfg.Otel.Enabled {
		serviceName = cfg.Otel.ServiceName
	}
	return http.NewServer(http.RouterConfig{
		Log:            log,
		ServiceName:    serviceName,
		CORSOrigins:    cfg.CORSOrigins,
		AuthMiddleware: middleware.Auth,
		AuthHandler:    handlers.Auth,
		HomeHandler:    handlers.Home,
		StudentHandler: handlers.Student,
		HealthHandler:  handlers.Health,
	})
}
