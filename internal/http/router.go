package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/campusbridge/campus-bridge/internal/http/handlers"
	httpMW "github.com/campusbridge/campus-bridge/internal/http/middleware"
	"github.com/campusbridge/campus-bridge/internal/http/views"
	"github.com/campusbridge/campus-bridge/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	ServiceName    string
	CORSOrigins    []string
	AuthMiddleware *httpMW.AuthMiddleware

	AuthHandler    *httpH.AuthHandler
	HomeHandler    *httpH.HomeHandler
	StudentHandler *httpH.StudentHandler
	HealthHandler  *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) (*gin.Engine, error) {
	tmpl, err := views.Load()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.CORSOrigins))
	if cfg.AuthMiddleware != nil {
		r.Use(cfg.AuthMiddleware.Session())
	}
	r.SetHTMLTemplate(tmpl)

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	if cfg.HomeHandler != nil {
		r.GET("/", cfg.HomeHandler.Home)
	}

	// Auth (public)
	if cfg.AuthHandler != nil {
		auth := r.Group("/auth")
		auth.GET("/login", cfg.AuthHandler.LoginPage)
		auth.POST("/login", cfg.AuthHandler.Login)
		auth.POST("/logout", cfg.AuthHandler.Logout)
	}

	// Student (role-gated)
	if cfg.StudentHandler != nil && cfg.AuthMiddleware != nil {
		student := r.Group("/student")
		student.Use(cfg.AuthMiddleware.RequireStudent())
		student.GET("/dashboard", cfg.StudentHandler.Dashboard)
		student.GET("/courses", cfg.StudentHandler.Courses)
		student.POST("/courses/:id/enroll", cfg.StudentHandler.Enroll)
		student.GET("/courses/:id", cfg.StudentHandler.CourseDetail)
	}

	return r, nil
}
