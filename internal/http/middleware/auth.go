package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campusbridge/campus-bridge/internal/authz"
	"github.com/campusbridge/campus-bridge/internal/platform/apierr"
	"github.com/campusbridge/campus-bridge/internal/platform/ctxutil"
	"github.com/campusbridge/campus-bridge/internal/platform/logger"
	"github.com/campusbridge/campus-bridge/internal/services"
)

const (
	SessionCookieName = "cb_session"
	LoginPath         = "/auth/login"
)

type AuthMiddleware struct {
	log          *logger.Logger
	authService  services.AuthService
	secureCookie bool
}

func NewAuthMiddleware(log *logger.Logger, authService services.AuthService, secureCookie bool) *AuthMiddleware {
	middlewareLogger := log.With("Middleware", "AuthMiddleware")
	return &AuthMiddleware{log: middlewareLogger, authService: authService, secureCookie: secureCookie}
}

// Session attaches the caller's identity when the session cookie is valid.
// It never rejects: the request continues anonymously and route guards
// decide what happens next. Only an invalid cookie is cleared.
func (am *AuthMiddleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}
		id, err := am.authService.Authenticate(c.Request.Context(), token)
		if err != nil {
			if apierr.KindOf(err) == apierr.KindUnauthorized {
				am.log.Debug("Ignoring session cookie", "error", err)
				am.ClearSessionCookie(c)
			} else {
				am.log.Error("Session lookup failed", "error", err)
			}
			c.Next()
			return
		}
		c.Request = c.Request.WithContext(ctxutil.WithIdentity(c.Request.Context(), id))
		c.Next()
	}
}

// RequireStudent redirects to the login page unless the caller is a student.
// Denied requests never reach the handler.
func (am *AuthMiddleware) RequireStudent() gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := authz.RequireStudent(ctxutil.GetIdentity(c.Request.Context()))
		if !decision.Allowed {
			am.log.Debug("Student route denied", "reason", decision.Reason, "path", c.Request.URL.Path)
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

func (am *AuthMiddleware) SetSessionCookie(c *gin.Context, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	if maxAge < 1 {
		maxAge = 1
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, maxAge, "/", "", am.secureCookie, true)
}

func (am *AuthMiddleware) ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", am.secureCookie, true)
}
