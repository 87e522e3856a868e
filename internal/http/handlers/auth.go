package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campusbridge/campus-bridge/internal/domain"
	"github.com/campusbridge/campus-bridge/internal/http/response"
	"github.com/campusbridge/campus-bridge/internal/platform/apierr"
	"github.com/campusbridge/campus-bridge/internal/platform/ctxutil"
	"github.com/campusbridge/campus-bridge/internal/platform/logger"
	"github.com/campusbridge/campus-bridge/internal/services"
)

// SessionCookies writes the browser session cookie. AuthMiddleware
// implements it.
type SessionCookies interface {
	SetSessionCookie(c *gin.Context, token string, expiresAt time.Time)
	ClearSessionCookie(c *gin.Context)
}

type AuthHandler struct {
	log         *logger.Logger
	authService services.AuthService
	cookies     SessionCookies
	cookieName  string
}

func NewAuthHandler(log *logger.Logger, authService services.AuthService, cookies SessionCookies, cookieName string) *AuthHandler {
	return &AuthHandler{
		log:         log.With("handler", "AuthHandler"),
		authService: authService,
		cookies:     cookies,
		cookieName:  cookieName,
	}
}

// GET /auth/login
func (ah *AuthHandler) LoginPage(c *gin.Context) {
	id := ctxutil.GetIdentity(c.Request.Context())
	if id != nil {
		response.Redirect(c, landingPath(id.Role))
		return
	}
	response.Page(c, http.StatusOK, "auth/login", gin.H{
		"title": pageTitle("Log in"),
	})
}

// POST /auth/login
func (ah *AuthHandler) Login(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	session, err := ah.authService.Login(c.Request.Context(), email, password)
	if err != nil {
		if apierr.KindOf(err) != apierr.KindUnauthorized {
			response.Fail(c, ah.log, err)
			return
		}
		response.Page(c, http.StatusUnauthorized, "auth/login", gin.H{
			"title": pageTitle("Log in"),
			"error": apierr.PublicMessage(err),
			"email": email,
		})
		return
	}

	ah.cookies.SetSessionCookie(c, session.Token, session.ExpiresAt)
	response.Redirect(c, landingPath(session.Identity.Role))
}

// POST /auth/logout
func (ah *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(ah.cookieName); err == nil && token != "" {
		if err := ah.authService.Logout(c.Request.Context(), token); err != nil {
			// The cookie is cleared regardless; the token simply lives until expiry.
			ah.log.Warn("Session revocation failed", "error", err)
		}
	}
	ah.cookies.ClearSessionCookie(c)
	response.Redirect(c, "/auth/login")
}

func landingPath(role domain.Role) string {
	if role == domain.RoleStudent {
		return dashboardPath
	}
	return "/"
}
