package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusbridge/campus-bridge/internal/http/response"
	"github.com/campusbridge/campus-bridge/internal/platform/ctxutil"
)

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler { return &HomeHandler{} }

// GET /
func (h *HomeHandler) Home(c *gin.Context) {
	response.Page(c, http.StatusOK, "home", gin.H{
		"title": siteName,
		"user":  ctxutil.GetIdentity(c.Request.Context()),
	})
}
