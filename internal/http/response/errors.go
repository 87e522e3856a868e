package response

import (
	"github.com/gin-gonic/gin"

	"github.com/campusbridge/campus-bridge/internal/platform/apierr"
	"github.com/campusbridge/campus-bridge/internal/platform/logger"
)

// Fail maps err to a plain-text status response. 5xx bodies are always the
// generic "Server Error" and the cause is logged; 4xx bodies carry the
// error's public message.
func Fail(c *gin.Context, log *logger.Logger, err error) {
	status := apierr.StatusOf(err)
	if status >= 500 && log != nil {
		fields := []interface{}{
			"error", err,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		}
		if e, ok := apierr.As(err); ok && e.Code != "" {
			fields = append(fields, "code", e.Code)
		}
		log.Error("Request failed", fields...)
	}
	_ = c.Error(err)
	c.String(status, apierr.PublicMessage(err))
}
