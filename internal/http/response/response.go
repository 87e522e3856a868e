package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON writes a machine-readable body for non-page endpoints.
func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

// Page renders a named template from the engine's HTML set.
func Page(c *gin.Context, status int, name string, data gin.H) {
	c.HTML(status, name, data)
}

// Redirect issues a 302, the status browsers follow with GET after a form POST.
func Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}
