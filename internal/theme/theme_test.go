package theme

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestFromContextDefaultsToDark(t *testing.T) {
	assert.Equal(t, Dark, FromContext(context.Background()))
}

func TestMiddlewareInstallsTheme(t *testing.T) {
	gin.SetMode(gin.TestMode)
	custom := Theme{Name: "midnight", Attribute: "data-theme", ColorScheme: "dark"}

	var got Theme
	r := gin.New()
	r.Use(Middleware(custom))
	r.GET("/", func(c *gin.Context) {
		got = FromContext(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, custom, got)
}
