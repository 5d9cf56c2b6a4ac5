package theme

import (
	"context"

	"github.com/gin-gonic/gin"
)

// Theme is the visual theme handed down to page components.
type Theme struct {
	Name        string
	Attribute   string // html attribute the theme is applied through
	ColorScheme string
}

// Dark is the site theme. It is the only one configured and is not
// user-toggleable.
var Dark = Theme{Name: "dark", Attribute: "class", ColorScheme: "dark"}

type contextKey struct{}

// NewContext returns ctx carrying t.
func NewContext(ctx context.Context, t Theme) context.Context {
	return context.WithValue(ctx, contextKey{}, t)
}

// FromContext returns the theme stored in ctx, or Dark.
func FromContext(ctx context.Context) Theme {
	if t, ok := ctx.Value(contextKey{}).(Theme); ok {
		return t
	}
	return Dark
}

// Middleware installs t on every request context.
func Middleware(t Theme) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(NewContext(c.Request.Context(), t))
		c.Next()
	}
}
