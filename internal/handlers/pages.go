package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shazarali/portfolio/internal/analytics"
	"github.com/shazarali/portfolio/internal/components"
	"github.com/shazarali/portfolio/internal/content"
	"github.com/shazarali/portfolio/internal/sections"
	"github.com/shazarali/portfolio/internal/theme"
)

type Pages struct {
	Meta  components.PageMeta
	Store *analytics.Store
	Now   func() time.Time
}

// Home renders the portfolio. ?section=<id> starts the page on that section;
// anything unknown falls back to the first one.
func (p *Pages) Home(c *gin.Context) {
	active := sections.Order[0]
	if q := c.Query("section"); q != "" {
		if id, err := sections.Parse(q); err == nil {
			active = id
		}
	}

	now := time.Now
	if p.Now != nil {
		now = p.Now
	}

	page := components.Home(components.HomeConfig{
		Meta:   p.Meta,
		Theme:  theme.FromContext(c.Request.Context()),
		Active: active,
		Year:   now().Year(),
	})

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := page.Render(c.Writer); err != nil {
		log.Printf("Error rendering home page (request %s): %v", c.GetString(RequestIDKey), err)
	}
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Outbound counts a click on an external link and redirects to it.
func (p *Pages) Outbound(c *gin.Context) {
	target := c.Param("target")
	url, ok := content.OutboundLinks[target]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown link"})
		return
	}

	if p.Store != nil && c.GetHeader("DNT") != "1" {
		if err := p.Store.RecordClick(c.Request.Context(), target); err != nil {
			log.Printf("Error recording click on %s (request %s): %v", target, c.GetString(RequestIDKey), err)
		}
	}
	c.Redirect(http.StatusFound, url)
}
