// admin.go - privacy-conscious admin dashboard over the visitor analytics
package main

import (
	"crypto/subtle"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shazarali/portfolio/internal/analytics"
	"github.com/shazarali/portfolio/internal/config"
)

const adminCookie = "admin_token"

type adminLogin struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type admin struct {
	token     string
	username  string
	password  string
	retention time.Duration
	store     *analytics.Store
}

func newAdmin(cfg *config.Config, store *analytics.Store) (*admin, error) {
	token, err := analytics.NewToken()
	if err != nil {
		return nil, err
	}

	a := &admin{
		token:     token,
		username:  cfg.AdminUsername,
		password:  cfg.AdminPassword,
		retention: cfg.VisitorRetention,
		store:     store,
	}

	// Default credentials for development
	if a.username == "" {
		a.username = "admin"
		if gin.Mode() == gin.DebugMode {
			log.Println("WARNING: Using default admin username. Set ADMIN_USERNAME environment variable.")
		}
	}
	if a.password == "" {
		a.password = "admin123"
		if gin.Mode() == gin.DebugMode {
			log.Println("WARNING: Using default admin password. Set ADMIN_PASSWORD environment variable.")
		}
	}

	log.Printf("Admin access available at: /admin/login")
	return a, nil
}

func (a *admin) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (a *admin) validCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	return userOK && passOK
}

func (a *admin) setupRoutes(r *gin.Engine) {
	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"title":         "Privacy Policy",
			"retentionDays": int(a.retention.Hours() / 24),
		})
	})

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		var form adminLogin
		if err := c.ShouldBind(&form); err != nil || !a.validCredentials(form.Username, form.Password) {
			log.Printf("Failed admin login attempt from %s", a.store.HashIP(c.ClientIP()))
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"title": "Admin Login",
				"error": "Invalid credentials",
			})
			return
		}

		c.SetCookie(adminCookie, a.token, 3600*24, "/admin", "", false, true)
		log.Printf("Admin login successful from %s", a.store.HashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	group := r.Group("/admin")
	group.Use(a.authMiddleware())

	group.GET("/dashboard", func(c *gin.Context) {
		stats, err := a.store.Stats(c.Request.Context())
		if err != nil {
			log.Printf("Error loading admin stats: %v", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"title": "Dashboard",
			"stats": stats,
		})
	})

	group.GET("/api/stats", func(c *gin.Context) {
		stats, err := a.store.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	group.GET("/visitors", func(c *gin.Context) {
		visitors, err := a.store.RecentVisitors(c.Request.Context(), 200)
		if err != nil {
			log.Printf("Error loading visitors: %v", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load visitors",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-visitors.html", gin.H{
			"title":    "Visitors",
			"visitors": visitors,
		})
	})

	group.POST("/privacy/cleanup", func(c *gin.Context) {
		n, err := a.store.Cleanup(c.Request.Context(), a.retention)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup complete", "deleted": n})
	})

	group.GET("/export/stats", func(c *gin.Context) {
		stats, err := a.store.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		log.Printf("Admin stats exported by %s", a.store.HashIP(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})
}
