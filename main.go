package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shazarali/portfolio/internal/analytics"
	"github.com/shazarali/portfolio/internal/components"
	"github.com/shazarali/portfolio/internal/config"
	"github.com/shazarali/portfolio/internal/handlers"
	"github.com/shazarali/portfolio/internal/theme"
)

//go:embed static
var staticFS embed.FS

//go:embed templates/*.html
var templatesFS embed.FS

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg := config.Load()
	gin.SetMode(cfg.Mode)

	store, err := analytics.Open(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open analytics database: %w", err)
	}
	defer store.Close()

	// Waited on before the deferred Close.
	var wg sync.WaitGroup
	defer wg.Wait()
	wg.Add(1)
	go func() {
		defer wg.Done()
		cleanupExpired(store, cfg.VisitorRetention)
	}()

	r, err := newRouter(cfg, store)
	if err != nil {
		return fmt.Errorf("failed to set up router: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return serve(ctx, srv)
}

func cleanupExpired(store *analytics.Store, retention time.Duration) {
	n, err := store.Cleanup(context.Background(), retention)
	if err != nil {
		log.Printf("Error cleaning up old visitor data: %v", err)
		return
	}
	if n > 0 {
		log.Printf("Privacy cleanup: removed %d analytics records past retention", n)
	}
}

// serve runs srv until ctx is done, then shuts it down gracefully. A listener
// that fails to start is returned as an error.
func serve(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on http://localhost%s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed to start: %w", err)
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shut down: %w", err)
	}
	return nil
}

func newRouter(cfg *config.Config, store *analytics.Store) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), handlers.RequestID(), theme.Middleware(theme.Dark))
	r.Use(analytics.Middleware(store))

	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	staticSub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}
	r.StaticFS("/static", http.FS(staticSub))
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/static/images/favicon.svg")
	})

	canonical := ""
	if cfg.SiteURL != "" {
		canonical = cfg.SiteURL + "/"
	}
	pages := &handlers.Pages{
		Meta: components.PageMeta{
			CanonicalURL:       canonical,
			GoogleVerification: cfg.GoogleVerification,
		},
		Store: store,
	}

	r.GET("/", pages.Home)
	r.GET("/healthz", handlers.Health)
	r.GET("/out/:target", pages.Outbound)

	adm, err := newAdmin(cfg, store)
	if err != nil {
		return nil, err
	}
	adm.setupRoutes(r)

	return r, nil
}
