package main

import (
	"net/http"
	"time"

	api "github.com/belajar-arab/backend/internal/api/http"
	"github.com/belajar-arab/backend/internal/auth"
	"github.com/belajar-arab/backend/internal/config"
	"github.com/belajar-arab/backend/internal/learning"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// newRouter assembles the full HTTP surface. degraded is non-nil when
// required configuration is missing; data routes then answer 500
// instead of the process refusing to start.
func newRouter(cfg config.Config, store learning.Store, creds auth.CredentialStore, authSvc *auth.Service, degraded error) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// Pre-flight requests short-circuit here, before any handler runs.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// LoginHandler answers its own 405 so the error body stays JSON.
	r.HandleFunc("/api/auth", auth.LoginHandler(creds, authSvc))

	r.Route("/api/database", func(dr chi.Router) {
		if degraded != nil || store == nil {
			api.MountUnavailable(dr, degraded)
			return
		}
		d := api.Deps{Store: store, Mode: cfg.Mode, DBName: dbDisplayName(cfg.DBDriver)}
		if cfg.RequireAuth {
			d.WriteGuard = auth.Middleware(authSvc)
		}
		api.Mount(dr, d)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	return r
}

func dbDisplayName(driver string) string {
	switch driver {
	case "postgres":
		return "PostgreSQL"
	case "sqlite":
		return "SQLite"
	default:
		return driver
	}
}
