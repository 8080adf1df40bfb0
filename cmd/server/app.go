package main

import (
	"net/http"

	"github.com/diewo77/go-quotes/auth"
	"github.com/diewo77/go-quotes/httpx"
	"github.com/diewo77/go-quotes/internal/config"
	"github.com/diewo77/go-quotes/internal/handlers"
	"github.com/diewo77/go-quotes/internal/logging"
	"github.com/diewo77/go-quotes/internal/pdf"
	"github.com/diewo77/go-quotes/internal/policy"
	"github.com/diewo77/go-quotes/internal/services"
	"gorm.io/gorm"
)

// App is the main application handler that sets up all routes.
type App struct {
	mux      *http.ServeMux
	db       *gorm.DB
	sessions *auth.Sessions
	handler  http.Handler
}

// NewApp creates a new application with all routes configured.
func NewApp(db *gorm.DB, cfg *config.Config) *App {
	sessions := auth.NewSessions(cfg.App.SessionSecret)
	ah := handlers.NewAuthHandler(db, sessions)
	sessions.SetUserVerifier(ah.UserExists)

	svc := services.NewQuoteService(db, policy.NewQuoteGate(), cfg.Quote.DefaultHourlyRate)
	qh := handlers.NewQuoteHandler(svc, pdf.NewRenderer(cfg.Quote.CompanyName))

	app := &App{
		mux:      http.NewServeMux(),
		db:       db,
		sessions: sessions,
	}
	app.setupRoutes(ah, qh)
	app.handler = logging.Middleware(sessions.Middleware(app.mux))
	return app
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}

func (a *App) setupRoutes(ah *handlers.AuthHandler, qh *handlers.QuoteHandler) {
	// Public
	a.mux.HandleFunc("GET /healthz", a.healthz)
	a.mux.HandleFunc("POST /signup", ah.Signup)
	a.mux.HandleFunc("POST /login", ah.Login)
	a.mux.HandleFunc("POST /logout", ah.Logout)

	// Catalog reference data
	a.mux.Handle("GET /api/catalog", a.requireAuth(qh.Catalog))
	a.mux.Handle("GET /api/industries", a.requireAuth(qh.Industries))
	a.mux.Handle("POST /api/suggestions", a.requireAuth(qh.Suggestions))

	// Quotes; ownership is enforced by the service gate.
	a.mux.Handle("GET /api/me", a.requireAuth(ah.Me))
	a.mux.Handle("GET /api/quotes", a.requireAuth(qh.List))
	a.mux.Handle("POST /api/quotes", a.requireAuth(qh.Create))
	a.mux.Handle("GET /api/quotes/{id}", a.requireAuth(qh.Show))
	a.mux.Handle("POST /api/quotes/{id}/tasks", a.requireAuth(qh.UpdateTasks))
	a.mux.Handle("DELETE /api/quotes/{id}", a.requireAuth(qh.Delete))
	a.mux.Handle("GET /api/quotes/{id}/pdf", a.requireAuth(qh.PDF))
	a.mux.Handle("GET /api/quotes/{id}/xlsx", a.requireAuth(qh.XLSX))
}

func (a *App) requireAuth(h http.HandlerFunc) http.Handler {
	return a.sessions.RequireAuth(h)
}

func (a *App) healthz(w http.ResponseWriter, r *http.Request) {
	sqlDB, err := a.db.DB()
	if err == nil {
		err = sqlDB.PingContext(r.Context())
	}
	if err != nil {
		httpx.JSONError(w, http.StatusServiceUnavailable, "database_unavailable", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
