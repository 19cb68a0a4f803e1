package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"famorg/internal/geocode"
	"famorg/internal/handler"
	"famorg/internal/middleware"
	"famorg/internal/session"
	"famorg/internal/store"
	ws "famorg/internal/websocket"
)

type Server struct {
	db          *sql.DB
	hub         *ws.Hub
	authH       *handler.AuthHandler
	eventH      *handler.EventHandler
	dashboardH  *handler.DashboardHandler
	calendarH   *handler.CalendarHandler
	geocodeH    *handler.GeocodeHandler
	icsH        *handler.ICSHandler
	sessions    *session.Manager
	loginGuard  *middleware.LoginGuard
	rateLimiter *middleware.RateLimiter
	logger      *slog.Logger
}

func New(db *sql.DB, sessions *session.Manager, geocoder *geocode.Client, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))

	eventStore := store.NewEventStore(db)
	userStore := store.NewUserStore(db)
	familyStore := store.NewFamilyStore(db)

	guard := middleware.NewLoginGuard(middleware.DefaultFailureLimit, middleware.DefaultLockoutDuration)

	return &Server{
		db:          db,
		hub:         hub,
		authH:       handler.NewAuthHandler(userStore, familyStore, sessions, guard, logger.With("component", "auth")),
		eventH:      handler.NewEventHandler(eventStore, hub, logger.With("component", "event")),
		dashboardH:  handler.NewDashboardHandler(eventStore, logger.With("component", "dashboard")),
		calendarH:   handler.NewCalendarHandler(eventStore, logger.With("component", "calendar")),
		geocodeH:    handler.NewGeocodeHandler(geocoder, logger.With("component", "geocode")),
		icsH:        handler.NewICSHandler(eventStore, logger.With("component", "ics")),
		sessions:    sessions,
		loginGuard:  guard,
		rateLimiter: middleware.NewRateLimiter(),
		logger:      logger,
	}
}

// LoginGuard returns the lockout tracker for cleanup tasks.
func (s *Server) LoginGuard() *middleware.LoginGuard {
	return s.loginGuard
}

// RateLimiter returns the rate limiter for cleanup tasks.
func (s *Server) RateLimiter() *middleware.RateLimiter {
	return s.rateLimiter
}

func (s *Server) Router() http.Handler {
	outerMux := http.NewServeMux()

	// Public routes (no auth required)
	outerMux.HandleFunc("POST /login", s.rateLimitedHandler(s.authH.Login))
	outerMux.HandleFunc("POST /register", s.rateLimitedHandler(s.authH.Register))
	outerMux.HandleFunc("GET /health", s.healthHandler)

	// Protected routes — wrapped with RequireAuth middleware
	protectedMux := http.NewServeMux()
	s.registerProtectedRoutes(protectedMux)

	authMiddleware := middleware.RequireAuth(s.sessions)
	outerMux.Handle("/", authMiddleware(protectedMux))

	return middleware.RequestLogger(s.logger.With("component", "http"))(outerMux)
}

func (s *Server) registerProtectedRoutes(mux *http.ServeMux) {
	// Event CRUD, paths the web client already uses
	mux.HandleFunc("POST /new-event-entry", s.eventH.Create)
	mux.HandleFunc("POST /get-family-events", s.eventH.List)
	mux.HandleFunc("POST /update-event/{id}", s.eventH.Update)
	mux.HandleFunc("POST /delete-event/{id}", s.eventH.Delete)

	// Views
	mux.HandleFunc("GET /api/dashboard", s.dashboardH.Upcoming)
	mux.HandleFunc("GET /api/calendar/{year}/{month}", s.calendarH.Month)
	mux.HandleFunc("GET /api/geocode", s.geocodeH.Resolve)
	mux.HandleFunc("GET /calendar.ics", s.icsH.Feed)

	// Live resync
	mux.HandleFunc("GET /ws", ws.Handler(s.hub, s.logger.With("component", "websocket")))
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) rateLimitedHandler(h http.HandlerFunc) http.HandlerFunc {
	keyFunc := func(r *http.Request) string {
		return middleware.RealIP(r)
	}
	rl := middleware.RateLimit(s.rateLimiter, keyFunc, 10, time.Minute)
	return func(w http.ResponseWriter, r *http.Request) {
		rl(http.HandlerFunc(h)).ServeHTTP(w, r)
	}
}
