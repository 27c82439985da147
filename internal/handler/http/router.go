package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-calendar-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-calendar-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/httprate"
	"github.com/go-chi/jwtauth/v5"
	"github.com/unrolled/secure"
)

// RouterConfig carries the settings the middleware chain depends on.
type RouterConfig struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	// RateLimit is the number of requests per minute and IP. Zero disables it.
	RateLimit  int
	Production bool
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, calendarHandler CalendarHandler, planningHandler PlanningHandler) *chi.Mux {
	r := chi.NewRouter()

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(secure.New(secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'none'",
		SSLRedirect:           cfg.Production,
		SSLProxyHeaders:       map[string]string{"X-Forwarded-Proto": "https"},
		IsDevelopment:         !cfg.Production,
	}).Handler)

	r.Use(chiMiddleware.RequestID)
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	if cfg.RateLimit > 0 {
		r.Use(httprate.Limit(cfg.RateLimit, time.Minute,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
				response.TooManyRequests(w, "Rate limit exceeded")
			}),
		))
	}

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/calendar", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionCalendarViewOwn)).Get("/me", calendarHandler.GetMyCalendar)

				r.Route("/employees/{id}", func(r chi.Router) {
					r.Use(middleware.RequireSelfOrPermission("id", user.PermissionCalendarViewAll))
					r.Get("/", calendarHandler.GetEmployeeCalendar)
					r.Get("/stats", calendarHandler.GetEmployeeStats)
				})
			})

			r.Route("/planning", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionPlanningView))
					r.Get("/leaves", planningHandler.GetLeavePlanning)
					r.Get("/leaves/today", planningHandler.GetOnLeaveToday)
					r.Get("/attendance", planningHandler.GetAttendancePlanning)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionPlanningExport))
					r.Get("/leaves/export", planningHandler.ExportLeavePlanning)
					r.Get("/attendance/export", planningHandler.ExportAttendancePlanning)
				})
			})

			// Admin only
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/stats/refresh", calendarHandler.RefreshStats)
			})
		})
	})
	return r
}
