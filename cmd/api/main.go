package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hris-calendar-go/internal/config"
	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/leave"
	appHTTP "github.com/cmlabs-hris/hris-calendar-go/internal/handler/http"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/cache"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/cron"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/oauth"
	"github.com/cmlabs-hris/hris-calendar-go/internal/repository/postgresql"
	"github.com/cmlabs-hris/hris-calendar-go/internal/repository/upstream"
	calendarService "github.com/cmlabs-hris/hris-calendar-go/internal/service/calendar"
	"github.com/go-chi/httplog/v3"
)

type sources struct {
	attendance attendance.Source
	leave      leave.Source
	employee   employee.Source
	close      func()
}

func main() {
	if err := run(); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logFormat := httplog.SchemaECS.Concise(!cfg.IsProduction())
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hris-calendar"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, err := openSources(ctx, cfg)
	if err != nil {
		return err
	}
	defer src.close()

	var calendarCache *cache.Cache
	if cfg.Redis.Addr != "" {
		client, err := cache.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer client.Close()
		calendarCache = cache.New(client, cfg.Redis.TTL)
		slog.Info("Redis cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.TTL)
	} else {
		slog.Info("Redis cache disabled")
	}

	location := cfg.Location()
	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	calendarSvc := calendarService.NewCalendarService(
		src.attendance,
		src.leave,
		src.employee,
		calendarCache,
		location,
		calendarService.WithWorkers(cfg.Cron.Workers),
	)

	scheduler := cron.NewScheduler()
	if calendarCache.Enabled() {
		cron.NewCalendarJobs(calendarSvc, location).RegisterJobs(scheduler, cfg.Cron.StatsRefreshInterval)
	}
	scheduler.Start()
	defer scheduler.Stop()

	calendarHandler := appHTTP.NewCalendarHandler(calendarSvc, location)
	planningHandler := appHTTP.NewPlanningHandler(calendarSvc, location)

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		Logger:         logger,
		AllowedOrigins: cfg.App.AllowedOrigins,
		RateLimit:      cfg.App.RateLimit,
		Production:     cfg.IsProduction(),
	}, JWTService, calendarHandler, planningHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr, "source", cfg.Source.Type)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
		slog.Info("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func openSources(ctx context.Context, cfg *config.Config) (sources, error) {
	switch cfg.Source.Type {
	case config.SourcePostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), 10)
		if err != nil {
			return sources{}, fmt.Errorf("connect database: %w", err)
		}
		return sources{
			attendance: postgresql.NewAttendanceRepository(db),
			leave:      postgresql.NewLeaveRequestRepository(db),
			employee:   postgresql.NewUserRepository(db),
			close:      db.Close,
		}, nil
	case config.SourceHTTP:
		tokens := oauth.NewTokenSource(ctx, oauth.Credentials{
			Token:        cfg.Upstream.Token,
			ClientID:     cfg.Upstream.ClientID,
			ClientSecret: cfg.Upstream.ClientSecret,
			TokenURL:     cfg.Upstream.TokenURL,
			Scopes:       cfg.Upstream.Scopes,
		}, &http.Client{Timeout: cfg.Upstream.Timeout})
		if tokens == nil {
			slog.Warn("Upstream calls are unauthenticated", "base_url", cfg.Upstream.BaseURL)
		}
		client := upstream.NewClient(cfg.Upstream.BaseURL, tokens, cfg.Upstream.Timeout)
		return sources{
			attendance: client,
			leave:      client,
			employee:   client,
			close:      func() {},
		}, nil
	default:
		return sources{}, fmt.Errorf("unsupported source type: %s", cfg.Source.Type)
	}
}
