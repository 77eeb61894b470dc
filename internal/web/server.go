package web

import (
	"context"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/gudururanadheer/Hospital-command-center-Samartha/internal/config"
	hcnats "github.com/gudururanadheer/Hospital-command-center-Samartha/internal/nats"
	"github.com/gudururanadheer/Hospital-command-center-Samartha/internal/store"
	"github.com/gudururanadheer/Hospital-command-center-Samartha/internal/workflow"
)

//go:embed all:web/*
var webFiles embed.FS

type Server struct {
	echo     *echo.Echo
	js       jetstream.JetStream
	store    store.Store
	workflow *workflow.Workflow
	config   *config.Config
}

func NewServer(js jetstream.JetStream, st store.Store, wf *workflow.Workflow, cfg *config.Config) *Server {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	return &Server{
		echo:     e,
		js:       js,
		store:    st,
		workflow: wf,
		config:   cfg,
	}
}

func (s *Server) Start(ctx context.Context) error {
	s.setupRoutes()

	addr := fmt.Sprintf(":%d", s.config.WebPort)
	slog.Info("Web server starting", "port", s.config.WebPort)

	go func() {
		if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("Web server error", "error", err)
		}
	}()

	// Wait for context cancellation
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.echo.Shutdown(shutdownCtx)
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")
	api.GET("/health", s.handleHealth)
	api.GET("/state", s.handleState)
	api.GET("/stats", s.handleStats)
	api.GET("/config", s.handleGetConfig)
	api.PUT("/config", s.handlePutConfig)
	api.GET("/patients", s.handleGetPatients)
	api.GET("/patients/archive", s.handleGetArchive)
	api.POST("/patients", s.handleAdmit)
	api.POST("/patients/:id/discharge", s.handleDischarge)
	api.GET("/notifications/:staffId", s.handleNotifications)
	api.GET("/events", s.handleEvents)

	// Serve static files from embedded filesystem
	webFS, err := fs.Sub(webFiles, "web")
	if err != nil {
		slog.Error("Web assets could not be loaded", "error", err)
		return
	}

	s.echo.GET("/", func(c echo.Context) error {
		file, err := webFS.Open("index.html")
		if err != nil {
			return err
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return err
		}
		return c.HTML(http.StatusOK, string(data))
	})

	s.echo.GET("/*", echo.WrapHandler(http.FileServer(http.FS(webFS))))
}

func (s *Server) handleHealth(c echo.Context) error {
	ctx := c.Request().Context()
	components := make(map[string]string)
	overallStatus := "healthy"

	if s.js != nil {
		_, err := s.js.AccountInfo(ctx)
		if err != nil {
			components["nats"] = "unhealthy: " + err.Error()
			overallStatus = "degraded"
		} else {
			components["nats"] = "healthy"
		}
	} else {
		components["nats"] = "unhealthy: not initialized"
		overallStatus = "unhealthy"
	}

	for _, bucket := range []string{hcnats.StateBucket, hcnats.NotifyBucket, hcnats.StatsBucket} {
		kv, err := s.js.KeyValue(ctx, bucket)
		if err != nil {
			components[bucket] = "unhealthy: bucket not found"
			overallStatus = "degraded"
			continue
		}
		status, _ := kv.Status(ctx)
		if status != nil {
			components[bucket] = fmt.Sprintf("healthy (values: %d)", status.Values())
		} else {
			components[bucket] = "healthy"
		}
	}

	health := map[string]interface{}{
		"status":     overallStatus,
		"timestamp":  time.Now(),
		"components": components,
		"version":    "1.0.0",
	}

	statusCode := http.StatusOK
	if overallStatus == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	return c.JSON(statusCode, health)
}

func (s *Server) handleStats(c echo.Context) error {
	stats, err := s.store.Stats(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Stats store unavailable")
	}
	return c.JSON(http.StatusOK, stats)
}

func (s *Server) handleEvents(c echo.Context) error {
	ctx := c.Request().Context()

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set("Cache-Control", "no-cache")
	resp.Header().Set("Connection", "keep-alive")
	resp.WriteHeader(http.StatusOK)
	resp.Flush()

	// Advisory change feed: one event per key write anywhere in the system.
	// Rapid writes may be coalesced; clients are expected to refetch, not to
	// reconstruct state from events.
	changes := make(chan string, 8)
	var stops []func()
	for _, key := range []string{store.KeyConfig, store.KeyAdmitted, store.KeyDischarged} {
		key := key
		stop, err := s.store.Watch(ctx, key, func([]byte) {
			select {
			case changes <- key:
			default:
			}
		})
		if err != nil {
			slog.Error("Change watch failed", "key", key, "error", err)
			continue
		}
		stops = append(stops, stop)
	}
	defer func() {
		for _, stop := range stops {
			stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case key := <-changes:
			if _, err := fmt.Fprintf(resp, "event: change\ndata: %s\n\n", key); err != nil {
				return nil
			}
			resp.Flush()
		}
	}
}
