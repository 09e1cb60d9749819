package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/jwulff/kaza-go/internal/tracker"
)

// Server serves the HTTP API.
type Server struct {
	tracker *tracker.Tracker
	log     zerolog.Logger
	router  *gin.Engine
}

// New builds a Server with all routes registered.
func New(tr *tracker.Tracker, logger zerolog.Logger) *Server {
	s := &Server{
		tracker: tr,
		log:     logger.With().Str("component", "api").Logger(),
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.log))
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.GET("/prayers", ResolveEndpoint(s.listPrayers))
	api.POST("/prayers", ResolveEndpoint(s.addPrayer))
	api.GET("/prayers/count", ResolveEndpoint(s.countPrayers))
	api.DELETE("/prayers/:id", ResolveEndpoint(s.deletePrayer))
	api.GET("/prayer-types", ResolveEndpoint(s.listPrayerTypes))

	api.GET("/settings/city", ResolveEndpoint(s.getCity))
	api.PUT("/settings/city", ResolveEndpoint(s.setCity))
	api.DELETE("/settings/city", ResolveEndpoint(s.clearCity))
	api.GET("/settings/theme", ResolveEndpoint(s.getTheme))
	api.PUT("/settings/theme", ResolveEndpoint(s.setTheme))

	api.GET("/cities", ResolveEndpoint(s.listCities))
	api.GET("/times", ResolveEndpoint(s.prayerTimes))

	s.router = r
	return s
}

// Handler returns the http.Handler for the API.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
