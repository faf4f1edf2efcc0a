package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/leopardracer/network-app/internal/config"
	"github.com/leopardracer/network-app/internal/observability/tracing"
	"github.com/leopardracer/network-app/internal/services"
)

type Server struct {
	httpServer *http.Server
}

func NewRouter(svc *services.Service) http.Handler {
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(tracing.Middleware)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Method(http.MethodGet, "/healthcheck", handlerFunc(h.HealthCheck))

	r.Route("/v1", func(r chi.Router) {
		r.Method(http.MethodGet, "/stake-chart", handlerFunc(h.GetStakeChart))
		r.Method(http.MethodGet, "/stake-chart/tooltip", handlerFunc(h.GetStakeChartTooltip))

		r.Method(http.MethodPost, "/views", handlerFunc(h.OpenView))
		r.Method(http.MethodGet, "/views/{id}", handlerFunc(h.GetView))
		r.Method(http.MethodPut, "/views/{id}/range", handlerFunc(h.SetViewRange))
		r.Method(http.MethodPost, "/views/{id}/refresh", handlerFunc(h.RefreshView))
		r.Method(http.MethodDelete, "/views/{id}", handlerFunc(h.CloseView))

		r.Method(http.MethodGet, "/geo", handlerFunc(h.GetGeoInformation))

		r.Method(http.MethodGet, "/hosting-plans", handlerFunc(h.ListHostingPlans))
		r.Method(http.MethodPost, "/hosting-plans", handlerFunc(h.CreateHostingPlan))
		r.Method(http.MethodGet, "/hosting-plans/matched", handlerFunc(h.GetMatchedIndexers))
		r.Method(http.MethodGet, "/hosting-plans/channel-limit", handlerFunc(h.GetChannelLimits))
		r.Method(http.MethodPut, "/hosting-plans/{id}", handlerFunc(h.UpdateHostingPlan))
	})

	return r
}

func New(cfg *config.ServerConfig, svc *services.Service) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.Address(),
			Handler:      NewRouter(svc),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
	}
}

// Start serves until the server is shut down. It blocks.
func (s *Server) Start(ctx context.Context) error {
	log.Ctx(ctx).Info().Str("address", s.httpServer.Addr).Msg("Starting HTTP server")

	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		log.Ctx(r.Context()).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("handled request")
	})
}
