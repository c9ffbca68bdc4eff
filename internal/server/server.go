// Package server implements the Snapblocks HTTP API.
//
// Routes:
//
//	GET    /healthz                 liveness probe
//	POST   /v1/render               render a definition from the request body
//	GET    /v1/blocks               list stored definitions
//	POST   /v1/blocks               store a definition
//	GET    /v1/blocks/{id}          fetch a stored definition
//	DELETE /v1/blocks/{id}          delete a stored definition
//	GET    /v1/blocks/{id}/render   render a stored definition
//
// Rendered artifacts are cached by the hash of the definition plus the
// render options; the layout engine itself is deterministic, so a cache hit
// is byte-identical to a fresh render.
package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/snapblocks/snapblocks/pkg/cache"
	"github.com/snapblocks/snapblocks/pkg/config"
	"github.com/snapblocks/snapblocks/pkg/store"
)

// Server serves the block rendering API.
type Server struct {
	cfg    config.Config
	store  store.Store
	cache  cache.Cache
	keyer  cache.Keyer
	logger *log.Logger

	metricsHash string
	httpServer  *http.Server
}

// New creates a server from its dependencies. The metrics hash is computed
// once; it namespaces cached artifacts per metrics configuration.
func New(cfg config.Config, st store.Store, c cache.Cache, logger *log.Logger) *Server {
	metricsJSON, _ := json.Marshal(cfg.Metrics)
	s := &Server{
		cfg:         cfg,
		store:       st,
		cache:       c,
		keyer:       cache.NewDefaultKeyer(),
		logger:      logger,
		metricsHash: cache.Hash(metricsJSON),
	}
	s.httpServer = &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      s.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout.Std(),
		WriteTimeout: cfg.Server.WriteTimeout.Std(),
	}
	return s
}

// Router builds the chi route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/render", s.handleRender)
		r.Route("/blocks", func(r chi.Router) {
			r.Get("/", s.handleListBlocks)
			r.Post("/", s.handlePutBlock)
			r.Get("/{id}", s.handleGetBlock)
			r.Delete("/{id}", s.handleDeleteBlock)
			r.Get("/{id}/render", s.handleRenderStored)
		})
	})

	return r
}

// Start runs the HTTP server until the context is canceled, then shuts down
// gracefully within the configured shutdown timeout.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout.Std())
	defer cancel()
	s.logger.Info("server shutting down")
	return s.httpServer.Shutdown(shutdownCtx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
