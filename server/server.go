// Package server exposes graph operations and path search over HTTP.
//
// Endpoints:
//
//	GET  /graph-info                  node/edge counts of the loaded graph
//	POST /load-graph                  replace the graph from a file or request body
//	POST /reload-graph                reload the configured graph file
//	GET  /get-node/{node}             a node's neighbor map
//	GET  /get-edge/{u}/{v}            one edge payload
//	GET  /find-path/{start}/{dest}    shortest path between two nodes
//	GET  /health                      liveness probe
//	GET  /metrics                     Prometheus metrics
//
// The server holds one graph at a time. Loading swaps the graph pointer
// under a lock; in-flight searches keep running against the snapshot
// they started with, which keeps the single-threaded search contract
// intact without locking inside the engine.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wylee/dijkstar/core"
	"github.com/wylee/dijkstar/graphio"
)

// Server is the HTTP service around a core.Graph and the pathfind
// engine.
type Server struct {
	cfg     Config
	log     *slog.Logger
	metrics *metrics
	limiter *rateLimiter

	mu    sync.RWMutex
	graph *core.Graph[string, any]

	httpServer *http.Server
}

// Option adjusts a Server at construction time.
type Option func(*Server)

// WithLogger replaces the default slog logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) { s.log = log }
}

// New builds a Server from cfg, loading the configured graph file if
// one is set (otherwise starting with a new, empty graph).
func New(cfg Config, opts ...Option) (*Server, error) {
	s := &Server{
		cfg:     cfg,
		log:     slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)})),
		metrics: newMetrics(),
		graph:   core.New[string, any](),
	}
	if cfg.RateLimit > 0 {
		s.limiter = newRateLimiter(cfg.RateLimit, cfg.RateBurst)
	}
	for _, opt := range opts {
		opt(s)
	}

	if cfg.GraphFile != "" {
		graph, err := s.loadGraphFile(cfg.GraphFile, cfg.GraphFormat)
		if err != nil {
			return nil, err
		}
		s.setGraph(graph)
		s.log.Info("loaded graph", "file", cfg.GraphFile,
			"nodes", graph.NodeCount(), "edges", graph.EdgeCount())
	} else {
		s.setGraph(s.graph)
		s.log.Info("created a new graph since no graph file was specified")
	}

	s.httpServer = &http.Server{
		Addr:    cfg.Addr(),
		Handler: s.routes(),
	}

	return s, nil
}

// routes assembles the mux with per-route middleware.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	get := func(pattern, route string, h http.HandlerFunc) {
		mux.Handle("GET "+pattern, s.observe(route, h))
	}
	post := func(pattern, route string, h http.HandlerFunc) {
		mux.Handle("POST "+pattern, s.observe(route, s.authorize(h)))
	}

	get("/graph-info", "graph-info", s.handleGraphInfo)
	get("/get-node/{node}", "get-node", s.handleGetNode)
	get("/get-edge/{u}/{v}", "get-edge", s.handleGetEdge)
	get("/find-path/{start}/{dest}", "find-path", s.handleFindPath)
	post("/load-graph", "load-graph", s.handleLoadGraph)
	post("/reload-graph", "reload-graph", s.handleReloadGraph)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))

	return s.rateLimit(mux)
}

// ListenAndServe runs the server until ctx is canceled, then shuts
// down gracefully within the configured timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", s.httpServer.Addr)
		errc <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server: shutdown: %w", err)
		}
		return nil
	}
}

// Handler exposes the full route handler, mainly for tests.
func (s *Server) Handler() http.Handler { return s.httpServer.Handler }

// currentGraph returns the graph snapshot to serve this request from.
func (s *Server) currentGraph() *core.Graph[string, any] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.graph
}

// setGraph swaps in a newly loaded graph and refreshes the gauges.
func (s *Server) setGraph(graph *core.Graph[string, any]) {
	s.mu.Lock()
	s.graph = graph
	s.mu.Unlock()

	s.metrics.graphNodes.Set(float64(graph.NodeCount()))
	s.metrics.graphEdges.Set(float64(graph.EdgeCount()))
}

// loadGraphFile reads a graph from disk, honoring an explicit format
// override when the extension is not telling.
func (s *Server) loadGraphFile(path, format string) (*core.Graph[string, any], error) {
	if format != "" {
		parsed, err := graphio.ParseFormat(format)
		if err != nil {
			return nil, err
		}
		return graphio.LoadAs[any](path, parsed)
	}

	return graphio.Load[any](path)
}

// parseLevel maps a config log level to slog.
func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
