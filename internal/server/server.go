package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/K25anjali/fossil-energy-graph/internal/charts"
	"github.com/K25anjali/fossil-energy-graph/internal/energy"
	"github.com/K25anjali/fossil-energy-graph/internal/metrics"
	"github.com/K25anjali/fossil-energy-graph/internal/series"
)

// ShutdownTimeout bounds the graceful shutdown of ListenAndServe.
const ShutdownTimeout = 10 * time.Second

// Server serves the charts over HTTP. The dataset and builder are never
// mutated, so handlers share no state besides the metrics.
type Server struct {
	builder *series.Builder
	dataset energy.Dataset
	metrics *metrics.Recorder
	logger  *slog.Logger
}

// New returns a server for ds. rec and logger may be nil.
func New(b *series.Builder, ds energy.Dataset, rec *metrics.Recorder, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Server{builder: b, dataset: ds, metrics: rec, logger: logger}
}

// Handler returns the routed and access-logged handler.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	router.HandleFunc("/charts/{source:[a-z]+}.{format:png|svg}", s.handleImage).Methods(http.MethodGet)
	router.HandleFunc("/api/series/{source:[a-z]+}", s.handleSeries).Methods(http.MethodGet)
	router.HandleFunc("/api/tooltip/{source:[a-z]+}/{year:[0-9]+}", s.handleTooltip).Methods(http.MethodGet)
	router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{})).Methods(http.MethodGet)

	return handlers.CustomLoggingHandler(io.Discard, router, s.logRequest)
}

func (s *Server) logRequest(_ io.Writer, params handlers.LogFormatterParams) {
	r := params.Request
	s.logger.Info("request",
		"method", r.Method,
		"status", params.StatusCode,
		"uri", r.RequestURI,
		"size", params.Size,
		"remote", r.RemoteAddr,
	)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) source(w http.ResponseWriter, r *http.Request) (energy.Source, bool) {
	src, err := energy.ParseSource(mux.Vars(r)["source"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return 0, false
	}
	return src, true
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	cs := s.builder.BuildAll(s.dataset)
	s.record(charts.BackendHTML, cs...)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := charts.NewHTML(s.builder.Config()).Render(w, cs); err != nil {
		s.logger.Error("rendering page", "err", err)
	}
}

func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	src, ok := s.source(w, r)
	if !ok {
		return
	}
	format := mux.Vars(r)["format"]

	c := s.builder.Build(src, s.dataset[src])
	if c.Err != nil {
		s.record(format, c)
		s.logger.Error("building chart", "source", src, "err", c.Err)
		http.Error(w, c.Err.Error(), http.StatusInternalServerError)
		return
	}

	// Render into a buffer so a failure can still answer with a 500.
	im := charts.NewImage(s.builder.Config(), format)
	var buf bytes.Buffer
	if err := im.Render(&buf, []series.Chart{c}); err != nil {
		s.metrics.Failed(src.String())
		s.logger.Error("rendering image", "source", src, "format", format, "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.record(format, c)
	w.Header().Set("Content-Type", im.ContentType())
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.logger.Warn("writing image", "source", src, "err", err)
	}
}

// seriesResponse is the JSON form of a chart.
type seriesResponse struct {
	Source   energy.Source     `json:"source"`
	Primary  bool              `json:"primary"`
	Excluded int               `json:"excluded"`
	Line     series.Channel    `json:"line"`
	Stacked  [2]series.Channel `json:"stacked"`
	Frames   []series.Frame    `json:"frames"`
}

func (s *Server) handleSeries(w http.ResponseWriter, r *http.Request) {
	src, ok := s.source(w, r)
	if !ok {
		return
	}
	c := s.builder.Build(src, s.dataset[src])
	if c.Err != nil {
		s.metrics.Failed(src.String())
		http.Error(w, c.Err.Error(), http.StatusInternalServerError)
		return
	}
	s.metrics.Excluded(src.String(), c.Excluded)
	writeJSON(w, seriesResponse{
		Source:   c.Source,
		Primary:  c.Primary,
		Excluded: c.Excluded,
		Line:     c.Line,
		Stacked:  c.Stacked,
		Frames:   c.Frames,
	})
}

func (s *Server) handleTooltip(w http.ResponseWriter, r *http.Request) {
	src, ok := s.source(w, r)
	if !ok {
		return
	}
	year, err := strconv.Atoi(mux.Vars(r)["year"])
	if err != nil {
		http.Error(w, "invalid year", http.StatusBadRequest)
		return
	}
	s.metrics.Tooltip()
	writeJSON(w, s.builder.Tooltip(s.dataset, src, year))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// record counts a render pass of cs on backend.
func (s *Server) record(backend string, cs ...series.Chart) {
	for _, c := range cs {
		if c.Err != nil {
			s.metrics.Failed(c.Source.String())
			continue
		}
		s.metrics.Rendered(c.Source.String(), backend)
		s.metrics.Excluded(c.Source.String(), c.Excluded)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
