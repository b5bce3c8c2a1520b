// Package server implements the local preview server behind `musicmap serve`.
//
// Routes:
//
//	GET /                  HTML page showing /journey.svg
//	GET /journey.{format}  rendered diagram (png, svg, jpg, dot)
//	GET /journey.json      nodes and edges as JSON
//	GET /healthz           liveness probe
//	GET /metrics           Prometheus metrics, when a Gatherer is configured
package server

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/musicmap/pkg/buildinfo"
	"github.com/matzehuels/musicmap/pkg/diagram"
	mmerrors "github.com/matzehuels/musicmap/pkg/errors"
	"github.com/matzehuels/musicmap/pkg/journey"
	"github.com/matzehuels/musicmap/pkg/observability"
)

// DefaultAddr is the listen address used when Config.Addr is empty.
const DefaultAddr = "127.0.0.1:8080"

// shutdownTimeout bounds the graceful shutdown after ctx is cancelled.
const shutdownTimeout = 5 * time.Second

// Config configures a Server.
type Config struct {
	Addr     string
	Journey  *journey.Journey
	Renderer *diagram.Renderer

	// Gatherer backs /metrics. The route is not registered when nil.
	Gatherer prometheus.Gatherer

	// Logger defaults to log.Default().
	Logger *log.Logger
}

// Server serves one journey over HTTP.
type Server struct {
	cfg    Config
	logger *log.Logger
	router chi.Router
}

// New creates a Server and registers its routes.
func New(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.Renderer == nil {
		cfg.Renderer = &diagram.Renderer{}
	}
	s := &Server{cfg: cfg, logger: cfg.Logger}
	if s.logger == nil {
		s.logger = log.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", handleHealth)
	r.Get("/journey.json", s.handleJSON)
	r.Get("/journey.{format}", s.handleRender)
	if cfg.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	s.router = r
	return s
}

// Handler returns the server's root handler.
func (s *Server) Handler() http.Handler { return s.router }

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.cfg.Addr }

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("Preview server listening", "addr", s.cfg.Addr, "version", buildinfo.Short())
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down preview server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return ctx.Err()
}

// unmatchedRoute labels requests that matched no route.
const unmatchedRoute = "unmatched"

// observe reports every response to the HTTP hooks, labeled with the
// matched route pattern rather than the raw path.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		d := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, route, status, d)
		s.logger.Debug("Request", "method", r.Method, "path", r.URL.Path, "status", status,
			"elapsed", d.Round(time.Microsecond), "request_id", middleware.GetReqID(r.Context()))
	})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok\n"))
}

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Music Journey</title></head>
<body style="font-family: sans-serif">
<h1>Music Journey</h1>
<p>{{.Nodes}} nodes, {{.Edges}} edges. <a href="/journey.png">png</a> <a href="/journey.dot">dot</a> <a href="/journey.json">json</a></p>
<img src="/journey.svg" alt="music journey">
</body>
</html>
`))

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := struct{ Nodes, Edges int }{s.cfg.Journey.NodeCount(), s.cfg.Journey.EdgeCount()}
	if err := indexTmpl.Execute(w, data); err != nil {
		s.logger.Warn("Index template failed", "err", err)
	}
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format, err := diagram.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	renderID := uuid.NewString()
	data, err := s.cfg.Renderer.Bytes(r.Context(), s.cfg.Journey, format)
	if err != nil {
		s.logger.Error("Render failed", "format", format, "render_id", renderID, "err", err)
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("X-Render-ID", renderID)
	w.Write(data)
}

// journeyJSON is the /journey.json document.
type journeyJSON struct {
	Nodes []nodeJSON `json:"nodes"`
	Edges []edgeJSON `json:"edges"`
}

type nodeJSON struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Note   string `json:"note,omitempty"`
	Status string `json:"status"`
	Fill   string `json:"fill"`
	Border string `json:"border"`
}

type edgeJSON struct {
	From  string             `json:"from"`
	To    string             `json:"to"`
	Label string             `json:"label"`
	Style *journey.EdgeStyle `json:"style,omitempty"`
}

func (s *Server) handleJSON(w http.ResponseWriter, r *http.Request) {
	doc := journeyJSON{Nodes: []nodeJSON{}, Edges: []edgeJSON{}}
	for _, n := range s.cfg.Journey.Nodes() {
		c := n.Colors()
		doc.Nodes = append(doc.Nodes, nodeJSON{
			ID: n.ID, Label: n.Label, Note: n.Note, Status: n.Status.String(),
			Fill: c.Background, Border: c.Border,
		})
	}
	for _, e := range s.cfg.Journey.Edges() {
		ej := edgeJSON{From: e.From, To: e.To, Label: e.Label}
		if !e.Style.IsZero() {
			style := e.Style
			ej.Style = &style
		}
		doc.Edges = append(doc.Edges, ej)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		s.logger.Warn("Encode journey failed", "err", err)
	}
}

// writeError writes err's user message with the status matching its code.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	http.Error(w, mmerrors.UserMessage(err), mmerrors.HTTPStatus(err))
}
