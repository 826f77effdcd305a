package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/lmercadov/finadvisor/providers/observability"
	"github.com/lmercadov/finadvisor/providers/tool"
	"github.com/lmercadov/finadvisor/resources"
)

// Server exposes the tool catalog, resources, and prompts over HTTP so
// browser frontends and other non-stdio clients can reach them.
type Server struct {
	catalog  *tool.Catalog
	registry *resources.Registry
	logger   *slog.Logger
}

// NewServer wires a catalog and a resource registry behind the HTTP
// surface. A nil logger falls back to slog.Default.
func NewServer(catalog *tool.Catalog, registry *resources.Registry, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{catalog: catalog, registry: registry, logger: logger}
}

// Router builds the route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.requestLogging)

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/tools", s.handleTools).Methods(http.MethodGet)
	r.HandleFunc("/tools/call", s.handleToolCall).Methods(http.MethodPost)
	r.HandleFunc("/resources", s.handleResources).Methods(http.MethodGet)
	r.HandleFunc("/resources/read", s.handleResourceRead).Methods(http.MethodPost)
	r.HandleFunc("/prompts", s.handlePrompts).Methods(http.MethodGet)
	r.HandleFunc("/prompts/run", s.handlePromptRun).Methods(http.MethodPost)

	return r
}

// ListenAndServe blocks serving the router on addr until ctx is cancelled
// or the listener fails. Shutdown waits up to five seconds for in-flight
// requests.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	s.logger.Info("server listening", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleTools(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"tools": s.catalog.Infos()})
}

// toolCallRequest mirrors the bridge wire shape: a tool name plus an
// arguments object.
type toolCallRequest struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// textContent is the unwrappable content block clients read the summary
// from.
type textContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func (s *Server) handleToolCall(w http.ResponseWriter, r *http.Request) {
	var req toolCallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	t, exists := s.catalog.Get(req.Name)
	if !exists {
		writeError(w, http.StatusNotFound, "unknown tool: "+req.Name)
		return
	}

	arguments := "{}"
	if len(req.Arguments) > 0 {
		arguments = string(req.Arguments)
	}

	output, err := t.Call(r.Context(), arguments)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "tool call failed", "tool", req.Name, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"content":           []textContent{{Type: "text", Text: summaryOf(output)}},
		"structuredContent": json.RawMessage(output),
	})
}

// summaryOf pulls the summary field out of a tool's JSON output, falling
// back to the raw output when there is none.
func summaryOf(outputJSON string) string {
	var envelope struct {
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal([]byte(outputJSON), &envelope); err == nil && envelope.Summary != "" {
		return envelope.Summary
	}
	return outputJSON
}

func (s *Server) handleResources(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"resources": s.registry.Resources()})
}

func (s *Server) handleResourceRead(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URI string `json:"uri"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, exists := s.registry.ReadResource(req.URI)
	if !exists {
		writeError(w, http.StatusNotFound, "unknown resource: "+req.URI)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"contents": []map[string]string{{
			"uri":      res.URI,
			"mimeType": res.MIMEType,
			"text":     res.Text,
		}},
	})
}

func (s *Server) handlePrompts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"prompts": s.registry.Prompts()})
}

func (s *Server) handlePromptRun(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, exists := s.registry.Prompt(req.Name)
	if !exists {
		writeError(w, http.StatusNotFound, "unknown prompt: "+req.Name)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"content": []textContent{{Type: "text", Text: p.Text}},
	})
}

// requestLogging attaches a request ID and a span to the context and logs
// one line per request.
func (s *Server) requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := newRequestID()
		logger := s.logger.With("request_id", requestID)

		ctx := observability.ContextWithSpan(r.Context(),
			observability.NewSlogSpan(logger, r.Method+" "+r.URL.Path))

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(recorder, r.WithContext(ctx))

		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", recorder.status,
			"duration", time.Since(start),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
