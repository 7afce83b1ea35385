package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	domainErrors "github.com/thomas-vilte/frontend-edit-agent/internal/errors"
	"github.com/thomas-vilte/frontend-edit-agent/internal/i18n"
	"github.com/thomas-vilte/frontend-edit-agent/internal/logger"
	"github.com/thomas-vilte/frontend-edit-agent/internal/models"
)

const (
	serviceName  = "frontend-edit-agent"
	maxBodyBytes = 1 << 20
)

// EditProcessor runs the change pipeline for one request.
type EditProcessor interface {
	Process(ctx context.Context, req models.ProcessRequest) (models.ProcessResult, error)
}

type Options struct {
	// StaticDir is served at the root; empty disables static files.
	StaticDir      string
	RequestTimeout time.Duration
	AllowedOrigins []string
	Logger         *slog.Logger
}

// Server handles HTTP requests
type Server struct {
	Router    *chi.Mux
	processor EditProcessor
	trans     *i18n.Translations
	opts      Options
	now       func() time.Time
}

func NewServer(processor EditProcessor, trans *i18n.Translations, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 30 * time.Second
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}

	s := &Server{
		processor: processor,
		trans:     trans,
		opts:      opts,
		now:       time.Now,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.opts.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Accept-Language", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", s.healthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Post("/process-request", s.processRequest)
	})

	if s.opts.StaticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(s.opts.StaticDir)))
	}

	s.Router = r
}

// requestLogger attaches a request-scoped logger and logs the outcome.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		l := s.opts.Logger.With(
			"request_id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path)
		ctx := logger.WithLogger(r.Context(), l)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		l.Info("request handled",
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration_ms", time.Since(start).Milliseconds())
	})
}

func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   serviceName,
		"timestamp": s.now().UTC(),
	})
}

func (s *Server) processRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	trans := s.trans.ForAcceptLanguage(r.Header.Get("Accept-Language"))

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	req, err := decodeProcessRequest(r.Body)
	if err != nil {
		logger.Debug(ctx, "invalid request body", "error", err)
		s.writeError(w, r, trans, err)
		return
	}

	result, err := s.processor.Process(ctx, req)
	if err != nil {
		s.writeError(w, r, trans, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, result)
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, trans *i18n.Translations, err error) {
	status := domainErrors.StatusCode(err)
	appErr := domainErrors.AsInternal(err)

	if status >= http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed", err)
	} else {
		logger.Info(r.Context(), "request rejected", "error", err)
	}

	writeJSON(r.Context(), w, status, errorResponse{Error: clientMessage(trans, appErr)})
}

// clientMessage is the text sent to callers: the localized message for
// validation errors, the failure's own message for internal errors when one
// exists, the localized generic message otherwise.
func clientMessage(trans *i18n.Translations, appErr *domainErrors.AppError) string {
	if appErr.Type == domainErrors.TypeInternal && appErr.Err != nil {
		if msg := rootMessage(appErr.Err); msg != "" {
			return msg
		}
	}
	if appErr.MessageID != "" {
		return trans.GetMessage(appErr.MessageID, 0, nil)
	}
	return trans.GetMessage(domainErrors.ErrInternal.MessageID, 0, nil)
}

func rootMessage(err error) string {
	var appErr *domainErrors.AppError
	if errors.As(err, &appErr) && appErr.Err != nil {
		return rootMessage(appErr.Err)
	}
	return err.Error()
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error(ctx, "failed to encode response", err)
	}
}
