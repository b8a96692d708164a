package http

import (
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"fluxo/internal/services"
	appweb "fluxo/web"
)

type Server struct {
	http.Server
	reports   *services.ReportService
	templates *template.Template
}

// NewServer configures routes and templates, returning a ready-to-run server.
func NewServer(addr string, reports *services.ReportService) *Server {
	s := &Server{
		reports: reports,
	}

	t, err := template.ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		slog.Warn("Failed parsing templates", "error", err)
	}
	s.templates = t

	r := chi.NewRouter()
	r.Use(requestLogging)
	r.Use(securityHeaders)

	r.Get("/healthz", handleHealth)
	r.Get("/", s.handleDashboard)
	r.Route("/api", func(r chi.Router) {
		r.Get("/months", s.handleMonths)
		r.Get("/report", s.handleReport)
	})

	s.Server = http.Server{
		Addr:    addr,
		Handler: r,
	}
	return s
}

// requestLogging logs each request with timing and the resulting status.
func requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)
		slog.InfoContext(r.Context(), "Request completed",
			"method", r.Method,
			"url", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", time.Since(start).Milliseconds())
	})
}

func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("Content-Security-Policy", "default-src 'self'; style-src 'self' 'unsafe-inline'")
		next.ServeHTTP(w, r)
	})
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
