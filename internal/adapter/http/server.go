package http

import (
	"net/http"
	"time"

	"github.com/bnema/vidqa/internal/adapter/http/middleware"
	"github.com/bnema/vidqa/internal/adapter/http/ratelimit"
	"github.com/bnema/vidqa/internal/infrastructure/logger"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type ServerConfig struct {
	MaxUploadBytes int64
	BehindProxy    bool
	Version        string
}

type Server struct {
	router      chi.Router
	handlers    *Handlers
	sseHandler  *SSEHandler
	authSvc     AuthService
	authLimiter *ratelimit.AuthLimiter
	behindProxy bool
}

func NewServer(analysis AnalysisService, media MediaService, events EventSubscriber, authSvc AuthService, cfg ServerConfig) *Server {
	s := &Server{
		router:      chi.NewRouter(),
		handlers:    NewHandlers(analysis, media, cfg.MaxUploadBytes, cfg.Version),
		sseHandler:  NewSSEHandler(events, analysis),
		authSvc:     authSvc,
		authLimiter: ratelimit.NewAuthLimiter(5, 15*time.Minute, 30*time.Minute),
		behindProxy: cfg.BehindProxy,
	}

	s.registerRoutes()

	return s
}

func (s *Server) registerRoutes() {
	r := s.router

	r.Use(chimw.RequestID)
	if s.behindProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(requestLogger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.SecurityHeaders)

	r.Get("/healthz", s.handlers.Health())

	r.Route("/api", func(r chi.Router) {
		r.Use(AuthMiddleware(s.authSvc, s.authLimiter))

		r.Post("/media", s.handlers.Upload())
		r.Get("/formats", s.handlers.Formats())

		r.Route("/analyses", func(r chi.Router) {
			r.Get("/", s.handlers.ListAnalyses())
			r.Post("/", s.handlers.StartAnalysis())
			r.Get("/{id}", s.handlers.Status())
			r.Get("/{id}/events", s.sseHandler.Events())
			r.Get("/{id}/result", s.handlers.Result())
			r.Get("/{id}/report", s.handlers.Report())
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close releases background resources held by the server.
func (s *Server) Close() {
	s.authLimiter.Close()
}

func requestLogger(next http.Handler) http.Handler {
	log := logger.WithComponent("http")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			log.Info().
				Str("request_id", chimw.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Msg("request")
		}()
		next.ServeHTTP(ww, r)
	})
}
