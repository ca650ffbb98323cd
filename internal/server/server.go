// Package server exposes the interview prep HTTP API: profile management,
// resume upload and parsing, and AI-backed interview planning.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/interview-prep/internal/analyzer"
	"github.com/jonathan/interview-prep/internal/db"
	"github.com/jonathan/interview-prep/internal/llm"
	"github.com/jonathan/interview-prep/internal/pipeline"
	"github.com/jonathan/interview-prep/internal/questions"
	"github.com/jonathan/interview-prep/internal/server/ratelimit"
	"github.com/jonathan/interview-prep/internal/types"
)

// Store is the persistence surface the handlers need. *db.DB satisfies it.
type Store interface {
	UpsertProfile(ctx context.Context, uid, email, name, phone string) (*db.Profile, error)
	GetProfile(ctx context.Context, uid string) (*db.Profile, error)
	UpdateProfileName(ctx context.Context, uid, name string) error
	UpsertResume(ctx context.Context, uid string, record *types.ResumeRecord) error
	GetResume(ctx context.Context, uid string) (*types.ResumeRecord, error)
}

// Server wraps the HTTP server and its collaborators.
type Server struct {
	httpServer *http.Server
	store      Store
	parser     *pipeline.Parser
	analyzer   *analyzer.Analyzer
	generator  *questions.Generator
	limiter    *ratelimit.Limiter
	validate   *validator.Validate
	aiTimeout  time.Duration
}

// Options configures a Server beyond its required collaborators.
type Options struct {
	AITimeout time.Duration
	RateLimit *ratelimit.Config
}

// New creates a server. client may be nil, in which case every AI-backed
// operation falls back to its offline behavior.
func New(port string, store Store, client llm.Client, opts Options) *Server {
	if opts.AITimeout <= 0 {
		opts.AITimeout = pipeline.DefaultAITimeout
	}
	if opts.RateLimit == nil {
		opts.RateLimit = ratelimit.DefaultConfig()
	}

	a := analyzer.New(client)
	s := &Server{
		store:     store,
		parser:    pipeline.NewParser(a, opts.AITimeout),
		analyzer:  a,
		generator: questions.NewGenerator(client),
		limiter:   ratelimit.NewLimiter(opts.RateLimit),
		validate:  validator.New(),
		aiTimeout: opts.AITimeout,
	}

	mux := http.NewServeMux()
	s.route(mux, "GET /health", s.handleHealth)
	s.route(mux, "POST /profiles", s.handleCreateProfile)
	s.route(mux, "GET /profiles/{uid}", s.handleGetProfile)
	s.route(mux, "POST /profiles/{uid}/resume", s.handleUploadResume)
	s.route(mux, "GET /profiles/{uid}/resume", s.handleGetResume)
	s.route(mux, "GET /profiles/{uid}/recommendations", s.handleRecommendations)
	s.route(mux, "POST /questions/generate", s.handleGenerateQuestions)

	s.httpServer = &http.Server{
		Addr:         ":" + port,
		Handler:      withLogging(withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// route registers a handler with per-route rate limiting. The pattern
// string doubles as the limiter key.
func (s *Server) route(mux *http.ServeMux, pattern string, h http.HandlerFunc) {
	mux.Handle(pattern, s.withRateLimit(pattern, h))
}

// Start runs the server until SIGINT or SIGTERM, then shuts down
// gracefully.
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("[server] listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-stop:
		log.Printf("[server] received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	s.limiter.Stop()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

// Handler exposes the configured handler chain, used by tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]any{
		"status":       "ok",
		"ai_available": s.analyzer.Available(),
	})
}

// aiContext bounds an AI call so a slow model cannot hold a request open
// past the write timeout.
func (s *Server) aiContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), s.aiTimeout)
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[server] %s %s (%v)", r.Method, r.URL.Path, time.Since(start))
	})
}

func (s *Server) withRateLimit(pattern string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := extractClientID(r)
		allowed, info := s.limiter.Allow(clientID, pattern)
		setRateLimitHeaders(w, info)
		if !allowed {
			w.Header().Set("Retry-After", strconv.Itoa(int(info.RetryAfter.Seconds())+1))
			errorResponse(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// extractClientID identifies a client by remote IP, preferring
// X-Forwarded-For when a proxy sits in front.
func extractClientID(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit <= 0 {
		return
	}
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
}

func jsonResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[server] failed to encode response: %v", err)
	}
}

func errorResponse(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// domainError writes err using its mapped status, logging server faults.
func domainError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("[server] internal error: %v", err)
		errorResponse(w, status, "internal server error")
		return
	}
	errorResponse(w, status, err.Error())
}
