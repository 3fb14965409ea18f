// Package server provides the HTTP REST API for the staffing optimizer.
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
	"syscall"
	"time"

	"github.com/jonathan/staffing-optimizer/internal/config"
	"github.com/jonathan/staffing-optimizer/internal/db"
	"github.com/jonathan/staffing-optimizer/internal/server/middleware"
	"github.com/jonathan/staffing-optimizer/internal/server/ratelimit"
	"github.com/jonathan/staffing-optimizer/internal/upstream"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	backend     *upstream.Client
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
	batchLimit  int
	startedAt   time.Time
}

// Config holds server configuration
type Config struct {
	Port             int
	DatabaseURL      string
	BackendURL       string
	BatchConcurrency int
}

// New creates a new server instance. DatabaseURL and BackendURL are optional;
// endpoints that require them respond with 503 when absent.
func New(cfg Config) (*Server, error) {
	s := &Server{
		batchLimit: cfg.BatchConcurrency,
		startedAt:  time.Now(),
	}
	if s.batchLimit <= 0 {
		s.batchLimit = 4
	}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		s.db = database
	}

	if cfg.BackendURL != "" {
		backend, err := upstream.NewClient(cfg.BackendURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create backend client: %w", err)
		}
		s.backend = backend
	}

	// Initialize rate limiter
	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	// Authentication requires persistence for the users table.
	if s.db != nil {
		passwordConfig, err := config.NewPasswordConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create password config: %w", err)
		}
		s.userService = NewUserService(s.db, passwordConfig)

		jwtConfig, err := config.NewJWTConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create JWT config: %w", err)
		}
		s.jwtService = NewJWTService(jwtConfig)
		s.authHandler = NewAuthHandler(s.userService, s.jwtService)
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Batch requests may take a while
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request mux.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /status", s.handleStatus)

	// Optimization endpoints
	mux.HandleFunc("POST /optimize", s.handleOptimize)
	mux.HandleFunc("POST /optimize/batch", s.handleOptimizeBatch)
	mux.HandleFunc("GET /catalog/{level}", s.handleCatalog)

	// Stored analyses
	mux.HandleFunc("GET /analyses", s.requireDB(s.handleListAnalyses))
	mux.HandleFunc("GET /analyses/{id}", s.requireDB(s.handleGetAnalysis))
	mux.HandleFunc("DELETE /analyses/{id}", s.requireDB(s.handleDeleteAnalysis))

	// Authentication
	mux.HandleFunc("POST /auth/register", s.requireAuthServices(func(w http.ResponseWriter, r *http.Request) {
		s.authHandler.HandleRegister(w, r)
	}))
	mux.HandleFunc("POST /auth/login", s.requireAuthServices(func(w http.ResponseWriter, r *http.Request) {
		s.authHandler.HandleLogin(w, r)
	}))
	mux.Handle("PUT /auth/password", s.requireAuthServicesHandler(func() http.Handler {
		authMW := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())
		return authMW(http.HandlerFunc(s.authHandler.HandleUpdatePassword))
	}))

	return mux
}

// requireDB wraps a handler so it responds with 503 when no database is configured.
func (s *Server) requireDB(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.db == nil {
			errorResponse(w, HTTPStatus(ErrPersistenceDisabled), ErrPersistenceDisabled.Error())
			return
		}
		next(w, r)
	}
}

// requireAuthServices wraps an auth handler the same way.
func (s *Server) requireAuthServices(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.authHandler == nil {
			errorResponse(w, HTTPStatus(ErrPersistenceDisabled), ErrPersistenceDisabled.Error())
			return
		}
		next(w, r)
	}
}

// requireAuthServicesHandler defers handler construction until first use so
// the middleware chain is only built when auth services exist.
func (s *Server) requireAuthServicesHandler(build func() http.Handler) http.Handler {
	var inner http.Handler
	if s.authHandler != nil {
		inner = build()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if inner == nil {
			errorResponse(w, HTTPStatus(ErrPersistenceDisabled), ErrPersistenceDisabled.Error())
			return
		}
		inner.ServeHTTP(w, r)
	})
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	// Stop rate limiter cleanup goroutine
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	if s.db != nil {
		s.db.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		if !allowed {
			s.setRateLimitHeaders(w, info)
			s.rateLimitResponse(w, info)
			return
		}

		s.setRateLimitHeaders(w, info)
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleStatus reports uptime and the state of optional subsystems.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":         "ok",
		"uptime_seconds": int(time.Since(s.startedAt).Seconds()),
		"persistence":    s.db != nil,
		"backend":        s.backend != nil,
	}

	if s.db != nil {
		if err := s.db.Ping(r.Context()); err != nil {
			status["status"] = "degraded"
			status["persistence_error"] = err.Error()
		} else if count, err := s.db.CountAnalyses(r.Context()); err == nil {
			status["analyses_stored"] = count
		}
	}

	if s.backend != nil {
		status["backend_healthy"] = s.backend.Healthy(r.Context())
	}

	jsonResponse(w, http.StatusOK, status)
}

// jsonResponse writes a JSON response
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func errorResponse(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// Uses the IP portion of RemoteAddr; X-Forwarded-For is deliberately
// ignored since it is client-controlled.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	jsonResponse(w, http.StatusTooManyRequests, response)
}
