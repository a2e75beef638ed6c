package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/aetherhq/synthesis/internal/auth"
	"github.com/aetherhq/synthesis/internal/synthesis"
)

// Server is the HTTP surface of the synthesis pipeline.
type Server struct {
	router      *chi.Mux
	synthesizer *synthesis.Service
	authService *auth.Service
}

// ServerConfig wires the server's dependencies. AuthService may be
// nil, which leaves the synthesize endpoint open (useful for local
// heuristic-only deployments without a database).
type ServerConfig struct {
	Synthesizer *synthesis.Service
	AuthService *auth.Service
}

// NewServer creates the HTTP server and its routes.
func NewServer(config ServerConfig) *Server {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "https://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	s := &Server{
		router:      r,
		synthesizer: config.Synthesizer,
		authService: config.AuthService,
	}
	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api/v1", func(r chi.Router) {
		if s.authService != nil {
			r.Post("/auth/register", s.handleRegister)
			r.Post("/auth/login", s.handleLogin)
		}

		r.Group(func(r chi.Router) {
			if s.authService != nil {
				r.Use(s.authService.Middleware)
			}
			r.Post("/synthesize", s.handleSynthesize)
		})
	})
}

// Run starts the server on the given address.
func (s *Server) Run(addr string) error {
	return http.ListenAndServe(addr, s.router)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
