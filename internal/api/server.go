// HTTP API surface for the Hamiltonian builder.

package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/Kukyos/GroundStateFinder/internal/config"
	"github.com/Kukyos/GroundStateFinder/internal/hamiltonian"
	"github.com/Kukyos/GroundStateFinder/internal/molecule"
)

// Server is the HTTP API server.
type Server struct {
	router  chi.Router
	builder *hamiltonian.Builder
	log     *zap.Logger
	cfg     config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(builder *hamiltonian.Builder, log *zap.Logger, cfg config.Config) *Server {
	s := &Server{
		builder: builder,
		log:     log,
		cfg:     cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/healthz", s.handleHealth)
	r.Get("/api/v1/molecules", s.handleListMolecules)
	r.Get("/api/v1/hamiltonian", s.handleHamiltonian)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleListMolecules(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"molecules": molecule.List(),
		"default":   s.cfg.DefaultMolecule,
	})
}

func (s *Server) handleHamiltonian(w http.ResponseWriter, r *http.Request) {
	molID := r.URL.Query().Get("molecule")
	if molID == "" {
		molID = s.cfg.DefaultMolecule
	}

	precomputed := false
	if v := r.URL.Query().Get("precomputed"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "precomputed must be a boolean")
			return
		}
		precomputed = b
	}

	res, err := s.builder.Build(r.Context(), molID, precomputed)
	if err != nil {
		if _, lookupErr := molecule.Get(molID); lookupErr != nil {
			writeError(w, http.StatusNotFound, lookupErr.Error())
			return
		}
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, res.Document())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
