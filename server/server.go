// Package server exposes the search core over HTTP: POST a pattern
// and target graph, get back a mapping or an unsatisfiability report.
package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"subgraphsolver/app"
	"subgraphsolver/homomorphism"
)

// Server holds the logger every handler logs through — never a
// package-level global, per the same discipline the search core
// applies to its own PRNG state.
type Server struct {
	log *logrus.Logger
}

func New(log *logrus.Logger) *Server {
	return &Server{log: log}
}

func (s *Server) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/solve", s.handleSolve)
	return mux
}

// SolveRequest is the /solve request body: two graph texts in the
// same format, plus the search options solve/explain also expose as
// CLI flags.
type SolveRequest struct {
	Format      string `json:"format"`
	Directed    bool   `json:"directed"`
	MaxGraphs   int    `json:"maxGraphs"`
	Pattern     string `json:"pattern"`
	Target      string `json:"target"`
	Injectivity string `json:"injectivity"`
	Induced     bool   `json:"induced"`
	Bigraph     bool   `json:"bigraph"`
	CountAll    bool   `json:"countAll"`
	Restart     string `json:"restart"`
	Lackey      string `json:"lackey"`
	TimeoutSecs int    `json:"timeoutSeconds"`
}

type SolveResponse struct {
	Result        string      `json:"result"`
	Mapping       map[int]int `json:"mapping,omitempty"`
	SolutionCount int64       `json:"solutionCount,omitempty"`
	Nodes         uint64      `json:"nodes"`
	Propagations  uint64      `json:"propagations"`
	Error         string      `json:"error,omitempty"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == http.MethodOptions {
		return
	}

	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	opts := app.Options{
		Format:         req.Format,
		Directed:       req.Directed,
		MaxGraphs:      req.MaxGraphs,
		Injectivity:    req.Injectivity,
		Induced:        req.Induced,
		Bigraph:        req.Bigraph,
		CountSolutions: req.CountAll,
		Restart:        req.Restart,
		LackeyKind:     req.Lackey,
		TimeoutSeconds: req.TimeoutSecs,
	}

	m, err := app.LoadModelFromReaders(strings.NewReader(req.Pattern), strings.NewReader(req.Target), opts)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	params, schedule, err := app.Build(opts, m, s.log)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	result := app.Solve(m, params, schedule, s.log)

	resp := SolveResponse{
		Result:        result.Result.String(),
		SolutionCount: result.SolutionCount,
		Nodes:         result.Nodes,
		Propagations:  result.Propagations,
	}
	if result.Result == homomorphism.Satisfiable {
		resp.Mapping = result.Mapping
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.log.WithError(err).Error("encoding solve response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.log.WithError(err).Warn("rejecting solve request")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(SolveResponse{Error: err.Error()})
}
