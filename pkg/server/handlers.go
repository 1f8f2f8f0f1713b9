package server

import (
	"encoding/json"
	"net/http"

	"github.com/matzehuels/ratiosplit/pkg/buildinfo"
	"github.com/matzehuels/ratiosplit/pkg/errors"
	"github.com/matzehuels/ratiosplit/pkg/pipeline"
	"github.com/matzehuels/ratiosplit/pkg/ratio"
	"github.com/matzehuels/ratiosplit/pkg/rule"
)

// =============================================================================
// Request and Response Types
// =============================================================================

type edgeRequest struct {
	Size        *int `json:"size,omitempty"`
	Ratio       int  `json:"ratio,omitempty"`
	MinimumSize *int `json:"minimum_size,omitempty"`
}

func (e edgeRequest) edge() ratio.Edge {
	if e.Size != nil {
		return ratio.Fixed(*e.Size)
	}
	edge := ratio.Flex(e.Ratio)
	if e.MinimumSize != nil {
		edge = edge.WithMinimum(*e.MinimumSize)
	}
	return edge
}

type resolveRequest struct {
	Total int           `json:"total"`
	Edges []edgeRequest `json:"edges"`
}

type resolveResponse struct {
	Sizes []int `json:"sizes"`
}

type reduceRequest struct {
	Total    int   `json:"total"`
	Ratios   []int `json:"ratios"`
	Maximums []int `json:"maximums"`
	Values   []int `json:"values"`
}

type reduceResponse struct {
	Values []int `json:"values"`
}

type distributeRequest struct {
	Total    int   `json:"total"`
	Ratios   []int `json:"ratios"`
	Minimums []int `json:"minimums,omitempty"`
}

type distributeResponse struct {
	Parts []int `json:"parts"`
}

type ruleRequest struct {
	Title      string `json:"title"`
	Width      int    `json:"width,omitempty"`
	Characters string `json:"characters,omitempty"`
	Align      string `json:"align,omitempty"`
	ASCII      bool   `json:"ascii,omitempty"`
}

type ruleResponse struct {
	Line string `json:"line"`
}

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	edges := make([]ratio.Edge, len(req.Edges))
	for i, e := range req.Edges {
		edges[i] = e.edge()
	}
	res, err := s.runner.Execute(r.Context(), pipeline.Request{
		Op:    pipeline.OpResolve,
		Total: req.Total,
		Edges: edges,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resolveResponse{Sizes: res.Values})
}

func (s *Server) handleReduce(w http.ResponseWriter, r *http.Request) {
	var req reduceRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.runner.Execute(r.Context(), pipeline.Request{
		Op:       pipeline.OpReduce,
		Total:    req.Total,
		Ratios:   req.Ratios,
		Maximums: req.Maximums,
		Values:   req.Values,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reduceResponse{Values: res.Values})
}

func (s *Server) handleDistribute(w http.ResponseWriter, r *http.Request) {
	var req distributeRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.runner.Execute(r.Context(), pipeline.Request{
		Op:       pipeline.OpDistribute,
		Total:    req.Total,
		Ratios:   req.Ratios,
		Minimums: req.Minimums,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, distributeResponse{Parts: res.Values})
}

func (s *Server) handleRule(w http.ResponseWriter, r *http.Request) {
	var req ruleRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	width := req.Width
	switch {
	case width == 0:
		width = DefaultRuleWidth
	case width < 0:
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "width must be >= 0, got %d", width))
		return
	}

	opts := []rule.Option{rule.WithAlign(rule.Align(req.Align)), rule.WithASCIIOnly(req.ASCII)}
	if req.Characters != "" {
		opts = append(opts, rule.WithCharacters(req.Characters))
	}
	rl, err := rule.New(req.Title, opts...)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ruleResponse{Line: rl.Render(width)})
}

// =============================================================================
// Helpers
// =============================================================================

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request body")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	status := code.HTTPStatus()
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "id", RequestIDFromContext(r.Context()), "err", err)
	}
	writeJSON(w, status, errorResponse{Code: code, Message: errors.UserMessage(err)})
}
