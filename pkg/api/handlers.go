package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/cyclekit/pkg/buildinfo"
	"github.com/matzehuels/cyclekit/pkg/errors"
	"github.com/matzehuels/cyclekit/pkg/perm"
	"github.com/matzehuels/cyclekit/pkg/pipeline"
)

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

type analyzeRequest struct {
	Table     []int    `json:"table"`
	Normalize bool     `json:"normalize"`
	Formats   []string `json:"formats"`
	Labels    []string `json:"labels"`
	Refresh   bool     `json:"refresh"`
}

// analyzeResponse serves artifacts as text instead of base64.
type analyzeResponse struct {
	*pipeline.Result
	Artifacts map[string]string `json:"artifacts,omitempty"`
	Cached    bool              `json:"cached"`
}

type pairRequest struct {
	A []int `json:"a"`
	B []int `json:"b"`
}

type tableRequest struct {
	Table []int `json:"table"`
}

type tableResponse struct {
	Table []int `json:"table"`
}

type conjugateResponse struct {
	Conjugate  bool   `json:"conjugate"`
	TypeA      string `json:"type_a"`
	TypeB      string `json:"type_b"`
	Conjugator []int  `json:"conjugator,omitempty"`
}

type classesResponse struct {
	N       int              `json:"n"`
	Classes []pipeline.Class `json:"classes"`
	Cached  bool             `json:"cached"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	t, err := parseTable("table", req.Table)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.runner.Analyze(r.Context(), pipeline.Options{
		Table:     t,
		Normalize: req.Normalize,
		Formats:   req.Formats,
		Labels:    req.Labels,
		Refresh:   req.Refresh,
		Logger:    s.logger.With("request_id", RequestID(r.Context())),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := analyzeResponse{Result: result, Cached: result.CacheHit}
	if len(result.Artifacts) > 0 {
		resp.Artifacts = make(map[string]string, len(result.Artifacts))
		for format, data := range result.Artifacts {
			resp.Artifacts[format] = string(data)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCompose(w http.ResponseWriter, r *http.Request) {
	a, b, err := s.decodePair(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if a.Len() != b.Len() {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidLength,
			"cannot compose tables of sizes %d and %d", a.Len(), b.Len()))
		return
	}
	writeJSON(w, http.StatusOK, tableResponse{Table: perm.Compose(a, b).Slice()})
}

func (s *Server) handleInvert(w http.ResponseWriter, r *http.Request) {
	var req tableRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	t, err := parseTable("table", req.Table)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tableResponse{Table: perm.Invert(t).Slice()})
}

func (s *Server) handleConjugate(w http.ResponseWriter, r *http.Request) {
	a, b, err := s.decodePair(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resp := conjugateResponse{
		TypeA: perm.TypeOf(a).Notation(),
		TypeB: perm.TypeOf(b).Notation(),
	}
	if g, ok := perm.Conjugator(a, b); ok {
		resp.Conjugate = true
		resp.Conjugator = g.Slice()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleClasses(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(chi.URLParam(r, "n"))
	if err != nil {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "n must be an integer, got %q", chi.URLParam(r, "n")))
		return
	}
	classes, hit, err := s.runner.Classes(r.Context(), n)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, classesResponse{N: n, Classes: classes, Cached: hit})
}

func (s *Server) decodePair(w http.ResponseWriter, r *http.Request) (perm.Table, perm.Table, error) {
	var req pairRequest
	if err := decodeBody(w, r, &req); err != nil {
		return perm.Table{}, perm.Table{}, err
	}
	a, err := parseTable("a", req.A)
	if err != nil {
		return perm.Table{}, perm.Table{}, err
	}
	b, err := parseTable("b", req.B)
	if err != nil {
		return perm.Table{}, perm.Table{}, err
	}
	return a, b, nil
}

// parseTable validates a table received from a client.
func parseTable(field string, values []int) (perm.Table, error) {
	if values == nil {
		return perm.Table{}, errors.New(errors.ErrCodeInvalidInput, "missing %q", field)
	}
	t, err := perm.New(len(values), values)
	if err != nil {
		return perm.Table{}, errors.Wrap(errors.GetCode(err), err, "invalid %q", field)
	}
	return t, nil
}
