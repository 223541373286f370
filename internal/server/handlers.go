package server

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/matzehuels/treeline/pkg/buildinfo"
	"github.com/matzehuels/treeline/pkg/errors"
	"github.com/matzehuels/treeline/pkg/pipeline"
)

// maxRequestBody caps render request bodies. Tree documents are small;
// anything near this limit is not a tree.
const maxRequestBody = 1 << 20

// renderResponse is the POST /api/v1/render response body.
type renderResponse struct {
	Output   string      `json:"output"`
	Encoding string      `json:"encoding,omitempty"` // "base64" for binary formats
	Format   string      `json:"format"`
	TreeHash string      `json:"tree_hash"`
	CacheHit bool        `json:"cache_hit"`
	Stats    renderStats `json:"stats"`
}

type renderStats struct {
	NodeCount  int   `json:"node_count"`
	TreeHeight int   `json:"tree_height"`
	DecodeMS   int64 `json:"decode_ms"`
	RenderMS   int64 `json:"render_ms"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// handleRender renders the tree document in the request body.
// The body unmarshals directly into pipeline.Options; fields the request
// omits fall back to the server's configured defaults.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	var opts pipeline.Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		s.respondError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}
	opts.SourceName = "http"
	if opts.MaxCellWidth == 0 {
		opts.MaxCellWidth = s.defaults.MaxCellWidth
	}
	opts.SetRenderDefaults()

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	resp := renderResponse{
		Format:   opts.Format,
		TreeHash: result.TreeHash,
		CacheHit: result.CacheHit,
		Stats: renderStats{
			NodeCount:  result.Stats.NodeCount,
			TreeHeight: result.Stats.TreeHeight,
			DecodeMS:   result.Stats.DecodeTime.Milliseconds(),
			RenderMS:   result.Stats.RenderTime.Milliseconds(),
		},
	}
	if pipeline.BinaryFormat(opts.Format) {
		resp.Output = base64.StdEncoding.EncodeToString(result.Output)
		resp.Encoding = "base64"
	} else {
		resp.Output = string(result.Output)
	}

	s.respondJSON(w, http.StatusOK, resp)
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleVersion reports build metadata.
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{
		"version": buildinfo.Version,
		"commit":  buildinfo.Commit,
		"date":    buildinfo.Date,
	})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	} else {
		s.logger.Warn("request rejected", "method", r.Method, "path", r.URL.Path, "error", err)
	}

	s.respondJSON(w, status, errorResponse{
		Error: errors.UserMessage(err),
		Code:  string(errors.GetCode(err)),
	})
}

// statusForError maps structured error codes onto HTTP statuses.
func statusForError(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidTree,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
