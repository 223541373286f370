package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/treeline/internal/config"
	"github.com/matzehuels/treeline/pkg/buildinfo"
	"github.com/matzehuels/treeline/pkg/cache"
	"github.com/matzehuels/treeline/pkg/errors"
	"github.com/matzehuels/treeline/pkg/pipeline"
)

const renderBody = `{"tree": {"value":"2","left":{"value":"1"},"right":{"value":"3"}}}`

func newTestServer(t *testing.T, cfg *config.Config) *Server {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}
	logger := log.NewWithOptions(io.Discard, log.Options{})
	runner := pipeline.NewRunner(cache.NewMemoryCache(), nil, logger)
	t.Cleanup(func() { runner.Close() })
	return New(cfg, runner, logger)
}

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)
	return rec
}

func TestRenderEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doRequest(t, s, http.MethodPost, "/api/v1/render", renderBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body)
	}

	var resp renderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	want := "  2 \n  /\\\n -  - \n |   |\n1   3"
	if resp.Output != want {
		t.Errorf("output = %q, want %q", resp.Output, want)
	}
	if resp.Format != pipeline.FormatASCII {
		t.Errorf("format = %q, want %q", resp.Format, pipeline.FormatASCII)
	}
	if resp.CacheHit {
		t.Error("first render should not be a cache hit")
	}
	if resp.Stats.NodeCount != 3 {
		t.Errorf("node_count = %d, want 3", resp.Stats.NodeCount)
	}
	if resp.TreeHash == "" {
		t.Error("tree_hash should be set")
	}

	// Same document again hits the cache
	rec = doRequest(t, s, http.MethodPost, "/api/v1/render", renderBody)
	var cached renderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &cached); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !cached.CacheHit {
		t.Error("second render should be a cache hit")
	}
	if cached.Output != resp.Output {
		t.Errorf("cached output = %q, want %q", cached.Output, resp.Output)
	}
}

func TestRenderEndpointFormats(t *testing.T) {
	s := newTestServer(t, nil)

	t.Run("json", func(t *testing.T) {
		body := `{"tree": {"value":"5"}, "format": "json"}`
		rec := doRequest(t, s, http.MethodPost, "/api/v1/render", body)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body)
		}

		var resp renderResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		var layout struct {
			CellWidth int `json:"cell_width"`
		}
		if err := json.Unmarshal([]byte(resp.Output), &layout); err != nil {
			t.Fatalf("output is not JSON: %v", err)
		}
		if layout.CellWidth != 2 {
			t.Errorf("cell_width = %d, want 2", layout.CellWidth)
		}
	})

	t.Run("dot", func(t *testing.T) {
		body := `{"tree": {"value":"5"}, "format": "dot"}`
		rec := doRequest(t, s, http.MethodPost, "/api/v1/render", body)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body)
		}

		var resp renderResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if !strings.HasPrefix(resp.Output, "digraph tree {") {
			t.Errorf("output is not DOT: %q", resp.Output)
		}
	})
}

func TestRenderEndpointConfigDefaults(t *testing.T) {
	cfg := config.Default()
	cfg.Render.MaxCellWidth = 4
	s := newTestServer(t, cfg)

	rec := doRequest(t, s, http.MethodPost, "/api/v1/render", `{"tree": {"value":"abcdef"}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body)
	}

	var resp renderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Output != "abcd" {
		t.Errorf("output = %q, want %q (configured width cap)", resp.Output, "abcd")
	}
}

func TestRenderEndpointErrors(t *testing.T) {
	s := newTestServer(t, nil)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "malformed json",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
			wantCode:   string(errors.ErrCodeInvalidInput),
		},
		{
			name:       "missing tree",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   string(errors.ErrCodeInvalidInput),
		},
		{
			name:       "unknown format",
			body:       `{"tree": {"value":"5"}, "format": "yaml"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   string(errors.ErrCodeInvalidFormat),
		},
		{
			name:       "node without value",
			body:       `{"tree": {"left": {"value":"1"}}}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   string(errors.ErrCodeInvalidTree),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, s, http.MethodPost, "/api/v1/render", tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d; body: %s", rec.Code, tt.wantStatus, rec.Body)
			}

			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", resp.Code, tt.wantCode)
			}
			if resp.Error == "" {
				t.Error("error message should be set")
			}
		})
	}
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doRequest(t, s, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("status = %q, want ok", resp["status"])
	}
}

func TestVersionEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doRequest(t, s, http.MethodGet, "/version", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["version"] != buildinfo.Version {
		t.Errorf("version = %q, want %q", resp["version"], buildinfo.Version)
	}

	if got := rec.Header().Get("Server"); got != buildinfo.UserAgent() {
		t.Errorf("Server header = %q, want %q", got, buildinfo.UserAgent())
	}
}

func TestRequestIDGenerated(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doRequest(t, s, http.MethodGet, "/healthz", "")
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID should be generated")
	}
}

func TestRequestIDHonored(t *testing.T) {
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "test-id-123")
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "test-id-123" {
		t.Errorf("X-Request-ID = %q, want test-id-123", got)
	}
}

func TestRecoverPanics(t *testing.T) {
	s := newTestServer(t, nil)

	h := s.recoverPanics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Code != string(errors.ErrCodeInternal) {
		t.Errorf("code = %q, want %q", resp.Code, errors.ErrCodeInternal)
	}
}

func TestStatusForError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{errors.New(errors.ErrCodeInvalidInput, "bad"), http.StatusBadRequest},
		{errors.New(errors.ErrCodeInvalidTree, "bad"), http.StatusBadRequest},
		{errors.New(errors.ErrCodeInvalidFormat, "bad"), http.StatusBadRequest},
		{errors.New(errors.ErrCodeFileNotFound, "gone"), http.StatusNotFound},
		{errors.New(errors.ErrCodeUnsupported, "nope"), http.StatusUnprocessableEntity},
		{errors.New(errors.ErrCodeInternal, "broken"), http.StatusInternalServerError},
		{fmt.Errorf("plain error"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := statusForError(tt.err); got != tt.want {
			t.Errorf("statusForError(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestListenAndServeShutdown(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Addr = "127.0.0.1:0"
	s := newTestServer(t, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.ListenAndServe(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe() error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop after context cancel")
	}
}
