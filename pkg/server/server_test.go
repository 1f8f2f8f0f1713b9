package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ratiosplit/pkg/observability"
	"github.com/matzehuels/ratiosplit/pkg/pipeline"
)

func newTestServer() *Server {
	logger := log.New(&bytes.Buffer{})
	return New(pipeline.NewRunner(logger), logger)
}

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestEndpoints(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
		want string
	}{
		{
			name: "resolve",
			path: "/v1/resolve",
			body: `{"total":10,"edges":[{"ratio":2},{"ratio":5},{"ratio":3}]}`,
			want: `{"sizes":[2,5,3]}`,
		},
		{
			name: "resolve fixed and minimum",
			path: "/v1/resolve",
			body: `{"total":80,"edges":[{"size":20},{"ratio":3,"minimum_size":10},{}]}`,
			want: `{"sizes":[20,45,15]}`,
		},
		{
			name: "reduce",
			path: "/v1/reduce",
			body: `{"total":2,"ratios":[1,1],"maximums":[10,10],"values":[9,3]}`,
			want: `{"values":[8,2]}`,
		},
		{
			name: "distribute",
			path: "/v1/distribute",
			body: `{"total":7,"ratios":[1,1,1]}`,
			want: `{"parts":[3,2,2]}`,
		},
		{
			name: "rule",
			path: "/v1/rule",
			body: `{"title":"Hi","width":10,"characters":"-"}`,
			want: `{"line":"--- Hi ---"}`,
		},
		{
			name: "rule left",
			path: "/v1/rule",
			body: `{"title":"Hi","width":8,"characters":"=","align":"left"}`,
			want: `{"line":"Hi ====="}`,
		},
	}

	h := newTestServer().Handler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, h, tt.path, tt.body)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
			}
			if got := strings.TrimSpace(rec.Body.String()); got != tt.want {
				t.Errorf("body = %s, want %s", got, tt.want)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
		})
	}
}

func TestRuleDefaultWidth(t *testing.T) {
	rec := post(t, newTestServer().Handler(), "/v1/rule", `{"title":""}`)
	var resp ruleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if n := len([]rune(resp.Line)); n != DefaultRuleWidth {
		t.Errorf("rule width = %d, want %d", n, DefaultRuleWidth)
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		body   string
		status int
		code   string
	}{
		{"malformed json", "/v1/resolve", `{"total":`, http.StatusBadRequest, "INVALID_FORMAT"},
		{"unknown field", "/v1/distribute", `{"total":1,"weights":[1]}`, http.StatusBadRequest, "INVALID_FORMAT"},
		{"negative total", "/v1/resolve", `{"total":-1,"edges":[]}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"length mismatch", "/v1/reduce", `{"total":1,"ratios":[1],"maximums":[1,1],"values":[1]}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"zero ratios", "/v1/distribute", `{"total":4,"ratios":[0,0]}`, http.StatusUnprocessableEntity, "INVALID_CONFIGURATION"},
		{"bad align", "/v1/rule", `{"title":"x","align":"middle"}`, http.StatusBadRequest, "INVALID_ALIGN"},
		{"negative width", "/v1/rule", `{"title":"x","width":-3}`, http.StatusBadRequest, "INVALID_INPUT"},
	}

	h := newTestServer().Handler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, h, tt.path, tt.body)
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode error body: %v (%s)", err, rec.Body.String())
			}
			if string(resp.Code) != tt.code {
				t.Errorf("code = %s, want %s", resp.Code, tt.code)
			}
			if resp.Message == "" {
				t.Error("message is empty")
			}
		})
	}
}

func TestContentType(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/resolve", strings.NewReader(`{"total":1}`))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusUnsupportedMediaType {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnsupportedMediaType)
	}
}

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	var resp healthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != "ok" || resp.Build.Version == "" {
		t.Errorf("healthz = %+v", resp)
	}
}

func TestRequestID(t *testing.T) {
	h := newTestServer().Handler()

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		if id := rec.Header().Get(RequestIDHeader); len(id) != 36 {
			t.Errorf("%s = %q, want a UUID", RequestIDHeader, id)
		}
	})

	t.Run("echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if id := rec.Header().Get(RequestIDHeader); id != "abc-123" {
			t.Errorf("%s = %q, want abc-123", RequestIDHeader, id)
		}
	})
}

type recordingHTTPHooks struct {
	mu       sync.Mutex
	requests []string
	statuses []int
}

func (h *recordingHTTPHooks) OnRequest(_ context.Context, method, path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.requests = append(h.requests, method+" "+path)
}

func (h *recordingHTTPHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.statuses = append(h.statuses, status)
}

func TestHTTPHooks(t *testing.T) {
	hooks := &recordingHTTPHooks{}
	observability.SetHTTPHooks(hooks)
	t.Cleanup(observability.Reset)

	h := newTestServer().Handler()
	post(t, h, "/v1/distribute", `{"total":3,"ratios":[1]}`)
	post(t, h, "/v1/distribute", `{"total":3,"ratios":[0]}`)

	if len(hooks.requests) != 2 || hooks.requests[0] != "POST /v1/distribute" {
		t.Errorf("requests = %v", hooks.requests)
	}
	if len(hooks.statuses) != 2 || hooks.statuses[0] != 200 || hooks.statuses[1] != 422 {
		t.Errorf("statuses = %v, want [200 422]", hooks.statuses)
	}
}

func TestListenAndServeShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- newTestServer().ListenAndServe(ctx, "127.0.0.1:0")
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ListenAndServe() did not return after cancel")
	}
}
