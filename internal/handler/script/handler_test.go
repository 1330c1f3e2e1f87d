package script

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func setupRouter(src string) *chi.Mux {
	handler := New(src)
	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestMirrorRelaysScript(t *testing.T) {
	var gotCacheControl string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCacheControl = r.Header.Get("Cache-Control")
		w.Header().Set("Content-Type", "application/javascript")
		w.Write([]byte("console.log('chatkit')"))
	}))
	defer upstream.Close()

	r := setupRouter(upstream.URL)
	req := httptest.NewRequest(http.MethodGet, "/chatkit.js", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if resp.Body.String() != "console.log('chatkit')" {
		t.Fatalf("unexpected body %q", resp.Body.String())
	}
	if got := resp.Header().Get("Content-Type"); got != "text/javascript; charset=utf-8" {
		t.Fatalf("unexpected content type %q", got)
	}
	if got := resp.Header().Get("Cache-Control"); got != "public, max-age=300" {
		t.Fatalf("unexpected cache header %q", got)
	}
	if gotCacheControl != "no-cache" {
		t.Fatalf("expected no-cache fetch, got %q", gotCacheControl)
	}
}

func TestMirrorRelaysUpstreamStatus(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("not here"))
	}))
	defer upstream.Close()

	r := setupRouter(upstream.URL)
	req := httptest.NewRequest(http.MethodGet, "/chatkit.js", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected upstream 404 to be relayed, got %d", resp.Code)
	}
	if resp.Body.String() != "not here" {
		t.Fatalf("unexpected body %q", resp.Body.String())
	}
}

func TestMirrorMethodNotAllowed(t *testing.T) {
	r := setupRouter("http://127.0.0.1:0")
	req := httptest.NewRequest(http.MethodPost, "/chatkit.js", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", resp.Code)
	}
	if got := resp.Header().Get("Content-Type"); got != "text/plain; charset=utf-8" {
		t.Fatalf("unexpected content type %q", got)
	}
}

func TestMirrorUpstreamUnreachable(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close() // refuse connections

	r := setupRouter(upstream.URL)
	req := httptest.NewRequest(http.MethodGet, "/chatkit.js", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", resp.Code)
	}
	if resp.Body.String() != "Failed to fetch ChatKit script" {
		t.Fatalf("unexpected body %q", resp.Body.String())
	}
}
