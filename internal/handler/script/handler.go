package script

import (
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler re-serves the ChatKit widget script same-origin so client-side
// blockers do not break widget load.
type Handler struct {
	src   string
	httpc *http.Client
}

// New creates a script mirror for the given upstream script URL.
func New(src string) *Handler {
	return &Handler{src: src, httpc: &http.Client{}}
}

// RegisterRoutes registers the mirrored script path.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.HandleFunc("/chatkit.js", h.handleScript)
}

func (h *Handler) handleScript(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusMethodNotAllowed)
		io.WriteString(w, "Method Not Allowed")
		return
	}

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, h.src, nil)
	if err != nil {
		respondFetchFailed(w)
		return
	}
	// Keep deploys from serving a stale widget build.
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := h.httpc.Do(req)
	if err != nil {
		log.Printf("[script] fetch failed: %v", err)
		respondFetchFailed(w)
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[script] read failed: %v", err)
		respondFetchFailed(w)
		return
	}

	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	// Short cache keeps reloads fast while allowing quick invalidation.
	w.Header().Set("Cache-Control", "public, max-age=300")
	w.WriteHeader(resp.StatusCode)
	w.Write(body)
}

func respondFetchFailed(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusBadGateway)
	io.WriteString(w, "Failed to fetch ChatKit script")
}
