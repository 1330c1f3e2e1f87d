package workflow

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ui8kit/chatkit-gateway/internal/model/workflow"
)

// Handler serves the workflow library to the frontend.
type Handler struct {
	workflows workflow.Store
}

// New creates the workflow handler.
func New(workflows workflow.Store) *Handler {
	return &Handler{
		workflows: workflows,
	}
}

// RegisterRoutes registers workflow lookup routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/workflows", h.handleListWorkflows)
	r.Get("/workflows/{key}/prompts", h.handlePrompts)
}

// handleListWorkflows lists the workflow library.
func (h *Handler) handleListWorkflows(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.workflows.List())
}

// handlePrompts returns the start prompts for a workflow key (wf_id, slug, or
// name). Unknown keys get the built-in default prompt.
func (h *Handler) handlePrompts(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	h.respondJSON(w, http.StatusOK, h.workflows.PromptsFor(key))
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
