package session

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ui8kit/chatkit-gateway/internal/config"
	"github.com/ui8kit/chatkit-gateway/internal/model/workflow"
	"github.com/ui8kit/chatkit-gateway/internal/service/chatkit"
)

// Handler proxies session creation between the browser and the ChatKit API.
// It holds no per-request state; the identity cookie is the only store.
type Handler struct {
	cfg       config.ChatKitConfig
	client    *chatkit.Client
	workflows workflow.Store
}

// New creates the session proxy handler.
func New(cfg config.ChatKitConfig, client *chatkit.Client, workflows workflow.Store) *Handler {
	return &Handler{
		cfg:       cfg,
		client:    client,
		workflows: workflows,
	}
}

// RegisterRoutes registers the session-creation endpoint. The route matches
// every method so the handler itself can answer 405 in the JSON shape the
// frontend expects.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.HandleFunc("/create-session", h.handleCreateSession)
}

// createSessionRequest is the lenient request shape: an absent or malformed
// body degrades to the zero value rather than failing the request.
type createSessionRequest struct {
	Workflow *struct {
		ID string `json:"id"`
	} `json:"workflow"`
	WorkflowID           string `json:"workflowId"`
	ChatKitConfiguration *struct {
		FileUpload *struct {
			Enabled bool `json:"enabled"`
		} `json:"file_upload"`
	} `json:"chatkit_configuration"`
}

// workflowCandidate picks the workflow key: body workflow.id, then body
// workflowId, then the configured default.
func (req createSessionRequest) workflowCandidate(fallback string) string {
	if req.Workflow != nil && req.Workflow.ID != "" {
		return req.Workflow.ID
	}
	if req.WorkflowID != "" {
		return req.WorkflowID
	}
	return fallback
}

func (req createSessionRequest) fileUploadEnabled() bool {
	return req.ChatKitConfiguration != nil &&
		req.ChatKitConfiguration.FileUpload != nil &&
		req.ChatKitConfiguration.FileUpload.Enabled
}

// decodeRequest reads the whole body and parses it, returning the zero value
// when the body is empty or not valid JSON.
func decodeRequest(r *http.Request) createSessionRequest {
	raw, err := io.ReadAll(r.Body)
	if err != nil || len(raw) == 0 {
		return createSessionRequest{}
	}

	var req createSessionRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return createSessionRequest{}
	}
	return req
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	if h.cfg.APIKey == "" {
		respondError(w, http.StatusInternalServerError, "Missing OPENAI_API_KEY environment variable")
		return
	}

	body := decodeRequest(r)

	userID := readSessionCookie(r)
	var minted *http.Cookie
	if userID == "" {
		userID = uuid.NewString()
		minted = newSessionCookie(userID, h.cfg.SecureCookies)
	}

	// A freshly minted identity rides on every response from here on,
	// failures included, so a retry from the same browser stays correlated.
	respond := func(status int, payload any) {
		if minted != nil {
			http.SetCookie(w, minted)
		}
		respondJSON(w, status, payload)
	}

	workflowID := h.workflows.ResolveID(body.workflowCandidate(h.cfg.DefaultWorkflowID))
	if workflowID == "" {
		respond(http.StatusBadRequest, errorBody{Error: "Missing workflow id"})
		return
	}

	session, err := h.client.CreateSession(r.Context(), chatkit.SessionParams{
		WorkflowID:        workflowID,
		UserID:            userID,
		FileUploadEnabled: body.fileUploadEnabled(),
	})
	if err != nil {
		var upstream *chatkit.UpstreamError
		if errors.As(err, &upstream) {
			respond(upstream.StatusCode, errorBody{Error: upstream.Message, Details: upstream.Details})
			return
		}
		log.Printf("[session] create session failed: %v", err)
		respond(http.StatusInternalServerError, errorBody{Error: "Unexpected error"})
		return
	}

	respond(http.StatusOK, session)
}

type errorBody struct {
	Error   string          `json:"error"`
	Details json.RawMessage `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
