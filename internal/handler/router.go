package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ui8kit/chatkit-gateway/internal/config"
	scriptHandler "github.com/ui8kit/chatkit-gateway/internal/handler/script"
	sessionHandler "github.com/ui8kit/chatkit-gateway/internal/handler/session"
	workflowHandler "github.com/ui8kit/chatkit-gateway/internal/handler/workflow"
	"github.com/ui8kit/chatkit-gateway/internal/model/theme"
	workflowModel "github.com/ui8kit/chatkit-gateway/internal/model/workflow"
	"github.com/ui8kit/chatkit-gateway/internal/service/chatkit"
	"github.com/ui8kit/chatkit-gateway/pkg/utils"
)

// NewRouter wires HTTP routes to the gateway services.
func NewRouter(cfg *config.Config, workflows workflowModel.Store, client *chatkit.Client) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Server.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Requested-With"},
		AllowCredentials: true, // the identity cookie must survive cross-origin dev setups
		MaxAge:           300,
	}))

	// Create handlers
	sessionH := sessionHandler.New(cfg.ChatKit, client, workflows)
	scriptH := scriptHandler.New(cfg.ChatKit.ScriptURL)
	workflowH := workflowHandler.New(workflows)

	r.Route("/api", func(api chi.Router) {
		// Register session proxy routes
		sessionH.RegisterRoutes(api)

		// Register script mirror routes
		scriptH.RegisterRoutes(api)

		// Register workflow library routes
		workflowH.RegisterRoutes(api)

		// Widget theme tokens for a color scheme
		api.Get("/theme", func(w http.ResponseWriter, r *http.Request) {
			scheme := r.URL.Query().Get("scheme")
			utils.RespondJSON(w, http.StatusOK, theme.ForScheme(scheme))
		})

		api.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	return r
}
