package handlers

import (
	"net/http"

	"github.com/utgstodio-dev/UTG-Stodio/internal/app"
	"github.com/utgstodio-dev/UTG-Stodio/internal/content"
	"github.com/utgstodio-dev/UTG-Stodio/internal/platform/api"
	"github.com/utgstodio-dev/UTG-Stodio/internal/platform/auth"
	"github.com/utgstodio-dev/UTG-Stodio/internal/platform/httpserver"
	"github.com/utgstodio-dev/UTG-Stodio/internal/session"
)

type meResponse struct {
	User      content.User `json:"user"`
	ActiveTab app.Tab      `json:"active_tab"`
}

// Me handles GET /v1/me.
func Me(sm *session.Manager, views *app.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, _ := auth.UserIDFromContext(r.Context())
		api.WriteJSON(w, http.StatusOK, meResponse{
			User:      sm.CurrentUser(),
			ActiveTab: views.Get(uid).ActiveTab(),
		})
	}
}

// Dashboard handles GET /v1/me/dashboard.
func Dashboard(store content.Store, sm *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		stats, err := app.ComputeDashboard(r.Context(), store, sm.CurrentUser())
		if err != nil {
			api.Internal(w, rid)
			return
		}
		api.WriteJSON(w, http.StatusOK, stats)
	}
}

// MyContent handles GET /v1/me/content: the profile grid.
func MyContent(store content.Store, sm *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		items, err := store.ByOwner(r.Context(), sm.CurrentUser().ID)
		if err != nil {
			api.Internal(w, rid)
			return
		}
		api.WriteJSON(w, http.StatusOK, feedResponse{Items: items, Total: len(items)})
	}
}
