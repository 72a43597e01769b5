package handlers

import (
	"net/http"

	"github.com/utgstodio-dev/UTG-Stodio/internal/app"
	"github.com/utgstodio-dev/UTG-Stodio/internal/content"
	"github.com/utgstodio-dev/UTG-Stodio/internal/platform/api"
	"github.com/utgstodio-dev/UTG-Stodio/internal/platform/auth"
	"github.com/utgstodio-dev/UTG-Stodio/internal/platform/httpserver"
)

type feedResponse struct {
	Items         []content.Content `json:"items"`
	Total         int               `json:"total"`
	SearchApplied bool              `json:"search_applied"`
}

// Feed handles GET /v1/feed: the home surface, filtered by the session's
// active search when one is applied.
func Feed(store content.Store, views *app.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())
		uid, _ := auth.UserIDFromContext(r.Context())

		items, applied, err := views.Get(uid).VisibleFeed(r.Context(), store)
		if err != nil {
			api.Internal(w, rid)
			return
		}
		api.WriteJSON(w, http.StatusOK, feedResponse{Items: items, Total: len(items), SearchApplied: applied})
	}
}

// Shorts handles GET /v1/shorts: the vertically-swiped player feed.
func Shorts(store content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		items, err := store.ByKind(r.Context(), content.KindShort)
		if err != nil {
			api.Internal(w, rid)
			return
		}
		api.WriteJSON(w, http.StatusOK, feedResponse{Items: items, Total: len(items)})
	}
}
