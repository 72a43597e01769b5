package handlers

import (
	"net/http"
	"strings"

	"github.com/utgstodio-dev/UTG-Stodio/internal/app"
	"github.com/utgstodio-dev/UTG-Stodio/internal/content"
	"github.com/utgstodio-dev/UTG-Stodio/internal/platform/analytics"
	"github.com/utgstodio-dev/UTG-Stodio/internal/platform/api"
	"github.com/utgstodio-dev/UTG-Stodio/internal/platform/auth"
	"github.com/utgstodio-dev/UTG-Stodio/internal/platform/httpserver"
	"github.com/utgstodio-dev/UTG-Stodio/internal/search"
)

type searchRequest struct {
	Query string `json:"query"`
}

type searchResponse struct {
	Applied bool              `json:"applied"`
	Items   []content.Content `json:"items"`
	Total   int               `json:"total"`
}

// Search handles POST /v1/search. A blank query clears the filter rather
// than erroring. The result is applied to the session's view state through
// the generation guard, so a slower, older search can never clobber a
// newer one.
func Search(m *search.Matcher, store content.Store, views *app.Registry, ap *analytics.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())
		uid, _ := auth.UserIDFromContext(r.Context())

		var req searchRequest
		if !decodeJSON(w, r, rid, &req) {
			return
		}

		st := views.Get(uid)
		gen := st.BeginSearch(req.Query)

		items, err := store.All(r.Context())
		if err != nil {
			api.Internal(w, rid)
			return
		}
		res := m.Search(r.Context(), req.Query, items)
		st.FinishSearch(gen, res)

		if q := strings.TrimSpace(req.Query); q != "" {
			ap.Publish(analytics.SubjectSearchPerformed, "search_performed", uid, map[string]any{
				"query":   q,
				"results": len(res.Items),
			})
		}
		api.WriteJSON(w, http.StatusOK, searchResponse{Applied: res.Applied, Items: res.Items, Total: len(res.Items)})
	}
}

// ClearSearch handles DELETE /v1/search.
func ClearSearch(views *app.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, _ := auth.UserIDFromContext(r.Context())
		views.Get(uid).ClearSearch()
		w.WriteHeader(http.StatusNoContent)
	}
}

type tabRequest struct {
	Tab string `json:"tab"`
}

type tabResponse struct {
	ActiveTab app.Tab `json:"active_tab"`
}

// SetTab handles POST /v1/tab.
func SetTab(views *app.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())
		uid, _ := auth.UserIDFromContext(r.Context())

		var req tabRequest
		if !decodeJSON(w, r, rid, &req) {
			return
		}
		tab, ok := app.ParseTab(strings.ToUpper(strings.TrimSpace(req.Tab)))
		if !ok {
			api.BadRequest(w, "INVALID_TAB", "unknown tab", rid, map[string]any{"tab": req.Tab})
			return
		}

		st := views.Get(uid)
		st.SetTab(tab)
		api.WriteJSON(w, http.StatusOK, tabResponse{ActiveTab: st.ActiveTab()})
	}
}
