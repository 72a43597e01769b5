package handlers

import (
	"errors"
	"net/http"

	"github.com/utgstodio-dev/UTG-Stodio/internal/app"
	"github.com/utgstodio-dev/UTG-Stodio/internal/platform/analytics"
	"github.com/utgstodio-dev/UTG-Stodio/internal/platform/api"
	"github.com/utgstodio-dev/UTG-Stodio/internal/platform/auth"
	"github.com/utgstodio-dev/UTG-Stodio/internal/platform/httpserver"
	"github.com/utgstodio-dev/UTG-Stodio/internal/session"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /v1/auth/login.
func Login(sm *session.Manager, ap *analytics.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		var req loginRequest
		if !decodeJSON(w, r, rid, &req) {
			return
		}

		s, err := sm.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, session.ErrMissingCredentials) {
				api.BadRequest(w, "MISSING_CREDENTIALS", "username and password are required", rid, nil)
				return
			}
			api.Internal(w, rid)
			return
		}

		ap.Publish(analytics.SubjectSessionLoggedIn, "session_logged_in", s.User.ID, nil)
		api.WriteJSON(w, http.StatusOK, s)
	}
}

// Logout handles POST /v1/auth/logout: the view state is discarded with
// the session.
func Logout(views *app.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok || uid == "" {
			api.Unauthorized(w, "UNAUTHORIZED", "authentication required", "")
			return
		}
		views.Drop(uid)
		w.WriteHeader(http.StatusNoContent)
	}
}
