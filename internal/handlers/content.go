package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/utgstodio-dev/UTG-Stodio/internal/app"
	"github.com/utgstodio-dev/UTG-Stodio/internal/content"
	"github.com/utgstodio-dev/UTG-Stodio/internal/platform/analytics"
	"github.com/utgstodio-dev/UTG-Stodio/internal/platform/api"
	"github.com/utgstodio-dev/UTG-Stodio/internal/platform/auth"
	"github.com/utgstodio-dev/UTG-Stodio/internal/platform/httpserver"
	"github.com/utgstodio-dev/UTG-Stodio/internal/session"
)

type createCommentRequest struct {
	Text string `json:"text"`
}

// CreateComment handles POST /v1/content/{content_id}/comments.
func CreateComment(store content.Store, sm *session.Manager, ap *analytics.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())
		uid, _ := auth.UserIDFromContext(r.Context())

		contentID := strings.TrimSpace(chi.URLParam(r, "content_id"))
		if contentID == "" {
			api.BadRequest(w, "MISSING_ID", "content_id is required", rid, nil)
			return
		}

		var req createCommentRequest
		if !decodeJSON(w, r, rid, &req) {
			return
		}
		if strings.TrimSpace(req.Text) == "" {
			api.BadRequest(w, "EMPTY_TEXT", "text must not be empty", rid, nil)
			return
		}

		created, err := store.AddComment(r.Context(), contentID, content.Comment{
			Username: sm.CurrentUser().Username,
			Text:     req.Text,
		})
		if err != nil {
			if errors.Is(err, content.ErrNotFound) {
				api.NotFound(w, "CONTENT_NOT_FOUND", "no such content", rid)
				return
			}
			api.Internal(w, rid)
			return
		}

		ap.Publish(analytics.SubjectCommentAdded, "comment_added", uid, map[string]any{
			"content_id": contentID,
		})
		api.WriteJSON(w, http.StatusCreated, created)
	}
}

type likeResponse struct {
	Liked bool `json:"liked"`
	Likes int  `json:"likes"`
}

// ToggleLike handles POST /v1/content/{content_id}/like. The toggle lives
// in the session's view state only; the stored counter is never mutated,
// so the returned count is the stored value adjusted by the toggle.
func ToggleLike(store content.Store, views *app.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())
		uid, _ := auth.UserIDFromContext(r.Context())

		contentID := strings.TrimSpace(chi.URLParam(r, "content_id"))
		if contentID == "" {
			api.BadRequest(w, "MISSING_ID", "content_id is required", rid, nil)
			return
		}

		all, err := store.All(r.Context())
		if err != nil {
			api.Internal(w, rid)
			return
		}
		var item *content.Content
		for i := range all {
			if all[i].ID == contentID {
				item = &all[i]
				break
			}
		}
		if item == nil {
			api.NotFound(w, "CONTENT_NOT_FOUND", "no such content", rid)
			return
		}

		liked := views.Get(uid).ToggleLike(contentID)
		likes := item.Likes
		if liked {
			likes++
		}
		api.WriteJSON(w, http.StatusOK, likeResponse{Liked: liked, Likes: likes})
	}
}

type followResponse struct {
	Following bool `json:"following"`
	Followers int  `json:"followers"`
}

// ToggleFollow handles POST /v1/users/{user_id}/follow. Like the like
// toggle, the mark lives in the session's view state only; the returned
// follower count is the stored value adjusted by the toggle.
func ToggleFollow(store content.Store, sm *session.Manager, views *app.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())
		uid, _ := auth.UserIDFromContext(r.Context())

		userID := strings.TrimSpace(chi.URLParam(r, "user_id"))
		if userID == "" {
			api.BadRequest(w, "MISSING_ID", "user_id is required", rid, nil)
			return
		}
		if userID == sm.CurrentUser().ID {
			api.Conflict(w, "CANNOT_FOLLOW_SELF", "cannot follow your own channel", rid, nil)
			return
		}

		all, err := store.All(r.Context())
		if err != nil {
			api.Internal(w, rid)
			return
		}
		var target *content.User
		for i := range all {
			if all[i].User.ID == userID {
				target = &all[i].User
				break
			}
		}
		if target == nil {
			api.NotFound(w, "USER_NOT_FOUND", "no such user", rid)
			return
		}

		following := views.Get(uid).ToggleFollow(userID)
		followers := target.Followers
		if following {
			followers++
		}
		api.WriteJSON(w, http.StatusOK, followResponse{Following: following, Followers: followers})
	}
}
