package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/utgstodio-dev/UTG-Stodio/internal/app"
	"github.com/utgstodio-dev/UTG-Stodio/internal/content"
	"github.com/utgstodio-dev/UTG-Stodio/internal/platform/api"
	"github.com/utgstodio-dev/UTG-Stodio/internal/platform/auth"
	"github.com/utgstodio-dev/UTG-Stodio/internal/platform/httpserver"
	"github.com/utgstodio-dev/UTG-Stodio/internal/session"
	"github.com/utgstodio-dev/UTG-Stodio/internal/upload"
)

type startUploadRequest struct {
	Type        string `json:"type"`
	MediaURL    string `json:"media_url"`
	Description string `json:"description"`
}

type startUploadResponse struct {
	UploadID string       `json:"upload_id"`
	State    upload.State `json:"state"`
}

// StartUpload handles POST /v1/uploads. The flow continues in the
// background; progress is observed via GetUpload.
func StartUpload(um *upload.Manager, sm *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		var req startUploadRequest
		if !decodeJSON(w, r, rid, &req) {
			return
		}

		f, err := um.Start(r.Context(), upload.Request{
			Kind:        content.Kind(strings.ToUpper(strings.TrimSpace(req.Type))),
			MediaURL:    strings.TrimSpace(req.MediaURL),
			Description: req.Description,
			Owner:       sm.CurrentUser(),
		})
		if err != nil {
			switch {
			case errors.Is(err, upload.ErrNoMedia):
				api.BadRequest(w, "MISSING_MEDIA", "a selected file is required", rid, nil)
			case errors.Is(err, upload.ErrInvalidKind):
				api.BadRequest(w, "INVALID_TYPE", "type must be VIDEO, SHORT or POST", rid, nil)
			default:
				api.Internal(w, rid)
			}
			return
		}
		api.WriteJSON(w, http.StatusAccepted, startUploadResponse{UploadID: f.ID(), State: f.Status().State})
	}
}

type uploadStatusResponse struct {
	upload.Status
	ActiveTab app.Tab `json:"active_tab"`
}

// GetUpload handles GET /v1/uploads/{upload_id}. ActiveTab rides along so
// a polling client sees the post-completion redirect.
func GetUpload(um *upload.Manager, views *app.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())
		uid, _ := auth.UserIDFromContext(r.Context())

		id := strings.TrimSpace(chi.URLParam(r, "upload_id"))
		if id == "" {
			api.BadRequest(w, "MISSING_ID", "upload_id is required", rid, nil)
			return
		}
		f, ok := um.Get(id)
		if !ok {
			api.NotFound(w, "UPLOAD_NOT_FOUND", "no such upload", rid)
			return
		}
		api.WriteJSON(w, http.StatusOK, uploadStatusResponse{
			Status:    f.Status(),
			ActiveTab: views.Get(uid).ActiveTab(),
		})
	}
}
