// internal/app/features/profile/handler.go
package profile

import (
	"context"
	"errors"
	"net/http"

	profilestore "github.com/nitinpratap/folio/internal/app/store/profiles"
	"github.com/nitinpratap/folio/internal/app/system/httpjson"
	"github.com/nitinpratap/folio/internal/app/system/textclean"
	"github.com/nitinpratap/folio/internal/app/system/timeouts"
	"github.com/nitinpratap/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the singleton profile endpoints.
type Handler struct {
	Store *profilestore.Store
	Log   *zap.Logger
}

// NewHandler constructs a profile Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: profilestore.New(db),
		Log:   logger,
	}
}

// upsertPayload is the accepted body for POST /api/profile. All fields
// are optional; only the ones present are written.
type upsertPayload struct {
	Name      *string              `json:"name"`
	Email     *string              `json:"email"`
	Bio       *string              `json:"bio"`
	Education *[]string            `json:"education"`
	Links     *models.ProfileLinks `json:"links"`
}

// ServeGet handles GET /api/profile.
//
// Returns the profile, or an empty object when none has been created
// yet (not an error).
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := h.Store.Get(ctx)
	if errors.Is(err, mongo.ErrNoDocuments) {
		httpjson.Write(w, http.StatusOK, struct{}{})
		return
	}
	if err != nil {
		h.Log.Error("profile get failed", zap.Error(err))
		httpjson.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpjson.Write(w, http.StatusOK, p)
}

// ServeUpsert handles POST /api/profile.
//
// Creates the profile if absent, otherwise merges the provided fields
// into the existing document and returns the result.
func (h *Handler) ServeUpsert(w http.ResponseWriter, r *http.Request) {
	var payload upsertPayload
	if err := httpjson.Decode(r, &payload); err != nil {
		httpjson.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if payload.Bio != nil {
		clean := textclean.Strip(*payload.Bio)
		payload.Bio = &clean
	}
	if payload.Education != nil {
		*payload.Education = textclean.StripAll(*payload.Education)
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := h.Store.Upsert(ctx, profilestore.Update{
		Name:      payload.Name,
		Email:     payload.Email,
		Bio:       payload.Bio,
		Education: payload.Education,
		Links:     payload.Links,
	})
	if err != nil {
		h.Log.Error("profile upsert failed", zap.Error(err))
		httpjson.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpjson.Write(w, http.StatusOK, p)
}
