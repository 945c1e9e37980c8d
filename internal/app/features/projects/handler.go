// internal/app/features/projects/handler.go
package projects

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	projectstore "github.com/nitinpratap/folio/internal/app/store/projects"
	"github.com/nitinpratap/folio/internal/app/system/httpjson"
	"github.com/nitinpratap/folio/internal/app/system/textclean"
	"github.com/nitinpratap/folio/internal/app/system/timeouts"
	"github.com/nitinpratap/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the project endpoints.
type Handler struct {
	Store *projectstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a projects Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: projectstore.New(db),
		Log:   logger,
	}
}

// createPayload is the accepted body for POST /api/projects.
type createPayload struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Links       models.ProjectLinks `json:"links"`
	Skills      []string            `json:"skills"`
}

// updatePayload is the accepted body for PUT /api/projects/{id}.
// Only fields present in the body are changed.
type updatePayload struct {
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	Links       *models.ProjectLinks `json:"links"`
	Skills      *[]string            `json:"skills"`
}

// ServeCreate handles POST /api/projects.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	var payload createPayload
	if err := httpjson.Decode(r, &payload); err != nil {
		httpjson.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := h.Store.Create(ctx, models.Project{
		Title:       payload.Title,
		Description: textclean.Strip(payload.Description),
		Links:       payload.Links,
		Skills:      payload.Skills,
	})
	if err != nil {
		h.Log.Error("project create failed", zap.Error(err))
		httpjson.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpjson.Write(w, http.StatusOK, p)
}

// ServeList handles GET /api/projects.
//
// The optional ?skill= query restricts results to projects whose
// skills array contains the value (exact element match, not substring
// and not case-insensitive). Results are ordered newest first.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	skill := r.URL.Query().Get("skill")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Store.List(ctx, skill)
	if err != nil {
		h.Log.Error("project list failed", zap.Error(err))
		httpjson.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpjson.Write(w, http.StatusOK, list)
}

// ServeGet handles GET /api/projects/{id}.
// A miss (unknown or malformed id) renders null, not an error.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpjson.WriteNull(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := h.Store.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		httpjson.WriteNull(w)
		return
	}
	if err != nil {
		h.Log.Error("project get failed", zap.Error(err))
		httpjson.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpjson.Write(w, http.StatusOK, p)
}

// ServeUpdate handles PUT /api/projects/{id}.
func (h *Handler) ServeUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpjson.WriteNull(w)
		return
	}

	var payload updatePayload
	if err := httpjson.Decode(r, &payload); err != nil {
		httpjson.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if payload.Description != nil {
		clean := textclean.Strip(*payload.Description)
		payload.Description = &clean
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := h.Store.Update(ctx, id, projectstore.Update{
		Title:       payload.Title,
		Description: payload.Description,
		Links:       payload.Links,
		Skills:      payload.Skills,
	})
	if errors.Is(err, mongo.ErrNoDocuments) {
		httpjson.WriteNull(w)
		return
	}
	if err != nil {
		h.Log.Error("project update failed", zap.Error(err))
		httpjson.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpjson.Write(w, http.StatusOK, p)
}

// ServeDelete handles DELETE /api/projects/{id}.
// Returns the deleted project, or null if nothing matched.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpjson.WriteNull(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := h.Store.Delete(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		httpjson.WriteNull(w)
		return
	}
	if err != nil {
		h.Log.Error("project delete failed", zap.Error(err))
		httpjson.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpjson.Write(w, http.StatusOK, p)
}

// pathID parses the {id} route parameter as an ObjectID.
func pathID(r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}
