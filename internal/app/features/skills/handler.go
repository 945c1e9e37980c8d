// internal/app/features/skills/handler.go
package skills

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	skillstore "github.com/nitinpratap/folio/internal/app/store/skills"
	"github.com/nitinpratap/folio/internal/app/system/httpjson"
	"github.com/nitinpratap/folio/internal/app/system/timeouts"
	"github.com/nitinpratap/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the skill endpoints.
type Handler struct {
	Store *skillstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a skills Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: skillstore.New(db),
		Log:   logger,
	}
}

// createPayload is the accepted body for POST /api/skills.
type createPayload struct {
	SkillName string `json:"skill_name"`
	Level     string `json:"level"`
	Top       bool   `json:"top"`
}

// ServeCreate handles POST /api/skills. Responds 201 on success.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	var payload createPayload
	if err := httpjson.Decode(r, &payload); err != nil {
		httpjson.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	sk, err := h.Store.Create(ctx, models.Skill{
		SkillName: payload.SkillName,
		Level:     payload.Level,
		Top:       payload.Top,
	})
	if err != nil {
		h.Log.Error("skill create failed", zap.Error(err))
		httpjson.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpjson.Write(w, http.StatusCreated, sk)
}

// ServeList handles GET /api/skills. Top skills come first, then
// alphabetically by name within each group.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("skill list failed", zap.Error(err))
		httpjson.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpjson.Write(w, http.StatusOK, list)
}

// ServeListTop handles GET /api/skills/top.
func (h *Handler) ServeListTop(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Store.ListTop(ctx)
	if err != nil {
		h.Log.Error("top skill list failed", zap.Error(err))
		httpjson.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpjson.Write(w, http.StatusOK, list)
}

// deletedMessage is the body returned by a successful delete,
// whether or not a document matched.
type deletedMessage struct {
	Message string `json:"message"`
}

// ServeDelete handles DELETE /api/skills/{id}.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		// Malformed ids are treated like any other miss.
		httpjson.Write(w, http.StatusOK, deletedMessage{Message: "Skill deleted"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if _, err := h.Store.Delete(ctx, id); err != nil {
		h.Log.Error("skill delete failed", zap.Error(err))
		httpjson.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpjson.Write(w, http.StatusOK, deletedMessage{Message: "Skill deleted"})
}
