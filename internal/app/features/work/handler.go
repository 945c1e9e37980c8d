// internal/app/features/work/handler.go
package work

import (
	"context"
	"net/http"

	workstore "github.com/nitinpratap/folio/internal/app/store/work"
	"github.com/nitinpratap/folio/internal/app/system/httpjson"
	"github.com/nitinpratap/folio/internal/app/system/textclean"
	"github.com/nitinpratap/folio/internal/app/system/timeouts"
	"github.com/nitinpratap/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the work-experience endpoints.
type Handler struct {
	Store *workstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a work Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: workstore.New(db),
		Log:   logger,
	}
}

// createPayload is the accepted body for POST /api/work.
type createPayload struct {
	Company    string   `json:"company"`
	Role       string   `json:"role"`
	Start      string   `json:"start"`
	End        string   `json:"end"`
	Highlights []string `json:"highlights"`
}

// ServeCreate handles POST /api/work.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	var payload createPayload
	if err := httpjson.Decode(r, &payload); err != nil {
		httpjson.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	entry, err := h.Store.Create(ctx, models.Work{
		Company:    payload.Company,
		Role:       payload.Role,
		Start:      payload.Start,
		End:        payload.End,
		Highlights: textclean.StripAll(payload.Highlights),
	})
	if err != nil {
		h.Log.Error("work create failed", zap.Error(err))
		httpjson.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpjson.Write(w, http.StatusOK, entry)
}

// ServeList handles GET /api/work. Entries are sorted by start
// descending (string comparison on the raw start value).
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("work list failed", zap.Error(err))
		httpjson.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpjson.Write(w, http.StatusOK, list)
}
