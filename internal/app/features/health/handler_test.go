package health_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nitinpratap/folio/internal/app/features/health"
	"github.com/nitinpratap/folio/internal/testutil"
	"go.uber.org/zap"
)

func TestServe_OKWhenDatabaseReachable(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := health.NewHandler(db.Client(), zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.Serve(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	var body struct {
		OK bool   `json:"ok"`
		Ts string `json:"ts"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.OK {
		t.Error("ok: got false, want true")
	}
	if body.Ts == "" {
		t.Error("expected ts in response")
	}
}
