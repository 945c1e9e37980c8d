package httpjson_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nitinpratap/folio/internal/app/system/httpjson"
)

func TestWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	httpjson.Write(rec, http.StatusCreated, map[string]string{"skill_name": "Go"})

	if rec.Code != http.StatusCreated {
		t.Errorf("status: got %d, want 201", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q", ct)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"skill_name":"Go"}` {
		t.Errorf("body: got %s", got)
	}
}

func TestWriteNull(t *testing.T) {
	rec := httptest.NewRecorder()
	httpjson.WriteNull(rec)

	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "null" {
		t.Errorf("body: got %s, want null", got)
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	httpjson.WriteError(rec, http.StatusBadRequest, "invalid JSON body")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"error":"invalid JSON body"}` {
		t.Errorf("body: got %s", got)
	}
}

func TestDecode_RejectsMalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name": `))
	var v struct {
		Name string `json:"name"`
	}
	if err := httpjson.Decode(req, &v); err == nil {
		t.Error("expected error for truncated JSON")
	}
}
