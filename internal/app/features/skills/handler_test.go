package skills_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nitinpratap/folio/internal/app/features/skills"
	"github.com/nitinpratap/folio/internal/domain/models"
	"github.com/nitinpratap/folio/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newServer(t *testing.T) (*httptest.Server, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	h := skills.NewHandler(db, zap.NewNop())
	srv := httptest.NewServer(skills.Routes(h))
	t.Cleanup(srv.Close)
	return srv, db
}

func do(t *testing.T, method, url, payload string) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != "" {
		body = strings.NewReader(payload)
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if payload != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	return resp.StatusCode, raw
}

func TestCreate_Returns201WithDefaults(t *testing.T) {
	srv, _ := newServer(t)

	status, raw := do(t, http.MethodPost, srv.URL+"/", `{"skill_name":"Rust","level":"beginner"}`)
	if status != http.StatusCreated {
		t.Fatalf("status: got %d, want 201 (body %s)", status, raw)
	}

	var created map[string]any
	if err := json.Unmarshal(raw, &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created["skill_name"] != "Rust" {
		t.Errorf("skill_name: got %v", created["skill_name"])
	}
	if created["level"] != "beginner" {
		t.Errorf("level: got %v", created["level"])
	}
	if created["top"] != false {
		t.Errorf("top: got %v, want false", created["top"])
	}
	if created["_id"] == nil {
		t.Error("expected _id in response")
	}
}

func TestCreate_InvalidLevel(t *testing.T) {
	srv, _ := newServer(t)

	status, raw := do(t, http.MethodPost, srv.URL+"/", `{"skill_name":"Rust","level":"wizard"}`)
	if status != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want 500 (body %s)", status, raw)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["error"] == nil {
		t.Error("expected error message in body")
	}
}

func TestList_OrderAndTopListing(t *testing.T) {
	srv, db := newServer(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateSkill(ctx, "Zig", models.LevelBeginner, false)
	fx.CreateSkill(ctx, "Go", models.LevelAdvanced, true)
	fx.CreateSkill(ctx, "Ada", models.LevelIntermediate, false)

	status, raw := do(t, http.MethodGet, srv.URL+"/", "")
	if status != http.StatusOK {
		t.Fatalf("list status: got %d, want 200", status)
	}
	var list []map[string]any
	if err := json.Unmarshal(raw, &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	want := []string{"Go", "Ada", "Zig"}
	if len(list) != len(want) {
		t.Fatalf("len: got %d, want %d", len(list), len(want))
	}
	for i, w := range want {
		if list[i]["skill_name"] != w {
			t.Errorf("list[%d]: got %v, want %q", i, list[i]["skill_name"], w)
		}
	}

	status, raw = do(t, http.MethodGet, srv.URL+"/top", "")
	if status != http.StatusOK {
		t.Fatalf("top status: got %d, want 200", status)
	}
	var top []map[string]any
	if err := json.Unmarshal(raw, &top); err != nil {
		t.Fatalf("decode top list: %v", err)
	}
	if len(top) != 1 || top[0]["skill_name"] != "Go" {
		t.Errorf("top: got %v, want just Go", top)
	}
}

func TestDelete_AlwaysReportsDeleted(t *testing.T) {
	srv, db := newServer(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	sk := fx.CreateSkill(ctx, "Kubernetes", models.LevelIntermediate, false)

	status, raw := do(t, http.MethodDelete, srv.URL+"/"+sk.ID.Hex(), "")
	if status != http.StatusOK {
		t.Fatalf("delete status: got %d, want 200", status)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["message"] != "Skill deleted" {
		t.Errorf("message: got %v", body["message"])
	}

	// The same body comes back for a repeat delete and for a malformed id.
	status, raw = do(t, http.MethodDelete, srv.URL+"/"+sk.ID.Hex(), "")
	if status != http.StatusOK {
		t.Fatalf("repeat delete status: got %d, want 200", status)
	}
	status, raw = do(t, http.MethodDelete, srv.URL+"/not-an-id", "")
	if status != http.StatusOK {
		t.Fatalf("malformed id delete status: got %d, want 200 (body %s)", status, raw)
	}

	// And the skill is really gone.
	status, raw = do(t, http.MethodGet, srv.URL+"/", "")
	if status != http.StatusOK {
		t.Fatalf("list status: got %d, want 200", status)
	}
	var list []map[string]any
	if err := json.Unmarshal(raw, &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("skill still listed after delete: %v", list)
	}
}
