package profile_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nitinpratap/folio/internal/app/features/profile"
	"github.com/nitinpratap/folio/internal/testutil"
	"go.uber.org/zap"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	db := testutil.SetupTestDB(t)
	h := profile.NewHandler(db, zap.NewNop())
	srv := httptest.NewServer(profile.Routes(h))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	defer resp.Body.Close()

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, body
}

func postJSON(t *testing.T, url, payload string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(payload))
	if err != nil {
		t.Fatalf("POST %s failed: %v", url, err)
	}
	defer resp.Body.Close()

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, body
}

func TestGet_EmptyObjectWhenNoProfile(t *testing.T) {
	srv := newServer(t)

	status, body := getJSON(t, srv.URL+"/")
	if status != http.StatusOK {
		t.Fatalf("status: got %d, want 200", status)
	}
	if len(body) != 0 {
		t.Errorf("expected empty object, got %v", body)
	}
}

func TestUpsert_CreateThenMerge(t *testing.T) {
	srv := newServer(t)

	status, body := postJSON(t, srv.URL+"/", `{"name":"Nitin Pratap","bio":"Backend developer"}`)
	if status != http.StatusOK {
		t.Fatalf("create status: got %d, want 200", status)
	}
	if body["name"] != "Nitin Pratap" {
		t.Errorf("name: got %v", body["name"])
	}
	if body["bio"] != "Backend developer" {
		t.Errorf("bio: got %v", body["bio"])
	}
	firstID, _ := body["_id"].(string)
	if firstID == "" {
		t.Fatal("expected _id in response")
	}

	// A second post with a different subset of fields updates those and
	// keeps the rest.
	status, body = postJSON(t, srv.URL+"/", `{"email":"nitin@example.com"}`)
	if status != http.StatusOK {
		t.Fatalf("merge status: got %d, want 200", status)
	}
	if body["_id"] != firstID {
		t.Errorf("_id changed across upserts: %v vs %v", body["_id"], firstID)
	}
	if body["name"] != "Nitin Pratap" {
		t.Errorf("name lost on merge: got %v", body["name"])
	}
	if body["email"] != "nitin@example.com" {
		t.Errorf("email: got %v", body["email"])
	}

	status, body = getJSON(t, srv.URL+"/")
	if status != http.StatusOK {
		t.Fatalf("get status: got %d, want 200", status)
	}
	if body["bio"] != "Backend developer" {
		t.Errorf("bio after merge: got %v", body["bio"])
	}
}

func TestUpsert_StripsMarkupFromBio(t *testing.T) {
	srv := newServer(t)

	status, body := postJSON(t, srv.URL+"/", `{"bio":"hello <script>alert(1)</script>world"}`)
	if status != http.StatusOK {
		t.Fatalf("status: got %d, want 200", status)
	}
	bio, _ := body["bio"].(string)
	if strings.Contains(bio, "<script>") {
		t.Errorf("bio still contains markup: %q", bio)
	}
}

func TestUpsert_RejectsMalformedBody(t *testing.T) {
	srv := newServer(t)

	status, body := postJSON(t, srv.URL+"/", `{"name": `)
	if status != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", status)
	}
	if body["error"] == "" {
		t.Error("expected error message in body")
	}
}
