package workstore_test

import (
	"testing"

	workstore "github.com/nitinpratap/folio/internal/app/store/work"
	"github.com/nitinpratap/folio/internal/domain/models"
	"github.com/nitinpratap/folio/internal/testutil"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := workstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Work{
		Company:    "Acme Corp",
		Role:       "Backend Engineer",
		Start:      "2024-01",
		End:        "2024-12",
		Highlights: []string{"Built billing pipeline"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID.IsZero() {
		t.Error("expected generated id")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
	if created.Company != "Acme Corp" || created.Role != "Backend Engineer" {
		t.Errorf("unexpected fields: %+v", created)
	}
}

func TestStore_Create_AllFieldsOptional(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := workstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Work{})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Highlights == nil {
		t.Error("Highlights should be an empty slice, not nil")
	}
}

func TestStore_List_StartDescending(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := workstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	seed := []models.Work{
		{Company: "first-job", Start: "2021-03"},
		{Company: "current-job", Start: "2025-06", End: "Present"},
		{Company: "second-job", Start: "2023-09"},
	}
	for _, w := range seed {
		if _, err := store.Create(ctx, w); err != nil {
			t.Fatalf("Create(%q) failed: %v", w.Company, err)
		}
	}

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	want := []string{"current-job", "second-job", "first-job"}
	if len(list) != len(want) {
		t.Fatalf("len: got %d, want %d", len(list), len(want))
	}
	for i, w := range want {
		if list[i].Company != w {
			t.Errorf("list[%d]: got %q, want %q", i, list[i].Company, w)
		}
	}
}

func TestStore_List_PresentSortsAboveNumericMonths(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := workstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// "Present" as a start token sorts above any "20xx-xx" string in a
	// descending string sort because 'P' > '2'.
	seed := []models.Work{
		{Company: "dated", Start: "2025-06"},
		{Company: "open-ended", Start: "Present"},
	}
	for _, w := range seed {
		if _, err := store.Create(ctx, w); err != nil {
			t.Fatalf("Create(%q) failed: %v", w.Company, err)
		}
	}

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len: got %d, want 2", len(list))
	}
	if list[0].Company != "open-ended" {
		t.Errorf("list[0]: got %q, want %q", list[0].Company, "open-ended")
	}
}
