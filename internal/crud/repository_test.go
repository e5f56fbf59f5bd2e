package crud

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/dinaskp/perikanan-backend/internal/domain"
)

var komoditasConfig = EntityConfig{
	Name:          "Komoditas",
	Slug:          "komoditas",
	SearchColumns: []string{"nama_komoditas", "kode_komoditas"},
	FilterColumns: map[string]string{
		"jenis": "jenis",
	},
	DefaultOrder:     "kode_komoditas ASC",
	NaturalKeyColumn: "kode_komoditas",
	NaturalKeyLabel:  "Kode Komoditas",
}

// setupTestDB creates an in-memory SQLite database with the komoditas table.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Komoditas{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestRepo(t *testing.T) *Repository[domain.Komoditas] {
	t.Helper()
	return NewRepository[domain.Komoditas](setupTestDB(t), komoditasConfig)
}

func TestCreateAndGetByID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	row := &domain.Komoditas{NamaKomoditas: "Ikan Tuna", KodeKomoditas: "KOM-001", Jenis: "ikan"}
	if err := repo.Create(ctx, row); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if row.ID == 0 {
		t.Fatal("expected non-zero ID after Create")
	}

	got, err := repo.GetByID(ctx, row.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.NamaKomoditas != "Ikan Tuna" || got.KodeKomoditas != "KOM-001" {
		t.Errorf("got %+v; want Ikan Tuna / KOM-001", got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetByID(context.Background(), 999)
	if !domain.IsNotFound(err) {
		t.Errorf("expected not-found, got %v", err)
	}
}

func TestGetByNaturalKey(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	row := &domain.Komoditas{NamaKomoditas: "Udang Vaname", KodeKomoditas: "KOM-002"}
	if err := repo.Create(ctx, row); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByNaturalKey(ctx, "KOM-002")
	if err != nil {
		t.Fatalf("GetByNaturalKey: %v", err)
	}
	if got.ID != row.ID {
		t.Errorf("got id %d; want %d", got.ID, row.ID)
	}

	if _, err := repo.GetByNaturalKey(ctx, "KOM-404"); !domain.IsNotFound(err) {
		t.Errorf("expected not-found for unknown key, got %v", err)
	}
}

func TestCreate_DuplicateNaturalKey(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Create(ctx, &domain.Komoditas{NamaKomoditas: "A", KodeKomoditas: "DUP-1"}); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	err := repo.Create(ctx, &domain.Komoditas{NamaKomoditas: "B", KodeKomoditas: "DUP-1"})
	if !domain.IsAlreadyExists(err) {
		t.Fatalf("expected already-exists, got %v", err)
	}

	var appErr *domain.AppError
	if !errors.As(err, &appErr) || appErr.Message != "Kode Komoditas sudah terdaftar" {
		t.Errorf("got %v; want the friendly duplicate message", err)
	}
}

func TestUpdate_PartialChanges(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	row := &domain.Komoditas{NamaKomoditas: "Bandeng", KodeKomoditas: "KOM-003", Jenis: "ikan"}
	if err := repo.Create(ctx, row); err != nil {
		t.Fatalf("Create: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	if err := repo.Update(ctx, row.ID, map[string]any{"jenis": "budidaya"}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.GetByID(ctx, row.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Jenis != "budidaya" {
		t.Errorf("got jenis %q; want budidaya", got.Jenis)
	}
	if got.NamaKomoditas != "Bandeng" {
		t.Errorf("untouched column changed: got %q", got.NamaKomoditas)
	}
	if !got.UpdatedAt.After(row.UpdatedAt) {
		t.Errorf("updated_at not advanced: before %v, after %v", row.UpdatedAt, got.UpdatedAt)
	}
}

func TestUpdate_UnknownColumnIsInternal(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	row := &domain.Komoditas{NamaKomoditas: "Kakap", KodeKomoditas: "KOM-010", Jenis: "ikan"}
	if err := repo.Create(ctx, row); err != nil {
		t.Fatalf("Create: %v", err)
	}

	err := repo.Update(ctx, row.ID, map[string]any{"kolom_tidak_ada": "x"})
	if !domain.IsInternal(err) {
		t.Errorf("expected internal error for unknown column, got %v", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.Update(context.Background(), 999, map[string]any{"jenis": "x"})
	if !domain.IsNotFound(err) {
		t.Errorf("expected not-found, got %v", err)
	}
}

func TestUpdate_EmptyChangesIsNoop(t *testing.T) {
	repo := newTestRepo(t)

	if err := repo.Update(context.Background(), 999, map[string]any{}); err != nil {
		t.Errorf("empty change set must be a no-op, got %v", err)
	}
}

func TestDelete_ReturnsRemovedRow(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	row := &domain.Komoditas{NamaKomoditas: "Kerapu", KodeKomoditas: "KOM-004"}
	if err := repo.Create(ctx, row); err != nil {
		t.Fatalf("Create: %v", err)
	}

	removed, err := repo.Delete(ctx, row.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if removed.KodeKomoditas != "KOM-004" {
		t.Errorf("got removed row %+v; want KOM-004", removed)
	}

	if _, err := repo.GetByID(ctx, row.ID); !domain.IsNotFound(err) {
		t.Errorf("row still present after Delete: %v", err)
	}

	// Deleting again reports not-found rather than an internal error.
	if _, err := repo.Delete(ctx, row.ID); !domain.IsNotFound(err) {
		t.Errorf("expected not-found on second delete, got %v", err)
	}
}

func TestList_PaginationMetadata(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		row := &domain.Komoditas{
			NamaKomoditas: fmt.Sprintf("Komoditas %02d", i),
			KodeKomoditas: fmt.Sprintf("KOM-%03d", i),
		}
		if err := repo.Create(ctx, row); err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}

	res, err := repo.List(ctx, domain.PageRequest{Page: 2, Limit: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if len(res.Data) != 5 {
		t.Errorf("got %d rows on page 2; want 5", len(res.Data))
	}
	if res.Pagination.Total != 15 {
		t.Errorf("got total %d; want 15", res.Pagination.Total)
	}
	if res.Pagination.TotalPages != 2 {
		t.Errorf("got %d pages; want 2", res.Pagination.TotalPages)
	}
	if res.Pagination.Page != 2 || res.Pagination.Limit != 10 {
		t.Errorf("echoed page/limit wrong: %+v", res.Pagination)
	}
}

func TestList_SearchAndFilterShareTranslation(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	seed := []domain.Komoditas{
		{NamaKomoditas: "Ikan Tuna", KodeKomoditas: "T-1", Jenis: "ikan"},
		{NamaKomoditas: "Ikan Tongkol", KodeKomoditas: "T-2", Jenis: "ikan"},
		{NamaKomoditas: "Udang Vaname", KodeKomoditas: "U-1", Jenis: "udang"},
	}
	for i := range seed {
		if err := repo.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	res, err := repo.List(ctx, domain.PageRequest{
		Page:   1,
		Limit:  10,
		Search: "ikan",
		Filter: map[string]string{"jenis": "ikan", "unknown": "ignored"},
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if len(res.Data) != 2 {
		t.Errorf("got %d rows; want 2", len(res.Data))
	}
	// The count query runs the same predicates as the data query.
	if res.Pagination.Total != int64(len(res.Data)) {
		t.Errorf("total %d disagrees with data length %d", res.Pagination.Total, len(res.Data))
	}
}

func TestList_DefaultOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, kode := range []string{"C-3", "A-1", "B-2"} {
		if err := repo.Create(ctx, &domain.Komoditas{NamaKomoditas: "X", KodeKomoditas: kode}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	res, err := repo.List(ctx, domain.PageRequest{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	want := []string{"A-1", "B-2", "C-3"}
	for i, row := range res.Data {
		if row.KodeKomoditas != want[i] {
			t.Fatalf("row %d: got %q; want %q", i, row.KodeKomoditas, want[i])
		}
	}
}
