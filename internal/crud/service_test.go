package crud

import (
	"context"
	"errors"
	"testing"

	"github.com/dinaskp/perikanan-backend/internal/domain"
)

type fakeInvalidator struct {
	prefixes []string
}

func (f *fakeInvalidator) InvalidatePrefix(_ context.Context, prefix string) {
	f.prefixes = append(f.prefixes, prefix)
}

func newTestService(t *testing.T, inv Invalidator) *Service[domain.Komoditas] {
	t.Helper()
	repo := newTestRepo(t)
	defaults := func(k *domain.Komoditas) {
		if k.IsActive == nil {
			active := true
			k.IsActive = &active
		}
	}
	naturalKey := func(k *domain.Komoditas) string { return k.KodeKomoditas }
	return NewService(repo, komoditasConfig, inv, defaults, naturalKey)
}

func TestServiceCreate_AppliesDefaults(t *testing.T) {
	svc := newTestService(t, nil)

	created, err := svc.Create(context.Background(), &domain.Komoditas{
		NamaKomoditas: "Ikan Tuna",
		KodeKomoditas: "KOM-001",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.IsActive == nil || !*created.IsActive {
		t.Error("expected is_active default true")
	}
}

func TestServiceCreate_DuplicatePreCheckMessage(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	if _, err := svc.Create(ctx, &domain.Komoditas{NamaKomoditas: "A", KodeKomoditas: "DUP-1"}); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	_, err := svc.Create(ctx, &domain.Komoditas{NamaKomoditas: "B", KodeKomoditas: "DUP-1"})
	if !domain.IsAlreadyExists(err) {
		t.Fatalf("expected already-exists, got %v", err)
	}
	var appErr *domain.AppError
	if !errors.As(err, &appErr) || appErr.Message != "Kode Komoditas sudah terdaftar" {
		t.Errorf("got %v; want friendly duplicate message", err)
	}
}

func TestServiceUpdate_RejectsTakenNaturalKey(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	a, err := svc.Create(ctx, &domain.Komoditas{NamaKomoditas: "A", KodeKomoditas: "K-1"})
	if err != nil {
		t.Fatalf("Create A: %v", err)
	}
	if _, err := svc.Create(ctx, &domain.Komoditas{NamaKomoditas: "B", KodeKomoditas: "K-2"}); err != nil {
		t.Fatalf("Create B: %v", err)
	}

	_, err = svc.Update(ctx, a.ID, map[string]any{"kode_komoditas": "K-2"})
	if !domain.IsAlreadyExists(err) {
		t.Errorf("expected already-exists when moving onto a taken key, got %v", err)
	}
}

func TestServiceUpdate_KeepingOwnNaturalKeyIsAllowed(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	a, err := svc.Create(ctx, &domain.Komoditas{NamaKomoditas: "A", KodeKomoditas: "K-1"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(ctx, a.ID, map[string]any{
		"kode_komoditas": "K-1",
		"nama_komoditas": "A Baru",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.NamaKomoditas != "A Baru" {
		t.Errorf("got %q; want A Baru", updated.NamaKomoditas)
	}
}

func TestServiceUpdate_NotFound(t *testing.T) {
	svc := newTestService(t, nil)

	_, err := svc.Update(context.Background(), 999, map[string]any{"jenis": "x"})
	if !domain.IsNotFound(err) {
		t.Errorf("expected not-found, got %v", err)
	}
}

func TestService_InvalidatesCacheOnEveryMutation(t *testing.T) {
	inv := &fakeInvalidator{}
	svc := newTestService(t, inv)
	ctx := context.Background()

	row, err := svc.Create(ctx, &domain.Komoditas{NamaKomoditas: "A", KodeKomoditas: "K-1"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Update(ctx, row.ID, map[string]any{"jenis": "ikan"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if _, err := svc.Delete(ctx, row.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if len(inv.prefixes) != 3 {
		t.Fatalf("got %d invalidations; want 3", len(inv.prefixes))
	}
	for _, p := range inv.prefixes {
		if p != "perikanan:komoditas:" {
			t.Errorf("got prefix %q; want perikanan:komoditas:", p)
		}
	}
}

func TestService_ReadsDoNotInvalidate(t *testing.T) {
	inv := &fakeInvalidator{}
	svc := newTestService(t, inv)
	ctx := context.Background()

	row, err := svc.Create(ctx, &domain.Komoditas{NamaKomoditas: "A", KodeKomoditas: "K-1"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	invalidations := len(inv.prefixes)

	if _, err := svc.Get(ctx, row.ID); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if _, err := svc.List(ctx, domain.PageRequest{Page: 1, Limit: 10}); err != nil {
		t.Fatalf("List: %v", err)
	}

	if len(inv.prefixes) != invalidations {
		t.Error("reads must not invalidate the cache")
	}
}
