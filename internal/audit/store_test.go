package audit

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dinaskp/perikanan-backend/internal/domain"
)

func seedEntries(t *testing.T, store Store, n int) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < n; i++ {
		module := "Komoditas"
		action := domain.ActionCreate
		if i%2 == 1 {
			module = "Kelompok Nelayan"
			action = domain.ActionUpdate
		}
		entry := &domain.ActivityLog{
			UserID:      "1",
			UserName:    "petugas",
			Action:      action,
			Module:      module,
			Description: fmt.Sprintf("entri %d", i),
			Status:      domain.StatusSuccess,
			CreatedAt:   time.Now().Add(time.Duration(i) * time.Second),
		}
		if err := store.Append(ctx, entry); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
}

func TestStoreList_NewestFirst(t *testing.T) {
	store := NewStore(setupTestDB(t))
	seedEntries(t, store, 4)

	res, err := store.List(context.Background(), domain.PageRequest{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(res.Data) != 4 {
		t.Fatalf("got %d rows; want 4", len(res.Data))
	}
	for i := 1; i < len(res.Data); i++ {
		if res.Data[i].CreatedAt.After(res.Data[i-1].CreatedAt) {
			t.Fatalf("rows not ordered newest first at index %d", i)
		}
	}
}

func TestStoreList_FilterByModuleAndAction(t *testing.T) {
	store := NewStore(setupTestDB(t))
	seedEntries(t, store, 6)

	res, err := store.List(context.Background(), domain.PageRequest{
		Page:   1,
		Limit:  10,
		Filter: map[string]string{"module": "Komoditas", "action": domain.ActionCreate},
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(res.Data) != 3 {
		t.Fatalf("got %d rows; want 3", len(res.Data))
	}
	for _, row := range res.Data {
		if row.Module != "Komoditas" || row.Action != domain.ActionCreate {
			t.Errorf("unexpected row %+v", row)
		}
	}
	if res.Pagination.Total != 3 {
		t.Errorf("got total %d; want 3", res.Pagination.Total)
	}
}

func TestStoreList_SearchDescription(t *testing.T) {
	store := NewStore(setupTestDB(t))
	seedEntries(t, store, 5)

	res, err := store.List(context.Background(), domain.PageRequest{
		Page:   1,
		Limit:  10,
		Search: "entri 3",
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(res.Data) != 1 || res.Data[0].Description != "entri 3" {
		t.Errorf("got %v; want only entri 3", res.Data)
	}
}
