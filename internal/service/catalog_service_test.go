package service

import (
	"errors"
	"testing"

	"github.com/webprime/internal/store"
)

func orderOf(list []store.Service) []string {
	out := make([]string, len(list))
	for i, svc := range list {
		out[i] = svc.ID
	}
	return out
}

func assertDenseOrder(t *testing.T, list []store.Service) {
	t.Helper()
	for i, svc := range list {
		if svc.SortOrder != i+1 {
			t.Fatalf("sort order not dense: position %d has SortOrder %d", i, svc.SortOrder)
		}
	}
}

func TestReorderSwapsNeighbors(t *testing.T) {
	st := seededStore(t)
	cat := NewServiceCatalogService(st)

	before := orderOf(cat.ListAll())
	cat.Reorder(before[1], DirectionUp)

	after := orderOf(cat.ListAll())
	if after[0] != before[1] || after[1] != before[0] {
		t.Fatalf("order after move = %v, want first two of %v swapped", after, before)
	}
	assertDenseOrder(t, cat.ListAll())
}

func TestReorderBoundariesAreNoOps(t *testing.T) {
	st := seededStore(t)
	cat := NewServiceCatalogService(st)

	before := orderOf(cat.ListAll())
	cat.Reorder(before[0], DirectionUp)
	cat.Reorder(before[len(before)-1], DirectionDown)
	cat.Reorder("ghost", DirectionUp)

	after := orderOf(cat.ListAll())
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("boundary moves must not change order: %v vs %v", before, after)
		}
	}
	assertDenseOrder(t, cat.ListAll())
}

func TestRemoveRenormalizesOrder(t *testing.T) {
	st := seededStore(t)
	cat := NewServiceCatalogService(st)

	cat.Remove("service-ugc")
	list := cat.ListAll()
	if len(list) != 2 {
		t.Fatalf("services after remove = %d, want 2", len(list))
	}
	assertDenseOrder(t, list)

	// Deleting again is an idempotent no-op.
	cat.Remove("service-ugc")
	if len(cat.ListAll()) != 2 {
		t.Fatal("second remove must be a no-op")
	}
}

func TestListVisibleFiltersHidden(t *testing.T) {
	st := seededStore(t)
	cat := NewServiceCatalogService(st)

	svc, _ := st.ServiceByID("service-qr")
	svc.Visibility = store.VisibilityHide
	st.ReplaceService(svc)

	for _, s := range cat.ListVisible() {
		if s.ID == "service-qr" {
			t.Fatal("hidden service leaked into the public list")
		}
	}
	if len(cat.ListAll()) != 3 {
		t.Fatal("admin list must still include hidden services")
	}
}

func TestGetBySlug(t *testing.T) {
	cat := NewServiceCatalogService(seededStore(t))

	svc, err := cat.GetBySlug("ugc-ads")
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}
	if svc.ID != "service-ugc" {
		t.Fatalf("GetBySlug returned %s", svc.ID)
	}
	if _, err := cat.GetBySlug("missing"); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("GetBySlug(missing) = %v, want ErrRecordNotFound", err)
	}
}
