package service

import (
	"testing"

	"github.com/webprime/internal/store"
)

func TestListVisibleByCategory(t *testing.T) {
	st := seededStore(t)
	pf := NewPortfolioService(st)

	all := pf.ListVisible("")
	if len(all) != 3 {
		t.Fatalf("visible projects = %d, want 3", len(all))
	}

	web := pf.ListVisible("WEB DESIGN")
	if len(web) != 1 || web[0].ID != "p1" {
		t.Fatalf("category filter returned %+v", web)
	}

	if got := pf.ListVisible("NOPE"); len(got) != 0 {
		t.Fatalf("unknown category should match nothing, got %d", len(got))
	}
}

func TestCategoriesFirstSeenOrder(t *testing.T) {
	st := seededStore(t)
	st.AppendProject(store.Project{ID: "p4", Name: "X", Category: "WEB DESIGN", Visibility: store.VisibilityShow})

	got := NewPortfolioService(st).Categories()
	want := []string{"WEB DESIGN", "UGC ADS", "QR SOLUTIONS"}
	if len(got) != len(want) {
		t.Fatalf("categories = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("categories = %v, want %v", got, want)
		}
	}
}

func TestCategoriesSkipHidden(t *testing.T) {
	st := seededStore(t)
	p, _ := st.ProjectByID("p2")
	p.Visibility = store.VisibilityHide
	st.ReplaceProject(p)

	for _, c := range NewPortfolioService(st).Categories() {
		if c == "UGC ADS" {
			t.Fatal("category of a hidden-only project leaked into the filter bar")
		}
	}
}
