package service

import (
	"errors"
	"testing"

	"github.com/webprime/internal/store"
)

func TestListPublicFiltersDraftsAndHidden(t *testing.T) {
	st := seededStore(t)
	st.PrependBlogPost(store.BlogPost{ID: "d1", Title: "Draft", Slug: "draft", Status: store.PostStatusDraft, Visibility: store.VisibilityShow})
	st.PrependBlogPost(store.BlogPost{ID: "h1", Title: "Hidden", Slug: "hidden", Status: store.PostStatusPublished, Visibility: store.VisibilityHide})

	blog := NewBlogService(st)
	public := blog.ListPublic()
	if len(public) != 1 {
		t.Fatalf("public posts = %d, want 1", len(public))
	}
	if public[0].ID != "1" {
		t.Fatalf("public post = %s, want the seeded one", public[0].ID)
	}
	if len(blog.ListAll()) != 3 {
		t.Fatal("admin list must include drafts and hidden posts")
	}
}

func TestGetBySlugHidesUnpublished(t *testing.T) {
	st := seededStore(t)
	st.PrependBlogPost(store.BlogPost{ID: "d1", Title: "Draft", Slug: "draft", Status: store.PostStatusDraft, Visibility: store.VisibilityShow})

	blog := NewBlogService(st)
	if _, err := blog.GetBySlug("ugc-wins-2025"); err != nil {
		t.Fatalf("published post should resolve: %v", err)
	}
	if _, err := blog.GetBySlug("draft"); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("draft slug = %v, want ErrRecordNotFound", err)
	}
}

func TestBlogRemoveIsIdempotent(t *testing.T) {
	st := seededStore(t)
	blog := NewBlogService(st)

	blog.Remove("1")
	blog.Remove("1")
	if len(blog.ListAll()) != 0 {
		t.Fatal("post should be gone after remove")
	}
}
