package service

import "github.com/webprime/internal/store"

// BlogService wraps blog post reads for the public site and the admin
// registry. Insertion order is preserved; new posts land at the head.
type BlogService struct {
	store *store.Store
}

// NewBlogService creates a BlogService instance.
func NewBlogService(st *store.Store) *BlogService {
	return &BlogService{store: st}
}

// ListAll returns every post, drafts and hidden ones included.
func (s *BlogService) ListAll() []store.BlogPost {
	return s.store.BlogPosts()
}

// ListPublic returns published, visible posts in insertion order.
func (s *BlogService) ListPublic() []store.BlogPost {
	all := s.store.BlogPosts()
	out := make([]store.BlogPost, 0, len(all))
	for _, p := range all {
		if p.Status == store.PostStatusPublished && p.Visibility == store.VisibilityShow {
			out = append(out, p)
		}
	}
	return out
}

// GetBySlug fetches a post by slug. Unpublished and hidden posts are not
// served publicly, so they report not found here.
func (s *BlogService) GetBySlug(slug string) (store.BlogPost, error) {
	p, ok := s.store.BlogPostBySlug(slug)
	if !ok || p.Status != store.PostStatusPublished || p.Visibility != store.VisibilityShow {
		return store.BlogPost{}, ErrRecordNotFound
	}
	return p, nil
}

// Remove deletes a post; unknown ids are a no-op.
func (s *BlogService) Remove(id string) {
	s.store.RemoveBlogPost(id)
}
