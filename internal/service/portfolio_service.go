package service

import "github.com/webprime/internal/store"

// PortfolioService wraps portfolio item reads. Items are grouped by their
// free-text category string; there is no foreign key to services.
type PortfolioService struct {
	store *store.Store
}

// NewPortfolioService creates a PortfolioService instance.
func NewPortfolioService(st *store.Store) *PortfolioService {
	return &PortfolioService{store: st}
}

// ListAll returns every portfolio item in insertion order.
func (s *PortfolioService) ListAll() []store.Project {
	return s.store.Projects()
}

// ListVisible returns visible items, optionally filtered by category.
// An empty category means all categories.
func (s *PortfolioService) ListVisible(category string) []store.Project {
	all := s.store.Projects()
	out := make([]store.Project, 0, len(all))
	for _, p := range all {
		if p.Visibility != store.VisibilityShow {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Categories returns the distinct category labels of visible items, in
// first-seen order, for the filter bar.
func (s *PortfolioService) Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range s.store.Projects() {
		if p.Visibility != store.VisibilityShow || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}

// Remove deletes an item; unknown ids are a no-op.
func (s *PortfolioService) Remove(id string) {
	s.store.RemoveProject(id)
}
