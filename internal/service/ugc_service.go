package service

import "github.com/webprime/internal/store"

// UgcAdService wraps UGC ad asset reads.
type UgcAdService struct {
	store *store.Store
}

// NewUgcAdService creates a UgcAdService instance.
func NewUgcAdService(st *store.Store) *UgcAdService {
	return &UgcAdService{store: st}
}

// ListAll returns every ad in insertion order.
func (s *UgcAdService) ListAll() []store.UgcAd {
	return s.store.UgcAds()
}

// ListPublic returns published, visible ads in insertion order.
func (s *UgcAdService) ListPublic() []store.UgcAd {
	all := s.store.UgcAds()
	out := make([]store.UgcAd, 0, len(all))
	for _, u := range all {
		if u.Status == store.PostStatusPublished && u.Visibility == store.VisibilityShow {
			out = append(out, u)
		}
	}
	return out
}

// ListFeatured returns the public ads flagged for the home page strip.
func (s *UgcAdService) ListFeatured() []store.UgcAd {
	var out []store.UgcAd
	for _, u := range s.ListPublic() {
		if u.IsFeatured {
			out = append(out, u)
		}
	}
	return out
}

// Remove deletes an ad; unknown ids are a no-op.
func (s *UgcAdService) Remove(id string) {
	s.store.RemoveUgcAd(id)
}
