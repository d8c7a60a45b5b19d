package service

import "github.com/webprime/internal/store"

// ServiceCatalogService wraps read and maintenance operations over the
// agency's service offerings. Display order always follows ascending
// SortOrder, which the store keeps dense.
type ServiceCatalogService struct {
	store *store.Store
}

// NewServiceCatalogService creates a ServiceCatalogService instance.
func NewServiceCatalogService(st *store.Store) *ServiceCatalogService {
	return &ServiceCatalogService{store: st}
}

// ListAll returns every service in display order, hidden ones included.
// This is the admin registry view.
func (s *ServiceCatalogService) ListAll() []store.Service {
	return s.store.Services()
}

// ListVisible returns the services public pages render, in display order.
func (s *ServiceCatalogService) ListVisible() []store.Service {
	all := s.store.Services()
	out := make([]store.Service, 0, len(all))
	for _, svc := range all {
		if svc.Visibility == store.VisibilityShow {
			out = append(out, svc)
		}
	}
	return out
}

// Get fetches a service by id.
func (s *ServiceCatalogService) Get(id string) (store.Service, error) {
	svc, ok := s.store.ServiceByID(id)
	if !ok {
		return store.Service{}, ErrRecordNotFound
	}
	return svc, nil
}

// GetBySlug fetches a service by its landing page slug.
func (s *ServiceCatalogService) GetBySlug(slug string) (store.Service, error) {
	svc, ok := s.store.ServiceBySlug(slug)
	if !ok {
		return store.Service{}, ErrRecordNotFound
	}
	return svc, nil
}

// Remove deletes a service. Unknown ids are a no-op, not an error:
// deletion is idempotent.
func (s *ServiceCatalogService) Remove(id string) {
	s.store.RemoveService(id)
}

// Reorder swaps the service with its neighbor in display order. Moving
// the first record up or the last down is a harmless no-op. Afterwards
// sort order is a dense 1..N sequence again.
func (s *ServiceCatalogService) Reorder(id string, dir Direction) {
	delta := 1
	if dir == DirectionUp {
		delta = -1
	}
	s.store.SwapServiceOrder(id, delta)
}
