package store

import (
	"sort"
	"sync"
)

// Store owns every content collection for one server process. All state is
// in-memory and resets on restart. Writes must go through its methods so
// the ordering and id-uniqueness invariants stay centrally enforced.
type Store struct {
	mu          sync.RWMutex
	services    []Service
	posts       []BlogPost
	projects    []Project
	ugcAds      []UgcAd
	leads       []Lead
	siteContent SiteContent
}

// New returns an empty store. Call Seed to install the launch content.
func New() *Store {
	return &Store{}
}

// --- services ---

// Services returns deep copies of all services in ascending sort order.
func (s *Store) Services() []Service {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Service, len(s.services))
	for i, svc := range s.services {
		out[i] = svc.Clone()
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out
}

// ServiceByID returns a deep copy of the service with the given id.
func (s *Store) ServiceByID(id string) (Service, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, svc := range s.services {
		if svc.ID == id {
			return svc.Clone(), true
		}
	}
	return Service{}, false
}

// ServiceBySlug returns a deep copy of the service with the given slug.
func (s *Store) ServiceBySlug(slug string) (Service, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, svc := range s.services {
		if svc.Slug == slug {
			return svc.Clone(), true
		}
	}
	return Service{}, false
}

// ServiceCount reports how many services exist, visible or not.
func (s *Store) ServiceCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.services)
}

// InsertService appends a service and renormalizes sort order to a dense
// 1..N sequence.
func (s *Store) InsertService(svc Service) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services = append(s.services, svc.Clone())
	s.normalizeServiceOrderLocked()
}

// ReplaceService overwrites the stored service with the same id. It
// reports false when the id is unknown.
func (s *Store) ReplaceService(svc Service) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.services {
		if s.services[i].ID == svc.ID {
			s.services[i] = svc.Clone()
			s.normalizeServiceOrderLocked()
			return true
		}
	}
	return false
}

// RemoveService deletes by id and renormalizes sort order. Removing an
// unknown id is a no-op and reports false.
func (s *Store) RemoveService(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.services {
		if s.services[i].ID == id {
			s.services = append(s.services[:i], s.services[i+1:]...)
			s.normalizeServiceOrderLocked()
			return true
		}
	}
	return false
}

// SwapServiceOrder moves the service one position in display order.
// delta is -1 for up, +1 for down. Moves past either boundary are no-ops;
// the result is always a dense 1..N sequence.
func (s *Store) SwapServiceOrder(id string, delta int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	ordered := make([]*Service, len(s.services))
	for i := range s.services {
		ordered[i] = &s.services[i]
	}
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].SortOrder < ordered[j].SortOrder })

	pos := -1
	for i, svc := range ordered {
		if svc.ID == id {
			pos = i
			break
		}
	}
	if pos < 0 {
		return false
	}
	target := pos + delta
	if target < 0 || target >= len(ordered) {
		return false
	}
	ordered[pos].SortOrder, ordered[target].SortOrder = ordered[target].SortOrder, ordered[pos].SortOrder
	s.normalizeServiceOrderLocked()
	return true
}

// normalizeServiceOrderLocked reassigns SortOrder to 1..N following the
// current display order. Callers must hold the write lock.
func (s *Store) normalizeServiceOrderLocked() {
	ordered := make([]*Service, len(s.services))
	for i := range s.services {
		ordered[i] = &s.services[i]
	}
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].SortOrder < ordered[j].SortOrder })
	for i, svc := range ordered {
		svc.SortOrder = i + 1
	}
}

// --- blog posts ---

// BlogPosts returns copies of all posts in insertion order.
func (s *Store) BlogPosts() []BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]BlogPost(nil), s.posts...)
}

// BlogPostByID returns the post with the given id.
func (s *Store) BlogPostByID(id string) (BlogPost, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.posts {
		if p.ID == id {
			return p, true
		}
	}
	return BlogPost{}, false
}

// BlogPostBySlug returns the post with the given slug.
func (s *Store) BlogPostBySlug(slug string) (BlogPost, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return BlogPost{}, false
}

// PrependBlogPost inserts a post at the head so registries list newest
// first.
func (s *Store) PrependBlogPost(p BlogPost) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append([]BlogPost{p}, s.posts...)
}

// ReplaceBlogPost overwrites the stored post with the same id.
func (s *Store) ReplaceBlogPost(p BlogPost) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == p.ID {
			s.posts[i] = p
			return true
		}
	}
	return false
}

// RemoveBlogPost deletes by id; unknown ids are a no-op.
func (s *Store) RemoveBlogPost(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return true
		}
	}
	return false
}

// --- projects ---

// Projects returns deep copies of all portfolio items in insertion order.
func (s *Store) Projects() []Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Project, len(s.projects))
	for i, p := range s.projects {
		out[i] = p.Clone()
	}
	return out
}

// ProjectByID returns a deep copy of the project with the given id.
func (s *Store) ProjectByID(id string) (Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.projects {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return Project{}, false
}

// AppendProject adds a portfolio item at the tail.
func (s *Store) AppendProject(p Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = append(s.projects, p.Clone())
}

// ReplaceProject overwrites the stored project with the same id.
func (s *Store) ReplaceProject(p Project) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.projects {
		if s.projects[i].ID == p.ID {
			s.projects[i] = p.Clone()
			return true
		}
	}
	return false
}

// RemoveProject deletes by id; unknown ids are a no-op.
func (s *Store) RemoveProject(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			return true
		}
	}
	return false
}

// --- ugc ads ---

// UgcAds returns copies of all ads in insertion order.
func (s *Store) UgcAds() []UgcAd {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]UgcAd(nil), s.ugcAds...)
}

// UgcAdByID returns the ad with the given id.
func (s *Store) UgcAdByID(id string) (UgcAd, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.ugcAds {
		if u.ID == id {
			return u, true
		}
	}
	return UgcAd{}, false
}

// AppendUgcAd adds an ad at the tail.
func (s *Store) AppendUgcAd(u UgcAd) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ugcAds = append(s.ugcAds, u)
}

// ReplaceUgcAd overwrites the stored ad with the same id.
func (s *Store) ReplaceUgcAd(u UgcAd) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.ugcAds {
		if s.ugcAds[i].ID == u.ID {
			s.ugcAds[i] = u
			return true
		}
	}
	return false
}

// RemoveUgcAd deletes by id; unknown ids are a no-op.
func (s *Store) RemoveUgcAd(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.ugcAds {
		if s.ugcAds[i].ID == id {
			s.ugcAds = append(s.ugcAds[:i], s.ugcAds[i+1:]...)
			return true
		}
	}
	return false
}

// --- leads ---

// PrependLead records an inquiry at the head of the admin inbox.
func (s *Store) PrependLead(l Lead) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads = append([]Lead{l}, s.leads...)
}

// Leads returns copies of all recorded inquiries, newest first.
func (s *Store) Leads() []Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Lead(nil), s.leads...)
}

// LeadCount reports how many inquiries have been recorded.
func (s *Store) LeadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.leads)
}

// --- site content ---

// SiteContent returns a deep copy of the singleton document.
func (s *Store) SiteContent() SiteContent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.siteContent.Clone()
}

// UpdateSiteContent applies fn to the singleton under the write lock.
func (s *Store) UpdateSiteContent(fn func(*SiteContent)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.siteContent)
}

// HasID reports whether any record in any collection uses the id. Commit
// relies on this to keep fresh ids unique across the whole store.
func (s *Store) HasID(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, svc := range s.services {
		if svc.ID == id {
			return true
		}
	}
	for _, p := range s.posts {
		if p.ID == id {
			return true
		}
	}
	for _, p := range s.projects {
		if p.ID == id {
			return true
		}
	}
	for _, u := range s.ugcAds {
		if u.ID == id {
			return true
		}
	}
	for _, l := range s.leads {
		if l.ID == id {
			return true
		}
	}
	return false
}
