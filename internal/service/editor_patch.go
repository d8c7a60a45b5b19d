package service

import (
	"strings"

	"github.com/webprime/internal/store"
)

// Patch structs carry partial updates into the active buffer. Nil fields
// are left untouched. Freeform text fields accept any string.

// ServicePatch is a partial update for a service draft.
type ServicePatch struct {
	Name             *string           `json:"name"`
	Slug             *string           `json:"slug"`
	ShortDescription *string           `json:"shortDescription"`
	FullDescription  *string           `json:"fullDescription"`
	Icon             *store.Icon       `json:"icon"`
	Image            *string           `json:"image"`
	Visibility       *store.Visibility `json:"visibility"`
	IsFeatured       *bool             `json:"isFeatured"`
}

// PatchService merges a partial update into the active service draft.
// Editing the name re-derives the slug until the slug field is patched
// directly; after that the manual slug wins for the rest of the session.
func (e *EditorService) PatchService(p ServicePatch) (EditorState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	draft, err := e.serviceDraftLocked()
	if err != nil {
		return EditorState{}, err
	}
	if p.Slug != nil {
		draft.Slug = strings.TrimSpace(*p.Slug)
		e.slugTouched = true
	}
	if p.Name != nil {
		draft.Name = *p.Name
		if !e.slugTouched {
			draft.Slug = Slugify(draft.Name)
		}
	}
	if p.ShortDescription != nil {
		draft.ShortDescription = *p.ShortDescription
	}
	if p.FullDescription != nil {
		draft.FullDescription = *p.FullDescription
	}
	if p.Icon != nil {
		draft.Icon = *p.Icon
	}
	if p.Image != nil {
		draft.Image = *p.Image
	}
	if p.Visibility != nil {
		draft.Visibility = *p.Visibility
	}
	if p.IsFeatured != nil {
		draft.IsFeatured = *p.IsFeatured
	}
	return e.stateLocked(), nil
}

// PostPatch is a partial update for a blog post draft.
type PostPatch struct {
	Title      *string           `json:"title"`
	Slug       *string           `json:"slug"`
	Excerpt    *string           `json:"excerpt"`
	Content    *string           `json:"content"`
	Date       *string           `json:"date"`
	Category   *string           `json:"category"`
	Image      *string           `json:"image"`
	Status     *store.PostStatus `json:"status"`
	Visibility *store.Visibility `json:"visibility"`
}

// PatchPost merges a partial update into the active post draft. The title
// drives the slug under the same manual-override latch as services.
func (e *EditorService) PatchPost(p PostPatch) (EditorState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.mode == ModeIdle {
		return EditorState{}, ErrNoActiveSession
	}
	if e.kind != KindPosts {
		return EditorState{}, ErrKindMismatch
	}
	draft := e.post
	if p.Slug != nil {
		draft.Slug = strings.TrimSpace(*p.Slug)
		e.slugTouched = true
	}
	if p.Title != nil {
		draft.Title = *p.Title
		if !e.slugTouched {
			draft.Slug = Slugify(draft.Title)
		}
	}
	if p.Excerpt != nil {
		draft.Excerpt = *p.Excerpt
	}
	if p.Content != nil {
		draft.Content = *p.Content
	}
	if p.Date != nil {
		draft.Date = *p.Date
	}
	if p.Category != nil {
		draft.Category = *p.Category
	}
	if p.Image != nil {
		draft.Image = *p.Image
	}
	if p.Status != nil {
		draft.Status = *p.Status
	}
	if p.Visibility != nil {
		draft.Visibility = *p.Visibility
	}
	return e.stateLocked(), nil
}

// ProjectPatch is a partial update for a portfolio draft.
type ProjectPatch struct {
	Name         *string           `json:"name"`
	Client       *string           `json:"client"`
	Category     *string           `json:"category"`
	Stat         *string           `json:"stat"`
	Description  *string           `json:"description"`
	Image        *string           `json:"image"`
	MediaType    *store.MediaType  `json:"mediaType"`
	VideoURL     *string           `json:"videoUrl"`
	ExternalLink *string           `json:"externalLink"`
	Visibility   *store.Visibility `json:"visibility"`
	Tags         *[]string         `json:"tags"`
}

// PatchProject merges a partial update into the active portfolio draft.
func (e *EditorService) PatchProject(p ProjectPatch) (EditorState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.mode == ModeIdle {
		return EditorState{}, ErrNoActiveSession
	}
	if e.kind != KindProjects {
		return EditorState{}, ErrKindMismatch
	}
	draft := e.project
	if p.Name != nil {
		draft.Name = *p.Name
	}
	if p.Client != nil {
		draft.Client = *p.Client
	}
	if p.Category != nil {
		draft.Category = *p.Category
	}
	if p.Stat != nil {
		draft.Stat = *p.Stat
	}
	if p.Description != nil {
		draft.Description = *p.Description
	}
	if p.Image != nil {
		draft.Image = *p.Image
	}
	if p.MediaType != nil {
		draft.MediaType = *p.MediaType
	}
	if p.VideoURL != nil {
		draft.VideoURL = *p.VideoURL
	}
	if p.ExternalLink != nil {
		draft.ExternalLink = *p.ExternalLink
	}
	if p.Visibility != nil {
		draft.Visibility = *p.Visibility
	}
	if p.Tags != nil {
		draft.Tags = append([]string(nil), (*p.Tags)...)
	}
	return e.stateLocked(), nil
}

// UgcMetricsPatch updates the display metric strings of a UGC ad.
type UgcMetricsPatch struct {
	Views *string `json:"views"`
	Roas  *string `json:"roas"`
}

// UgcAdPatch is a partial update for a UGC ad draft.
type UgcAdPatch struct {
	Title       *string           `json:"title"`
	Creator     *string           `json:"creator"`
	Description *string           `json:"description"`
	Category    *string           `json:"category"`
	Platform    *store.Platform   `json:"platform"`
	Thumbnail   *string           `json:"thumbnail"`
	VideoURL    *string           `json:"videoUrl"`
	Status      *store.PostStatus `json:"status"`
	IsFeatured  *bool             `json:"isFeatured"`
	Metrics     *UgcMetricsPatch  `json:"metrics"`
	Visibility  *store.Visibility `json:"visibility"`
}

// PatchUgcAd merges a partial update into the active UGC ad draft.
func (e *EditorService) PatchUgcAd(p UgcAdPatch) (EditorState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.mode == ModeIdle {
		return EditorState{}, ErrNoActiveSession
	}
	if e.kind != KindUgcAds {
		return EditorState{}, ErrKindMismatch
	}
	draft := e.ugcAd
	if p.Title != nil {
		draft.Title = *p.Title
	}
	if p.Creator != nil {
		draft.Creator = *p.Creator
	}
	if p.Description != nil {
		draft.Description = *p.Description
	}
	if p.Category != nil {
		draft.Category = *p.Category
	}
	if p.Platform != nil {
		draft.Platform = *p.Platform
	}
	if p.Thumbnail != nil {
		draft.Thumbnail = *p.Thumbnail
	}
	if p.VideoURL != nil {
		draft.VideoURL = *p.VideoURL
	}
	if p.Status != nil {
		draft.Status = *p.Status
	}
	if p.IsFeatured != nil {
		draft.IsFeatured = *p.IsFeatured
	}
	if p.Metrics != nil {
		if p.Metrics.Views != nil {
			draft.Metrics.Views = *p.Metrics.Views
		}
		if p.Metrics.Roas != nil {
			draft.Metrics.Roas = *p.Metrics.Roas
		}
	}
	if p.Visibility != nil {
		draft.Visibility = *p.Visibility
	}
	return e.stateLocked(), nil
}

// serviceDraftLocked returns the active service draft or the contract
// error describing why there is none. Callers must hold the mutex.
func (e *EditorService) serviceDraftLocked() (*store.Service, error) {
	if e.mode == ModeIdle {
		return nil, ErrNoActiveSession
	}
	if e.kind != KindServices {
		return nil, ErrKindMismatch
	}
	return e.service, nil
}
