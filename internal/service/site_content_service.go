package service

import (
	"fmt"
	"time"

	"github.com/webprime/internal/store"
)

// SiteContentService mutates the singleton site copy document directly.
// Unlike the record collections there is no edit buffer: each update is
// applied immediately, mirroring how the admin settings forms behave.
type SiteContentService struct {
	store *store.Store
	now   func() time.Time
}

// NewSiteContentService creates a SiteContentService instance.
func NewSiteContentService(st *store.Store) *SiteContentService {
	return &SiteContentService{store: st, now: time.Now}
}

// Get returns a deep copy of the document.
func (s *SiteContentService) Get() store.SiteContent {
	return s.store.SiteContent()
}

// LandingPatch is a partial update for the home page copy. The feature
// and testimonial lists are replaced wholesale when present.
type LandingPatch struct {
	HeroHeadline     *string                 `json:"heroHeadline"`
	HeroSubheadline  *string                 `json:"heroSubheadline"`
	HeroCtaPrimary   *string                 `json:"heroCtaPrimary"`
	HeroCtaSecondary *string                 `json:"heroCtaSecondary"`
	Features         *[]store.LandingFeature `json:"features"`
	Testimonials     *[]store.Testimonial    `json:"testimonials"`
}

// UpdateLanding merges a patch into the landing section.
func (s *SiteContentService) UpdateLanding(p LandingPatch) store.SiteContent {
	s.store.UpdateSiteContent(func(doc *store.SiteContent) {
		if p.HeroHeadline != nil {
			doc.Landing.HeroHeadline = *p.HeroHeadline
		}
		if p.HeroSubheadline != nil {
			doc.Landing.HeroSubheadline = *p.HeroSubheadline
		}
		if p.HeroCtaPrimary != nil {
			doc.Landing.HeroCtaPrimary = *p.HeroCtaPrimary
		}
		if p.HeroCtaSecondary != nil {
			doc.Landing.HeroCtaSecondary = *p.HeroCtaSecondary
		}
		if p.Features != nil {
			doc.Landing.Features = append([]store.LandingFeature(nil), (*p.Features)...)
		}
		if p.Testimonials != nil {
			doc.Landing.Testimonials = append([]store.Testimonial(nil), (*p.Testimonials)...)
		}
	})
	return s.store.SiteContent()
}

// AboutPatch is a partial update for the about page copy.
type AboutPatch struct {
	MissionHeadline *string `json:"missionHeadline"`
	MissionBody     *string `json:"missionBody"`
	StoryBody       *string `json:"storyBody"`
}

// UpdateAbout merges a patch into the about section.
func (s *SiteContentService) UpdateAbout(p AboutPatch) store.SiteContent {
	s.store.UpdateSiteContent(func(doc *store.SiteContent) {
		if p.MissionHeadline != nil {
			doc.About.MissionHeadline = *p.MissionHeadline
		}
		if p.MissionBody != nil {
			doc.About.MissionBody = *p.MissionBody
		}
		if p.StoryBody != nil {
			doc.About.StoryBody = *p.StoryBody
		}
	})
	return s.store.SiteContent()
}

// FooterPatch is a partial update for the footer copy.
type FooterPatch struct {
	Tagline   *string `json:"tagline"`
	Email     *string `json:"email"`
	Location  *string `json:"location"`
	LinkedIn  *string `json:"linkedin"`
	Twitter   *string `json:"twitter"`
	Instagram *string `json:"instagram"`
	YouTube   *string `json:"youtube"`
}

// UpdateFooter merges a patch into the footer section.
func (s *SiteContentService) UpdateFooter(p FooterPatch) store.SiteContent {
	s.store.UpdateSiteContent(func(doc *store.SiteContent) {
		if p.Tagline != nil {
			doc.Footer.Tagline = *p.Tagline
		}
		if p.Email != nil {
			doc.Footer.Email = *p.Email
		}
		if p.Location != nil {
			doc.Footer.Location = *p.Location
		}
		if p.LinkedIn != nil {
			doc.Footer.Socials.LinkedIn = *p.LinkedIn
		}
		if p.Twitter != nil {
			doc.Footer.Socials.Twitter = *p.Twitter
		}
		if p.Instagram != nil {
			doc.Footer.Socials.Instagram = *p.Instagram
		}
		if p.YouTube != nil {
			doc.Footer.Socials.YouTube = *p.YouTube
		}
	})
	return s.store.SiteContent()
}

// TeamMemberPatch is a partial update for one roster entry.
type TeamMemberPatch struct {
	Name  *string `json:"name"`
	Role  *string `json:"role"`
	Image *string `json:"image"`
}

// AddTeamMember appends a default roster entry and returns its id.
func (s *SiteContentService) AddTeamMember() (store.SiteContent, string) {
	id := fmt.Sprintf("team-%d", s.now().UnixMilli())
	s.store.UpdateSiteContent(func(doc *store.SiteContent) {
		for hasTeamID(doc.About.Team, id) {
			id = bumpID(id)
		}
		doc.About.Team = append(doc.About.Team, store.TeamMember{ID: id, Name: "New Member", Role: "Strategist"})
	})
	return s.store.SiteContent(), id
}

// UpdateTeamMember merges a patch into the roster entry with the id.
func (s *SiteContentService) UpdateTeamMember(id string, p TeamMemberPatch) (store.SiteContent, error) {
	found := false
	s.store.UpdateSiteContent(func(doc *store.SiteContent) {
		for i := range doc.About.Team {
			if doc.About.Team[i].ID != id {
				continue
			}
			found = true
			if p.Name != nil {
				doc.About.Team[i].Name = *p.Name
			}
			if p.Role != nil {
				doc.About.Team[i].Role = *p.Role
			}
			if p.Image != nil {
				doc.About.Team[i].Image = *p.Image
			}
			return
		}
	})
	if !found {
		return store.SiteContent{}, ErrRecordNotFound
	}
	return s.store.SiteContent(), nil
}

// RemoveTeamMember deletes the roster entry; unknown ids are a no-op.
func (s *SiteContentService) RemoveTeamMember(id string) store.SiteContent {
	s.store.UpdateSiteContent(func(doc *store.SiteContent) {
		for i := range doc.About.Team {
			if doc.About.Team[i].ID == id {
				doc.About.Team = append(doc.About.Team[:i], doc.About.Team[i+1:]...)
				return
			}
		}
	})
	return s.store.SiteContent()
}

func hasTeamID(team []store.TeamMember, id string) bool {
	for _, m := range team {
		if m.ID == id {
			return true
		}
	}
	return false
}

func bumpID(id string) string {
	return id + "x"
}
