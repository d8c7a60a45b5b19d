package store

// SiteContent is the singleton document holding all global site copy.
// There is exactly one instance per Store.
type SiteContent struct {
	Landing LandingContent `json:"landing"`
	About   AboutContent   `json:"about"`
	Footer  FooterContent  `json:"footer"`
}

// LandingContent is the home page hero copy plus its feature and
// testimonial lists.
type LandingContent struct {
	HeroHeadline     string           `json:"heroHeadline"`
	HeroSubheadline  string           `json:"heroSubheadline"`
	HeroCtaPrimary   string           `json:"heroCtaPrimary"`
	HeroCtaSecondary string           `json:"heroCtaSecondary"`
	Features         []LandingFeature `json:"features"`
	Testimonials     []Testimonial    `json:"testimonials"`
}

// LandingFeature is one of the short selling points under the hero.
type LandingFeature struct {
	Title string `json:"title"`
	Desc  string `json:"desc"`
	Icon  string `json:"icon"`
}

// Testimonial is one client quote on the home page.
type Testimonial struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company"`
	Quote   string `json:"quote"`
	Rating  int    `json:"rating"`
}

// AboutContent is the about page copy and the team roster.
type AboutContent struct {
	MissionHeadline string       `json:"missionHeadline"`
	MissionBody     string       `json:"missionBody"`
	StoryBody       string       `json:"storyBody"`
	Team            []TeamMember `json:"team"`
}

// TeamMember is one person on the about page.
type TeamMember struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Image string `json:"image"`
}

// FooterContent is the global footer copy.
type FooterContent struct {
	Tagline  string      `json:"tagline"`
	Email    string      `json:"email"`
	Location string      `json:"location"`
	Socials  SocialLinks `json:"socials"`
}

// SocialLinks are the four outbound profile URLs.
type SocialLinks struct {
	LinkedIn  string `json:"linkedin"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	YouTube   string `json:"youtube"`
}

// Clone returns a deep copy of the document.
func (s SiteContent) Clone() SiteContent {
	out := s
	out.Landing.Features = append([]LandingFeature(nil), s.Landing.Features...)
	out.Landing.Testimonials = append([]Testimonial(nil), s.Landing.Testimonials...)
	out.About.Team = append([]TeamMember(nil), s.About.Team...)
	return out
}
