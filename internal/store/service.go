package store

// Icon selects which pictogram a service card renders on the public site.
type Icon string

const (
	IconLayout Icon = "Layout"
	IconVideo  Icon = "Video"
	IconQrCode Icon = "QrCode"
)

// Visibility controls whether public views render a record at all.
// It is orthogonal to draft/published status where both exist.
type Visibility string

const (
	VisibilityShow Visibility = "show"
	VisibilityHide Visibility = "hide"
)

// Feature is one capability block on a service landing page.
type Feature struct {
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

// ProcessStep is one entry of the numbered delivery timeline.
type ProcessStep struct {
	Step  string `json:"step"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

// FAQ is a question/answer pair shown on a service landing page.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// PricingPlan is one tier inside a service. Plans carry their own id so the
// admin can address them inside the edit buffer.
type PricingPlan struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         string   `json:"price"`
	Description   string   `json:"description"`
	Benefits      []string `json:"benefits"`
	CtaText       string   `json:"ctaText"`
	IsHighlighted bool     `json:"isHighlighted"`
}

// Clone returns a deep copy of the plan.
func (p PricingPlan) Clone() PricingPlan {
	out := p
	out.Benefits = append([]string(nil), p.Benefits...)
	return out
}

// Service is one offering of the agency. Its id doubles as a route key for
// the per-service landing page.
type Service struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Slug             string        `json:"slug"`
	ShortDescription string        `json:"shortDescription"`
	FullDescription  string        `json:"fullDescription"`
	Icon             Icon          `json:"icon"`
	Features         []Feature     `json:"features"`
	Process          []ProcessStep `json:"process"`
	FAQs             []FAQ         `json:"faqs"`
	PricingPlans     []PricingPlan `json:"pricingPlans"`
	Image            string        `json:"image"`
	Visibility       Visibility    `json:"visibility"`
	IsFeatured       bool          `json:"isFeatured"`
	SortOrder        int           `json:"sortOrder"`
}

// Clone returns a deep copy so edit buffers never alias stored records.
func (s Service) Clone() Service {
	out := s
	out.Features = append([]Feature(nil), s.Features...)
	out.Process = append([]ProcessStep(nil), s.Process...)
	out.FAQs = append([]FAQ(nil), s.FAQs...)
	if s.PricingPlans != nil {
		out.PricingPlans = make([]PricingPlan, len(s.PricingPlans))
		for i, plan := range s.PricingPlans {
			out.PricingPlans[i] = plan.Clone()
		}
	}
	return out
}
