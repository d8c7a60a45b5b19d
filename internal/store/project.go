package store

// MediaType governs which of a project's media fields is meaningful.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
	MediaLink  MediaType = "link"
)

// Project is one portfolio item.
type Project struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Client       string     `json:"client"`
	Category     string     `json:"category"`
	Stat         string     `json:"stat"`
	Description  string     `json:"description"`
	Image        string     `json:"image"`
	MediaType    MediaType  `json:"mediaType"`
	VideoURL     string     `json:"videoUrl"`
	ExternalLink string     `json:"externalLink"`
	Visibility   Visibility `json:"visibility"`
	Tags         []string   `json:"tags"`
}

// Clone returns a deep copy of the project.
func (p Project) Clone() Project {
	out := p
	out.Tags = append([]string(nil), p.Tags...)
	return out
}
