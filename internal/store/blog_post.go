package store

// PostStatus is the editorial state of a blog post.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
)

// BlogPost is one article on the insights blog. Content is markdown.
type BlogPost struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Slug       string     `json:"slug"`
	Excerpt    string     `json:"excerpt"`
	Content    string     `json:"content"`
	Date       string     `json:"date"`
	Category   string     `json:"category"`
	Image      string     `json:"image"`
	Status     PostStatus `json:"status"`
	Visibility Visibility `json:"visibility"`
}

// Clone returns a copy of the post. All fields are scalar, so a value copy
// already detaches the buffer from the collection.
func (p BlogPost) Clone() BlogPost {
	return p
}
