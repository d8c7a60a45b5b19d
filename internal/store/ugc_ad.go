package store

// Platform is the network a UGC ad was produced for.
type Platform string

const (
	PlatformTikTok  Platform = "TikTok"
	PlatformMeta    Platform = "Meta"
	PlatformYouTube Platform = "YouTube"
	PlatformCustom  Platform = "Custom"
)

// AdMetrics are display strings, not numbers. "128k" and "4.8x" come from
// the ad platforms pre-formatted and are shown verbatim.
type AdMetrics struct {
	Views string `json:"views"`
	Roas  string `json:"roas"`
}

// UgcAd is one creator-style ad asset in the showcase.
type UgcAd struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Creator     string     `json:"creator"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Platform    Platform   `json:"platform"`
	Thumbnail   string     `json:"thumbnail"`
	VideoURL    string     `json:"videoUrl"`
	Status      PostStatus `json:"status"`
	IsFeatured  bool       `json:"isFeatured"`
	Metrics     AdMetrics  `json:"metrics"`
	Visibility  Visibility `json:"visibility"`
}

// Clone returns a copy of the ad.
func (u UgcAd) Clone() UgcAd {
	return u
}
