package service

import "strings"

// Slugify derives a URL slug from a display title: lower-case, every run
// of non-alphanumeric characters collapsed to a single hyphen, edges
// trimmed. "UGC Ads & Growth!!" becomes "ugc-ads-growth".
func Slugify(title string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(title) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			pendingHyphen = false
		default:
			pendingHyphen = true
		}
	}
	return b.String()
}
