package domain

// DefaultLinkIcon is used when a quick link is created without an icon.
const DefaultLinkIcon = "🔗"

// QuickLink is a bookmark shown on the dashboard. Lists are ordered by
// Order ascending.
type QuickLink struct {
	Meta
	Name  string `json:"name"`
	URL   string `json:"url"`
	Icon  string `json:"icon"`
	Order int    `json:"order"`
}

// QuickLinkPatch is a partial update; nil fields are left untouched.
type QuickLinkPatch struct {
	Name  *string `json:"name"`
	URL   *string `json:"url"`
	Icon  *string `json:"icon"`
	Order *int    `json:"order"`
}

// Apply merges the patch onto the link.
func (p QuickLinkPatch) Apply(l *QuickLink) {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.URL != nil {
		l.URL = *p.URL
	}
	if p.Icon != nil {
		l.Icon = *p.Icon
	}
	if p.Order != nil {
		l.Order = *p.Order
	}
}
