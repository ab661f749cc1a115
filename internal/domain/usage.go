package domain

// DefaultUsageCategory is used when a usage record carries no category.
const DefaultUsageCategory = "other"

// WebsiteUsage is one tracked domain for one user and day. Many rows
// per day; lists are ordered by TimeSpentMinutes descending.
type WebsiteUsage struct {
	Meta
	Date             string `json:"date"`
	Domain           string `json:"domain"`
	Title            string `json:"title"`
	TimeSpentMinutes int    `json:"timeSpentMinutes"`
	VisitCount       int    `json:"visitCount"`
	Category         string `json:"category"`
}

// Day returns the date the usage row is scoped to.
func (u *WebsiteUsage) Day() string { return u.Date }

// WebsiteUsagePatch is a partial update; nil fields are left untouched.
type WebsiteUsagePatch struct {
	Domain           *string `json:"domain"`
	Title            *string `json:"title"`
	TimeSpentMinutes *int    `json:"timeSpentMinutes"`
	VisitCount       *int    `json:"visitCount"`
	Category         *string `json:"category"`
}

// Apply merges the patch onto the usage row.
func (p WebsiteUsagePatch) Apply(u *WebsiteUsage) {
	if p.Domain != nil {
		u.Domain = *p.Domain
	}
	if p.Title != nil {
		u.Title = *p.Title
	}
	if p.TimeSpentMinutes != nil {
		u.TimeSpentMinutes = *p.TimeSpentMinutes
	}
	if p.VisitCount != nil {
		u.VisitCount = *p.VisitCount
	}
	if p.Category != nil {
		u.Category = *p.Category
	}
}
