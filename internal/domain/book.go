package domain

// DailyBook is the day's book recommendation. At most one record per
// user and date; creating again replaces the slot.
type DailyBook struct {
	Meta
	Date        string `json:"date"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Summary     string `json:"summary"`
	KeyTakeaway string `json:"keyTakeaway"`
	Genre       string `json:"genre"`
	CoverURL    string `json:"coverUrl,omitempty"`
}

// Day returns the date the book pick is scoped to.
func (b *DailyBook) Day() string { return b.Date }
