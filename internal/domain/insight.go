package domain

// Insight severities.
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// AIInsight is one coaching observation for one user and day. Many
// rows per day; lists are ordered by creation time descending, newest
// first.
type AIInsight struct {
	Meta
	Date       string `json:"date"`
	Insight    string `json:"insight"`
	Category   string `json:"category"`
	Severity   string `json:"severity"`
	Actionable bool   `json:"actionable"`
}

// Day returns the date the insight is scoped to.
func (i *AIInsight) Day() string { return i.Date }
