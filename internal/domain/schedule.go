package domain

// ScheduleEvent is one entry in a user's day plan. Time is an opaque
// "HH:MM" string and Date an opaque "YYYY-MM-DD" string; neither is
// parsed, only compared. Lists are ordered by Time lexicographically.
type ScheduleEvent struct {
	Meta
	Title     string `json:"title"`
	Time      string `json:"time"`
	Completed bool   `json:"completed"`
	Date      string `json:"date"`
}

// Day returns the date the event is scoped to.
func (e *ScheduleEvent) Day() string { return e.Date }

// ScheduleEventPatch is a partial update; nil fields are left untouched.
type ScheduleEventPatch struct {
	Title     *string `json:"title"`
	Time      *string `json:"time"`
	Completed *bool   `json:"completed"`
	Date      *string `json:"date"`
}

// Apply merges the patch onto the event.
func (p ScheduleEventPatch) Apply(e *ScheduleEvent) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Time != nil {
		e.Time = *p.Time
	}
	if p.Completed != nil {
		e.Completed = *p.Completed
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
}
