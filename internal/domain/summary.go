package domain

// DailySummary aggregates one user's productivity numbers for one day.
// At most one record per user and date; creating again replaces the
// slot. All counters are caller-computed.
type DailySummary struct {
	Meta
	Date              string `json:"date"`
	TasksCompleted    int    `json:"tasksCompleted"`
	TotalTasks        int    `json:"totalTasks"`
	FocusTimeMinutes  int    `json:"focusTimeMinutes"`
	HabitsCompleted   int    `json:"habitsCompleted"`
	TotalHabits       int    `json:"totalHabits"`
	ProductivityScore int    `json:"productivityScore"`
}

// Day returns the date the summary is scoped to.
func (s *DailySummary) Day() string { return s.Date }

// DailySummaryPatch is a partial update; nil fields are left untouched.
type DailySummaryPatch struct {
	TasksCompleted    *int `json:"tasksCompleted"`
	TotalTasks        *int `json:"totalTasks"`
	FocusTimeMinutes  *int `json:"focusTimeMinutes"`
	HabitsCompleted   *int `json:"habitsCompleted"`
	TotalHabits       *int `json:"totalHabits"`
	ProductivityScore *int `json:"productivityScore"`
}

// Apply merges the patch onto the summary.
func (p DailySummaryPatch) Apply(s *DailySummary) {
	if p.TasksCompleted != nil {
		s.TasksCompleted = *p.TasksCompleted
	}
	if p.TotalTasks != nil {
		s.TotalTasks = *p.TotalTasks
	}
	if p.FocusTimeMinutes != nil {
		s.FocusTimeMinutes = *p.FocusTimeMinutes
	}
	if p.HabitsCompleted != nil {
		s.HabitsCompleted = *p.HabitsCompleted
	}
	if p.TotalHabits != nil {
		s.TotalHabits = *p.TotalHabits
	}
	if p.ProductivityScore != nil {
		s.ProductivityScore = *p.ProductivityScore
	}
}
