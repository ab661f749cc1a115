package domain

// DefaultHabitIcon is used when a habit is created without an icon.
const DefaultHabitIcon = "📝"

// Habit is a recurring practice with a caller-maintained streak. The
// store only persists whatever Streak and LastCompleted it is given;
// streak arithmetic is the caller's business logic. Lists are ordered
// by creation time ascending.
type Habit struct {
	Meta
	Name          string `json:"name"`
	Icon          string `json:"icon"`
	Streak        int    `json:"streak"`
	LastCompleted string `json:"lastCompleted"`
}

// HabitPatch is a partial update; nil fields are left untouched.
type HabitPatch struct {
	Name          *string `json:"name"`
	Icon          *string `json:"icon"`
	Streak        *int    `json:"streak"`
	LastCompleted *string `json:"lastCompleted"`
}

// Apply merges the patch onto the habit.
func (p HabitPatch) Apply(h *Habit) {
	if p.Name != nil {
		h.Name = *p.Name
	}
	if p.Icon != nil {
		h.Icon = *p.Icon
	}
	if p.Streak != nil {
		h.Streak = *p.Streak
	}
	if p.LastCompleted != nil {
		h.LastCompleted = *p.LastCompleted
	}
}
