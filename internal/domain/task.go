package domain

// Task is a to-do item. Lists are ordered by Order ascending.
type Task struct {
	Meta
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Order     int    `json:"order"`
}

// TaskPatch is a partial update; nil fields are left untouched.
type TaskPatch struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
	Order     *int    `json:"order"`
}

// Apply merges the patch onto the task.
func (p TaskPatch) Apply(t *Task) {
	if p.Text != nil {
		t.Text = *p.Text
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Order != nil {
		t.Order = *p.Order
	}
}
