package domain

// DefaultUserName is used when settings are created without a name.
const DefaultUserName = "Friend"

// UserSettings holds the dashboard preferences for one user. There is
// at most one record per user; creating again replaces the slot.
type UserSettings struct {
	Meta
	UserName        string `json:"userName"`
	DailyFocus      string `json:"dailyFocus"`
	QuickNotes      string `json:"quickNotes"`
	BackgroundImage string `json:"backgroundImage"`
}

// SettingsPatch is a partial update; nil fields are left untouched.
type SettingsPatch struct {
	UserName        *string `json:"userName"`
	DailyFocus      *string `json:"dailyFocus"`
	QuickNotes      *string `json:"quickNotes"`
	BackgroundImage *string `json:"backgroundImage"`
}

// Apply merges the patch onto the settings record.
func (p SettingsPatch) Apply(s *UserSettings) {
	if p.UserName != nil {
		s.UserName = *p.UserName
	}
	if p.DailyFocus != nil {
		s.DailyFocus = *p.DailyFocus
	}
	if p.QuickNotes != nil {
		s.QuickNotes = *p.QuickNotes
	}
	if p.BackgroundImage != nil {
		s.BackgroundImage = *p.BackgroundImage
	}
}
