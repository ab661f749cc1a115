package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halversen/daystart/internal/domain"
	"github.com/halversen/daystart/internal/store"
)

func newService() *Service {
	return New(store.New())
}

func TestTaskLifecycle(t *testing.T) {
	svc := newService()

	task := svc.CreateTask(&domain.Task{
		Meta: domain.Meta{UserID: "u1"},
		Text: "Buy milk",
	})
	require.NotEmpty(t, task.ID)
	assert.False(t, task.Completed, "completed defaults to false")
	assert.Equal(t, 0, task.Order)

	completed := true
	updated, err := svc.UpdateTask(task.ID, domain.TaskPatch{Completed: &completed})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, "Buy milk", updated.Text, "text unchanged by the toggle")

	require.True(t, svc.DeleteTask(task.ID))

	_, err = svc.UpdateTask(task.ID, domain.TaskPatch{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, svc.Tasks("u1"))
}

func TestHabitCreationDefaults(t *testing.T) {
	svc := newService()

	habit := svc.CreateHabit(&domain.Habit{
		Meta: domain.Meta{UserID: "u1"},
		Name: "Meditate",
		Icon: "🧘",
	})

	assert.Equal(t, "🧘", habit.Icon)
	assert.Equal(t, 0, habit.Streak, "streak defaults to zero")
	assert.Equal(t, "", habit.LastCompleted)
}

func TestHabitStreakIsCallerComputed(t *testing.T) {
	svc := newService()
	habit := svc.CreateHabit(&domain.Habit{Meta: domain.Meta{UserID: "u1"}, Name: "Meditate"})

	// The store persists whatever streak the caller sends; no
	// arithmetic happens below the transport.
	streak := 7
	last := "2024-06-01"
	updated, err := svc.UpdateHabit(habit.ID, domain.HabitPatch{Streak: &streak, LastCompleted: &last})
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Streak)

	streak = 6
	empty := ""
	updated, err = svc.UpdateHabit(habit.ID, domain.HabitPatch{Streak: &streak, LastCompleted: &empty})
	require.NoError(t, err)
	assert.Equal(t, 6, updated.Streak)
	assert.Equal(t, "", updated.LastCompleted)
}

func TestSettingsUpsertAndPatch(t *testing.T) {
	svc := newService()

	_, err := svc.UserSettings("u1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	svc.CreateUserSettings(&domain.UserSettings{Meta: domain.Meta{UserID: "u1"}})
	svc.CreateUserSettings(&domain.UserSettings{Meta: domain.Meta{UserID: "u1"}, UserName: "Alex"})

	settings, err := svc.UserSettings("u1")
	require.NoError(t, err)
	assert.Equal(t, "Alex", settings.UserName, "second create replaces the slot")

	focus := "Ship the release"
	settings, err = svc.UpdateUserSettings("u1", domain.SettingsPatch{DailyFocus: &focus})
	require.NoError(t, err)
	assert.Equal(t, "Ship the release", settings.DailyFocus)
	assert.Equal(t, "Alex", settings.UserName, "unpatched fields keep their values")
}

func TestScheduleDateScoping(t *testing.T) {
	svc := newService()

	svc.CreateScheduleEvent(&domain.ScheduleEvent{
		Meta:  domain.Meta{UserID: "u1"},
		Title: "Planning",
		Time:  "10:00",
		Date:  "2024-01-02",
	})

	assert.Empty(t, svc.ScheduleEvents("u1", "2024-01-01"), "querying another date yields an empty sequence")
	assert.Len(t, svc.ScheduleEvents("u1", "2024-01-02"), 1)
	assert.Empty(t, svc.ScheduleEvents("u2", "2024-01-02"), "other users never see the event")
}

func TestDailySummaryUpdate(t *testing.T) {
	svc := newService()
	day := "2024-06-01"

	svc.CreateDailySummary(&domain.DailySummary{
		Meta:       domain.Meta{UserID: "u1"},
		Date:       day,
		TotalTasks: 5,
	})

	done := 3
	summary, err := svc.UpdateDailySummary("u1", day, domain.DailySummaryPatch{TasksCompleted: &done})
	require.NoError(t, err)
	assert.Equal(t, 3, summary.TasksCompleted)
	assert.Equal(t, 5, summary.TotalTasks)

	_, err = svc.UpdateDailySummary("u1", "2024-06-02", domain.DailySummaryPatch{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDailyBookUpsert(t *testing.T) {
	svc := newService()
	day := "2024-06-01"

	_, err := svc.DailyBook("u1", day)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	svc.CreateDailyBook(&domain.DailyBook{Meta: domain.Meta{UserID: "u1"}, Date: day, Title: "Deep Work"})
	svc.CreateDailyBook(&domain.DailyBook{Meta: domain.Meta{UserID: "u1"}, Date: day, Title: "Atomic Habits"})

	book, err := svc.DailyBook("u1", day)
	require.NoError(t, err)
	assert.Equal(t, "Atomic Habits", book.Title)
}

func TestInsightSeverityDefault(t *testing.T) {
	svc := newService()

	insight := svc.CreateAIInsight(&domain.AIInsight{
		Meta:    domain.Meta{UserID: "u1"},
		Date:    "2024-06-01",
		Insight: "Nice streak!",
	})

	assert.Equal(t, domain.SeverityInfo, insight.Severity)
	assert.False(t, insight.Actionable)
}

func TestNotFoundAcrossKinds(t *testing.T) {
	svc := newService()

	_, err := svc.UpdateScheduleEvent("missing", domain.ScheduleEventPatch{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.UpdateHabit("missing", domain.HabitPatch{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.UpdateQuickLink("missing", domain.QuickLinkPatch{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.UpdateWebsiteUsage("missing", domain.WebsiteUsagePatch{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.False(t, svc.DeleteScheduleEvent("missing"))
	assert.False(t, svc.DeleteHabit("missing"))
	assert.False(t, svc.DeleteQuickLink("missing"))
}

func TestUserLookup(t *testing.T) {
	svc := newService()

	u := svc.CreateUser(&domain.User{Name: "Alex", Email: "alex@example.com"})

	got, err := svc.User(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alex", got.Name)

	got, err = svc.UserByEmail("alex@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = svc.User("missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
