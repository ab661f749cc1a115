// Package service is the operation surface the transport layer calls.
// It assumes already-validated, already-typed input and signals exactly
// one failure mode: domain.ErrNotFound for updates and lookups against
// an absent id or scope. Creation defaults live in the store's
// collection config; the façade returns store results unchanged.
package service

import (
	"github.com/halversen/daystart/internal/domain"
	"github.com/halversen/daystart/internal/store"
)

// Service exposes one get/create/update/delete group per entity kind
// over an injected store.
type Service struct {
	store *store.Store
}

// New creates a Service over st.
func New(st *store.Store) *Service {
	return &Service{store: st}
}

// Users

func (s *Service) CreateUser(u *domain.User) *domain.User {
	return s.store.CreateUser(u)
}

func (s *Service) User(id string) (*domain.User, error) {
	u, ok := s.store.User(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (s *Service) UserByEmail(email string) (*domain.User, error) {
	u, ok := s.store.UserByEmail(email)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

// Tasks

func (s *Service) Tasks(userID string) []*domain.Task {
	return s.store.Tasks.List(store.ByOwner[*domain.Task](userID))
}

func (s *Service) CreateTask(t *domain.Task) *domain.Task {
	return s.store.Tasks.Create(t)
}

func (s *Service) UpdateTask(id string, p domain.TaskPatch) (*domain.Task, error) {
	t, ok := s.store.Tasks.Update(id, func(t *domain.Task) { p.Apply(t) })
	if !ok {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

func (s *Service) DeleteTask(id string) bool {
	return s.store.Tasks.Delete(id)
}

// Settings

func (s *Service) UserSettings(userID string) (*domain.UserSettings, error) {
	st, ok := s.store.Settings.Get(userID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return st, nil
}

// CreateUserSettings establishes the single settings slot for the
// record's user, replacing any prior value.
func (s *Service) CreateUserSettings(st *domain.UserSettings) *domain.UserSettings {
	return s.store.Settings.Create(st)
}

func (s *Service) UpdateUserSettings(userID string, p domain.SettingsPatch) (*domain.UserSettings, error) {
	st, ok := s.store.Settings.Update(userID, func(st *domain.UserSettings) { p.Apply(st) })
	if !ok {
		return nil, domain.ErrNotFound
	}
	return st, nil
}

// Schedule

func (s *Service) ScheduleEvents(userID, date string) []*domain.ScheduleEvent {
	return s.store.Schedule.List(store.OnDay[*domain.ScheduleEvent](userID, date))
}

func (s *Service) CreateScheduleEvent(e *domain.ScheduleEvent) *domain.ScheduleEvent {
	return s.store.Schedule.Create(e)
}

func (s *Service) UpdateScheduleEvent(id string, p domain.ScheduleEventPatch) (*domain.ScheduleEvent, error) {
	e, ok := s.store.Schedule.Update(id, func(e *domain.ScheduleEvent) { p.Apply(e) })
	if !ok {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (s *Service) DeleteScheduleEvent(id string) bool {
	return s.store.Schedule.Delete(id)
}

// Habits

func (s *Service) Habits(userID string) []*domain.Habit {
	return s.store.Habits.List(store.ByOwner[*domain.Habit](userID))
}

func (s *Service) CreateHabit(h *domain.Habit) *domain.Habit {
	return s.store.Habits.Create(h)
}

func (s *Service) UpdateHabit(id string, p domain.HabitPatch) (*domain.Habit, error) {
	h, ok := s.store.Habits.Update(id, func(h *domain.Habit) { p.Apply(h) })
	if !ok {
		return nil, domain.ErrNotFound
	}
	return h, nil
}

func (s *Service) DeleteHabit(id string) bool {
	return s.store.Habits.Delete(id)
}

// Quick links

func (s *Service) QuickLinks(userID string) []*domain.QuickLink {
	return s.store.Links.List(store.ByOwner[*domain.QuickLink](userID))
}

func (s *Service) CreateQuickLink(l *domain.QuickLink) *domain.QuickLink {
	return s.store.Links.Create(l)
}

func (s *Service) UpdateQuickLink(id string, p domain.QuickLinkPatch) (*domain.QuickLink, error) {
	l, ok := s.store.Links.Update(id, func(l *domain.QuickLink) { p.Apply(l) })
	if !ok {
		return nil, domain.ErrNotFound
	}
	return l, nil
}

func (s *Service) DeleteQuickLink(id string) bool {
	return s.store.Links.Delete(id)
}

// Daily summary

func (s *Service) DailySummary(userID, date string) (*domain.DailySummary, error) {
	sum, ok := s.store.Summaries.Get(store.DateKey(userID, date))
	if !ok {
		return nil, domain.ErrNotFound
	}
	return sum, nil
}

// CreateDailySummary establishes the single summary slot for the
// record's user and date, replacing any prior value.
func (s *Service) CreateDailySummary(sum *domain.DailySummary) *domain.DailySummary {
	return s.store.Summaries.Create(sum)
}

func (s *Service) UpdateDailySummary(userID, date string, p domain.DailySummaryPatch) (*domain.DailySummary, error) {
	sum, ok := s.store.Summaries.Update(store.DateKey(userID, date), func(sum *domain.DailySummary) { p.Apply(sum) })
	if !ok {
		return nil, domain.ErrNotFound
	}
	return sum, nil
}

// Daily book

func (s *Service) DailyBook(userID, date string) (*domain.DailyBook, error) {
	b, ok := s.store.Books.Get(store.DateKey(userID, date))
	if !ok {
		return nil, domain.ErrNotFound
	}
	return b, nil
}

// CreateDailyBook establishes the single book slot for the record's
// user and date, replacing any prior value.
func (s *Service) CreateDailyBook(b *domain.DailyBook) *domain.DailyBook {
	return s.store.Books.Create(b)
}

// Website usage

func (s *Service) WebsiteUsage(userID, date string) []*domain.WebsiteUsage {
	return s.store.Usage.List(store.OnDay[*domain.WebsiteUsage](userID, date))
}

func (s *Service) CreateWebsiteUsage(u *domain.WebsiteUsage) *domain.WebsiteUsage {
	return s.store.Usage.Create(u)
}

func (s *Service) UpdateWebsiteUsage(id string, p domain.WebsiteUsagePatch) (*domain.WebsiteUsage, error) {
	u, ok := s.store.Usage.Update(id, func(u *domain.WebsiteUsage) { p.Apply(u) })
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

// AI insights

func (s *Service) AIInsights(userID, date string) []*domain.AIInsight {
	return s.store.Insights.List(store.OnDay[*domain.AIInsight](userID, date))
}

func (s *Service) CreateAIInsight(i *domain.AIInsight) *domain.AIInsight {
	return s.store.Insights.Create(i)
}
