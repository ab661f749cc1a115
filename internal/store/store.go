// Package store implements the in-memory per-user entity store backing
// the dashboard API. One generic Collection per entity kind, configured
// with that kind's storage key, ordering, and creation defaults. Data
// lives for the process lifetime only.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/halversen/daystart/internal/domain"
)

// Store owns every entity collection. It is explicitly constructed and
// injected into the service layer; there is no package-level state.
type Store struct {
	mu    sync.RWMutex
	users map[string]domain.User

	Tasks     *Collection[domain.Task, *domain.Task]
	Settings  *Collection[domain.UserSettings, *domain.UserSettings]
	Schedule  *Collection[domain.ScheduleEvent, *domain.ScheduleEvent]
	Habits    *Collection[domain.Habit, *domain.Habit]
	Links     *Collection[domain.QuickLink, *domain.QuickLink]
	Summaries *Collection[domain.DailySummary, *domain.DailySummary]
	Books     *Collection[domain.DailyBook, *domain.DailyBook]
	Usage     *Collection[domain.WebsiteUsage, *domain.WebsiteUsage]
	Insights  *Collection[domain.AIInsight, *domain.AIInsight]
}

// New creates an empty store.
func New() *Store {
	return &Store{
		users: make(map[string]domain.User),

		Tasks: NewCollection(Config[domain.Task, *domain.Task]{
			Less: func(a, b *domain.Task) bool {
				if a.Order != b.Order {
					return a.Order < b.Order
				}
				return a.Seq < b.Seq
			},
		}),

		// One settings record per user; create replaces the slot.
		Settings: NewCollection(Config[domain.UserSettings, *domain.UserSettings]{
			Key: func(s *domain.UserSettings) string { return s.UserID },
			Defaults: func(s *domain.UserSettings) {
				if s.UserName == "" {
					s.UserName = domain.DefaultUserName
				}
			},
		}),

		Schedule: NewCollection(Config[domain.ScheduleEvent, *domain.ScheduleEvent]{
			Less: func(a, b *domain.ScheduleEvent) bool {
				if a.Time != b.Time {
					return a.Time < b.Time
				}
				return a.Seq < b.Seq
			},
		}),

		Habits: NewCollection(Config[domain.Habit, *domain.Habit]{
			// Nil Less: habits list in creation order.
			Defaults: func(h *domain.Habit) {
				if h.Icon == "" {
					h.Icon = domain.DefaultHabitIcon
				}
			},
		}),

		Links: NewCollection(Config[domain.QuickLink, *domain.QuickLink]{
			Less: func(a, b *domain.QuickLink) bool {
				if a.Order != b.Order {
					return a.Order < b.Order
				}
				return a.Seq < b.Seq
			},
			Defaults: func(l *domain.QuickLink) {
				if l.Icon == "" {
					l.Icon = domain.DefaultLinkIcon
				}
			},
		}),

		// One summary and one book per user and day.
		Summaries: NewCollection(Config[domain.DailySummary, *domain.DailySummary]{
			Key: func(s *domain.DailySummary) string { return DateKey(s.UserID, s.Date) },
		}),

		Books: NewCollection(Config[domain.DailyBook, *domain.DailyBook]{
			Key: func(b *domain.DailyBook) string { return DateKey(b.UserID, b.Date) },
		}),

		Usage: NewCollection(Config[domain.WebsiteUsage, *domain.WebsiteUsage]{
			Less: func(a, b *domain.WebsiteUsage) bool {
				if a.TimeSpentMinutes != b.TimeSpentMinutes {
					return a.TimeSpentMinutes > b.TimeSpentMinutes
				}
				return a.Seq < b.Seq
			},
			Defaults: func(u *domain.WebsiteUsage) {
				if u.Category == "" {
					u.Category = domain.DefaultUsageCategory
				}
			},
		}),

		Insights: NewCollection(Config[domain.AIInsight, *domain.AIInsight]{
			// Newest first.
			Less: func(a, b *domain.AIInsight) bool { return a.Seq > b.Seq },
			Defaults: func(i *domain.AIInsight) {
				if i.Severity == "" {
					i.Severity = domain.SeverityInfo
				}
			},
		}),
	}
}

// CreateUser stores a copy of u, generating an id when none is set.
// The seed passes a fixed id so the demo account has a stable
// identity.
func (s *Store) CreateUser(u *domain.User) *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.CreatedAt = time.Now().UTC()
	s.users[u.ID] = *u
	return u
}

// User returns a copy of the user with the given id.
func (s *Store) User(id string) (*domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, false
	}
	return &u, true
}

// UserByEmail returns a copy of the user with the given email.
func (s *Store) UserByEmail(email string) (*domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return &u, true
		}
	}
	return nil, false
}
