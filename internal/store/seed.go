package store

import (
	"time"

	"github.com/halversen/daystart/internal/domain"
)

// DefaultUserID is the account the demo data belongs to. The API
// serves this user; there is no authentication.
const DefaultUserID = "default-user"

// Seed populates st with the demo user and a representative row for
// every entity kind, dated today, so the dashboard is non-empty on
// first load. The seed is not part of the storage contract; tests
// build their own empty stores.
func Seed(st *Store) {
	today := time.Now().Format("2006-01-02")

	st.CreateUser(&domain.User{
		ID:    DefaultUserID,
		Name:  "Alex",
		Email: "alex@example.com",
	})

	st.Settings.Create(&domain.UserSettings{
		Meta:     domain.Meta{UserID: DefaultUserID},
		UserName: "Alex",
	})

	st.Schedule.Create(&domain.ScheduleEvent{
		Meta:  domain.Meta{UserID: DefaultUserID},
		Title: "Team meeting",
		Time:  "10:00",
		Date:  today,
	})

	st.Habits.Create(&domain.Habit{
		Meta:   domain.Meta{UserID: DefaultUserID},
		Name:   "Morning meditation",
		Icon:   "🧘",
		Streak: 3,
	})

	st.Links.Create(&domain.QuickLink{
		Meta: domain.Meta{UserID: DefaultUserID},
		Name: "Gmail",
		URL:  "https://gmail.com",
		Icon: "📧",
	})

	st.Summaries.Create(&domain.DailySummary{
		Meta:              domain.Meta{UserID: DefaultUserID},
		Date:              today,
		TasksCompleted:    2,
		TotalTasks:        5,
		FocusTimeMinutes:  75,
		HabitsCompleted:   3,
		TotalHabits:       4,
		ProductivityScore: 78,
	})

	st.Books.Create(&domain.DailyBook{
		Meta:        domain.Meta{UserID: DefaultUserID},
		Date:        today,
		Title:       "Atomic Habits",
		Author:      "James Clear",
		Summary:     "A practical guide to building good habits and breaking bad ones through small, consistent changes.",
		KeyTakeaway: "Focus on systems rather than goals. Small improvements compound over time.",
		Genre:       "Self-Help",
		CoverURL:    "https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c?w=200&h=300&fit=crop",
	})

	usage := []*domain.WebsiteUsage{
		{
			Meta:             domain.Meta{UserID: DefaultUserID},
			Date:             today,
			Domain:           "youtube.com",
			Title:            "YouTube",
			TimeSpentMinutes: 45,
			VisitCount:       8,
			Category:         "entertainment",
		},
		{
			Meta:             domain.Meta{UserID: DefaultUserID},
			Date:             today,
			Domain:           "github.com",
			Title:            "GitHub",
			TimeSpentMinutes: 120,
			VisitCount:       15,
			Category:         "work",
		},
		{
			Meta:             domain.Meta{UserID: DefaultUserID},
			Date:             today,
			Domain:           "twitter.com",
			Title:            "Twitter",
			TimeSpentMinutes: 25,
			VisitCount:       12,
			Category:         "social",
		},
	}
	for _, u := range usage {
		st.Usage.Create(u)
	}

	insights := []*domain.AIInsight{
		{
			Meta:       domain.Meta{UserID: DefaultUserID},
			Date:       today,
			Insight:    "You spent 45 minutes on YouTube today, which is 30% of your focus time. Consider using a website blocker during work hours.",
			Category:   "focus",
			Severity:   domain.SeverityWarning,
			Actionable: true,
		},
		{
			Meta:     domain.Meta{UserID: DefaultUserID},
			Date:     today,
			Insight:  "Great job maintaining a 3-day meditation streak! Consistency is key to building lasting habits.",
			Category: "habits",
			Severity: domain.SeverityInfo,
		},
		{
			Meta:     domain.Meta{UserID: DefaultUserID},
			Date:     today,
			Insight:  "Your productivity score is 78% today. You're on track to meet your weekly goals!",
			Category: "productivity",
			Severity: domain.SeverityInfo,
		},
	}
	for _, i := range insights {
		st.Insights.Create(i)
	}
}
