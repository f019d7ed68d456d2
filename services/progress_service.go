package services

import (
	"sort"
	"time"

	"github.com/lia-dsgnr/calo-tracker/models"
)

// ProgressService composes repository calls into the UI-ready view
// models: daily summary, recent items, and timeline groups.
type ProgressService struct {
	logs  *LogService
	users *UserService
}

func NewProgressService(logs *LogService, users *UserService) *ProgressService {
	return &ProgressService{logs: logs, users: users}
}

// DailySummary aggregates today's active logs against the goals.
type DailySummary struct {
	Goals models.DailyGoals `json:"goals"`

	ConsumedKcal    float64 `json:"consumed_kcal"`
	ConsumedProtein float64 `json:"consumed_protein"`
	ConsumedCarbs   float64 `json:"consumed_carbs"`
	ConsumedFat     float64 `json:"consumed_fat"`

	RemainingKcal    float64 `json:"remaining_kcal"`
	RemainingProtein float64 `json:"remaining_protein"`
	RemainingCarbs   float64 `json:"remaining_carbs"`
	RemainingFat     float64 `json:"remaining_fat"`

	Logs []models.FoodLog `json:"logs"`
}

func (s *ProgressService) DailySummary(userID string) (*DailySummary, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	goals := models.DailyGoals{
		DailyKcal:    models.DefaultKcalGoal,
		DailyProtein: models.DefaultProteinGoal,
		DailyCarbs:   models.DefaultCarbsGoal,
		DailyFat:     models.DefaultFatGoal,
	}
	if user != nil {
		goals = user.Goals()
	}

	logs, err := s.logs.GetToday(userID)
	if err != nil {
		return nil, err
	}

	summary := &DailySummary{Goals: goals, Logs: logs}
	for _, log := range logs {
		summary.ConsumedKcal += log.Kcal
		summary.ConsumedProtein += log.Protein
		summary.ConsumedCarbs += log.Carbs
		summary.ConsumedFat += log.Fat
	}
	summary.RemainingKcal = goals.DailyKcal - summary.ConsumedKcal
	summary.RemainingProtein = goals.DailyProtein - summary.ConsumedProtein
	summary.RemainingCarbs = goals.DailyCarbs - summary.ConsumedCarbs
	summary.RemainingFat = goals.DailyFat - summary.ConsumedFat
	return summary, nil
}

// TimelineGroup is one date's logs, most recent first.
type TimelineGroup struct {
	Date      string           `json:"date"`
	DateLabel string           `json:"date_label"`
	Logs      []models.FoodLog `json:"logs"`
}

// Timeline groups the trailing days of logs by date, newest date
// first.
func (s *ProgressService) Timeline(userID string, days int) ([]TimelineGroup, error) {
	logs, err := s.logs.GetRecent(userID, days)
	if err != nil {
		return nil, err
	}

	// Key by the wall-clock date; the driver may hand timestamps back
	// in UTC, which would split a day at the zone offset.
	now := time.Now()
	grouped := make(map[string][]models.FoodLog)
	for _, log := range logs {
		key := log.LoggedAt.In(now.Location()).Format("2006-01-02")
		grouped[key] = append(grouped[key], log)
	}

	groups := make([]TimelineGroup, 0, len(grouped))
	for date, dateLogs := range grouped {
		sort.SliceStable(dateLogs, func(i, j int) bool {
			return dateLogs[i].LoggedAt.After(dateLogs[j].LoggedAt)
		})
		groups = append(groups, TimelineGroup{
			Date:      date,
			DateLabel: dateLabel(date, now),
			Logs:      dateLogs,
		})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Date > groups[j].Date
	})
	return groups, nil
}

func dateLabel(date string, now time.Time) string {
	today := dayStart(now).Format("2006-01-02")
	yesterday := dayStart(now).AddDate(0, 0, -1).Format("2006-01-02")
	switch date {
	case today:
		return "Today"
	case yesterday:
		return "Yesterday"
	}
	parsed, err := time.ParseInLocation("2006-01-02", date, now.Location())
	if err != nil {
		return date
	}
	return parsed.Format("Mon 2 Jan")
}

// RecentItem is one of the last distinct foods a user logged.
type RecentItem struct {
	FoodType   models.FoodType `json:"food_type"`
	FoodID     string          `json:"food_id"`
	Name       string          `json:"name"`
	LastLogged time.Time       `json:"last_logged"`
}

// RecentItems derives the last MaxRecentItems unique foods from the
// trailing week of logs, most recently logged first.
func (s *ProgressService) RecentItems(userID string) ([]RecentItem, error) {
	logs, err := s.logs.GetRecent(userID, 7)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var items []RecentItem
	for _, log := range logs {
		key := string(log.FoodType) + ":" + log.FoodID
		if seen[key] {
			continue
		}
		seen[key] = true
		items = append(items, RecentItem{
			FoodType:   log.FoodType,
			FoodID:     log.FoodID,
			Name:       log.NameSnapshot,
			LastLogged: log.LoggedAt,
		})
		if len(items) == models.MaxRecentItems {
			break
		}
	}
	return items, nil
}
