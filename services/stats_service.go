package services

import (
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/lia-dsgnr/calo-tracker/models"
)

type StatsService struct{ db *gorm.DB }

func NewStatsService(db *gorm.DB) *StatsService { return &StatsService{db: db} }

// Metric pairs a consumed value with its goal.
type Metric struct {
	Actual  float64 `json:"actual"`
	Target  float64 `json:"target"`
	Percent float64 `json:"percent"`
}

// DayRollup is one day of totals against the daily goals.
type DayRollup struct {
	Date     string `json:"date"`
	Kcal     Metric `json:"kcal"`
	Protein  Metric `json:"protein"`
	Carbs    Metric `json:"carbs"`
	Fat      Metric `json:"fat"`
	LogCount int64  `json:"log_count"`
}

// RangeRollup aggregates a date range day by day.
type RangeRollup struct {
	From       string      `json:"from"`
	To         string      `json:"to"`
	Days       []DayRollup `json:"days"`
	AvgKcal    float64     `json:"avg_kcal"`
	DaysLogged int         `json:"days_logged"`
}

type dayTotalsRow struct {
	Day      string
	Kcal     float64
	Protein  float64
	Carbs    float64
	Fat      float64
	LogCount int64
}

// dayTotals groups in Go rather than with SQL DATE(), which would
// shift timestamps to UTC before extracting the date and misfile
// early-morning logs in any zone ahead of UTC. Day keys follow the
// location of the requested range.
func (s *StatsService) dayTotals(userID string, from, to time.Time) (map[string]dayTotalsRow, error) {
	var logs []models.FoodLog
	err := s.db.
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, dayStart(from), dayStart(to).AddDate(0, 0, 1)).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}

	loc := from.Location()
	idx := make(map[string]dayTotalsRow)
	for _, log := range logs {
		key := log.LoggedAt.In(loc).Format("2006-01-02")
		row := idx[key]
		row.Day = key
		row.Kcal += log.Kcal
		row.Protein += log.Protein
		row.Carbs += log.Carbs
		row.Fat += log.Fat
		row.LogCount++
		idx[key] = row
	}
	return idx, nil
}

// Rollup builds a per-day breakdown of the range [from, to] against
// the user's goals. Missing days appear with zero totals.
func (s *StatsService) Rollup(userID string, goals models.DailyGoals, from, to time.Time) (*RangeRollup, error) {
	idx, err := s.dayTotals(userID, from, to)
	if err != nil {
		return nil, err
	}

	out := &RangeRollup{
		From: dayStart(from).Format("2006-01-02"),
		To:   dayStart(to).Format("2006-01-02"),
	}

	var kcalSum float64
	for d := dayStart(from); !d.After(dayStart(to)); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		row := idx[key] // zero value for missing days
		if row.LogCount > 0 {
			out.DaysLogged++
		}
		kcalSum += row.Kcal
		out.Days = append(out.Days, DayRollup{
			Date:     key,
			Kcal:     metric(row.Kcal, goals.DailyKcal),
			Protein:  metric(row.Protein, goals.DailyProtein),
			Carbs:    metric(row.Carbs, goals.DailyCarbs),
			Fat:      metric(row.Fat, goals.DailyFat),
			LogCount: row.LogCount,
		})
	}

	out.AvgKcal = avg(kcalSum, len(out.Days))
	return out, nil
}

// WeeklyRollup covers the 7 days starting at weekStart.
func (s *StatsService) WeeklyRollup(userID string, goals models.DailyGoals, weekStart time.Time) (*RangeRollup, error) {
	return s.Rollup(userID, goals, weekStart, weekStart.AddDate(0, 0, 6))
}

// MonthlyRollup covers the calendar month containing anyDay.
func (s *StatsService) MonthlyRollup(userID string, goals models.DailyGoals, anyDay time.Time) (*RangeRollup, error) {
	first := time.Date(anyDay.Year(), anyDay.Month(), 1, 0, 0, 0, 0, anyDay.Location())
	last := first.AddDate(0, 1, -1)
	return s.Rollup(userID, goals, first, last)
}

// Streak counts consecutive days with at least one active log, ending
// today. A day without logs yet today does not break a streak that ran
// through yesterday.
func (s *StatsService) Streak(userID string, now time.Time) (int, error) {
	// One query over a generous window keeps the walk in memory.
	const lookbackDays = 366
	from := dayStart(now).AddDate(0, 0, -lookbackDays)
	idx, err := s.dayTotals(userID, from, now)
	if err != nil {
		return 0, err
	}

	day := dayStart(now)
	streak := 0
	if _, ok := idx[day.Format("2006-01-02")]; ok {
		streak++
	}
	// Whether or not today has logs, continue counting from yesterday.
	for d := day.AddDate(0, 0, -1); !d.Before(from); d = d.AddDate(0, 0, -1) {
		if _, ok := idx[d.Format("2006-01-02")]; !ok {
			break
		}
		streak++
	}
	return streak, nil
}

func metric(actual, target float64) Metric {
	return Metric{Actual: round2(actual), Target: round2(target), Percent: pct(actual, target)}
}

func pct(actual, goal float64) float64 {
	if goal <= 0 {
		if actual <= 0 {
			return 0
		}
		return 100
	}
	return round2((actual / goal) * 100.0)
}

func avg(sum float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return round2(sum / float64(n))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
