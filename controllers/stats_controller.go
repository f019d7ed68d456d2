package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lia-dsgnr/calo-tracker/middlewares"
	"github.com/lia-dsgnr/calo-tracker/services"
)

type StatsController struct {
	stats *services.StatsService
}

func NewStatsController(stats *services.StatsService) *StatsController {
	return &StatsController{stats: stats}
}

func (ctl *StatsController) Streak(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	streak, err := ctl.stats.Streak(user.ID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"streak_days": streak})
}

// Weekly reports the 7 days from ?start=YYYY-MM-DD (default: last 7
// days ending today).
func (ctl *StatsController) Weekly(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	start := time.Now().AddDate(0, 0, -6)
	if raw := c.Query("start"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start date, use YYYY-MM-DD"})
			return
		}
		start = parsed
	}

	rollup, err := ctl.stats.WeeklyRollup(user.ID, user.Goals(), start)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rollup)
}

// Monthly reports the calendar month of ?month=YYYY-MM (default: the
// current month).
func (ctl *StatsController) Monthly(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	month := time.Now()
	if raw := c.Query("month"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01", raw, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month, use YYYY-MM"})
			return
		}
		month = parsed
	}

	rollup, err := ctl.stats.MonthlyRollup(user.ID, user.Goals(), month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rollup)
}
