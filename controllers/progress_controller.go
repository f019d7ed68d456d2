package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lia-dsgnr/calo-tracker/middlewares"
	"github.com/lia-dsgnr/calo-tracker/services"
)

// ProgressController serves the derived-state views the UI binds to:
// daily summary, timeline groups, and recent items.
type ProgressController struct {
	progress *services.ProgressService
}

func NewProgressController(progress *services.ProgressService) *ProgressController {
	return &ProgressController{progress: progress}
}

func (ctl *ProgressController) DailySummary(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	summary, err := ctl.progress.DailySummary(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (ctl *ProgressController) Timeline(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))

	groups, err := ctl.progress.Timeline(user.ID, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, groups)
}

func (ctl *ProgressController) RecentItems(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	items, err := ctl.progress.RecentItems(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}
