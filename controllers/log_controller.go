package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lia-dsgnr/calo-tracker/middlewares"
	"github.com/lia-dsgnr/calo-tracker/models"
	"github.com/lia-dsgnr/calo-tracker/services"
)

type LogController struct {
	logs *services.LogService
	hub  *services.RealtimeHub
}

func NewLogController(logs *services.LogService, hub *services.RealtimeHub) *LogController {
	return &LogController{logs: logs, hub: hub}
}

// CreateLog records one eaten item. The returned entry is the contract
// for optimistic UI update and for undo (delete by id).
func (ctl *LogController) CreateLog(c *gin.Context) {
	var body services.LogInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middlewares.CurrentUser(c)
	log, err := ctl.logs.Create(user.ID, body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if log == nil {
		c.JSON(http.StatusConflict, gin.H{
			"error": "daily log limit reached",
			"limit": models.MaxLogsPerDay,
		})
		return
	}

	ctl.hub.Broadcast(user.ID, services.Event{Type: "log.created", Payload: log})
	c.JSON(http.StatusCreated, log)
}

func (ctl *LogController) DeleteLog(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	id := c.Param("id")
	if err := ctl.logs.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctl.hub.Broadcast(user.ID, services.Event{Type: "log.deleted", Payload: gin.H{"id": id}})
	c.Status(http.StatusNoContent)
}

// RestoreLog reinstates a deleted log (the redo half of undo).
func (ctl *LogController) RestoreLog(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	log, err := ctl.logs.Restore(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if log == nil {
		c.JSON(http.StatusConflict, gin.H{
			"error": "cannot restore log",
			"limit": models.MaxLogsPerDay,
		})
		return
	}
	ctl.hub.Broadcast(user.ID, services.Event{Type: "log.created", Payload: log})
	c.JSON(http.StatusOK, log)
}

func (ctl *LogController) GetLog(c *gin.Context) {
	log, err := ctl.logs.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if log == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "log not found"})
		return
	}
	c.JSON(http.StatusOK, log)
}

// ListLogs returns logs for ?date=YYYY-MM-DD, defaulting to today.
func (ctl *LogController) ListLogs(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, use YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	logs, err := ctl.logs.GetForDate(user.ID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}

// MostLogged returns the frequency ranking over a trailing window
// (?days=30&limit=8).
func (ctl *LogController) MostLogged(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "8"))

	rows, err := ctl.logs.GetMostLogged(user.ID, days, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}
