package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lia-dsgnr/calo-tracker/middlewares"
	"github.com/lia-dsgnr/calo-tracker/models"
	"github.com/lia-dsgnr/calo-tracker/services"
)

type TemplateController struct {
	templates *services.TemplateService
	logs      *services.LogService
	hub       *services.RealtimeHub
}

func NewTemplateController(templates *services.TemplateService, logs *services.LogService, hub *services.RealtimeHub) *TemplateController {
	return &TemplateController{templates: templates, logs: logs, hub: hub}
}

func (ctl *TemplateController) List(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	tmpls, err := ctl.templates.GetByUser(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tmpls)
}

func (ctl *TemplateController) Create(c *gin.Context) {
	var body struct {
		Name  string                       `json:"name"`
		Items []services.TemplateItemInput `json:"items"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middlewares.CurrentUser(c)
	tmpl, err := ctl.templates.Create(user.ID, body.Name, body.Items)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, tmpl)
}

func (ctl *TemplateController) Get(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	tmpl, err := ctl.templates.GetByID(user.ID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if tmpl == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
		return
	}
	c.JSON(http.StatusOK, tmpl)
}

func (ctl *TemplateController) Delete(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	if err := ctl.templates.Delete(user.ID, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (ctl *TemplateController) Rename(c *gin.Context) {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middlewares.CurrentUser(c)
	tmpl, err := ctl.templates.Rename(user.ID, c.Param("id"), body.Name)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if tmpl == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
		return
	}
	c.JSON(http.StatusOK, tmpl)
}

// LogAll records every item of a template as individual logs, all or
// nothing.
func (ctl *TemplateController) LogAll(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	tmpl, err := ctl.templates.GetByID(user.ID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if tmpl == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
		return
	}

	logs, err := ctl.logs.LogTemplate(user.ID, tmpl)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if logs == nil {
		c.JSON(http.StatusConflict, gin.H{
			"error": "daily log limit reached",
			"limit": models.MaxLogsPerDay,
		})
		return
	}

	ctl.hub.Broadcast(user.ID, services.Event{Type: "log.created", Payload: logs})
	c.JSON(http.StatusCreated, gin.H{"logs": logs, "count": len(logs)})
}
