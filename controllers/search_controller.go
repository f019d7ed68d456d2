package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lia-dsgnr/calo-tracker/middlewares"
	"github.com/lia-dsgnr/calo-tracker/pkg/search"
	"github.com/lia-dsgnr/calo-tracker/services"
)

type SearchController struct {
	foods   *services.FoodService
	history *services.SearchHistoryService
}

func NewSearchController(foods *services.FoodService, history *services.SearchHistoryService) *SearchController {
	return &SearchController{foods: foods, history: history}
}

type searchHit struct {
	services.CombinedResult
	Segments []search.Segment `json:"segments"`
}

// Search ranks system and custom foods against ?q=, attaching
// highlight segments for the display name.
func (ctl *SearchController) Search(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	query := c.Query("q")

	results, err := ctl.foods.SearchAll(user.ID, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	hits := make([]searchHit, 0, len(results))
	for _, r := range results {
		hits = append(hits, searchHit{
			CombinedResult: r,
			Segments:       search.Highlight(r.Food.NameVi, query),
		})
	}
	c.JSON(http.StatusOK, gin.H{"query": query, "results": hits})
}

func (ctl *SearchController) RecentSearches(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	rows, err := ctl.history.Recent(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (ctl *SearchController) SaveRecentSearch(c *gin.Context) {
	var body struct {
		Term string `json:"term"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middlewares.CurrentUser(c)
	saved, err := ctl.history.Add(user.ID, body.Term)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if saved == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "term is empty"})
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (ctl *SearchController) DeleteRecentSearch(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := ctl.history.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (ctl *SearchController) ClearRecentSearches(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	if err := ctl.history.Clear(user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
