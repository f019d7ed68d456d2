package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lia-dsgnr/calo-tracker/middlewares"
	"github.com/lia-dsgnr/calo-tracker/models"
	"github.com/lia-dsgnr/calo-tracker/services"
)

type FavoriteController struct {
	favorites *services.FavoriteService
}

func NewFavoriteController(favorites *services.FavoriteService) *FavoriteController {
	return &FavoriteController{favorites: favorites}
}

type favoriteRequest struct {
	FoodType models.FoodType `json:"food_type"`
	FoodID   string          `json:"food_id"`
}

func (r *favoriteRequest) valid() bool {
	return r.FoodType.Valid() && r.FoodID != ""
}

func (ctl *FavoriteController) List(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	favs, err := ctl.favorites.GetByUser(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	count, err := ctl.favorites.Count(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"favorites": favs,
		"count":     count,
		"limit":     models.MaxFavoritesPerUser,
	})
}

func (ctl *FavoriteController) Add(c *gin.Context) {
	var body favoriteRequest
	if err := c.ShouldBindJSON(&body); err != nil || !body.valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "food_type and food_id are required"})
		return
	}

	user := middlewares.CurrentUser(c)
	fav, err := ctl.favorites.Add(user.ID, body.FoodType, body.FoodID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if fav == nil {
		c.JSON(http.StatusConflict, gin.H{
			"error": "favorite limit reached",
			"limit": models.MaxFavoritesPerUser,
		})
		return
	}
	c.JSON(http.StatusCreated, fav)
}

func (ctl *FavoriteController) Remove(c *gin.Context) {
	var body favoriteRequest
	if err := c.ShouldBindJSON(&body); err != nil || !body.valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "food_type and food_id are required"})
		return
	}

	user := middlewares.CurrentUser(c)
	if err := ctl.favorites.Remove(user.ID, body.FoodType, body.FoodID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Toggle flips favorite state and reports the result so the UI can
// stay in sync without a refetch.
func (ctl *FavoriteController) Toggle(c *gin.Context) {
	var body favoriteRequest
	if err := c.ShouldBindJSON(&body); err != nil || !body.valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "food_type and food_id are required"})
		return
	}

	user := middlewares.CurrentUser(c)
	was, err := ctl.favorites.IsFavorited(user.ID, body.FoodType, body.FoodID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	fav, err := ctl.favorites.Toggle(user.ID, body.FoodType, body.FoodID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if fav == nil && !was {
		// Add path hit the cap.
		c.JSON(http.StatusConflict, gin.H{
			"error": "favorite limit reached",
			"limit": models.MaxFavoritesPerUser,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorited": fav != nil, "favorite": fav})
}

type reorderRequest struct {
	OrderedIDs []string `json:"ordered_ids"`
}

func (ctl *FavoriteController) Reorder(c *gin.Context) {
	var body reorderRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middlewares.CurrentUser(c)
	if err := ctl.favorites.Reorder(user.ID, body.OrderedIDs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
