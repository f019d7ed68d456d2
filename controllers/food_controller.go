package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lia-dsgnr/calo-tracker/middlewares"
	"github.com/lia-dsgnr/calo-tracker/models"
	"github.com/lia-dsgnr/calo-tracker/services"
	"github.com/lia-dsgnr/calo-tracker/utils"
)

type FoodController struct {
	foods *services.FoodService
}

func NewFoodController(foods *services.FoodService) *FoodController {
	return &FoodController{foods: foods}
}

// ListSystemFoods returns the catalog, optionally one category.
func (ctl *FoodController) ListSystemFoods(c *gin.Context) {
	var (
		foods []models.SystemFood
		err   error
	)
	if category := c.Query("category"); category != "" {
		foods, err = ctl.foods.GetSystemFoodsByCategory(models.FoodCategory(category))
	} else {
		foods, err = ctl.foods.GetAllSystemFoods()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, foods)
}

func (ctl *FoodController) GetSystemFood(c *gin.Context) {
	food, err := ctl.foods.GetSystemFoodByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if food == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
		return
	}
	c.JSON(http.StatusOK, food)
}

func (ctl *FoodController) ListCustomFoods(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	foods, err := ctl.foods.GetCustomFoodsByUser(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	count, err := ctl.foods.GetCustomFoodCount(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"foods": foods,
		"count": count,
		"limit": models.MaxCustomFoodsPerUser,
	})
}

func (ctl *FoodController) CreateCustomFood(c *gin.Context) {
	var body services.CustomFoodInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if problems := utils.ValidateManualEntry(body.Name, body.Kcal, body.Protein, body.Carbs, body.Fat); len(problems) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry", "problems": problems})
		return
	}

	user := middlewares.CurrentUser(c)
	food, err := ctl.foods.CreateCustomFood(user.ID, body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if food == nil {
		c.JSON(http.StatusConflict, gin.H{
			"error": "custom food limit reached",
			"limit": models.MaxCustomFoodsPerUser,
		})
		return
	}
	c.JSON(http.StatusCreated, food)
}

func (ctl *FoodController) UpdateCustomFood(c *gin.Context) {
	var body services.CustomFoodInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if problems := utils.ValidateManualEntry(body.Name, body.Kcal, body.Protein, body.Carbs, body.Fat); len(problems) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry", "problems": problems})
		return
	}

	user := middlewares.CurrentUser(c)
	food, err := ctl.foods.UpdateCustomFood(user.ID, c.Param("id"), body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if food == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "custom food not found"})
		return
	}
	c.JSON(http.StatusOK, food)
}

func (ctl *FoodController) DeleteCustomFood(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	if err := ctl.foods.DeleteCustomFood(user.ID, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
