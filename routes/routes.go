package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lia-dsgnr/calo-tracker/controllers"
	"github.com/lia-dsgnr/calo-tracker/middlewares"
	"github.com/lia-dsgnr/calo-tracker/services"
)

// SetupRouter wires services and controllers over the shared handle.
func SetupRouter(db *gorm.DB) *gin.Engine {
	userSvc := services.NewUserService(db)
	foodSvc := services.NewFoodService(db)
	logSvc := services.NewLogService(db)
	favoriteSvc := services.NewFavoriteService(db)
	historySvc := services.NewSearchHistoryService(db)
	templateSvc := services.NewTemplateService(db)
	statsSvc := services.NewStatsService(db)
	progressSvc := services.NewProgressService(logSvc, userSvc)
	hub := services.NewRealtimeHub()

	users := controllers.NewUserController(userSvc)
	foods := controllers.NewFoodController(foodSvc)
	logs := controllers.NewLogController(logSvc, hub)
	favorites := controllers.NewFavoriteController(favoriteSvc)
	searches := controllers.NewSearchController(foodSvc, historySvc)
	templates := controllers.NewTemplateController(templateSvc, logSvc, hub)
	stats := controllers.NewStatsController(statsSvc)
	progress := controllers.NewProgressController(progressSvc)
	realtime := controllers.NewRealtimeController(hub)

	r := gin.Default()
	r.Use(middlewares.ResolveUser(userSvc))

	r.GET("/profile", users.GetProfile)
	r.POST("/profile", users.CreateProfile)
	r.PUT("/profile/goals", users.UpdateGoals)

	food := r.Group("/foods")
	{
		food.GET("/system", foods.ListSystemFoods)
		food.GET("/system/:id", foods.GetSystemFood)
		food.GET("/custom", foods.ListCustomFoods)
		food.POST("/custom", foods.CreateCustomFood)
		food.PUT("/custom/:id", foods.UpdateCustomFood)
		food.DELETE("/custom/:id", foods.DeleteCustomFood)
	}

	log := r.Group("/logs")
	{
		log.GET("", logs.ListLogs)
		log.POST("", logs.CreateLog)
		log.GET("/most-logged", logs.MostLogged)
		log.GET("/:id", logs.GetLog)
		log.DELETE("/:id", logs.DeleteLog)
		log.POST("/:id/restore", logs.RestoreLog)
	}

	favorite := r.Group("/favorites")
	{
		favorite.GET("", favorites.List)
		favorite.POST("", favorites.Add)
		favorite.DELETE("", favorites.Remove)
		favorite.POST("/toggle", favorites.Toggle)
		favorite.PUT("/order", favorites.Reorder)
	}

	searchGroup := r.Group("/search")
	{
		searchGroup.GET("", searches.Search)
		searchGroup.GET("/recent", searches.RecentSearches)
		searchGroup.POST("/recent", searches.SaveRecentSearch)
		searchGroup.DELETE("/recent/:id", searches.DeleteRecentSearch)
		searchGroup.DELETE("/recent", searches.ClearRecentSearches)
	}

	template := r.Group("/templates")
	{
		template.GET("", templates.List)
		template.POST("", templates.Create)
		template.GET("/:id", templates.Get)
		template.PUT("/:id", templates.Rename)
		template.DELETE("/:id", templates.Delete)
		template.POST("/:id/log", templates.LogAll)
	}

	statsGroup := r.Group("/stats")
	{
		statsGroup.GET("/streak", stats.Streak)
		statsGroup.GET("/weekly", stats.Weekly)
		statsGroup.GET("/monthly", stats.Monthly)
	}

	r.GET("/summary", progress.DailySummary)
	r.GET("/timeline", progress.Timeline)
	r.GET("/recent-items", progress.RecentItems)

	r.GET("/ws", realtime.Connect)

	return r
}
