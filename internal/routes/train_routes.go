package routes

import (
	"smartcoach/internal/controllers"

	"github.com/gin-gonic/gin"
)

// Train listing and the per-train coach lookup stay public; the report
// form loads them before any selection is made.
func TrainRoutes(r *gin.Engine) {
	trains := r.Group("/trains")
	{
		trains.GET("", controllers.ListTrains)
		trains.GET("/:id/coaches", controllers.GetCoaches)
	}
}
