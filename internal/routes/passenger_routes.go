package routes

import (
	"smartcoach/internal/controllers"
	"smartcoach/internal/middleware"
	"smartcoach/internal/models"

	"github.com/gin-gonic/gin"
)

func PassengerRoutes(r *gin.Engine) {
	passenger := r.Group("/passenger")
	passenger.Use(middleware.RequireAuthWithRole(models.RolePassenger))
	{
		passenger.POST("/defects", controllers.ReportDefects)
		passenger.GET("/defects", controllers.MyDefects)
	}
}
