package routes

import (
	"smartcoach/internal/controllers"
	"smartcoach/internal/middleware"
	"smartcoach/internal/models"

	"github.com/gin-gonic/gin"
)

func AdminRoutes(r *gin.Engine) {
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAuthWithRole(models.RoleAdmin))
	{
		admin.GET("/dashboard", controllers.AdminDashboard)
		admin.POST("/staff", controllers.RegisterStaff)
		admin.POST("/trains", controllers.CreateTrain)
		admin.DELETE("/trains/:id", controllers.DeleteTrain)
		admin.POST("/trains/:id/coaches", controllers.CreateCoach)
		admin.DELETE("/coaches/:id", controllers.DeleteCoach)
	}
}
