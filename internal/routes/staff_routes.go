package routes

import (
	"smartcoach/internal/controllers"
	"smartcoach/internal/middleware"
	"smartcoach/internal/models"

	"github.com/gin-gonic/gin"
)

// Admins keep access to the triage endpoints alongside staff.
func StaffRoutes(r *gin.Engine) {
	staff := r.Group("/staff")
	staff.Use(middleware.RequireAuthWithRole(models.RoleStaff, models.RoleAdmin))
	{
		staff.GET("/defects", controllers.ListDefects)
		staff.PUT("/defects/:id/status", controllers.UpdateDefectStatus)
	}
}
