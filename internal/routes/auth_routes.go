package routes

import (
	"smartcoach/internal/controllers"
	"smartcoach/internal/middleware"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.RegisterPassenger)
		auth.POST("/login", controllers.LoginUser)
		auth.POST("/logout", middleware.RequireAuth(), controllers.LogoutUser)
	}
}
