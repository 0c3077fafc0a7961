package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()

	// Routes snapshot the handler chain as they are registered, so
	// recovery and request logging must be attached first.
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	AuthRoutes(r)
	TrainRoutes(r)
	PassengerRoutes(r)
	StaffRoutes(r)
	AdminRoutes(r)

	return r
}
