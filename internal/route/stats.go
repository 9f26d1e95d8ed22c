package route

import (
	"github.com/gin-gonic/gin"
	"github.com/psucert/certserve/internal/controller"
	"github.com/psucert/certserve/internal/middleware"
)

func Admin_Stats(r *gin.RouterGroup, sc *controller.StatsController, middleware *middleware.Middleware) {
	admin := r.Group("/admin")
	{
		admin.GET("/stats", middleware.AuthMiddleware, sc.GetStats)
	}
}
