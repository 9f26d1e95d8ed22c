package route

import (
	"github.com/gin-gonic/gin"
	"github.com/psucert/certserve/internal/controller"
)

func Admin_Auth(r *gin.RouterGroup, ac *controller.AuthController) {
	admin := r.Group("/admin")
	{
		admin.POST("/login", ac.Login)
		admin.POST("/refresh", ac.RefreshAccessToken)
	}
}
