package route

import (
	"github.com/gin-gonic/gin"
	"github.com/psucert/certserve/internal/controller"
	"github.com/psucert/certserve/internal/middleware"
)

func Admin_Courses(r *gin.RouterGroup, cc *controller.CourseController, middleware *middleware.Middleware) {
	admin := r.Group("/admin")
	{
		admin.GET("/courses", cc.GetCourses)
		admin.POST("/courses", middleware.AuthMiddleware, cc.AddCourse)
		admin.DELETE("/courses/:id", middleware.AuthMiddleware, cc.DeleteCourse)
	}
}
