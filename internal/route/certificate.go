package route

import (
	"github.com/gin-gonic/gin"
	"github.com/psucert/certserve/internal/controller"
	"github.com/psucert/certserve/internal/middleware"
)

func Admin_Certificates(r *gin.RouterGroup, cc *controller.CertificateController, middleware *middleware.Middleware) {
	admin := r.Group("/admin")
	{
		admin.GET("/certificates", middleware.AuthMiddleware, cc.GetAllCertificates)
		admin.POST("/certificates", middleware.AuthMiddleware, cc.IssueCertificate)
		admin.GET("/certificates/:id", cc.GetCertificateDetails)
		admin.GET("/certificates/:id/download", cc.DownloadCertificate)
		admin.POST("/certificates/:id/regenerate", middleware.AuthMiddleware, cc.RegenerateArtifacts)

		// The one fully public read path: certificate numbers exist to be
		// verified by third parties.
		admin.GET("/verify-number/:certificateNumber", cc.VerifyCertificateByNumber)
	}
}
