package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/psucert/certserve/internal/constant"
	"github.com/psucert/certserve/internal/util"
)

// AuthMiddleware guards admin routes: requires a valid Bearer access token
// and stores the admin payload in the request context.
func (m Middleware) AuthMiddleware(ctx *gin.Context) {
	token, err := util.ReadBearerToken(ctx)
	if err != nil {
		m.app.Logger.Debugf("Failed to read token: %v", err)
		util.ResponseMessage(ctx, http.StatusUnauthorized, "Missing or malformed token")
		return
	}

	claim, err := m.app.JWTService.VerifyJwtToken(token)
	if err != nil {
		m.app.Logger.Debugf("Failed to verify token: %v", err)
		util.ResponseMessage(ctx, http.StatusUnauthorized, "Invalid token")
		return
	}

	if claim.Type != constant.JWT_TYPE_ACCESS {
		m.app.Logger.Debugf("Invalid token type: %s", claim.Type)
		util.ResponseMessage(ctx, http.StatusUnauthorized, "Invalid access token type")
		return
	}

	ctx.Set("admin", claim.Admin)
	ctx.Next()
}
