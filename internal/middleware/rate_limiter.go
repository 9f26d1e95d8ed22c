package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/psucert/certserve/internal/util"
)

func (m Middleware) RateLimiterMiddleware(ctx *gin.Context) {
	allow, retryAfter := m.rateLimiter.Allow(ctx.ClientIP())
	if !allow {
		ctx.Header("Retry-After", fmt.Sprintf("%.0f", retryAfter.Seconds()))
		util.ResponseMessage(ctx, http.StatusTooManyRequests, "Rate limit exceeded, retry later")
		return
	}

	ctx.Next()
}
