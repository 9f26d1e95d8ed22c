package util

import (
	"github.com/gin-gonic/gin"
)

// The wire format is intentionally flat: success responses are the payload
// itself and failures are {"message": "..."}. The public verification
// front-end and the admin dashboard both consume this shape.

func ResponseJSON(ctx *gin.Context, code int, data any) {
	if data == nil {
		data = gin.H{}
	}

	ctx.JSON(code, data)
	ctx.Abort()
}

// ResponseMessage writes {"message": message} with the given status code.
// Used for both failures and write confirmations.
func ResponseMessage(ctx *gin.Context, code int, message string) {
	ctx.JSON(code, gin.H{"message": message})
	ctx.Abort()
}
