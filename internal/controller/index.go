package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/psucert/certserve/internal/util"
)

type IndexController struct {
	*baseController
}

func (ic IndexController) Index(ctx *gin.Context) {
	util.ResponseJSON(ctx, http.StatusOK, gin.H{
		"service": "certserve",
		"status":  "ok",
	})
}
