package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/psucert/certserve/internal/util"
)

type StatsController struct {
	*baseController
}

func (sc StatsController) GetStats(ctx *gin.Context) {
	total, err := sc.app.Repository.Certificate.Count(ctx, nil)
	if err != nil {
		sc.app.Logger.Errorf("Failed to count certificates: %v", err)
		util.ResponseMessage(ctx, http.StatusInternalServerError, "Failed to load stats")
		return
	}

	util.ResponseJSON(ctx, http.StatusOK, gin.H{"certificates": total})
}
