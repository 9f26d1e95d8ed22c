package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/psucert/certserve/internal/auth"
	"github.com/psucert/certserve/internal/constant"
	"github.com/psucert/certserve/internal/util"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	*baseController
}

func (ac AuthController) Login(ctx *gin.Context) {
	type LoginRequest struct {
		Username string `json:"username" binding:"required,strNotEmpty"`
		Password string `json:"password" binding:"required,strNotEmpty"`
	}

	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ResponseMessage(ctx, http.StatusBadRequest, "Username and password are required")
		return
	}

	admin, err := ac.app.Repository.Admin.GetByUsername(ctx, nil, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseMessage(ctx, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		ac.app.Logger.Errorf("Failed to look up admin: %v", err)
		util.ResponseMessage(ctx, http.StatusInternalServerError, "Login failed")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		util.ResponseMessage(ctx, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	refreshToken, accessToken, err := ac.app.JWTService.GenerateRefreshAndAccessToken(auth.JWTPayload{
		ID:       admin.ID,
		Username: admin.Username,
	})
	if err != nil {
		ac.app.Logger.Errorf("Failed to generate tokens: %v", err)
		util.ResponseMessage(ctx, http.StatusInternalServerError, "Login failed")
		return
	}

	util.ResponseJSON(ctx, http.StatusOK, gin.H{
		"token":         accessToken,
		"refresh_token": refreshToken,
	})
}

// RefreshAccessToken exchanges a refresh token (Authorization: Refresh <jwt>)
// for a fresh token pair.
func (ac AuthController) RefreshAccessToken(ctx *gin.Context) {
	refreshToken, err := util.ReadRefreshToken(ctx)
	if err != nil {
		util.ResponseMessage(ctx, http.StatusUnauthorized, "Missing or malformed refresh token")
		return
	}

	claims, err := ac.app.JWTService.VerifyJwtToken(refreshToken)
	if err != nil {
		util.ResponseMessage(ctx, http.StatusUnauthorized, "Invalid refresh token")
		return
	}

	if claims.Type != constant.JWT_TYPE_REFRESH {
		util.ResponseMessage(ctx, http.StatusUnauthorized, "Invalid refresh token type")
		return
	}

	newRefreshToken, newAccessToken, err := ac.app.JWTService.GenerateRefreshAndAccessToken(claims.Admin)
	if err != nil {
		ac.app.Logger.Errorf("Failed to refresh tokens: %v", err)
		util.ResponseMessage(ctx, http.StatusInternalServerError, "Failed to refresh token")
		return
	}

	util.ResponseJSON(ctx, http.StatusOK, gin.H{
		"token":         newAccessToken,
		"refresh_token": newRefreshToken,
	})
}
