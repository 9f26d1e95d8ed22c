package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/psucert/certserve/internal/config"
	"github.com/psucert/certserve/internal/constant"
	"github.com/psucert/certserve/internal/util"
	"go.uber.org/zap"
)

type JWT struct {
	logger    *zap.SugaredLogger
	jwtSecret string
}

type JWTInterface interface {
	GenerateRefreshAndAccessToken(payload JWTPayload) (*string, *string, error)
	VerifyJwtToken(token string) (*JWTClaims, error)
}

func NewJwt(cfg config.AuthConfig, logger *zap.SugaredLogger) *JWT {
	// For unit test
	if logger == nil {
		logger = util.NewLogger()
	}

	return &JWT{
		jwtSecret: cfg.JWT_SECRET,
		logger:    logger,
	}
}

type JWTPayload struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type JWTClaims struct {
	Admin JWTPayload `json:"admin"`
	Type  string     `json:"type"`
	IAT   int64      `json:"iat"`
	EXP   int64      `json:"exp"`
}

// Return refreshToken, accessToken, error
func (j JWT) GenerateRefreshAndAccessToken(payload JWTPayload) (*string, *string, error) {
	j.logger.Debugf("Generate refresh and access token for admin: %s", payload.Username)

	refreshClaims := jwt.MapClaims{
		"admin": payload,
		"type":  constant.JWT_TYPE_REFRESH,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(7 * 24 * time.Hour).Unix(),
	}
	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshToken, err := refresh.SignedString([]byte(j.jwtSecret))
	if err != nil {
		return nil, nil, err
	}

	accessClaims := jwt.MapClaims{
		"admin": payload,
		"type":  constant.JWT_TYPE_ACCESS,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(1 * time.Hour).Unix(),
	}
	access := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessToken, err := access.SignedString([]byte(j.jwtSecret))
	if err != nil {
		return nil, nil, err
	}

	return &refreshToken, &accessToken, nil
}

func (j JWT) VerifyJwtToken(token string) (*JWTClaims, error) {
	claims := jwt.MapClaims{}
	parsedToken, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(j.jwtSecret), nil
	})
	if err != nil {
		j.logger.Debugf("Failed to verify jwt token. Error: %v", err)
		return nil, err
	}

	if !parsedToken.Valid {
		j.logger.Debug("Jwt token is not valid")
		return nil, errors.New("jwt token is not valid")
	}

	admin, ok := claims["admin"].(map[string]interface{})
	if !ok {
		return nil, errors.New("invalid token: admin field is missing or malformed")
	}

	id, ok := admin["id"].(float64)
	if !ok {
		return nil, errors.New("invalid token: admin id is missing or malformed")
	}

	username, ok := admin["username"].(string)
	if !ok {
		return nil, errors.New("invalid token: admin username is missing or malformed")
	}

	tokenType, ok := claims["type"].(string)
	if !ok {
		return nil, errors.New("invalid token: type field is missing or malformed")
	}

	return &JWTClaims{
		Admin: JWTPayload{
			ID:       uint(id),
			Username: username,
		},
		Type: tokenType,
		IAT:  int64(claims["iat"].(float64)),
		EXP:  int64(claims["exp"].(float64)),
	}, nil
}
