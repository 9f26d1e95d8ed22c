package appcontext

import (
	"github.com/psucert/certserve/internal/auth"
	"github.com/psucert/certserve/internal/config"
	"github.com/psucert/certserve/internal/repository"
	"github.com/psucert/certserve/internal/service"
	"go.uber.org/zap"
)

// Application contains core dependencies for the app. Everything is wired
// explicitly in cmd/api/main.go; there is no process-global state.
type Application struct {
	// Config holds application settings provided from .env file.
	Config *config.Config

	Logger *zap.SugaredLogger

	// Repository provides access to data storage operations.
	Repository *repository.Repository

	// Issuance owns the certificate lifecycle: issue, regenerate, verify.
	Issuance *service.IssuanceService

	// JWTService manages JWT operations for admin authentication.
	JWTService auth.JWTInterface
}
