package controller

import (
	"errors"

	"github.com/gin-gonic/gin"
	appcontext "github.com/psucert/certserve/internal/app_context"
	"github.com/psucert/certserve/internal/auth"
)

type baseController struct {
	app *appcontext.Application
}

type Controller struct {
	Index       *IndexController
	Auth        *AuthController
	Course      *CourseController
	Certificate *CertificateController
	Stats       *StatsController
}

func newBaseController(app *appcontext.Application) *baseController {
	return &baseController{app: app}
}

func NewController(app *appcontext.Application) *Controller {
	bc := newBaseController(app)

	return &Controller{
		Index:       &IndexController{baseController: bc},
		Auth:        &AuthController{baseController: bc},
		Course:      &CourseController{baseController: bc},
		Certificate: &CertificateController{baseController: bc},
		Stats:       &StatsController{baseController: bc},
	}
}

func (b *baseController) getAuthAdmin(ctx *gin.Context) (*auth.JWTPayload, error) {
	admin, exists := ctx.Get("admin")
	if !exists {
		return nil, errors.New("admin not found in context")
	}

	payload, ok := admin.(auth.JWTPayload)
	if !ok {
		return nil, errors.New("admin payload has unexpected type")
	}

	return &payload, nil
}
