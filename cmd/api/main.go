package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	appcontext "github.com/psucert/certserve/internal/app_context"
	"github.com/psucert/certserve/internal/auth"
	"github.com/psucert/certserve/internal/config"
	"github.com/psucert/certserve/internal/controller"
	"github.com/psucert/certserve/internal/database"
	"github.com/psucert/certserve/internal/env"
	"github.com/psucert/certserve/internal/middleware"
	ratelimiter "github.com/psucert/certserve/internal/rate_limiter"
	"github.com/psucert/certserve/internal/repository"
	"github.com/psucert/certserve/internal/route"
	"github.com/psucert/certserve/internal/service"
	"github.com/psucert/certserve/internal/util"
	"github.com/psucert/certserve/pkg/certgen"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()

	logger := util.NewLogger(cfg.ENV)
	logger.Debugf("Configuration: %+v \n", cfg)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	sqlDb, err := db.DB()
	if err != nil {
		logger.Panic(err)
	}
	defer sqlDb.Close()
	logger.Info("Database connected \n")

	// Custom validation
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("strNotEmpty", util.StrNotEmpty); err != nil {
			return
		}
	}

	generator, err := certgen.NewGenerator(&certgen.Config{
		FrontendURL:  cfg.Certificate.FRONTEND_URL,
		CertDir:      cfg.Certificate.CertDir,
		QrDir:        cfg.Certificate.QrDir,
		SignatureDir: cfg.Certificate.SignatureDir,
		TmpDir:       util.GetTempDir(),
		FontPath:     cfg.Certificate.FontPath,
	})
	if err != nil {
		logger.Error("Error initializing certificate generator")
		logger.Panic(err)
	}

	rateLimiter := ratelimiter.NewRateLimiter(cfg.RateLimiter, logger)
	jwtService := auth.NewJwt(cfg.Auth, logger)
	repo := repository.NewRepository(db, logger)
	issuance := service.NewIssuanceService(repo.Certificate, repo.Course, generator, logger)

	app := appcontext.Application{
		Config:     &cfg,
		Repository: repo,
		Logger:     logger,
		Issuance:   issuance,
		JWTService: jwtService,
	}

	_middleware := middleware.NewMiddleware(&app, rateLimiter)

	if cfg.ENV == "production" {
		logger.Info("Running in production mode")
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// docs: https://github.com/gin-contrib/cors?tab=readme-ov-file#using-defaultconfig-as-start-point
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Requested-With", "Accept"}
	r.Use(cors.New(corsConfig))
	r.Use(_middleware.RateLimiterMiddleware)

	_controller := controller.NewController(&app)

	r.GET("/", _controller.Index.Index)

	route.Admin_Auth(&r.RouterGroup, _controller.Auth)
	route.Admin_Courses(&r.RouterGroup, _controller.Course, _middleware)
	route.Admin_Certificates(&r.RouterGroup, _controller.Certificate, _middleware)
	route.Admin_Stats(&r.RouterGroup, _controller.Stats, _middleware)

	if err := r.Run("0.0.0.0:" + app.Config.Port); err != nil {
		logger.Panic("Error running server: %v \n", err)
	}
}
