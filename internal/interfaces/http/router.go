package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	catalogUC "github.com/rasu25115/pickme/internal/application/catalog/usecases"
	credentialUC "github.com/rasu25115/pickme/internal/application/credential/usecases"
	rateplanUC "github.com/rasu25115/pickme/internal/application/rateplan/usecases"
	"github.com/rasu25115/pickme/internal/infrastructure/config"
	"github.com/rasu25115/pickme/internal/infrastructure/ratelimit"
	"github.com/rasu25115/pickme/internal/infrastructure/repository"
	"github.com/rasu25115/pickme/internal/interfaces/http/handlers"
	"github.com/rasu25115/pickme/internal/interfaces/http/middleware"
	"github.com/rasu25115/pickme/internal/shared/db"
	"github.com/rasu25115/pickme/internal/shared/logger"
)

// Router wires repositories, use cases and handlers into a Gin engine.
type Router struct {
	engine      *gin.Engine
	cfg         *config.Config
	database    *gorm.DB
	redisClient *redis.Client
	logger      logger.Interface
}

// NewRouter creates a router. redisClient may be nil, in which case rate
// limiting is disabled.
func NewRouter(cfg *config.Config, database *gorm.DB, redisClient *redis.Client, log logger.Interface) *Router {
	return &Router{
		engine:      gin.New(),
		cfg:         cfg,
		database:    database,
		redisClient: redisClient,
		logger:      log,
	}
}

// SetupRoutes registers middleware and all admin API routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	var limiter ratelimit.RateLimiter
	if r.redisClient != nil {
		limiter = ratelimit.NewRedisRateLimiter(r.redisClient)
	} else {
		limiter = ratelimit.NewNoopRateLimiter()
	}
	limits := ratelimit.Limits{
		RequestsPerMinute: r.cfg.RateLimit.RequestsPerMinute,
		RequestsPerHour:   r.cfg.RateLimit.RequestsPerHour,
	}

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiRepo := repository.NewAPIRepository(r.database, r.logger)
	keyRepo := repository.NewAPIKeyRepository(r.database, r.logger)
	planRepo := repository.NewRatePlanRepository(r.database, r.logger)
	entRepo := repository.NewPlanAPIRepository(r.database, r.logger)
	txManager := db.NewTransactionManager(r.database)

	creditRate := r.cfg.Billing.CreditRate
	usageCap := r.cfg.Billing.UsageCap

	apiHandler := handlers.NewAPIHandler(
		catalogUC.NewCreateAPIUseCase(apiRepo, r.logger),
		catalogUC.NewUpdateAPIUseCase(apiRepo, r.logger),
		catalogUC.NewDeleteAPIUseCase(apiRepo, r.logger),
		catalogUC.NewGetAPIUseCase(apiRepo, r.logger),
		catalogUC.NewListAPIsUseCase(apiRepo, r.logger),
		catalogUC.NewGetCatalogStatsUseCase(apiRepo, r.logger),
	)

	keyHandler := handlers.NewAPIKeyHandler(
		credentialUC.NewCreateAPIKeyUseCase(keyRepo, usageCap, r.logger),
		credentialUC.NewUpdateAPIKeyUseCase(keyRepo, usageCap, r.logger),
		credentialUC.NewDeleteAPIKeyUseCase(keyRepo, r.logger),
		credentialUC.NewToggleKeyStatusUseCase(keyRepo, usageCap, r.logger),
		credentialUC.NewListAPIKeysUseCase(keyRepo, usageCap, r.logger),
		credentialUC.NewRevealAPIKeyUseCase(keyRepo, r.logger),
		credentialUC.NewGetKeyStatsUseCase(keyRepo, r.logger),
		credentialUC.NewRecordKeyUsageUseCase(keyRepo, usageCap, r.logger),
	)

	planHandler := handlers.NewRatePlanHandler(
		rateplanUC.NewCreatePlanUseCase(planRepo, entRepo, apiRepo, txManager, creditRate, r.logger),
		rateplanUC.NewUpdatePlanUseCase(planRepo, entRepo, apiRepo, txManager, creditRate, r.logger),
		rateplanUC.NewDeletePlanUseCase(planRepo, entRepo, txManager, r.logger),
		rateplanUC.NewGetPlanUseCase(planRepo, entRepo, apiRepo, r.logger),
		rateplanUC.NewListPlansUseCase(planRepo, entRepo, r.logger),
		rateplanUC.NewGetPlanStatsUseCase(planRepo, r.logger),
	)

	v1 := r.engine.Group("/api/v1")
	v1.Use(middleware.RateLimit(limiter, limits))
	{
		apis := v1.Group("/apis")
		{
			apis.GET("", apiHandler.ListAPIs)
			apis.POST("", apiHandler.CreateAPI)
			apis.GET("/stats", apiHandler.GetCatalogStats)
			apis.GET("/:id", apiHandler.GetAPI)
			apis.PUT("/:id", apiHandler.UpdateAPI)
			apis.DELETE("/:id", apiHandler.DeleteAPI)
		}

		keys := v1.Group("/api-keys")
		{
			keys.GET("", keyHandler.ListAPIKeys)
			keys.POST("", keyHandler.CreateAPIKey)
			keys.GET("/stats", keyHandler.GetKeyStats)
			keys.PUT("/:id", keyHandler.UpdateAPIKey)
			keys.DELETE("/:id", keyHandler.DeleteAPIKey)
			keys.POST("/:id/toggle", keyHandler.ToggleAPIKeyStatus)
			keys.POST("/:id/usage", keyHandler.RecordAPIKeyUsage)
			keys.GET("/:id/secret", keyHandler.RevealAPIKey)
		}

		plans := v1.Group("/rate-plans")
		{
			plans.GET("", planHandler.ListRatePlans)
			plans.POST("", planHandler.CreateRatePlan)
			plans.GET("/stats", planHandler.GetPlanStats)
			plans.GET("/:id", planHandler.GetRatePlan)
			plans.PUT("/:id", planHandler.UpdateRatePlan)
			plans.DELETE("/:id", planHandler.DeleteRatePlan)
		}
	}
}

// GetEngine returns the underlying Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
