package v1

import (
	"net/http"
	"recruitai-backend/config"
	"recruitai-backend/internal/delivery/http/middleware"
	"recruitai-backend/internal/delivery/http/response"
	"recruitai-backend/internal/domain"
	"recruitai-backend/internal/usecase"
	"recruitai-backend/pkg/auth"
	"recruitai-backend/pkg/validation"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	ScreeningUC   domain.ScreeningUsecase
	HealthUC      usecase.HealthUsecase
	Tokens        *auth.TokenManager
	Redis         *goredis.Client // nil falls back to in-process rate limiting
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	r := gin.New()
	r.MaxMultipartMemory = deps.Config.MaxResumeBytes

	globalLimit := middleware.NewRateLimiter(deps.Redis, middleware.RateLimitConfig{
		Limit:     deps.Config.RateLimitGlobalThreshold,
		Window:    deps.Config.RateLimitWindow(),
		KeyPrefix: "ratelimit:global:",
	})
	loginLimit := middleware.NewRateLimiter(deps.Redis, middleware.RateLimitConfig{
		Limit:     deps.Config.RateLimitLoginThreshold,
		Window:    deps.Config.RateLimitWindow(),
		KeyPrefix: "ratelimit:auth:",
	})
	uploadLimit := middleware.NewRateLimiter(deps.Redis, middleware.RateLimitConfig{
		Limit:     deps.Config.RateLimitUploadThreshold,
		Window:    deps.Config.RateLimitWindow(),
		KeyPrefix: "ratelimit:upload:",
		KeyFunc: func(c *gin.Context) string {
			return strconv.FormatInt(c.GetInt64(string(domain.KeyUserID)), 10)
		},
	})

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(globalLimit.Middleware())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		checks, ok := deps.HealthUC.Check(c.Request.Context())
		if !ok {
			response.Error(c, http.StatusServiceUnavailable, "System degraded", checks)
			return
		}
		response.Success(c, http.StatusOK, "System operational", checks)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))
	{
		NewAuthHandler(v1, protected, deps.AuthUC, deps.Tokens, loginLimit.Middleware())
		NewJobHandler(protected, deps.JobUC, deps.ApplicationUC, deps.Config.MaxResumeBytes, uploadLimit.Middleware())
		NewApplicationHandler(protected, deps.ApplicationUC)
		NewScreeningHandler(protected, deps.ScreeningUC)
	}

	return r
}
