package routes

import (
	"context"
	"os"

	_ "payment_gateway_client/docs"
	"payment_gateway_client/internal/adapter/http/handlers"
	"payment_gateway_client/internal/adapter/persistence/repository"
	"payment_gateway_client/internal/config"
	"payment_gateway_client/internal/gateway"
	"payment_gateway_client/internal/infrastructure/database"
	"payment_gateway_client/internal/infrastructure/logging"
	"payment_gateway_client/internal/usecase"
	"payment_gateway_client/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const defaultPort = "8080"

// Dependencies are the collaborators the router is built from.
type Dependencies struct {
	Gateway       gateway.IGateway
	Notifications usecase.INotificationUseCase
	Logger        *zap.Logger
}

// Run will start the server
func Run() {
	logger, err := logging.New(os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL"))
	if err != nil {
		logger = zap.NewExample()
		logger.Warn("[app] invalid LOG_LEVEL, using defaults", zap.Error(err))
	}
	defer func() { _ = logger.Sync() }()

	cfg := config.Load()
	if _, err := cfg.Credentials(); err != nil {
		// Calls fail fast with a configuration error until credentials exist.
		logger.Warn("[app] gateway credentials not configured", zap.Error(err))
	}

	router := NewRouter(Dependencies{
		Gateway:       gateway.NewFromConfig(cfg, logger),
		Notifications: usecase.NewNotificationUseCase(notificationRepository(logger), logger),
		Logger:        logger,
	})

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = defaultPort
	}
	logger.Info("[app] listening", zap.String("port", port))
	if err := router.Run(":" + port); err != nil {
		logger.Fatal("[app] failed to start the application", zap.Error(err))
	}
}

// NewRouter registers every route on a fresh engine.
func NewRouter(deps Dependencies) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addGatewayRoutes(v1,
		handlers.NewPaymentHandler(deps.Gateway, logger),
		handlers.NewRecurringHandler(deps.Gateway, logger),
	)
	addNotificationRoutes(v1, handlers.NewNotificationHandler(deps.Notifications, logger))
	return router
}

// notificationRepository returns nil when DynamoDB is unreachable; the
// notification routes then answer 503 while payments keep working.
func notificationRepository(logger *zap.Logger) interfaces.INotificationRepository {
	ddb, err := database.NewDynamoDBClient(context.Background())
	if err != nil {
		logger.Error("[app] dynamodb not configured, notifications disabled", zap.Error(err))
		return nil
	}
	return repository.NewNotificationDynamoRepository(ddb)
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("[app] recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(500)
	}))
}
