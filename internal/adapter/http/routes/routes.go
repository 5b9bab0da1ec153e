package routes

import (
	"log"
	"os"
	"strconv"
	"time"

	_ "datebook_funnel/docs" // This will be auto-generated
	"datebook_funnel/internal/adapter/http/handlers"
	repository2 "datebook_funnel/internal/adapter/persistence/repository"
	"datebook_funnel/internal/funnel"
	"datebook_funnel/internal/infrastructure/database"
	"datebook_funnel/internal/infrastructure/payments"
	"datebook_funnel/internal/logger"
	"datebook_funnel/internal/usecase"
	"datebook_funnel/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	slugConfigRepo := repository2.NewSlugConfigDynamoRepository(ddb)
	chargeRepo := repository2.NewChargeDynamoRepository(ddb)
	siteSlugRepo := repository2.NewSiteSlugDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	asaasGateway, err := payments.NewAsaasGateway(os.Getenv("ASAAS_API_KEY"), logger.New("[asaas]"))
	if err != nil {
		log.Printf("Asaas gateway not configured: %v", err)
	} else {
		paymentGateway = asaasGateway
	}

	slugConfigUseCase := usecase.NewSlugConfigUseCase(slugConfigRepo)
	registrationUseCase := usecase.NewRegistrationUseCase(slugConfigRepo, siteSlugRepo, paymentGateway)
	paymentUseCase := usecase.NewPaymentUseCase(chargeRepo, paymentGateway)

	watcher := funnel.NewStatusPoller(pollInterval(), pollTimeout(), logger.New("[watcher]"))

	slugConfigHandler := handlers.NewSlugConfigHandler(slugConfigUseCase)
	registrationHandler := handlers.NewRegistrationHandler(registrationUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase, watcher)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addFunnelRoutes(v1, slugConfigHandler, registrationHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func pollInterval() time.Duration {
	return durationFromEnv("PAYMENT_POLL_INTERVAL", funnel.DefaultPollInterval)
}

func pollTimeout() time.Duration {
	return durationFromEnv("PAYMENT_POLL_TIMEOUT", funnel.DefaultPollTimeout)
}

func durationFromEnv(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %s", key, v, def)
		return def
	}
	return d
}
