package routes

import (
	"log"
	"os"
	"strconv"

	_ "caterlane/docs" // This will be auto-generated
	"caterlane/internal/adapter/http/handlers"
	repository2 "caterlane/internal/adapter/persistence/repository"
	"caterlane/internal/infrastructure/database"
	"caterlane/internal/infrastructure/payments"
	"caterlane/internal/usecase"
	"caterlane/internal/usecase/interfaces"

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

	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb)
	paymentRepo := repository2.NewBookingPaymentDynamoRepository(ddb)

	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, ratesFromEnv())

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	paymentUseCase := usecase.NewBookingPaymentUseCase(paymentRepo, invoiceRepo, paymentGateway)

	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)
	bookingPaymentHandler := handlers.NewBookingPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addInvoiceRoutes(v1, invoiceHandler, bookingPaymentHandler)
}

func ratesFromEnv() usecase.Rates {
	return usecase.Rates{
		ServiceFeePercent: floatFromEnv("SERVICE_FEE_PERCENT", 5),
		TaxRatePercent:    floatFromEnv("TAX_RATE_PERCENT", 0),
	}
}

func floatFromEnv(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %.2f", key, raw, fallback)
		return fallback
	}
	return v
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
