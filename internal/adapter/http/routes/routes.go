package routes

import (
	"log"
	"os"
	"strconv"

	_ "fren_docs/docs" // This will be auto-generated
	"fren_docs/internal/adapter/http/handlers"
	"fren_docs/internal/adapter/http/middleware"
	repository2 "fren_docs/internal/adapter/persistence/repository"
	"fren_docs/internal/infrastructure/database"
	"fren_docs/internal/infrastructure/providerstore"
	"fren_docs/internal/usecase"
	"fren_docs/internal/usecase/interfaces"

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
	accessKey := os.Getenv("LEDGER_ACCESS_KEY")

	ledgerRepo := buildLedgerRepository(accessKey)
	providerStore := providerstore.NewFileStore(os.Getenv("PROVIDER_STORE_PATH"))

	estimateUseCase := usecase.NewEstimateUseCase(ledgerRepo, providerStore)
	exportUseCase := usecase.NewExportUseCase(ledgerRepo)

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	exportHandler := handlers.NewExportHandler(exportUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Everything below the gate requires the shared access key.
	v1.Use(middleware.AccessKey(accessKey))
	addLedgerRoutes(v1, estimateHandler, exportHandler)
}

// buildLedgerRepository selects the ledger backend from LEDGER_BACKEND:
// "dynamodb" for the DynamoDB table, anything else for the sheet API.
func buildLedgerRepository(accessKey string) interfaces.ILedgerRepository {
	if os.Getenv("LEDGER_BACKEND") == "dynamodb" {
		ddb := database.ConnectDynamoDB()
		return repository2.NewEstimateDynamoRepository(ddb)
	}

	repo, err := repository2.NewSheetAPIRepository(os.Getenv("SHEET_API_URL"), accessKey)
	if err != nil {
		log.Fatalf("Failed to configure the sheet ledger: %v", err.Error())
	}
	return repo
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
