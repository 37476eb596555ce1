package main

import (
	_ "fren_docs/docs"
	"fren_docs/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Fren Document Service API
// @version         1.0
// @description     Contract and quotation generator (master agreements, order contracts, quotations) with a spreadsheet-backed ledger.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey AccessKey
// @in header
// @name X-Access-Key
// @description Shared ledger access key.

func main() {
	routes.Run()
}
