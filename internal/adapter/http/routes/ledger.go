package routes

import (
	"fren_docs/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDrafts    = "/drafts"
	PathPreview   = "/preview"
	PathEdits     = "/edits"
	PathEstimates = "/estimates"
	PathExport    = "/export"
)

func addLedgerRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, exportHandler *handlers.ExportHandler) {
	rg.POST(PathDrafts, estimateHandler.NewDraft)
	rg.POST(PathPreview, estimateHandler.Preview)
	rg.POST(PathEdits, estimateHandler.Edit)

	estimates := rg.Group(PathEstimates)
	{
		estimates.GET("", estimateHandler.List)
		estimates.POST("", estimateHandler.Save)
		estimates.DELETE("/:id", estimateHandler.Delete)
	}

	export := rg.Group(PathExport)
	{
		export.GET("/csv", exportHandler.CSV)
		export.GET("/xlsx", exportHandler.XLSX)
	}
}
