package handlers

import (
	"errors"
	"net/http"

	request "fren_docs/internal/adapter/http/dto/request"
	response "fren_docs/internal/adapter/http/dto/response"
	"fren_docs/internal/usecase"
	"fren_docs/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRecordPayload = pkg.NewDomainErrorSimple("INVALID_RECORD_INPUT", "Invalid estimate record payload", http.StatusBadRequest)
	errInvalidEditPayload   = pkg.NewDomainErrorSimple("INVALID_EDIT_INPUT", "Invalid edit payload", http.StatusBadRequest)
)

// EstimateHandler handles HTTP requests for the estimate lifecycle: drafts,
// previews, edits and the saved ledger.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// NewDraft hands out a fresh dated record seeded with the remembered
// provider, ready for the form.
func (h *EstimateHandler) NewDraft(c *gin.Context) {
	draft, err := h.usecase.NewDraft(c.Request.Context())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimate(draft))
}

// Preview projects the posted record into totals plus all three documents.
func (h *EstimateHandler) Preview(c *gin.Context) {
	var payload request.SaveEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRecordPayload.HTTPStatus, errInvalidRecordPayload.ToHTTPError())
		return
	}

	bundle, err := h.usecase.Preview(c.Request.Context(), payload.Record())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, bundle)
}

// Edit applies one form mutation to the posted record and echoes the result.
func (h *EstimateHandler) Edit(c *gin.Context) {
	var payload request.EditRequest
	if err := c.ShouldBindJSON(&payload); err != nil || !payload.Validate() {
		c.JSON(errInvalidEditPayload.HTTPStatus, errInvalidEditPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Edit(c.Request.Context(), payload.Record, payload.Op)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(updated))
}

// List returns every saved ledger record.
func (h *EstimateHandler) List(c *gin.Context) {
	records, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimates(records))
}

// Save upserts the posted record into the ledger.
func (h *EstimateHandler) Save(c *gin.Context) {
	var payload request.SaveEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRecordPayload.HTTPStatus, errInvalidRecordPayload.ToHTTPError())
		return
	}

	saved, err := h.usecase.Save(c.Request.Context(), payload.Record())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(saved))
}

// Delete removes one record from the ledger.
func (h *EstimateHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrRecordIDRequired),
		errors.Is(err, usecase.ErrInvalidEditPayload),
		errors.Is(err, usecase.ErrInvalidPatternKey),
		errors.Is(err, usecase.ErrUnknownEditAction):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	default:
		// Ledger failures carry operator-facing text from the sheet script;
		// keep it in the response body.
		return pkg.NewDomainError("LEDGER_ERROR", err.Error(), err, http.StatusBadGateway)
	}
}
