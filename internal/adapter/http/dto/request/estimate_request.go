package request

import (
	"strings"

	"fren_docs/internal/domain/entities"
	"fren_docs/internal/usecase"
)

// SaveEstimateRequest carries one full record. The wire shape is the record
// itself; the dashboard round-trips exactly what the editor holds.
type SaveEstimateRequest struct {
	entities.Estimate
}

// Record returns the bound record.
func (r SaveEstimateRequest) Record() entities.Estimate {
	return r.Estimate
}

// EditRequest applies one form mutation to the record it carries.
type EditRequest struct {
	Record entities.Estimate `json:"record"`
	Op     usecase.EditOp    `json:"op"`
}

// Validate reports whether the request names an action at all. Actions the
// use case does not know are rejected there, with a richer error.
func (r EditRequest) Validate() bool {
	return strings.TrimSpace(string(r.Op.Action)) != ""
}
