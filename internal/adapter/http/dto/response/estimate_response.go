package response

import (
	"fren_docs/internal/domain/entities"
	"fren_docs/internal/domain/totals"
)

// EstimateResponse is one record as the dashboard consumes it: the full
// record inline plus the derived tax-exclusive total, matching the shape the
// ledger stores.
type EstimateResponse struct {
	entities.Estimate
	TotalAmount int64 `json:"totalAmount"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	e = e.Normalized()
	return EstimateResponse{
		Estimate:    e,
		TotalAmount: totals.Compute(e.Items, e.Discount, e.TaxRate).TaxExclusive,
	}
}

func FromEstimates(list []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromEstimate(e))
	}
	return out
}
