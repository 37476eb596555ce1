package interfaces

import (
	"context"

	"fren_docs/internal/domain/entities"
)

// ILedgerRepository abstracts the estimate ledger.
//
// The document service must be able to:
//   - list every saved record for the dashboard
//   - upsert a record together with its snapshot total
//   - delete a record by its identifier
//
// Save carries the tax-exclusive total separately because the ledger persists
// it as a denormalized column; the record itself never stores totals.

type ILedgerRepository interface {
	List(ctx context.Context) ([]entities.Estimate, error)
	Save(ctx context.Context, e entities.Estimate, totalAmount int64) error
	Delete(ctx context.Context, id string) error
}
