package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"fren_docs/internal/domain/documents"
	"fren_docs/internal/domain/editor"
	"fren_docs/internal/domain/entities"
	"fren_docs/internal/domain/totals"
	"fren_docs/internal/usecase/interfaces"
)

var (
	ErrRecordIDRequired   = errors.New("record id is required")
	ErrItemNotFound       = errors.New("line item not found")
	ErrUnknownEditAction  = errors.New("unknown edit action")
	ErrInvalidEditPayload = errors.New("edit payload does not match the action")
	ErrInvalidPatternKey  = errors.New("invalid quasi pattern key")
)

// DocumentBundle is one full preview: the derived totals plus the three
// projected documents, all computed from the same record in one pass.
type DocumentBundle struct {
	Totals             totals.Totals    `json:"totals"`
	MasterAgreement    []documents.Page `json:"masterAgreement"`
	IndividualContract []documents.Page `json:"individualContract"`
	Quotation          []documents.Page `json:"quotation"`
}

// EditAction names one form mutation.
type EditAction string

const (
	EditAddItem            EditAction = "addItem"
	EditRemoveItem         EditAction = "removeItem"
	EditRemoveCategory     EditAction = "removeCategory"
	EditUpdateItem         EditAction = "updateItem"
	EditUpdateClient       EditAction = "updateClient"
	EditUpdateProvider     EditAction = "updateProvider"
	EditUpdateQuasiPattern EditAction = "updateQuasiPattern"
	EditSelectQuasiPattern EditAction = "selectQuasiPattern"
)

// EditOp is one structured mutation against a record. Exactly the payload
// fields matching the action are read; the rest are ignored.
type EditOp struct {
	Action     EditAction                `json:"action"`
	Category   string                    `json:"category,omitempty"`
	ItemID     string                    `json:"itemId,omitempty"`
	Item       *editor.ItemPatch         `json:"item,omitempty"`
	Client     *editor.ClientPatch       `json:"client,omitempty"`
	Provider   *editor.ProviderPatch     `json:"provider,omitempty"`
	PatternKey entities.QuasiPatternKey  `json:"patternKey,omitempty"`
	Pattern    *editor.QuasiPatternPatch `json:"pattern,omitempty"`
}

// IEstimateUseCase exposes the estimate lifecycle.
//
// The operations map onto the original surface:
//   - "新規作成" => NewDraft()
//   - document rendering => Preview()
//   - form mutations => Edit()
//   - dashboard list => List()
//   - "スプレッドシートへ保存" => Save()
//   - "台帳から削除" => Delete()

type IEstimateUseCase interface {
	NewDraft(ctx context.Context) (entities.Estimate, error)
	Preview(ctx context.Context, e entities.Estimate) (DocumentBundle, error)
	Edit(ctx context.Context, e entities.Estimate, op EditOp) (entities.Estimate, error)
	List(ctx context.Context) ([]entities.Estimate, error)
	Save(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	Delete(ctx context.Context, id string) error
}

type EstimateUseCase struct {
	ledger    interfaces.ILedgerRepository
	providers interfaces.IProviderStore
	now       func() time.Time
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(ledger interfaces.ILedgerRepository, providers interfaces.IProviderStore) *EstimateUseCase {
	return &EstimateUseCase{ledger: ledger, providers: providers, now: time.Now}
}

// NewDraft builds a dated draft seeded with the remembered provider, falling
// back to the built-in defaults when nothing has been stored yet.
func (u *EstimateUseCase) NewDraft(ctx context.Context) (entities.Estimate, error) {
	provider, ok, err := u.providers.Load(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}
	if !ok {
		provider = entities.DefaultProvider
	}
	return entities.NewEstimate(provider, u.now()), nil
}

// Preview projects the record into all three documents plus totals. It never
// touches storage; an empty record renders placeholders, not errors.
func (u *EstimateUseCase) Preview(_ context.Context, e entities.Estimate) (DocumentBundle, error) {
	e = e.Normalized()
	return DocumentBundle{
		Totals:             totals.Compute(e.Items, e.Discount, e.TaxRate),
		MasterAgreement:    documents.MasterAgreement(e),
		IndividualContract: documents.IndividualContract(e),
		Quotation:          documents.Quotation(e),
	}, nil
}

// Edit applies one form mutation and returns the updated record.
func (u *EstimateUseCase) Edit(_ context.Context, e entities.Estimate, op EditOp) (entities.Estimate, error) {
	switch op.Action {
	case EditAddItem:
		return editor.AddItem(e, op.Category), nil

	case EditRemoveItem:
		if strings.TrimSpace(op.ItemID) == "" {
			return entities.Estimate{}, ErrInvalidEditPayload
		}
		return editor.RemoveItem(e, op.ItemID), nil

	case EditRemoveCategory:
		if strings.TrimSpace(op.Category) == "" {
			return entities.Estimate{}, ErrInvalidEditPayload
		}
		return editor.RemoveCategory(e, op.Category), nil

	case EditUpdateItem:
		if op.Item == nil || strings.TrimSpace(op.ItemID) == "" {
			return entities.Estimate{}, ErrInvalidEditPayload
		}
		updated, found := editor.UpdateItem(e, op.ItemID, *op.Item)
		if !found {
			return entities.Estimate{}, ErrItemNotFound
		}
		return updated, nil

	case EditUpdateClient:
		if op.Client == nil {
			return entities.Estimate{}, ErrInvalidEditPayload
		}
		return editor.UpdateClient(e, *op.Client), nil

	case EditUpdateProvider:
		if op.Provider == nil {
			return entities.Estimate{}, ErrInvalidEditPayload
		}
		return editor.UpdateProvider(e, *op.Provider), nil

	case EditUpdateQuasiPattern:
		if op.Pattern == nil {
			return entities.Estimate{}, ErrInvalidEditPayload
		}
		if !validPatternKey(op.PatternKey) {
			return entities.Estimate{}, ErrInvalidPatternKey
		}
		return editor.UpdateQuasiPattern(e, op.PatternKey, *op.Pattern), nil

	case EditSelectQuasiPattern:
		if !validPatternKey(op.PatternKey) {
			return entities.Estimate{}, ErrInvalidPatternKey
		}
		return editor.SelectQuasiPattern(e, op.PatternKey), nil

	default:
		return entities.Estimate{}, ErrUnknownEditAction
	}
}

func (u *EstimateUseCase) List(ctx context.Context) ([]entities.Estimate, error) {
	return u.ledger.List(ctx)
}

// Save upserts the record into the ledger with its snapshot total and
// remembers the provider for future drafts. A ledger failure surfaces as-is
// and leaves nothing half-written on the caller's side.
func (u *EstimateUseCase) Save(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	e = e.Normalized()
	if strings.TrimSpace(e.ID) == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt == "" {
		e.CreatedAt = u.now().UTC().Format(time.RFC3339)
	}

	if err := u.providers.Save(ctx, e.Provider); err != nil {
		// The provider blob is a convenience cache; losing one write only
		// costs re-entering defaults on the next draft.
		log.Printf("[usecase][save] provider store write failed: %v", err)
	}

	total := totals.Compute(e.Items, e.Discount, e.TaxRate).TaxExclusive
	if err := u.ledger.Save(ctx, e, total); err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (u *EstimateUseCase) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrRecordIDRequired
	}
	return u.ledger.Delete(ctx, id)
}

func validPatternKey(k entities.QuasiPatternKey) bool {
	switch k {
	case entities.QuasiPatternA, entities.QuasiPatternB, entities.QuasiPatternC, entities.QuasiPatternD:
		return true
	}
	return false
}
