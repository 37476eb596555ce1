package interfaces

import (
	"context"

	"fren_docs/internal/domain/entities"
)

// IProviderStore remembers the issuing party between sessions. Load reports
// whether stored defaults exist; callers fall back to the built-in provider
// when they do not.

type IProviderStore interface {
	Load(ctx context.Context) (entities.ProviderInfo, bool, error)
	Save(ctx context.Context, p entities.ProviderInfo) error
}
