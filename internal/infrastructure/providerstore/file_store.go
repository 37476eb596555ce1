// Package providerstore remembers the issuing party between sessions as a
// single JSON blob on disk, the server-side stand-in for the browser-local
// storage the form used to rely on.
package providerstore

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"fren_docs/internal/domain/entities"
	"fren_docs/internal/usecase/interfaces"
)

const defaultPath = "data/provider_info.json"

type FileStore struct {
	path string
}

var _ interfaces.IProviderStore = (*FileStore)(nil)

// NewFileStore stores the blob at path, or at the default location when path
// is empty.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = defaultPath
	}
	return &FileStore{path: path}
}

// Load reads the stored provider. A missing file is not an error; it simply
// means nothing has been saved yet.
func (s *FileStore) Load(_ context.Context) (entities.ProviderInfo, bool, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return entities.ProviderInfo{}, false, nil
	}
	if err != nil {
		return entities.ProviderInfo{}, false, err
	}

	var p entities.ProviderInfo
	if err := json.Unmarshal(raw, &p); err != nil {
		return entities.ProviderInfo{}, false, err
	}
	return p, true, nil
}

// Save overwrites the blob wholesale.
func (s *FileStore) Save(_ context.Context, p entities.ProviderInfo) error {
	raw, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, raw, 0o644)
}
