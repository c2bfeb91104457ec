// Package badger provides BadgerHold-based embedded storage.
package badger

import (
	"fmt"
	"os"

	"github.com/timshannon/badgerhold/v4"

	"github.com/rsharma/finboard/internal/common"
	"github.com/rsharma/finboard/internal/interfaces"
)

// Manager implements interfaces.StorageManager backed by a single BadgerHold
// database on local disk.
type Manager struct {
	db     *badgerhold.Store
	logger *common.Logger

	assetStore *AssetStore
	userStore  *UserStore
}

// NewManager opens (or creates) the BadgerHold database at path.
func NewManager(logger *common.Logger, path string) (*Manager, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create badger directory %s: %w", path, err)
	}

	options := badgerhold.DefaultOptions
	options.Dir = path
	options.ValueDir = path
	options.Logger = nil // Disable default badger logger

	db, err := badgerhold.Open(options)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger database: %w", err)
	}

	m := &Manager{
		db:     db,
		logger: logger,
	}
	m.assetStore = NewAssetStore(db, logger)
	m.userStore = NewUserStore(db, logger)

	logger.Info().Str("path", path).Msg("Badger storage manager initialized")

	return m, nil
}

func (m *Manager) AssetStore() interfaces.AssetStore {
	return m.assetStore
}

func (m *Manager) UserStore() interfaces.UserStore {
	return m.userStore
}

// Close closes the underlying database.
func (m *Manager) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}

// Compile-time check
var _ interfaces.StorageManager = (*Manager)(nil)
