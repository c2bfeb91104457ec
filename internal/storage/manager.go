// Package storage provides persistence with pluggable backends.
package storage

import (
	"fmt"

	"github.com/rsharma/finboard/internal/common"
	"github.com/rsharma/finboard/internal/interfaces"
	"github.com/rsharma/finboard/internal/storage/badger"
	"github.com/rsharma/finboard/internal/storage/surrealdb"
)

// NewStorageManager creates a StorageManager for the configured driver.
// Supported drivers: "badger" (embedded, default), "surrealdb".
func NewStorageManager(logger *common.Logger, config *common.Config) (interfaces.StorageManager, error) {
	switch config.Storage.Driver {
	case common.DriverBadger, "":
		return badger.NewManager(logger, config.Storage.Path)

	case common.DriverSurreal:
		return surrealdb.NewManager(logger, config)

	default:
		return nil, fmt.Errorf("unknown storage driver: %s (supported: badger, surrealdb)", config.Storage.Driver)
	}
}
