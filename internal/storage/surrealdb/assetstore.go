package surrealdb

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/surrealdb/surrealdb.go"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/rsharma/finboard/internal/common"
	"github.com/rsharma/finboard/internal/models"
)

// AssetStore persists asset records in the "asset" table.
type AssetStore struct {
	db     *surrealdb.DB
	logger *common.Logger
}

// NewAssetStore creates an AssetStore backed by SurrealDB.
func NewAssetStore(db *surrealdb.DB, logger *common.Logger) *AssetStore {
	return &AssetStore{
		db:     db,
		logger: logger,
	}
}

func (s *AssetStore) Insert(ctx context.Context, asset *models.Asset) error {
	sql := "UPSERT $rid CONTENT $asset"
	vars := map[string]any{
		"rid":   surrealmodels.NewRecordID("asset", asset.ID),
		"asset": asset,
	}

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		_, err := surrealdb.Query[[]models.Asset](ctx, s.db, sql, vars)
		if err == nil {
			s.logger.Debug().Str("id", asset.ID).Str("owner", asset.Owner).Msg("Asset inserted")
			return nil
		}
		lastErr = err
	}
	return fmt.Errorf("failed to insert asset after retries: %w", lastErr)
}

func (s *AssetStore) Get(ctx context.Context, id string) (*models.Asset, error) {
	asset, err := surrealdb.Select[models.Asset](ctx, s.db, surrealmodels.NewRecordID("asset", id))
	if err != nil {
		return nil, fmt.Errorf("failed to select asset: %w", err)
	}
	if asset == nil {
		return nil, errors.New("asset not found")
	}
	return asset, nil
}

func (s *AssetStore) ListByOwner(ctx context.Context, owner string) ([]*models.Asset, error) {
	sql := "SELECT * FROM asset WHERE owner = $owner"
	vars := map[string]any{"owner": owner}

	results, err := surrealdb.Query[[]models.Asset](ctx, s.db, sql, vars)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	var assets []*models.Asset
	if results != nil && len(*results) > 0 {
		for i := range (*results)[0].Result {
			assets = append(assets, &(*results)[0].Result[i])
		}
	}

	sort.Slice(assets, func(i, j int) bool {
		return assets[i].PurchaseDate.Before(assets[j].PurchaseDate)
	})
	return assets, nil
}

func (s *AssetStore) Delete(ctx context.Context, owner, id string) error {
	asset, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if asset.Owner != owner {
		return errors.New("asset not found")
	}

	_, err = surrealdb.Delete[models.Asset](ctx, s.db, surrealmodels.NewRecordID("asset", id))
	if err != nil && !isNotFoundError(err) {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	s.logger.Debug().Str("id", id).Str("owner", owner).Msg("Asset deleted")
	return nil
}

// isNotFoundError reports whether the error indicates a missing record.
func isNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "not found") || strings.Contains(msg, "no record")
}
