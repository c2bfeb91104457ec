package badger

import (
	"context"
	"fmt"
	"sort"

	"github.com/timshannon/badgerhold/v4"

	"github.com/rsharma/finboard/internal/common"
	"github.com/rsharma/finboard/internal/models"
)

// AssetStore persists asset records in BadgerHold, keyed by asset ID.
type AssetStore struct {
	db     *badgerhold.Store
	logger *common.Logger
}

// NewAssetStore creates an AssetStore backed by BadgerHold.
func NewAssetStore(db *badgerhold.Store, logger *common.Logger) *AssetStore {
	return &AssetStore{db: db, logger: logger}
}

func (s *AssetStore) Insert(_ context.Context, asset *models.Asset) error {
	if err := s.db.Insert(asset.ID, asset); err != nil {
		return fmt.Errorf("failed to insert asset: %w", err)
	}
	s.logger.Debug().Str("id", asset.ID).Str("owner", asset.Owner).Msg("Asset inserted")
	return nil
}

func (s *AssetStore) Get(_ context.Context, id string) (*models.Asset, error) {
	var asset models.Asset
	err := s.db.Get(id, &asset)
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("asset '%s' not found", id)
		}
		return nil, fmt.Errorf("failed to get asset '%s': %w", id, err)
	}
	return &asset, nil
}

func (s *AssetStore) ListByOwner(_ context.Context, owner string) ([]*models.Asset, error) {
	var assets []models.Asset
	if err := s.db.Find(&assets, badgerhold.Where("Owner").Eq(owner)); err != nil {
		return nil, fmt.Errorf("failed to list assets for '%s': %w", owner, err)
	}

	sort.Slice(assets, func(i, j int) bool {
		return assets[i].PurchaseDate.Before(assets[j].PurchaseDate)
	})

	result := make([]*models.Asset, len(assets))
	for i := range assets {
		result[i] = &assets[i]
	}
	return result, nil
}

func (s *AssetStore) Delete(ctx context.Context, owner, id string) error {
	asset, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if asset.Owner != owner {
		return fmt.Errorf("asset '%s' not found", id)
	}
	if err := s.db.Delete(id, models.Asset{}); err != nil && err != badgerhold.ErrNotFound {
		return fmt.Errorf("failed to delete asset '%s': %w", id, err)
	}
	s.logger.Debug().Str("id", id).Str("owner", owner).Msg("Asset deleted")
	return nil
}
