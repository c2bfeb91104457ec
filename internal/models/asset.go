// Package models defines the domain types shared across finboard.
package models

import (
	"fmt"
	"time"
)

// Asset types supported by the dashboard.
const (
	AssetTypeStock = "stock"
	AssetTypeGold  = "gold"
)

// Asset represents a single holding belonging to an owner. CurrentValue is
// the total value assigned to the holding, not a unit price; aggregation sums
// it directly without multiplying by Quantity.
type Asset struct {
	ID            string    `json:"id"`
	Owner         string    `json:"owner"`
	Name          string    `json:"name"`
	AssetType     string    `json:"asset_type"`
	Quantity      float64   `json:"quantity"`
	PurchasePrice float64   `json:"purchase_price"`
	CurrentValue  float64   `json:"current_value"`
	PurchaseDate  time.Time `json:"purchase_date"`
	CreatedAt     time.Time `json:"created_at"`
}

// Cost returns the acquisition cost of the holding.
func (a *Asset) Cost() float64 {
	return a.PurchasePrice * a.Quantity
}

// Validate checks the invariants for a new asset record.
func (a *Asset) Validate() error {
	if a.Owner == "" {
		return fmt.Errorf("owner is required")
	}
	if a.Name == "" {
		return fmt.Errorf("name is required")
	}
	if a.AssetType != AssetTypeStock && a.AssetType != AssetTypeGold {
		return fmt.Errorf("asset_type must be %q or %q", AssetTypeStock, AssetTypeGold)
	}
	if a.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	if a.PurchasePrice <= 0 {
		return fmt.Errorf("purchase_price must be positive")
	}
	if a.PurchaseDate.IsZero() {
		return fmt.Errorf("purchase_date is required")
	}
	return nil
}
