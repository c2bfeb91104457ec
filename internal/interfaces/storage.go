package interfaces

import (
	"context"

	"github.com/rsharma/finboard/internal/models"
)

// StorageManager coordinates the storage backend.
type StorageManager interface {
	AssetStore() AssetStore
	UserStore() UserStore
	Close() error
}

// AssetStore persists asset records. Assets are immutable once created; there
// is no update path.
type AssetStore interface {
	Insert(ctx context.Context, asset *models.Asset) error
	Get(ctx context.Context, id string) (*models.Asset, error)
	// ListByOwner returns the owner's assets ordered by purchase date ascending.
	ListByOwner(ctx context.Context, owner string) ([]*models.Asset, error)
	Delete(ctx context.Context, owner, id string) error
}

// UserStore manages user accounts.
type UserStore interface {
	GetUser(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	SaveUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, userID string) error
	ListUsers(ctx context.Context) ([]string, error)
}
