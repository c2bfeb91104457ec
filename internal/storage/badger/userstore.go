package badger

import (
	"context"
	"fmt"

	"github.com/timshannon/badgerhold/v4"

	"github.com/rsharma/finboard/internal/common"
	"github.com/rsharma/finboard/internal/models"
)

// UserStore persists user accounts in BadgerHold, keyed by user ID.
type UserStore struct {
	db     *badgerhold.Store
	logger *common.Logger
}

// NewUserStore creates a UserStore backed by BadgerHold.
func NewUserStore(db *badgerhold.Store, logger *common.Logger) *UserStore {
	return &UserStore{db: db, logger: logger}
}

func (s *UserStore) GetUser(_ context.Context, userID string) (*models.User, error) {
	var user models.User
	err := s.db.Get(userID, &user)
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("user '%s' not found", userID)
		}
		return nil, fmt.Errorf("failed to get user '%s': %w", userID, err)
	}
	return &user, nil
}

func (s *UserStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	var users []models.User
	if err := s.db.Find(&users, badgerhold.Where("Email").Eq(email).Limit(1)); err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("user with email '%s' not found", email)
	}
	return &users[0], nil
}

func (s *UserStore) SaveUser(_ context.Context, user *models.User) error {
	if err := s.db.Upsert(user.UserID, user); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	s.logger.Debug().Str("user_id", user.UserID).Msg("User saved")
	return nil
}

func (s *UserStore) DeleteUser(_ context.Context, userID string) error {
	err := s.db.Delete(userID, models.User{})
	if err != nil && err != badgerhold.ErrNotFound {
		return fmt.Errorf("failed to delete user '%s': %w", userID, err)
	}
	s.logger.Debug().Str("user_id", userID).Msg("User deleted")
	return nil
}

func (s *UserStore) ListUsers(_ context.Context) ([]string, error) {
	var users []models.User
	if err := s.db.Find(&users, nil); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	ids := make([]string, len(users))
	for i, u := range users {
		ids[i] = u.UserID
	}
	return ids, nil
}
