package surrealdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/surrealdb/surrealdb.go"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/rsharma/finboard/internal/common"
	"github.com/rsharma/finboard/internal/models"
)

// UserStore persists user accounts in the "user" table.
type UserStore struct {
	db     *surrealdb.DB
	logger *common.Logger
}

// NewUserStore creates a UserStore backed by SurrealDB.
func NewUserStore(db *surrealdb.DB, logger *common.Logger) *UserStore {
	return &UserStore{
		db:     db,
		logger: logger,
	}
}

func (s *UserStore) GetUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := surrealdb.Select[models.User](ctx, s.db, surrealmodels.NewRecordID("user", userID))
	if err != nil {
		return nil, fmt.Errorf("failed to select user: %w", err)
	}
	if user == nil {
		return nil, errors.New("user not found")
	}
	return user, nil
}

func (s *UserStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	sql := "SELECT * FROM user WHERE email = $email LIMIT 1"
	vars := map[string]any{"email": email}

	results, err := surrealdb.Query[[]models.User](ctx, s.db, sql, vars)
	if err != nil {
		return nil, fmt.Errorf("failed to query user by email: %w", err)
	}
	if results != nil && len(*results) > 0 && len((*results)[0].Result) > 0 {
		return &(*results)[0].Result[0], nil
	}
	return nil, errors.New("user not found")
}

func (s *UserStore) SaveUser(ctx context.Context, user *models.User) error {
	sql := "UPSERT type::record('user', $id) CONTENT $user"
	vars := map[string]any{"id": user.UserID, "user": user}

	for attempt := 1; attempt <= 3; attempt++ {
		_, err := surrealdb.Query[[]models.User](ctx, s.db, sql, vars)
		if err == nil {
			return nil
		}
		if attempt == 3 {
			return fmt.Errorf("failed to save user after retries: %w", err)
		}
	}
	return nil
}

func (s *UserStore) DeleteUser(ctx context.Context, userID string) error {
	_, err := surrealdb.Delete[models.User](ctx, s.db, surrealmodels.NewRecordID("user", userID))
	if err != nil && !isNotFoundError(err) {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (s *UserStore) ListUsers(ctx context.Context) ([]string, error) {
	sql := "SELECT * FROM user"

	results, err := surrealdb.Query[[]models.User](ctx, s.db, sql, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	var ids []string
	if results != nil && len(*results) > 0 {
		for _, u := range (*results)[0].Result {
			ids = append(ids, u.UserID)
		}
	}
	return ids, nil
}
