package badger

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rsharma/finboard/internal/common"
	"github.com/rsharma/finboard/internal/models"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	mgr, err := NewManager(common.NewSilentLogger(), t.TempDir())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	t.Cleanup(func() { mgr.Close() })
	return mgr
}

func testAsset(id, owner string, purchaseDate time.Time) *models.Asset {
	return &models.Asset{
		ID:            id,
		Owner:         owner,
		Name:          "Asset " + id,
		AssetType:     models.AssetTypeStock,
		Quantity:      10,
		PurchasePrice: 100,
		CurrentValue:  1200,
		PurchaseDate:  purchaseDate,
		CreatedAt:     time.Now(),
	}
}

func TestAssetStore_InsertAndGet(t *testing.T) {
	mgr := newTestManager(t)
	ctx := context.Background()

	asset := testAsset("a1", "alice", time.Now())
	if err := mgr.AssetStore().Insert(ctx, asset); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	got, err := mgr.AssetStore().Get(ctx, "a1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Owner != "alice" || got.Name != "Asset a1" {
		t.Errorf("unexpected asset: %+v", got)
	}
	if got.CurrentValue != 1200 {
		t.Errorf("expected current value 1200, got %v", got.CurrentValue)
	}
}

func TestAssetStore_GetMissing(t *testing.T) {
	mgr := newTestManager(t)

	_, err := mgr.AssetStore().Get(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected error for missing asset")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestAssetStore_ListByOwner_SortedAndScoped(t *testing.T) {
	mgr := newTestManager(t)
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	// Insert out of order; expect ascending purchase date back.
	for _, a := range []*models.Asset{
		testAsset("a2", "alice", base.AddDate(0, 1, 0)),
		testAsset("a1", "alice", base),
		testAsset("b1", "bob", base),
	} {
		if err := mgr.AssetStore().Insert(ctx, a); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	assets, err := mgr.AssetStore().ListByOwner(ctx, "alice")
	if err != nil {
		t.Fatalf("ListByOwner failed: %v", err)
	}
	if len(assets) != 2 {
		t.Fatalf("expected 2 assets for alice, got %d", len(assets))
	}
	if assets[0].ID != "a1" || assets[1].ID != "a2" {
		t.Errorf("expected purchase-date order a1,a2, got %s,%s", assets[0].ID, assets[1].ID)
	}
}

func TestAssetStore_ListByOwner_Empty(t *testing.T) {
	mgr := newTestManager(t)

	assets, err := mgr.AssetStore().ListByOwner(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("ListByOwner failed: %v", err)
	}
	if len(assets) != 0 {
		t.Errorf("expected no assets, got %d", len(assets))
	}
}

func TestAssetStore_Delete(t *testing.T) {
	mgr := newTestManager(t)
	ctx := context.Background()

	if err := mgr.AssetStore().Insert(ctx, testAsset("a1", "alice", time.Now())); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if err := mgr.AssetStore().Delete(ctx, "alice", "a1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := mgr.AssetStore().Get(ctx, "a1"); err == nil {
		t.Error("expected asset to be gone after delete")
	}
}

func TestAssetStore_DeleteWrongOwner(t *testing.T) {
	mgr := newTestManager(t)
	ctx := context.Background()

	if err := mgr.AssetStore().Insert(ctx, testAsset("a1", "alice", time.Now())); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	// Another owner must not be able to delete, and must not learn the
	// asset exists.
	err := mgr.AssetStore().Delete(ctx, "mallory", "a1")
	if err == nil {
		t.Fatal("expected error deleting another owner's asset")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not-found error, got %v", err)
	}

	if _, err := mgr.AssetStore().Get(ctx, "a1"); err != nil {
		t.Errorf("asset should still exist: %v", err)
	}
}

func TestUserStore_SaveAndGet(t *testing.T) {
	mgr := newTestManager(t)
	ctx := context.Background()

	user := &models.User{
		UserID:       "u1",
		Email:        "alice@example.com",
		Name:         "Alice",
		PasswordHash: "hash",
		Role:         models.RoleUser,
		CreatedAt:    time.Now(),
	}
	if err := mgr.UserStore().SaveUser(ctx, user); err != nil {
		t.Fatalf("SaveUser failed: %v", err)
	}

	got, err := mgr.UserStore().GetUser(ctx, "u1")
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if got.Email != "alice@example.com" {
		t.Errorf("unexpected user: %+v", got)
	}

	byEmail, err := mgr.UserStore().GetUserByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if byEmail.UserID != "u1" {
		t.Errorf("expected u1, got %s", byEmail.UserID)
	}
}

func TestUserStore_GetByEmailMissing(t *testing.T) {
	mgr := newTestManager(t)

	_, err := mgr.UserStore().GetUserByEmail(context.Background(), "nobody@example.com")
	if err == nil {
		t.Fatal("expected error for missing user")
	}
}

func TestUserStore_SaveUpdates(t *testing.T) {
	mgr := newTestManager(t)
	ctx := context.Background()

	user := &models.User{UserID: "u1", Email: "a@x.com", Name: "Alice", Role: models.RoleUser}
	if err := mgr.UserStore().SaveUser(ctx, user); err != nil {
		t.Fatalf("SaveUser failed: %v", err)
	}

	user.Name = "Alice B."
	if err := mgr.UserStore().SaveUser(ctx, user); err != nil {
		t.Fatalf("SaveUser (update) failed: %v", err)
	}

	got, err := mgr.UserStore().GetUser(ctx, "u1")
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if got.Name != "Alice B." {
		t.Errorf("expected updated name, got %q", got.Name)
	}

	users, err := mgr.UserStore().ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(users) != 1 {
		t.Errorf("expected 1 user after upsert, got %d", len(users))
	}
}

func TestUserStore_Delete(t *testing.T) {
	mgr := newTestManager(t)
	ctx := context.Background()

	user := &models.User{UserID: "u1", Email: "a@x.com", Role: models.RoleUser}
	if err := mgr.UserStore().SaveUser(ctx, user); err != nil {
		t.Fatalf("SaveUser failed: %v", err)
	}
	if err := mgr.UserStore().DeleteUser(ctx, "u1"); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}
	if _, err := mgr.UserStore().GetUser(ctx, "u1"); err == nil {
		t.Error("expected user to be gone after delete")
	}
}
