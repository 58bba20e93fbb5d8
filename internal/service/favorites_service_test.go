package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/finotty/duqueLoja/internal/constants"
	"github.com/finotty/duqueLoja/internal/localstore"
	"github.com/finotty/duqueLoja/internal/models"
	"github.com/finotty/duqueLoja/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T, tables ...interface{}) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(tables...); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, repo repository.UserRepository, email string) *models.User {
	t.Helper()
	user := &models.User{
		Email:        email,
		PasswordHash: "x",
		Status:       constants.UserStatusActive,
	}
	if err := repo.Create(user); err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user
}

func TestFavoritesToggleAddAndRemove(t *testing.T) {
	db := newTestDB(t, &models.User{})
	repo := repository.NewUserRepository(db)
	svc := NewFavoritesService(repo, localstore.NewMemoryStore())
	user := createTestUser(t, repo, "ana@example.com")

	favorited, favorites, err := svc.Toggle(user.ID, "Revólver RT 838 Inox")
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if !favorited || len(favorites) != 1 {
		t.Fatalf("expected favorited with 1 entry, got favorited=%v favorites=%+v", favorited, favorites)
	}

	// second toggle removes
	favorited, favorites, err = svc.Toggle(user.ID, "Revólver RT 838 Inox")
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if favorited || len(favorites) != 0 {
		t.Fatalf("expected unfavorited with empty set, got favorited=%v favorites=%+v", favorited, favorites)
	}

	// database is the source of truth
	stored, err := svc.List(user.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(stored) != 0 {
		t.Fatalf("expected empty stored favorites, got: %+v", stored)
	}
}

// failingUserRepo rejects every favorites write
type failingUserRepo struct {
	repository.UserRepository
}

func (r *failingUserRepo) UpdateFavorites(userID uint, favorites models.StringArray) error {
	return errors.New("write rejected")
}

func TestFavoritesFailedWriteLeavesStateUntouched(t *testing.T) {
	db := newTestDB(t, &models.User{})
	repo := repository.NewUserRepository(db)
	user := createTestUser(t, repo, "bia@example.com")

	svc := NewFavoritesService(&failingUserRepo{UserRepository: repo}, localstore.NewMemoryStore())
	if _, _, err := svc.Toggle(user.ID, "Coldre Kydex IWB"); err == nil {
		t.Fatalf("expected toggle to surface the write error")
	}

	// the stored set never changed
	fresh, err := repo.GetByID(user.ID)
	if err != nil {
		t.Fatalf("get user failed: %v", err)
	}
	if len(fresh.Favorites) != 0 {
		t.Fatalf("expected untouched favorites, got: %+v", fresh.Favorites)
	}
}

func TestFavoritesToggleUnknownUser(t *testing.T) {
	db := newTestDB(t, &models.User{})
	repo := repository.NewUserRepository(db)
	svc := NewFavoritesService(repo, localstore.NewMemoryStore())

	if _, _, err := svc.Toggle(9999, "X"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestFavoritesPendingReplayedExactlyOnce(t *testing.T) {
	db := newTestDB(t, &models.User{})
	repo := repository.NewUserRepository(db)
	store := localstore.NewMemoryStore()
	svc := NewFavoritesService(repo, store)
	user := createTestUser(t, repo, "caio@example.com")

	if err := svc.ParkPending("dev-7", "Óculos de Tiro Ambar"); err != nil {
		t.Fatalf("park pending failed: %v", err)
	}

	if err := svc.ReplayPending(user.ID, "dev-7"); err != nil {
		t.Fatalf("replay failed: %v", err)
	}
	favorites, err := svc.List(user.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(favorites) != 1 || favorites[0] != "Óculos de Tiro Ambar" {
		t.Fatalf("expected replayed favorite, got: %+v", favorites)
	}

	// a second sign-in observes nothing: the toggle does not flip back
	if err := svc.ReplayPending(user.ID, "dev-7"); err != nil {
		t.Fatalf("second replay failed: %v", err)
	}
	favorites, err = svc.List(user.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(favorites) != 1 {
		t.Fatalf("expected pending favorite to replay exactly once, got: %+v", favorites)
	}
}

func TestFavoritesCorruptPendingDropped(t *testing.T) {
	db := newTestDB(t, &models.User{})
	repo := repository.NewUserRepository(db)
	store := localstore.NewMemoryStore()
	svc := NewFavoritesService(repo, store)
	user := createTestUser(t, repo, "davi@example.com")

	store.SetRaw(constants.StoreKeyPendingFavorite+"dev-8", []byte("{oops"))
	if err := svc.ReplayPending(user.ID, "dev-8"); err != nil {
		t.Fatalf("replay of corrupt pending should drop it, got: %v", err)
	}

	var name string
	found, _ := store.Get(constants.StoreKeyPendingFavorite+"dev-8", &name)
	if found {
		t.Fatalf("expected corrupt pending key to be deleted")
	}
	favorites, err := svc.List(user.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(favorites) != 0 {
		t.Fatalf("expected no favorites from corrupt pending, got: %+v", favorites)
	}
}

func TestFavoritesParkPendingValidation(t *testing.T) {
	svc := NewFavoritesService(nil, localstore.NewMemoryStore())
	if err := svc.ParkPending("", "X"); !errors.Is(err, ErrDeviceRequired) {
		t.Fatalf("expected ErrDeviceRequired, got: %v", err)
	}
	if err := svc.ParkPending("dev-9", "  "); !errors.Is(err, ErrCartItemInvalid) {
		t.Fatalf("expected ErrCartItemInvalid, got: %v", err)
	}
}
