package service

import (
	"strings"

	"github.com/finotty/duqueLoja/internal/constants"
	"github.com/finotty/duqueLoja/internal/localstore"
	"github.com/finotty/duqueLoja/internal/models"
	"github.com/finotty/duqueLoja/internal/repository"
)

// FavoritesService favorites service. The user row is the source of
// truth: mutations write the database first and only a successful write
// updates what the caller sees.
type FavoritesService struct {
	userRepo repository.UserRepository
	store    localstore.Store
}

// NewFavoritesService creates a favorites service
func NewFavoritesService(userRepo repository.UserRepository, store localstore.Store) *FavoritesService {
	return &FavoritesService{userRepo: userRepo, store: store}
}

// List returns the user's favorited product names
func (s *FavoritesService) List(userID uint) ([]string, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	if user.Favorites == nil {
		return []string{}, nil
	}
	return user.Favorites, nil
}

// Toggle flips the favorite state of productName. The returned bool is
// the state after the toggle. A failed remote write leaves the stored
// set untouched and surfaces the error.
func (s *FavoritesService) Toggle(userID uint, productName string) (bool, []string, error) {
	name := strings.TrimSpace(productName)
	if name == "" {
		return false, nil, ErrCartItemInvalid
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return false, nil, err
	}
	if user == nil {
		return false, nil, ErrNotFound
	}

	favorites := make(models.StringArray, 0, len(user.Favorites)+1)
	favorited := true
	for _, existing := range user.Favorites {
		if existing == name {
			favorited = false
			continue
		}
		favorites = append(favorites, existing)
	}
	if favorited {
		favorites = append(favorites, name)
	}

	// remote write first
	if err := s.userRepo.UpdateFavorites(userID, favorites); err != nil {
		return false, nil, err
	}
	return favorited, favorites, nil
}

// ParkPending records a favorite toggle attempted while anonymous. It
// replaces any earlier pending favorite for the same device.
func (s *FavoritesService) ParkPending(deviceID, productName string) error {
	device := strings.TrimSpace(deviceID)
	if device == "" {
		return ErrDeviceRequired
	}
	name := strings.TrimSpace(productName)
	if name == "" {
		return ErrCartItemInvalid
	}
	return s.store.Set(constants.StoreKeyPendingFavorite+device, name)
}

// ReplayPending applies the device's parked favorite toggle for the
// signed-in user, then removes the key so it never replays again.
func (s *FavoritesService) ReplayPending(userID uint, deviceID string) error {
	device := strings.TrimSpace(deviceID)
	if device == "" {
		return nil
	}
	key := constants.StoreKeyPendingFavorite + device

	var name string
	found, err := s.store.Get(key, &name)
	if err != nil {
		// a corrupt pending action is dropped, not replayed
		return s.store.Delete(key)
	}
	if !found || strings.TrimSpace(name) == "" {
		return nil
	}

	if _, _, err := s.Toggle(userID, name); err != nil {
		return err
	}
	return s.store.Delete(key)
}
