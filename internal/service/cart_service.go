package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/finotty/duqueLoja/internal/constants"
	"github.com/finotty/duqueLoja/internal/localstore"
	"github.com/finotty/duqueLoja/internal/logger"
	"github.com/finotty/duqueLoja/internal/models"

	"github.com/shopspring/decimal"
)

// CartLine one cart position. Price keeps the formatted storefront
// string ("R$ 1.234,56"); totals parse it leniently.
type CartLine struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}

// CartOwner identifies whose cart to operate on. Authenticated requests
// carry a user ID; anonymous ones fall back to the device ID header.
type CartOwner struct {
	UserID   uint
	DeviceID string
}

// Key returns the durable store key for this owner
func (o CartOwner) Key() (string, error) {
	if o.UserID > 0 {
		return fmt.Sprintf("%s%d", constants.StoreKeyCartUserPrefix, o.UserID), nil
	}
	device := strings.TrimSpace(o.DeviceID)
	if device == "" {
		return "", ErrDeviceRequired
	}
	return constants.StoreKeyCartDevicePrefix + device, nil
}

// CartService cart service. The whole cart is one document per owner;
// every mutation rewrites it.
type CartService struct {
	store localstore.Store
}

// NewCartService creates a cart service
func NewCartService(store localstore.Store) *CartService {
	return &CartService{store: store}
}

// Load rehydrates the owner's cart. A document that no longer decodes
// resets to an empty cart and the reset is persisted.
func (s *CartService) Load(owner CartOwner) ([]CartLine, error) {
	key, err := owner.Key()
	if err != nil {
		return nil, err
	}
	var lines []CartLine
	found, err := s.store.Get(key, &lines)
	if err != nil {
		if errors.Is(err, localstore.ErrCorrupt) {
			logger.Warnw("cart_rehydrate_corrupt_reset", "key", key, "error", err)
			lines = []CartLine{}
			if err := s.store.Set(key, lines); err != nil {
				return nil, err
			}
			return lines, nil
		}
		return nil, err
	}
	if !found || lines == nil {
		return []CartLine{}, nil
	}
	return lines, nil
}

// Add puts a line into the cart. An existing line with the same name is
// merged by incrementing its quantity; the stored price and image win
// over the incoming ones.
func (s *CartService) Add(owner CartOwner, line CartLine) ([]CartLine, error) {
	name := strings.TrimSpace(line.Name)
	if name == "" {
		return nil, ErrCartItemInvalid
	}
	if line.Quantity < 1 {
		line.Quantity = 1
	}

	lines, err := s.Load(owner)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range lines {
		if lines[i].Name == name {
			lines[i].Quantity += line.Quantity
			merged = true
			break
		}
	}
	if !merged {
		line.Name = name
		lines = append(lines, line)
	}

	if err := s.persist(owner, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// ChangeQuantity applies a delta to the line at index. Quantity never
// drops below 1; removal is explicit via Remove.
func (s *CartService) ChangeQuantity(owner CartOwner, index, delta int) ([]CartLine, error) {
	lines, err := s.Load(owner)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(lines) {
		return nil, ErrCartIndexInvalid
	}

	quantity := lines[index].Quantity + delta
	if quantity < 1 {
		quantity = 1
	}
	lines[index].Quantity = quantity

	if err := s.persist(owner, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// Remove deletes the line at index
func (s *CartService) Remove(owner CartOwner, index int) ([]CartLine, error) {
	lines, err := s.Load(owner)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(lines) {
		return nil, ErrCartIndexInvalid
	}

	lines = append(lines[:index], lines[index+1:]...)

	if err := s.persist(owner, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// Total sums price times quantity over the cart. Prices parse leniently,
// so a malformed line contributes zero instead of failing the total.
func (s *CartService) Total(owner CartOwner) (models.Money, error) {
	lines, err := s.Load(owner)
	if err != nil {
		return models.Money{}, err
	}
	return CartLinesTotal(lines), nil
}

// Clear drops the owner's cart
func (s *CartService) Clear(owner CartOwner) error {
	key, err := owner.Key()
	if err != nil {
		return err
	}
	return s.store.Delete(key)
}

func (s *CartService) persist(owner CartOwner, lines []CartLine) error {
	key, err := owner.Key()
	if err != nil {
		return err
	}
	if lines == nil {
		lines = []CartLine{}
	}
	return s.store.Set(key, lines)
}

// CartLinesTotal sums a slice of lines without touching storage
func CartLinesTotal(lines []CartLine) models.Money {
	total := decimal.Zero
	for _, line := range lines {
		quantity := line.Quantity
		if quantity < 0 {
			quantity = 0
		}
		price := models.ParseBRL(line.Price)
		total = total.Add(price.Decimal.Mul(decimal.NewFromInt(int64(quantity))))
	}
	return models.NewMoneyFromDecimal(total)
}
