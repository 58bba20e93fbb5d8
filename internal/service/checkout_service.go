package service

import (
	"strings"

	"github.com/finotty/duqueLoja/internal/constants"
	"github.com/finotty/duqueLoja/internal/localstore"
	"github.com/finotty/duqueLoja/internal/logger"
	"github.com/finotty/duqueLoja/internal/models"
	"github.com/finotty/duqueLoja/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutService drives the purchase flow. Anonymous buy intent parks
// the full line under a device-scoped pending key; sign-in replays it
// exactly once; confirmation snapshots the cart into one order and
// clears the cart. Cancelation performs no writes anywhere.
type CheckoutService struct {
	cart      *CartService
	favorites *FavoritesService
	orderRepo repository.OrderRepository
	store     localstore.Store
}

// NewCheckoutService creates a checkout service
func NewCheckoutService(
	cart *CartService,
	favorites *FavoritesService,
	orderRepo repository.OrderRepository,
	store localstore.Store,
) *CheckoutService {
	return &CheckoutService{
		cart:      cart,
		favorites: favorites,
		orderRepo: orderRepo,
		store:     store,
	}
}

// ParkPendingItem records the full line an anonymous visitor tried to
// buy, replacing any earlier pending line for the same device.
func (s *CheckoutService) ParkPendingItem(deviceID string, line CartLine) error {
	device := strings.TrimSpace(deviceID)
	if device == "" {
		return ErrDeviceRequired
	}
	if strings.TrimSpace(line.Name) == "" {
		return ErrCartItemInvalid
	}
	if line.Quantity < 1 {
		line.Quantity = 1
	}
	return s.store.Set(constants.StoreKeyPendingProduct+device, line)
}

// PendingItem reads the device's parked line, if any
func (s *CheckoutService) PendingItem(deviceID string) (*CartLine, error) {
	device := strings.TrimSpace(deviceID)
	if device == "" {
		return nil, ErrDeviceRequired
	}
	var line CartLine
	found, err := s.store.Get(constants.StoreKeyPendingProduct+device, &line)
	if err != nil || !found {
		return nil, err
	}
	return &line, nil
}

// ReplayPending applies the device's parked actions for the signed-in
// user: the pending line goes through the regular cart add, the pending
// favorite through the regular toggle. Keys are deleted on success so a
// second sign-in observes nothing.
func (s *CheckoutService) ReplayPending(userID uint, deviceID string) error {
	device := strings.TrimSpace(deviceID)
	if userID == 0 || device == "" {
		return nil
	}

	productKey := constants.StoreKeyPendingProduct + device
	var line CartLine
	found, err := s.store.Get(productKey, &line)
	if err != nil {
		logger.Warnw("pending_product_corrupt_dropped", "device", device, "error", err)
		if err := s.store.Delete(productKey); err != nil {
			return err
		}
	} else if found {
		if _, err := s.cart.Add(CartOwner{UserID: userID}, line); err != nil {
			return err
		}
		if err := s.store.Delete(productKey); err != nil {
			return err
		}
	}

	return s.favorites.ReplayPending(userID, device)
}

// Confirm writes one order from the user's cart and clears the cart.
// An empty cart confirms nothing.
func (s *CheckoutService) Confirm(userID uint, paymentMethod string) (*models.Order, error) {
	owner := CartOwner{UserID: userID}
	lines, err := s.cart.Load(owner)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}

	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		quantity := line.Quantity
		if quantity < 1 {
			quantity = 1
		}
		unitPrice := models.ParseBRL(line.Price)
		items = append(items, models.OrderItem{
			Name:       line.Name,
			Image:      line.Image,
			UnitPrice:  unitPrice,
			Quantity:   quantity,
			TotalPrice: models.NewMoneyFromDecimal(unitPrice.Decimal.Mul(decimal.NewFromInt(int64(quantity)))),
		})
	}

	order := models.Order{
		OrderNo:       uuid.NewString(),
		UserID:        userID,
		Status:        constants.OrderStatusPending,
		Currency:      constants.SiteCurrencyDefault,
		TotalAmount:   CartLinesTotal(lines),
		PaymentMethod: strings.TrimSpace(paymentMethod),
		Items:         items,
	}
	if err := s.orderRepo.CreateWithItems(&order); err != nil {
		return nil, err
	}

	if err := s.cart.Clear(owner); err != nil {
		// the order exists; a stale cart is recoverable, losing the order is not
		logger.Warnw("checkout_cart_clear_failed", "user_id", userID, "order_no", order.OrderNo, "error", err)
	}
	return &order, nil
}
