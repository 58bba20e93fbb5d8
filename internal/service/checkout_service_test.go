package service

import (
	"errors"
	"testing"

	"github.com/finotty/duqueLoja/internal/constants"
	"github.com/finotty/duqueLoja/internal/localstore"
	"github.com/finotty/duqueLoja/internal/models"
	"github.com/finotty/duqueLoja/internal/repository"

	"gorm.io/gorm"
)

func newCheckoutService(t *testing.T) (*CheckoutService, *CartService, *localstore.MemoryStore, *gorm.DB) {
	t.Helper()
	db := newTestDB(t, &models.User{}, &models.Order{}, &models.OrderItem{})
	store := localstore.NewMemoryStore()
	cart := NewCartService(store)
	favorites := NewFavoritesService(repository.NewUserRepository(db), store)
	orderRepo := repository.NewOrderRepository(db)
	return NewCheckoutService(cart, favorites, orderRepo, store), cart, store, db
}

func TestCheckoutConfirmWritesOrderAndClearsCart(t *testing.T) {
	svc, cart, _, db := newCheckoutService(t)
	owner := CartOwner{UserID: 11}

	if _, err := cart.Add(owner, CartLine{Name: "A", Price: "R$ 10,00", Quantity: 2}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := cart.Add(owner, CartLine{Name: "B", Price: "R$ 5,50", Quantity: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	order, err := svc.Confirm(11, "pix")
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if order.Status != constants.OrderStatusPending {
		t.Fatalf("expected pending order, got %s", order.Status)
	}
	if order.Currency != constants.SiteCurrencyDefault {
		t.Fatalf("expected BRL order, got %s", order.Currency)
	}
	if order.TotalAmount.String() != "25.50" {
		t.Fatalf("expected total 25.50, got %s", order.TotalAmount.String())
	}
	if order.PaymentMethod != "pix" {
		t.Fatalf("expected stored payment label, got %q", order.PaymentMethod)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 line snapshots, got %d", len(order.Items))
	}

	var count int64
	if err := db.Model(&models.Order{}).Count(&count).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one order written, got %d", count)
	}

	lines, err := cart.Load(owner)
	if err != nil {
		t.Fatalf("load after confirm failed: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected cleared cart after confirm, got: %+v", lines)
	}
}

func TestCheckoutConfirmEmptyCart(t *testing.T) {
	svc, _, _, db := newCheckoutService(t)

	if _, err := svc.Confirm(12, "pix"); !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got: %v", err)
	}

	var count int64
	if err := db.Model(&models.Order{}).Count(&count).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no writes on empty cart, got %d orders", count)
	}
}

func TestCheckoutPendingItemParkAndRead(t *testing.T) {
	svc, _, _, _ := newCheckoutService(t)

	if err := svc.ParkPendingItem("", CartLine{Name: "X"}); !errors.Is(err, ErrDeviceRequired) {
		t.Fatalf("expected ErrDeviceRequired, got: %v", err)
	}
	if err := svc.ParkPendingItem("dev-3", CartLine{Name: "  "}); !errors.Is(err, ErrCartItemInvalid) {
		t.Fatalf("expected ErrCartItemInvalid, got: %v", err)
	}

	if err := svc.ParkPendingItem("dev-3", CartLine{Name: "Lanterna Tática 1200lm", Price: "R$ 329,90", Quantity: 0}); err != nil {
		t.Fatalf("park failed: %v", err)
	}
	line, err := svc.PendingItem("dev-3")
	if err != nil {
		t.Fatalf("pending item failed: %v", err)
	}
	if line == nil || line.Name != "Lanterna Tática 1200lm" || line.Quantity != 1 {
		t.Fatalf("unexpected pending line: %+v", line)
	}

	// parking again replaces the earlier line
	if err := svc.ParkPendingItem("dev-3", CartLine{Name: "Coldre Kydex IWB", Price: "R$ 189,90", Quantity: 2}); err != nil {
		t.Fatalf("second park failed: %v", err)
	}
	line, err = svc.PendingItem("dev-3")
	if err != nil {
		t.Fatalf("pending item failed: %v", err)
	}
	if line.Name != "Coldre Kydex IWB" {
		t.Fatalf("expected replacement, got: %+v", line)
	}
}

func TestCheckoutReplayPendingExactlyOnce(t *testing.T) {
	svc, cart, _, db := newCheckoutService(t)
	userRepo := repository.NewUserRepository(db)
	user := createTestUser(t, userRepo, "replay@example.com")

	pending := CartLine{Name: "Espingarda Pump SG-12", Price: "R$ 5.249,50", Image: "/img/s.jpg", Quantity: 2}
	if err := svc.ParkPendingItem("dev-4", pending); err != nil {
		t.Fatalf("park failed: %v", err)
	}

	if err := svc.ReplayPending(user.ID, "dev-4"); err != nil {
		t.Fatalf("replay failed: %v", err)
	}
	lines, err := cart.Load(CartOwner{UserID: user.ID})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	// the full line lands in the cart, not just the name
	if len(lines) != 1 || lines[0] != pending {
		t.Fatalf("expected parked line replayed into cart, got: %+v", lines)
	}

	// second sign-in replays nothing
	if err := svc.ReplayPending(user.ID, "dev-4"); err != nil {
		t.Fatalf("second replay failed: %v", err)
	}
	lines, err = cart.Load(CartOwner{UserID: user.ID})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(lines) != 1 || lines[0].Quantity != 2 {
		t.Fatalf("expected pending line to replay exactly once, got: %+v", lines)
	}
}

func TestCheckoutReplayCorruptPendingDropped(t *testing.T) {
	svc, cart, store, db := newCheckoutService(t)
	userRepo := repository.NewUserRepository(db)
	user := createTestUser(t, userRepo, "corrupt@example.com")

	store.SetRaw(constants.StoreKeyPendingProduct+"dev-5", []byte("not json"))
	if err := svc.ReplayPending(user.ID, "dev-5"); err != nil {
		t.Fatalf("replay of corrupt pending should drop it, got: %v", err)
	}

	lines, err := cart.Load(CartOwner{UserID: user.ID})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected nothing replayed from corrupt pending, got: %+v", lines)
	}
	var line CartLine
	found, _ := store.Get(constants.StoreKeyPendingProduct+"dev-5", &line)
	if found {
		t.Fatalf("expected corrupt pending key to be deleted")
	}
}

func TestCheckoutReplayNoIdentityIsNoOp(t *testing.T) {
	svc, _, _, _ := newCheckoutService(t)
	if err := svc.ReplayPending(0, "dev-6"); err != nil {
		t.Fatalf("replay without user should be a no-op, got: %v", err)
	}
	if err := svc.ReplayPending(1, ""); err != nil {
		t.Fatalf("replay without device should be a no-op, got: %v", err)
	}
}
