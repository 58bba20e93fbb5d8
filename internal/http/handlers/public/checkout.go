package public

import (
	"github.com/finotty/duqueLoja/internal/http/response"
	"github.com/finotty/duqueLoja/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckoutConfirmRequest checkout confirmation request
type CheckoutConfirmRequest struct {
	PaymentMethod string `json:"payment_method"`
}

// PendingItemRequest anonymous buy-intent request
type PendingItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Price    string `json:"price"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}

// ConfirmCheckout snapshots the user's cart into one pending order and
// clears the cart
func (h *Handler) ConfirmCheckout(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req CheckoutConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	order, err := h.CheckoutService.Confirm(uid, req.PaymentMethod)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.Success(c, order)
}

// CancelCheckout abandons the purchase flow. The cart and orders stay
// untouched; the handler only echoes the cart back.
func (h *Handler) CancelCheckout(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	lines, err := h.CartService.Load(service.CartOwner{UserID: uid})
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.cart_fetch_failed")
		return
	}
	respondCart(c, lines)
}

// ParkPendingItem records the full line an anonymous visitor tried to
// buy; it is replayed into the cart on the next sign-in from this device.
func (h *Handler) ParkPendingItem(c *gin.Context) {
	var req PendingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.CheckoutService.ParkPendingItem(getDeviceID(c), service.CartLine{
		Name:     req.Name,
		Price:    req.Price,
		Image:    req.Image,
		Quantity: req.Quantity,
	}); err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.Success(c, gin.H{"parked": true})
}

// GetPendingItem reads the device's parked buy intent, if any
func (h *Handler) GetPendingItem(c *gin.Context) {
	line, err := h.CheckoutService.PendingItem(getDeviceID(c))
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.Success(c, gin.H{"item": line})
}
