package public

import (
	"strconv"

	"github.com/finotty/duqueLoja/internal/http/response"
	"github.com/finotty/duqueLoja/internal/service"

	"github.com/gin-gonic/gin"
)

// CartItemRequest add-to-cart request
type CartItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Price    string `json:"price"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}

// CartQuantityRequest quantity delta request
type CartQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// cartOwner resolves whose cart the request operates on. Routes behind
// the user JWT middleware carry user_id; guest routes carry the device
// header only.
func cartOwner(c *gin.Context) service.CartOwner {
	owner := service.CartOwner{DeviceID: getDeviceID(c)}
	if value, ok := c.Get("user_id"); ok {
		if uid, ok := value.(uint); ok {
			owner.UserID = uid
		}
	}
	return owner
}

func respondCart(c *gin.Context, lines []service.CartLine) {
	response.Success(c, gin.H{
		"items": lines,
		"total": service.CartLinesTotal(lines).FormatBRL(),
	})
}

// GetCart returns the owner's cart with its running total
func (h *Handler) GetCart(c *gin.Context) {
	lines, err := h.CartService.Load(cartOwner(c))
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.cart_fetch_failed")
		return
	}
	respondCart(c, lines)
}

// AddCartItem puts a line into the cart, merging on name
func (h *Handler) AddCartItem(c *gin.Context) {
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	lines, err := h.CartService.Add(cartOwner(c), service.CartLine{
		Name:     req.Name,
		Price:    req.Price,
		Image:    req.Image,
		Quantity: req.Quantity,
	})
	if err != nil {
		respondCartError(c, err)
		return
	}
	respondCart(c, lines)
}

// ChangeCartQuantity applies a delta to the line at index
func (h *Handler) ChangeCartQuantity(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.cart_index_invalid", nil)
		return
	}
	var req CartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	lines, err := h.CartService.ChangeQuantity(cartOwner(c), index, req.Delta)
	if err != nil {
		respondCartError(c, err)
		return
	}
	respondCart(c, lines)
}

// RemoveCartItem deletes the line at index
func (h *Handler) RemoveCartItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.cart_index_invalid", nil)
		return
	}

	lines, err := h.CartService.Remove(cartOwner(c), index)
	if err != nil {
		respondCartError(c, err)
		return
	}
	respondCart(c, lines)
}
