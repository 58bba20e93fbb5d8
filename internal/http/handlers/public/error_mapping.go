package public

import (
	"errors"

	"github.com/finotty/duqueLoja/internal/http/response"
	"github.com/finotty/duqueLoja/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError maps one service error onto an API error response.
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

var catalogErrorRules = []mappedHandlerError{
	{target: service.ErrCatalogUnavailable, code: response.CodeUnavailable, key: "error.catalog_unavailable"},
	{target: service.ErrCategoryInvalid, code: response.CodeBadRequest, key: "error.category_invalid"},
	{target: service.ErrPlacementInvalid, code: response.CodeBadRequest, key: "error.placement_invalid"},
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.not_found"},
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrCartItemInvalid, code: response.CodeBadRequest, key: "error.cart_item_invalid"},
	{target: service.ErrCartIndexInvalid, code: response.CodeBadRequest, key: "error.cart_index_invalid"},
	{target: service.ErrDeviceRequired, code: response.CodeBadRequest, key: "error.device_required"},
}

var favoritesErrorRules = []mappedHandlerError{
	{target: service.ErrCartItemInvalid, code: response.CodeBadRequest, key: "error.favorite_invalid"},
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.user_not_found"},
	{target: service.ErrDeviceRequired, code: response.CodeBadRequest, key: "error.device_required"},
}

var checkoutErrorRules = []mappedHandlerError{
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, key: "error.cart_empty"},
	{target: service.ErrCartItemInvalid, code: response.CodeBadRequest, key: "error.cart_item_invalid"},
	{target: service.ErrDeviceRequired, code: response.CodeBadRequest, key: "error.device_required"},
}

func respondCatalogError(c *gin.Context, err error) {
	respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.catalog_fetch_failed")
}

func respondCartError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.cart_update_failed")
}

func respondFavoritesError(c *gin.Context, err error) {
	respondWithMappedError(c, err, favoritesErrorRules, response.CodeInternal, "error.favorites_update_failed")
}

func respondCheckoutError(c *gin.Context, err error) {
	respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "error.checkout_failed")
}
