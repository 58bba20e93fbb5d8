package service

import "errors"

// Sentinel errors shared by the service layer. Handlers map these to
// response codes and localized messages.
var (
	ErrNotFound             = errors.New("resource not found")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidPassword      = errors.New("invalid password")
	ErrWeakPassword         = errors.New("password does not meet policy")
	ErrEmailTaken           = errors.New("email already registered")
	ErrUserDisabled         = errors.New("user disabled")
	ErrCaptchaRequired      = errors.New("captcha required")
	ErrCaptchaInvalid       = errors.New("captcha invalid")
	ErrCaptchaConfigInvalid = errors.New("captcha configuration invalid")

	ErrCatalogUnavailable  = errors.New("catalog unavailable")
	ErrProductNameTaken    = errors.New("product name already registered")
	ErrProductPriceInvalid = errors.New("product price invalid")
	ErrTemplateNotFound    = errors.New("product template not found")
	ErrCategoryInvalid     = errors.New("category invalid")
	ErrPlacementInvalid    = errors.New("display placement invalid")

	ErrCartIndexInvalid = errors.New("cart index out of range")
	ErrCartItemInvalid  = errors.New("cart item invalid")
	ErrCartEmpty        = errors.New("cart is empty")
	ErrDeviceRequired   = errors.New("device identification required")

	ErrOrderStatusInvalid = errors.New("order status does not allow this transition")
)
