package admin

import (
	"errors"
	"time"

	"github.com/finotty/duqueLoja/internal/constants"
	"github.com/finotty/duqueLoja/internal/http/response"
	"github.com/finotty/duqueLoja/internal/i18n"
	"github.com/finotty/duqueLoja/internal/service"

	"github.com/gin-gonic/gin"
)

// LoginRequest back office login request
type LoginRequest struct {
	Username       string                `json:"username" binding:"required"`
	Password       string                `json:"password" binding:"required"`
	CaptchaPayload CaptchaPayloadRequest `json:"captcha_payload"`
}

// LoginResponse back office login response
type LoginResponse struct {
	Token     string                 `json:"token"`
	User      map[string]interface{} `json:"user"`
	ExpiresAt string                 `json:"expires_at"`
}

func (h *Handler) verifyCaptcha(c *gin.Context, scene string, payload CaptchaPayloadRequest) bool {
	if h.CaptchaService == nil {
		return true
	}
	err := h.CaptchaService.Verify(scene, payload.toServicePayload())
	switch {
	case err == nil:
		return true
	case errors.Is(err, service.ErrCaptchaRequired):
		respondError(c, response.CodeBadRequest, "error.captcha_required", nil)
	case errors.Is(err, service.ErrCaptchaInvalid):
		respondError(c, response.CodeBadRequest, "error.captcha_invalid", nil)
	case errors.Is(err, service.ErrCaptchaConfigInvalid):
		respondError(c, response.CodeInternal, "error.captcha_config_invalid", err)
	default:
		respondError(c, response.CodeInternal, "error.captcha_verify_failed", err)
	}
	return false
}

// AdminLogin signs an operator in
func (h *Handler) AdminLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if !h.verifyCaptcha(c, constants.CaptchaSceneLogin, req.CaptchaPayload) {
		return
	}

	admin, token, expiresAt, err := h.AuthService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, response.CodeUnauthorized, "error.admin_login_invalid", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.login_failed", err)
		return
	}

	response.Success(c, LoginResponse{
		Token: token,
		User: map[string]interface{}{
			"id":       admin.ID,
			"username": admin.Username,
		},
		ExpiresAt: expiresAt.Format(time.RFC3339),
	})
}

// UpdatePasswordRequest password change request
type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// UpdateAdminPassword changes the signed-in operator's password
func (h *Handler) UpdateAdminPassword(c *gin.Context) {
	id, ok := getAdminID(c)
	if !ok {
		return
	}
	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	err := h.AuthService.ChangePassword(id, req.OldPassword, req.NewPassword)
	switch {
	case err == nil:
		response.Success(c, nil)
	case errors.Is(err, service.ErrInvalidPassword):
		respondError(c, response.CodeBadRequest, "error.password_old_invalid", nil)
	case errors.Is(err, service.ErrWeakPassword):
		respondWeakPassword(c, err)
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "error.user_not_found", nil)
	default:
		respondError(c, response.CodeInternal, "error.save_failed", err)
	}
}

// respondWeakPassword surfaces the exact policy rule when available
func respondWeakPassword(c *gin.Context, err error) {
	if perr, ok := err.(interface {
		Key() string
		Args() []interface{}
	}); ok {
		msg := i18n.Sprintf(i18n.ResolveLocale(c), perr.Key(), perr.Args()...)
		respondErrorWithMsg(c, response.CodeBadRequest, msg, nil)
		return
	}
	respondError(c, response.CodeBadRequest, "error.password_weak", nil)
}
