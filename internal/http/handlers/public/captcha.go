package public

import (
	"errors"

	"github.com/finotty/duqueLoja/internal/http/response"
	"github.com/finotty/duqueLoja/internal/service"

	"github.com/gin-gonic/gin"
)

// GetImageCaptcha generates an image captcha challenge
func (h *Handler) GetImageCaptcha(c *gin.Context) {
	if h.CaptchaService == nil {
		respondError(c, response.CodeInternal, "error.captcha_unavailable", service.ErrCaptchaConfigInvalid)
		return
	}

	challenge, err := h.CaptchaService.GenerateImageChallenge()
	if errors.Is(err, service.ErrCaptchaConfigInvalid) {
		respondError(c, response.CodeBadRequest, "error.captcha_unavailable", nil)
		return
	}
	if err != nil {
		respondError(c, response.CodeInternal, "error.captcha_generate_failed", err)
		return
	}

	response.Success(c, gin.H{
		"captcha_id":   challenge.CaptchaID,
		"image_base64": challenge.ImageBase64,
	})
}
