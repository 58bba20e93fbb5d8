package public

import (
	"strings"

	"github.com/finotty/duqueLoja/internal/service"
)

// CaptchaPayloadRequest captcha answer payload.
// Scenes with captcha disabled accept an empty payload; the service
// layer decides whether it is required.
type CaptchaPayloadRequest struct {
	CaptchaID   string `json:"captcha_id"`
	CaptchaCode string `json:"captcha_code"`
}

func (r CaptchaPayloadRequest) toServicePayload() service.CaptchaVerifyPayload {
	return service.CaptchaVerifyPayload{
		CaptchaID:   strings.TrimSpace(r.CaptchaID),
		CaptchaCode: strings.TrimSpace(r.CaptchaCode),
	}
}
