package public

import (
	"github.com/dumo-express/internal/constants"
	"github.com/dumo-express/internal/http/response"
	"github.com/dumo-express/internal/service"

	"github.com/gin-gonic/gin"
)

type submitContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`

	CaptchaID   string `json:"captcha_id"`
	CaptchaCode string `json:"captcha_code"`
}

// SubmitContact stores a contact inquiry from the site form.
func (h *Handler) SubmitContact(c *gin.Context) {
	var req submitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request payload", err)
		return
	}

	if err := h.CaptchaService.Verify(constants.CaptchaSceneContact, service.CaptchaVerifyPayload{
		CaptchaID:   req.CaptchaID,
		CaptchaCode: req.CaptchaCode,
	}); err != nil {
		respondWithMappedError(c, err, contactSubmitErrorRules, response.CodeInternal, "submission failed")
		return
	}

	inquiry, err := h.ContactService.Submit(service.SubmitContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		respondWithMappedError(c, err, contactSubmitErrorRules, response.CodeInternal, "submission failed")
		return
	}

	requestLog(c).Infow("contact_inquiry_created", "inquiry_id", inquiry.ID)
	response.SuccessWithMsg(c, "thank you for contacting us", gin.H{"id": inquiry.ID})
}
