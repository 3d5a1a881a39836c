package public

import (
	"errors"

	"github.com/dumo-express/internal/http/response"
	"github.com/dumo-express/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError maps one service error to an API response.
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
}

var bookingCreateErrorRules = []mappedHandlerError{
	{target: service.ErrCustomerNameRequired, code: response.CodeBadRequest, msg: "customer name is required"},
	{target: service.ErrInvalidEmail, code: response.CodeBadRequest, msg: "a valid email address is required"},
	{target: service.ErrCustomerPhoneRequired, code: response.CodeBadRequest, msg: "customer phone is required"},
	{target: service.ErrPickupAddressRequired, code: response.CodeBadRequest, msg: "pickup address is required"},
	{target: service.ErrDeliveryAddressRequired, code: response.CodeBadRequest, msg: "delivery address is required"},
	{target: service.ErrPackageWeightRequired, code: response.CodeBadRequest, msg: "package weight is required"},
	{target: service.ErrServiceTypeInvalid, code: response.CodeBadRequest, msg: "service type is invalid"},
	{target: service.ErrScheduledDateInvalid, code: response.CodeBadRequest, msg: "scheduled date is invalid"},
	{target: service.ErrCaptchaRequired, code: response.CodeBadRequest, msg: "captcha is required"},
	{target: service.ErrCaptchaInvalid, code: response.CodeBadRequest, msg: "captcha verification failed"},
}

var contactSubmitErrorRules = []mappedHandlerError{
	{target: service.ErrNameRequired, code: response.CodeBadRequest, msg: "name is required"},
	{target: service.ErrInvalidEmail, code: response.CodeBadRequest, msg: "a valid email address is required"},
	{target: service.ErrSubjectRequired, code: response.CodeBadRequest, msg: "subject is required"},
	{target: service.ErrMessageRequired, code: response.CodeBadRequest, msg: "message is required"},
	{target: service.ErrCaptchaRequired, code: response.CodeBadRequest, msg: "captcha is required"},
	{target: service.ErrCaptchaInvalid, code: response.CodeBadRequest, msg: "captcha verification failed"},
}

var quoteErrorRules = []mappedHandlerError{
	{target: service.ErrServiceTypeInvalid, code: response.CodeBadRequest, msg: "service type is invalid"},
	{target: service.ErrWeightOutOfRange, code: response.CodeBadRequest, msg: "weight is outside the quotable range"},
	{target: service.ErrQuoteUnavailable, code: response.CodeBadRequest, msg: "bulk shipments are quoted on request"},
}
