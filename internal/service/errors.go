package service

import "errors"

// Validation errors. Caller-fixable; mapped to 400 by the handlers.
var (
	ErrCustomerNameRequired    = errors.New("customer name is required")
	ErrCustomerPhoneRequired   = errors.New("customer phone is required")
	ErrInvalidEmail            = errors.New("email address is invalid")
	ErrPickupAddressRequired   = errors.New("pickup address is required")
	ErrDeliveryAddressRequired = errors.New("delivery address is required")
	ErrPackageWeightRequired   = errors.New("package weight is required")
	ErrServiceTypeInvalid      = errors.New("service type is invalid")
	ErrScheduledDateInvalid    = errors.New("scheduled date is invalid")

	ErrSenderNameRequired      = errors.New("sender name is required")
	ErrSenderPhoneRequired     = errors.New("sender phone is required")
	ErrSenderAddressRequired   = errors.New("sender address is required")
	ErrReceiverNameRequired    = errors.New("receiver name is required")
	ErrReceiverPhoneRequired   = errors.New("receiver phone is required")
	ErrReceiverAddressRequired = errors.New("receiver address is required")
	ErrWeightRequired          = errors.New("weight is required")

	ErrNameRequired    = errors.New("name is required")
	ErrSubjectRequired = errors.New("subject is required")
	ErrMessageRequired = errors.New("message is required")

	ErrWeightOutOfRange = errors.New("weight is outside the quotable range")
	ErrQuoteUnavailable = errors.New("quote is not available for this service")

	ErrParcelStatusInvalid  = errors.New("parcel status is invalid")
	ErrBookingStatusInvalid = errors.New("booking status is invalid")
	ErrInquiryStatusInvalid = errors.New("inquiry status is invalid")
)

// Lookup and state errors.
var (
	ErrParcelNotFound  = errors.New("parcel not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrInquiryNotFound = errors.New("inquiry not found")
)

// Auth errors.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Captcha errors.
var (
	ErrCaptchaRequired = errors.New("captcha is required")
	ErrCaptchaInvalid  = errors.New("captcha is invalid")
)

// Infrastructure errors.
var (
	// ErrReferenceExhausted means repeated unique-constraint conflicts
	// while issuing a public identifier; with 36^8+ keyspace this only
	// happens when something else is broken.
	ErrReferenceExhausted = errors.New("reference generation exhausted retries")

	ErrEmailServiceDisabled      = errors.New("email service is disabled")
	ErrEmailServiceNotConfigured = errors.New("email service is not configured")
)

func isOneOf(value string, set []string) bool {
	for _, candidate := range set {
		if value == candidate {
			return true
		}
	}
	return false
}
