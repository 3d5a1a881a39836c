package public

import (
	"github.com/dumo-express/internal/constants"
	"github.com/dumo-express/internal/http/response"
	"github.com/dumo-express/internal/service"

	"github.com/gin-gonic/gin"
)

type createBookingRequest struct {
	CustomerName        string `json:"customer_name"`
	CustomerEmail       string `json:"customer_email"`
	CustomerPhone       string `json:"customer_phone"`
	PickupAddress       string `json:"pickup_address"`
	DeliveryAddress     string `json:"delivery_address"`
	PackageWeight       string `json:"package_weight"`
	ServiceType         string `json:"service_type"`
	ScheduledDate       string `json:"scheduled_date"`
	SpecialInstructions string `json:"special_instructions"`

	CaptchaID   string `json:"captcha_id"`
	CaptchaCode string `json:"captcha_code"`
}

// CreateBooking accepts a customer booking and returns the booking
// reference together with the derived tracking number.
func (h *Handler) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request payload", err)
		return
	}

	if err := h.CaptchaService.Verify(constants.CaptchaSceneBooking, service.CaptchaVerifyPayload{
		CaptchaID:   req.CaptchaID,
		CaptchaCode: req.CaptchaCode,
	}); err != nil {
		respondWithMappedError(c, err, bookingCreateErrorRules, response.CodeInternal, "booking failed")
		return
	}

	booking, err := h.BookingService.Create(service.CreateBookingInput{
		CustomerName:        req.CustomerName,
		CustomerEmail:       req.CustomerEmail,
		CustomerPhone:       req.CustomerPhone,
		PickupAddress:       req.PickupAddress,
		DeliveryAddress:     req.DeliveryAddress,
		PackageWeight:       req.PackageWeight,
		ServiceType:         req.ServiceType,
		ScheduledDate:       req.ScheduledDate,
		SpecialInstructions: req.SpecialInstructions,
	})
	if err != nil {
		respondWithMappedError(c, err, bookingCreateErrorRules, response.CodeInternal, "booking failed")
		return
	}

	requestLog(c).Infow("booking_created",
		"booking_ref", booking.BookingRef,
		"tracking_number", booking.TrackingNumber,
		"service_type", booking.ServiceType,
	)
	response.Success(c, gin.H{
		"booking_ref":     booking.BookingRef,
		"tracking_number": booking.TrackingNumber,
		"status":          booking.Status,
	})
}

// CheckBooking resolves a booking reference for the customer. An
// unknown reference is a normal found:false payload.
func (h *Handler) CheckBooking(c *gin.Context) {
	result, err := h.BookingService.Check(c.Param("booking_ref"))
	if err != nil {
		respondError(c, response.CodeInternal, "booking lookup failed", err)
		return
	}
	response.Success(c, result)
}
