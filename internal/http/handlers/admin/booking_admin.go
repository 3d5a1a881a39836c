package admin

import (
	"errors"
	"strconv"

	handlershared "github.com/dumo-express/internal/http/handlers/shared"
	"github.com/dumo-express/internal/http/response"
	"github.com/dumo-express/internal/repository"
	"github.com/dumo-express/internal/service"

	"github.com/gin-gonic/gin"
)

// ListBookings returns the operator booking listing.
func (h *Handler) ListBookings(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	bookings, total, err := h.BookingService.List(repository.BookingListFilter{
		Page:        page,
		PageSize:    pageSize,
		Status:      c.Query("status"),
		ServiceType: c.Query("service_type"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to list bookings", err)
		return
	}

	response.SuccessWithPage(c, bookings, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: handlershared.TotalPages(total, pageSize),
	})
}

type updateBookingStatusRequest struct {
	Status string `json:"status"`
}

// UpdateBookingStatus advances a booking through its workflow.
func (h *Handler) UpdateBookingStatus(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	var req updateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request payload", err)
		return
	}

	bookingRef := c.Param("booking_ref")
	if err := h.BookingService.UpdateStatus(bookingRef, req.Status); err != nil {
		switch {
		case errors.Is(err, service.ErrBookingNotFound):
			respondError(c, response.CodeNotFound, "booking not found", nil)
		case errors.Is(err, service.ErrBookingStatusInvalid):
			respondError(c, response.CodeBadRequest, "booking status is invalid", nil)
		default:
			respondError(c, response.CodeInternal, "failed to update booking status", err)
		}
		return
	}

	requestLog(c).Infow("booking_status_updated",
		"booking_ref", bookingRef,
		"status", req.Status,
	)
	response.SuccessWithMsg(c, "status updated", nil)
}
