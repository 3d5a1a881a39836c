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

// ListParcels returns the operator parcel listing.
func (h *Handler) ListParcels(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	parcels, total, err := h.TrackingService.ListParcels(repository.ParcelListFilter{
		Page:        page,
		PageSize:    pageSize,
		Status:      c.Query("status"),
		ServiceType: c.Query("service_type"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to list parcels", err)
		return
	}

	response.SuccessWithPage(c, parcels, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: handlershared.TotalPages(total, pageSize),
	})
}

type createParcelRequest struct {
	SenderName      string `json:"sender_name"`
	SenderPhone     string `json:"sender_phone"`
	SenderAddress   string `json:"sender_address"`
	ReceiverName    string `json:"receiver_name"`
	ReceiverPhone   string `json:"receiver_phone"`
	ReceiverAddress string `json:"receiver_address"`
	Weight          string `json:"weight"`
	ServiceType     string `json:"service_type"`
	Notes           string `json:"notes"`
}

// CreateParcel registers a walk-in parcel at the hub.
func (h *Handler) CreateParcel(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	var req createParcelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request payload", err)
		return
	}

	parcel, err := h.TrackingService.CreateParcel(service.CreateParcelInput{
		SenderName:      req.SenderName,
		SenderPhone:     req.SenderPhone,
		SenderAddress:   req.SenderAddress,
		ReceiverName:    req.ReceiverName,
		ReceiverPhone:   req.ReceiverPhone,
		ReceiverAddress: req.ReceiverAddress,
		Weight:          req.Weight,
		ServiceType:     req.ServiceType,
		Notes:           req.Notes,
	})
	if err != nil {
		respondWithParcelError(c, err, "failed to create parcel")
		return
	}

	requestLog(c).Infow("parcel_created",
		"parcel_id", parcel.ID,
		"tracking_number", parcel.TrackingNumber,
	)
	response.Success(c, parcel)
}

type updateParcelStatusRequest struct {
	Status      string `json:"status"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// UpdateParcelStatus appends a status transition to a parcel's ledger.
func (h *Handler) UpdateParcelStatus(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	parcelID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || parcelID == 0 {
		respondError(c, response.CodeBadRequest, "invalid parcel id", nil)
		return
	}

	var req updateParcelStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request payload", err)
		return
	}

	if err := h.TrackingService.UpdateStatus(uint(parcelID), req.Status, req.Location, req.Description); err != nil {
		respondWithParcelError(c, err, "failed to update parcel status")
		return
	}

	requestLog(c).Infow("parcel_status_updated",
		"parcel_id", parcelID,
		"status", req.Status,
	)
	response.SuccessWithMsg(c, "status updated", nil)
}

func respondWithParcelError(c *gin.Context, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, service.ErrParcelNotFound):
		respondError(c, response.CodeNotFound, "parcel not found", nil)
	case errors.Is(err, service.ErrParcelStatusInvalid):
		respondError(c, response.CodeBadRequest, "parcel status is invalid", nil)
	case errors.Is(err, service.ErrSenderNameRequired),
		errors.Is(err, service.ErrSenderPhoneRequired),
		errors.Is(err, service.ErrSenderAddressRequired),
		errors.Is(err, service.ErrReceiverNameRequired),
		errors.Is(err, service.ErrReceiverPhoneRequired),
		errors.Is(err, service.ErrReceiverAddressRequired),
		errors.Is(err, service.ErrWeightRequired),
		errors.Is(err, service.ErrServiceTypeInvalid):
		respondError(c, response.CodeBadRequest, err.Error(), nil)
	default:
		respondError(c, response.CodeInternal, fallbackMsg, err)
	}
}
