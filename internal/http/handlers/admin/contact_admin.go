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

// ListInquiries returns the operator inquiry listing.
func (h *Handler) ListInquiries(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	inquiries, total, err := h.ContactService.List(repository.ContactListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   c.Query("status"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to list inquiries", err)
		return
	}

	response.SuccessWithPage(c, inquiries, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: handlershared.TotalPages(total, pageSize),
	})
}

type updateInquiryStatusRequest struct {
	Status string `json:"status"`
}

// UpdateInquiryStatus moves an inquiry through its workflow states.
func (h *Handler) UpdateInquiryStatus(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	inquiryID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || inquiryID == 0 {
		respondError(c, response.CodeBadRequest, "invalid inquiry id", nil)
		return
	}

	var req updateInquiryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request payload", err)
		return
	}

	if err := h.ContactService.UpdateStatus(uint(inquiryID), req.Status); err != nil {
		switch {
		case errors.Is(err, service.ErrInquiryNotFound):
			respondError(c, response.CodeNotFound, "inquiry not found", nil)
		case errors.Is(err, service.ErrInquiryStatusInvalid):
			respondError(c, response.CodeBadRequest, "inquiry status is invalid", nil)
		default:
			respondError(c, response.CodeInternal, "failed to update inquiry status", err)
		}
		return
	}

	requestLog(c).Infow("inquiry_status_updated",
		"inquiry_id", inquiryID,
		"status", req.Status,
	)
	response.SuccessWithMsg(c, "status updated", nil)
}
