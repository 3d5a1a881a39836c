package public

import (
	"strings"

	"github.com/dumo-express/internal/http/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// GetPricing returns the published rate card.
func (h *Handler) GetPricing(c *gin.Context) {
	response.Success(c, h.PricingService.RateCard())
}

// QuoteParcel estimates the price for one parcel from service type and
// weight query parameters.
func (h *Handler) QuoteParcel(c *gin.Context) {
	serviceType := strings.TrimSpace(c.Query("service_type"))
	weightRaw := strings.TrimSpace(c.Query("weight_kg"))

	weight, err := decimal.NewFromString(weightRaw)
	if err != nil {
		respondError(c, response.CodeBadRequest, "weight_kg must be a number", nil)
		return
	}

	quote, err := h.PricingService.QuoteParcel(serviceType, weight)
	if err != nil {
		respondWithMappedError(c, err, quoteErrorRules, response.CodeInternal, "quote failed")
		return
	}
	response.Success(c, quote)
}
