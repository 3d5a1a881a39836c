package public

import (
	"github.com/dumo-express/internal/http/response"

	"github.com/gin-gonic/gin"
)

// TrackParcel resolves a tracking number to the parcel and its status
// timeline. An unknown number is a normal found:false payload.
func (h *Handler) TrackParcel(c *gin.Context) {
	result, err := h.TrackingService.Track(c.Param("tracking_number"))
	if err != nil {
		respondError(c, response.CodeInternal, "tracking lookup failed", err)
		return
	}
	response.Success(c, result)
}
