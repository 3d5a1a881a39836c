package public

import "github.com/dumo-express/internal/provider"

// Handler serves the customer-facing API: tracking, bookings, contact,
// pricing, captcha.
type Handler struct {
	*provider.Container
}

// New creates the public handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
