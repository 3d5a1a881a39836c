package admin

import "github.com/dumo-express/internal/provider"

// Handler serves the operator API: parcel intake, status updates,
// booking and inquiry management.
type Handler struct {
	*provider.Container
}

// New creates the admin handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
