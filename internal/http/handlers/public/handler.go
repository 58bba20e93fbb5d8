package public

import "github.com/finotty/duqueLoja/internal/provider"

// Handler storefront and visitor API handler.
type Handler struct {
	*provider.Container
}

// New creates the storefront handler
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
