package admin

import "github.com/finotty/duqueLoja/internal/provider"

// Handler back office API handler.
type Handler struct {
	*provider.Container
}

// New creates the back office handler
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
