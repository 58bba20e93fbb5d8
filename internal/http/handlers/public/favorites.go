package public

import (
	"github.com/finotty/duqueLoja/internal/http/response"

	"github.com/gin-gonic/gin"
)

// FavoriteToggleRequest favorite toggle request
type FavoriteToggleRequest struct {
	Name string `json:"name" binding:"required"`
}

// GetFavorites returns the user's favorited product names
func (h *Handler) GetFavorites(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	favorites, err := h.FavoritesService.List(uid)
	if err != nil {
		respondWithMappedError(c, err, favoritesErrorRules, response.CodeInternal, "error.favorites_fetch_failed")
		return
	}
	response.Success(c, gin.H{"favorites": favorites})
}

// ToggleFavorite flips the favorite state of one product
func (h *Handler) ToggleFavorite(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req FavoriteToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	favorited, favorites, err := h.FavoritesService.Toggle(uid, req.Name)
	if err != nil {
		respondFavoritesError(c, err)
		return
	}
	response.Success(c, gin.H{
		"favorited": favorited,
		"favorites": favorites,
	})
}

// ParkPendingFavorite records a favorite toggle attempted while
// anonymous; it is replayed on the next sign-in from this device.
func (h *Handler) ParkPendingFavorite(c *gin.Context) {
	var req FavoriteToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.FavoritesService.ParkPending(getDeviceID(c), req.Name); err != nil {
		respondFavoritesError(c, err)
		return
	}
	response.Success(c, gin.H{"parked": true})
}
