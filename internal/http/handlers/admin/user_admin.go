package admin

import (
	"strconv"
	"strings"

	"github.com/finotty/duqueLoja/internal/constants"
	"github.com/finotty/duqueLoja/internal/http/response"
	"github.com/finotty/duqueLoja/internal/repository"

	"github.com/gin-gonic/gin"
)

// AdminUserView user row without credentials
type AdminUserView struct {
	ID          uint     `json:"id"`
	Email       string   `json:"email"`
	DisplayName string   `json:"display_name"`
	Locale      string   `json:"locale"`
	Status      string   `json:"status"`
	Favorites   []string `json:"favorites"`
	CreatedAt   string   `json:"created_at"`
}

// GetAdminUsers lists storefront accounts
func (h *Handler) GetAdminUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	users, total, err := h.UserRepo.List(repository.UserListFilter{
		Page:     page,
		PageSize: pageSize,
		Keyword:  strings.TrimSpace(c.Query("search")),
		Status:   strings.TrimSpace(c.Query("status")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.user_fetch_failed", err)
		return
	}

	views := make([]AdminUserView, 0, len(users))
	for _, user := range users {
		views = append(views, AdminUserView{
			ID:          user.ID,
			Email:       user.Email,
			DisplayName: user.DisplayName,
			Locale:      user.Locale,
			Status:      user.Status,
			Favorites:   user.Favorites,
			CreatedAt:   user.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, views, pagination)
}

// BatchUpdateUserStatusRequest batch status change request
type BatchUpdateUserStatusRequest struct {
	UserIDs []uint `json:"user_ids" binding:"required"`
	Status  string `json:"status" binding:"required"`
}

// BatchUpdateUserStatus enables or disables a batch of accounts.
// Disabling bumps the token version so live sessions drop.
func (h *Handler) BatchUpdateUserStatus(c *gin.Context) {
	var req BatchUpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	status := strings.ToLower(strings.TrimSpace(req.Status))
	if status != constants.UserStatusActive && status != constants.UserStatusDisabled {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	if err := h.UserRepo.BatchUpdateStatus(req.UserIDs, status); err != nil {
		respondError(c, response.CodeInternal, "error.user_update_failed", err)
		return
	}
	response.Success(c, gin.H{"updated": len(req.UserIDs)})
}
