package admin

import (
	"errors"

	"github.com/finotty/duqueLoja/internal/http/response"
	"github.com/finotty/duqueLoja/internal/models"
	"github.com/finotty/duqueLoja/internal/service"

	"github.com/gin-gonic/gin"
)

// ListProductTemplates lists registration templates, optionally by category
func (h *Handler) ListProductTemplates(c *gin.Context) {
	templates, err := h.CatalogService.ListTemplates(c.Query("category"))
	if err != nil {
		if errors.Is(err, service.ErrCategoryInvalid) {
			respondError(c, response.CodeBadRequest, "error.category_invalid", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.template_fetch_failed", err)
		return
	}
	response.Success(c, gin.H{"templates": templates})
}

// RegisterProductRequest operator product registration request.
// Price arrives as storefront text ("R$ 1.234,56" or "1234.56").
type RegisterProductRequest struct {
	TemplateID      uint   `json:"template_id" binding:"required"`
	Price           string `json:"price" binding:"required"`
	DisplayLocation string `json:"display_location" binding:"required"`
}

// RegisterProduct copies a template into the operator catalog with the
// given price and placement
func (h *Handler) RegisterProduct(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}
	var req RegisterProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	product, err := h.CatalogService.Register(service.RegisterProductInput{
		TemplateID:      req.TemplateID,
		Price:           models.ParseBRL(req.Price).Decimal,
		DisplayLocation: req.DisplayLocation,
		AdminID:         adminID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTemplateNotFound):
			respondError(c, response.CodeNotFound, "error.template_not_found", nil)
		case errors.Is(err, service.ErrProductPriceInvalid):
			respondError(c, response.CodeBadRequest, "error.product_price_invalid", nil)
		case errors.Is(err, service.ErrPlacementInvalid):
			respondError(c, response.CodeBadRequest, "error.placement_invalid", nil)
		case errors.Is(err, service.ErrProductNameTaken):
			respondError(c, response.CodeConflict, "error.product_name_taken", nil)
		default:
			respondError(c, response.CodeInternal, "error.product_register_failed", err)
		}
		return
	}

	response.Success(c, product)
}

// GetAdminCatalog returns the merged catalog for the back office
func (h *Handler) GetAdminCatalog(c *gin.Context) {
	items, err := h.CatalogService.FetchAll()
	if err != nil {
		respondError(c, response.CodeInternal, "error.catalog_fetch_failed", err)
		return
	}
	response.Success(c, gin.H{"items": items})
}
