package public

import (
	"strings"

	"github.com/finotty/duqueLoja/internal/http/response"
	"github.com/finotty/duqueLoja/internal/service"

	"github.com/gin-gonic/gin"
)

// GetCatalog returns the merged catalog. Optional category and
// placement query filters narrow the result in memory.
func (h *Handler) GetCatalog(c *gin.Context) {
	items, err := h.CatalogService.FetchAll()
	if err != nil {
		respondCatalogError(c, err)
		return
	}

	if category := strings.TrimSpace(c.Query("category")); category != "" {
		if service.NormalizeCategory(category) == "" {
			respondError(c, response.CodeBadRequest, "error.category_invalid", nil)
			return
		}
		items = service.ByCategory(items, category)
	}
	if placement := strings.TrimSpace(c.Query("placement")); placement != "" {
		if service.NormalizePlacement(placement) == "" {
			respondError(c, response.CodeBadRequest, "error.placement_invalid", nil)
			return
		}
		items = service.ByPlacement(items, placement)
	}

	response.Success(c, gin.H{"items": items})
}

// GetCatalogByPlacement returns catalog rows for one storefront section
func (h *Handler) GetCatalogByPlacement(c *gin.Context) {
	items, err := h.CatalogService.FetchByPlacement(c.Param("placement"))
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, gin.H{"items": items})
}

// GetCatalogItem returns one catalog item by its unique name
func (h *Handler) GetCatalogItem(c *gin.Context) {
	item, err := h.CatalogService.FetchByName(c.Param("name"))
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, gin.H{"item": item})
}
