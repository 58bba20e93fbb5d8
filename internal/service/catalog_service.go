package service

import (
	"fmt"
	"strings"

	"github.com/finotty/duqueLoja/internal/constants"
	"github.com/finotty/duqueLoja/internal/models"
	"github.com/finotty/duqueLoja/internal/repository"

	"github.com/shopspring/decimal"
)

// CatalogItem one storefront product, merged view over the base and
// operator-registered tables
type CatalogItem struct {
	ID              uint           `json:"id"`
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	Image           string         `json:"image"`
	Category        string         `json:"category"`
	Specifications  models.SpecMap `json:"specifications"`
	Price           models.Money   `json:"price"`
	PriceLabel      string         `json:"price_label"`
	DisplayLocation string         `json:"display_location"`
	Custom          bool           `json:"custom"`
}

// RegisterProductInput operator registration input
type RegisterProductInput struct {
	TemplateID      uint
	Price           decimal.Decimal
	DisplayLocation string
	AdminID         uint
}

// CatalogService catalog service
type CatalogService struct {
	productRepo  repository.ProductRepository
	customRepo   repository.CustomProductRepository
	templateRepo repository.ProductTemplateRepository
}

// NewCatalogService creates a catalog service
func NewCatalogService(
	productRepo repository.ProductRepository,
	customRepo repository.CustomProductRepository,
	templateRepo repository.ProductTemplateRepository,
) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		customRepo:   customRepo,
		templateRepo: templateRepo,
	}
}

// FetchAll returns the full merged catalog, base rows first
func (s *CatalogService) FetchAll() ([]CatalogItem, error) {
	return s.fetch(repository.CatalogListFilter{})
}

// FetchByPlacement returns catalog rows for one storefront placement
func (s *CatalogService) FetchByPlacement(placement string) ([]CatalogItem, error) {
	normalized := NormalizePlacement(placement)
	if normalized == "" {
		return nil, ErrPlacementInvalid
	}
	return s.fetch(repository.CatalogListFilter{DisplayLocation: normalized})
}

func (s *CatalogService) fetch(filter repository.CatalogListFilter) ([]CatalogItem, error) {
	base, err := s.productRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	customs, err := s.customRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	items := make([]CatalogItem, 0, len(base)+len(customs))
	for i := range base {
		items = append(items, baseCatalogItem(&base[i]))
	}
	for i := range customs {
		items = append(items, customCatalogItem(&customs[i]))
	}
	return items, nil
}

// FetchByName returns one catalog item by its unique name, checking the
// base table before the operator-registered one
func (s *CatalogService) FetchByName(name string) (*CatalogItem, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrNotFound
	}
	base, err := s.productRepo.GetByName(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	if base != nil {
		item := baseCatalogItem(base)
		return &item, nil
	}
	custom, err := s.customRepo.GetByName(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	if custom != nil {
		item := customCatalogItem(custom)
		return &item, nil
	}
	return nil, ErrNotFound
}

func baseCatalogItem(p *models.Product) CatalogItem {
	return CatalogItem{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Image:           p.Image,
		Category:        p.Category,
		Specifications:  p.Specifications,
		Price:           p.Price,
		PriceLabel:      p.Price.FormatBRL(),
		DisplayLocation: p.DisplayLocation,
	}
}

func customCatalogItem(p *models.CustomProduct) CatalogItem {
	return CatalogItem{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Image:           p.Image,
		Category:        p.Category,
		Specifications:  p.Specifications,
		Price:           p.Price,
		PriceLabel:      p.Price.FormatBRL(),
		DisplayLocation: p.DisplayLocation,
		Custom:          true,
	}
}

// ByCategory filters items by category without touching storage
func ByCategory(items []CatalogItem, category string) []CatalogItem {
	normalized := NormalizeCategory(category)
	filtered := make([]CatalogItem, 0, len(items))
	for _, item := range items {
		if item.Category == normalized {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// ByPlacement filters items by placement without touching storage
func ByPlacement(items []CatalogItem, placement string) []CatalogItem {
	normalized := NormalizePlacement(placement)
	filtered := make([]CatalogItem, 0, len(items))
	for _, item := range items {
		if item.DisplayLocation == normalized {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// ListTemplates lists registration templates, optionally by category
func (s *CatalogService) ListTemplates(category string) ([]models.ProductTemplate, error) {
	normalized := ""
	if strings.TrimSpace(category) != "" {
		normalized = NormalizeCategory(category)
		if normalized == "" {
			return nil, ErrCategoryInvalid
		}
	}
	templates, err := s.templateRepo.List(normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	return templates, nil
}

// Register copies an immutable template into the operator catalog with
// the operator's price and placement. The template row itself is never
// written. Product names stay unique across both catalog tables.
func (s *CatalogService) Register(input RegisterProductInput) (*models.CustomProduct, error) {
	placement := NormalizePlacement(input.DisplayLocation)
	if placement == "" {
		return nil, ErrPlacementInvalid
	}
	price := input.Price.Round(2)
	if price.LessThanOrEqual(decimal.Zero) {
		return nil, ErrProductPriceInvalid
	}

	template, err := s.templateRepo.GetByID(input.TemplateID)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, ErrTemplateNotFound
	}

	baseCount, err := s.productRepo.CountByName(template.Name)
	if err != nil {
		return nil, err
	}
	customCount, err := s.customRepo.CountByName(template.Name)
	if err != nil {
		return nil, err
	}
	if baseCount+customCount > 0 {
		return nil, ErrProductNameTaken
	}

	templateID := template.ID
	product := models.CustomProduct{
		TemplateID:      &templateID,
		Name:            template.Name,
		Description:     template.Description,
		Image:           template.Image,
		Category:        template.Category,
		Specifications:  template.Specifications,
		Price:           models.NewMoneyFromDecimal(price),
		DisplayLocation: placement,
		CreatedBy:       input.AdminID,
	}
	if err := s.customRepo.Create(&product); err != nil {
		return nil, err
	}
	return &product, nil
}

// NormalizeCategory maps raw input onto a known category, "" if unknown
func NormalizeCategory(raw string) string {
	value := strings.ToLower(strings.TrimSpace(raw))
	for _, category := range constants.ProductCategories {
		if value == category {
			return category
		}
	}
	return ""
}

// NormalizePlacement maps raw input onto a known placement, "" if unknown
func NormalizePlacement(raw string) string {
	value := strings.ToLower(strings.TrimSpace(raw))
	for _, placement := range constants.DisplayPlacements {
		if value == placement {
			return placement
		}
	}
	return ""
}
