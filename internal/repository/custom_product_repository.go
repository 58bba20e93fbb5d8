package repository

import (
	"github.com/finotty/duqueLoja/internal/models"

	"gorm.io/gorm"
)

// CustomProductRepository operator-registered catalog data access interface
type CustomProductRepository interface {
	List(filter CatalogListFilter) ([]models.CustomProduct, error)
	GetByID(id uint) (*models.CustomProduct, error)
	GetByName(name string) (*models.CustomProduct, error)
	CountByName(name string) (int64, error)
	Create(product *models.CustomProduct) error
}

// GormCustomProductRepository GORM implementation
type GormCustomProductRepository struct {
	db *gorm.DB
}

// NewCustomProductRepository creates a custom product repository
func NewCustomProductRepository(db *gorm.DB) *GormCustomProductRepository {
	return &GormCustomProductRepository{db: db}
}

// List lists operator-registered rows
func (r *GormCustomProductRepository) List(filter CatalogListFilter) ([]models.CustomProduct, error) {
	query := r.db.Model(&models.CustomProduct{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.DisplayLocation != "" {
		query = query.Where("display_location = ?", filter.DisplayLocation)
	}
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}

	products := make([]models.CustomProduct, 0)
	if err := query.Order("id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID fetches a registered product by ID
func (r *GormCustomProductRepository) GetByID(id uint) (*models.CustomProduct, error) {
	return firstOrNil[models.CustomProduct](r.db, id)
}

// GetByName fetches a registered product by name
func (r *GormCustomProductRepository) GetByName(name string) (*models.CustomProduct, error) {
	return firstOrNil[models.CustomProduct](r.db.Where("name = ?", name))
}

// CountByName counts registered products with the given name
func (r *GormCustomProductRepository) CountByName(name string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.CustomProduct{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Create creates a registered product
func (r *GormCustomProductRepository) Create(product *models.CustomProduct) error {
	return r.db.Create(product).Error
}
