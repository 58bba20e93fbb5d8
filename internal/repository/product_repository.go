package repository

import (
	"github.com/finotty/duqueLoja/internal/models"

	"gorm.io/gorm"
)

// ProductRepository base catalog data access interface
type ProductRepository interface {
	List(filter CatalogListFilter) ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	GetByName(name string) (*models.Product, error)
	CountByName(name string) (int64, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
}

// GormProductRepository GORM implementation
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a product repository
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// List lists base catalog rows
func (r *GormProductRepository) List(filter CatalogListFilter) ([]models.Product, error) {
	query := r.db.Model(&models.Product{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.DisplayLocation != "" {
		query = query.Where("display_location = ?", filter.DisplayLocation)
	}
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}

	products := make([]models.Product, 0)
	if err := query.Order("sort_order ASC, id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID fetches a product by ID
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	return firstOrNil[models.Product](r.db, id)
}

// GetByName fetches a product by name
func (r *GormProductRepository) GetByName(name string) (*models.Product, error) {
	return firstOrNil[models.Product](r.db.Where("name = ?", name))
}

// CountByName counts products with the given name
func (r *GormProductRepository) CountByName(name string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Create creates a product
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update updates a product
func (r *GormProductRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}
