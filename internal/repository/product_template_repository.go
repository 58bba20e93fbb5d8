package repository

import (
	"github.com/finotty/duqueLoja/internal/models"

	"gorm.io/gorm"
)

// ProductTemplateRepository immutable template data access interface.
// There is deliberately no Update: templates never change after seeding.
type ProductTemplateRepository interface {
	List(category string) ([]models.ProductTemplate, error)
	GetByID(id uint) (*models.ProductTemplate, error)
	GetByName(name string) (*models.ProductTemplate, error)
	Create(template *models.ProductTemplate) error
}

// GormProductTemplateRepository GORM implementation
type GormProductTemplateRepository struct {
	db *gorm.DB
}

// NewProductTemplateRepository creates a template repository
func NewProductTemplateRepository(db *gorm.DB) *GormProductTemplateRepository {
	return &GormProductTemplateRepository{db: db}
}

// List lists templates, optionally filtered by category
func (r *GormProductTemplateRepository) List(category string) ([]models.ProductTemplate, error) {
	query := r.db.Model(&models.ProductTemplate{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	templates := make([]models.ProductTemplate, 0)
	if err := query.Order("sort_order ASC, id ASC").Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

// GetByID fetches a template by ID
func (r *GormProductTemplateRepository) GetByID(id uint) (*models.ProductTemplate, error) {
	return firstOrNil[models.ProductTemplate](r.db, id)
}

// GetByName fetches a template by name
func (r *GormProductTemplateRepository) GetByName(name string) (*models.ProductTemplate, error) {
	return firstOrNil[models.ProductTemplate](r.db.Where("name = ?", name))
}

// Create creates a template (seeding only)
func (r *GormProductTemplateRepository) Create(template *models.ProductTemplate) error {
	return r.db.Create(template).Error
}
