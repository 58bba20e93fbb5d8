package repository

import (
	"time"

	"github.com/finotty/duqueLoja/internal/constants"
	"github.com/finotty/duqueLoja/internal/models"

	"gorm.io/gorm"
)

// OrderRepository order data access interface. Orders are append-only;
// there is no delete and the only mutation is the completion transition.
type OrderRepository interface {
	CreateWithItems(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetByOrderNo(orderNo string) (*models.Order, error)
	List(filter OrderListFilter) ([]models.Order, int64, error)
	MarkCompleted(id uint) (bool, error)
}

// GormOrderRepository GORM implementation
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates an order repository
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// CreateWithItems creates the order and its line snapshots in one
// transaction so a failure leaves no partial order behind.
func (r *GormOrderRepository) CreateWithItems(order *models.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

// GetByID fetches an order with its items
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	return firstOrNil[models.Order](r.db.Preload("Items"), id)
}

// GetByOrderNo fetches an order by order number with its items
func (r *GormOrderRepository) GetByOrderNo(orderNo string) (*models.Order, error) {
	return firstOrNil[models.Order](r.db.Preload("Items").Where("order_no = ?", orderNo))
}

// List lists orders
func (r *GormOrderRepository) List(filter OrderListFilter) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{})

	if filter.UserID > 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.OrderNo != "" {
		query = query.Where("order_no = ?", filter.OrderNo)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var orders []models.Order
	if err := query.Preload("Items").Order("id DESC").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// MarkCompleted flips a pending order to completed. The guarded WHERE
// makes the transition happen at most once; the bool reports whether
// this call performed it.
func (r *GormOrderRepository) MarkCompleted(id uint) (bool, error) {
	now := time.Now()
	result := r.db.Model(&models.Order{}).
		Where("id = ? AND status = ?", id, constants.OrderStatusPending).
		Updates(map[string]interface{}{
			"status":       constants.OrderStatusCompleted,
			"completed_at": now,
			"updated_at":   now,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
