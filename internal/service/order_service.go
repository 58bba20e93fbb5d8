package service

import (
	"github.com/finotty/duqueLoja/internal/models"
	"github.com/finotty/duqueLoja/internal/repository"
)

// OrderService order queries and the admin completion action
type OrderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService creates an order service
func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// ListByUser lists a user's orders
func (s *OrderService) ListByUser(userID uint, page, pageSize int) ([]models.Order, int64, error) {
	return s.orderRepo.List(repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   userID,
	})
}

// ListAdmin lists orders for the back office
func (s *OrderService) ListAdmin(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.List(filter)
}

// GetAdminByID fetches one order for the back office
func (s *OrderService) GetAdminByID(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

// Complete flips a pending order to completed. The transition happens
// at most once; completing an already completed order is rejected.
func (s *OrderService) Complete(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}

	done, err := s.orderRepo.MarkCompleted(id)
	if err != nil {
		return nil, err
	}
	if !done {
		return nil, ErrOrderStatusInvalid
	}

	return s.orderRepo.GetByID(id)
}
