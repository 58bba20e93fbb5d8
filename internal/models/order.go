package models

import (
	"time"
)

// Order order table. Orders are append-only: rows are never deleted and
// the only status transition is pending -> completed.
type Order struct {
	ID            uint        `gorm:"primarykey" json:"id"`                                // primary key
	OrderNo       string      `gorm:"uniqueIndex;not null" json:"order_no"`                // order number
	UserID        uint        `gorm:"index;not null" json:"user_id"`                       // owning user
	Status        string      `gorm:"index;not null" json:"status"`                        // pending / completed
	Currency      string      `gorm:"not null" json:"currency"`                            // currency code
	TotalAmount   Money       `gorm:"type:decimal(20,2);not null;default:0" json:"total"`  // order total
	PaymentMethod string      `gorm:"type:varchar(50)" json:"payment_method"`              // stored label only
	CompletedAt   *time.Time  `gorm:"index" json:"completed_at"`                           // completion time
	CreatedAt     time.Time   `gorm:"index" json:"created_at"`                             // creation time
	UpdatedAt     time.Time   `gorm:"index" json:"updated_at"`                             // update time

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // line snapshots
}

// TableName specifies the table name
func (Order) TableName() string {
	return "orders"
}
