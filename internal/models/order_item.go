package models

import (
	"time"
)

// OrderItem order line snapshot table
type OrderItem struct {
	ID         uint      `gorm:"primarykey" json:"id"`                                     // primary key
	OrderID    uint      `gorm:"index;not null" json:"order_id"`                           // owning order
	Name       string    `gorm:"not null" json:"name"`                                     // product name snapshot
	Image      string    `gorm:"type:varchar(500)" json:"image"`                           // image snapshot
	UnitPrice  Money     `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`  // unit price snapshot
	Quantity   int       `gorm:"not null" json:"quantity"`                                 // quantity
	TotalPrice Money     `gorm:"type:decimal(20,2);not null;default:0" json:"total_price"` // line subtotal
	CreatedAt  time.Time `gorm:"index" json:"created_at"`                                  // creation time
}

// TableName specifies the table name
func (OrderItem) TableName() string {
	return "order_items"
}
