package models

import (
	"time"

	"gorm.io/gorm"
)

// CustomProduct operator-registered catalog table. Rows are copies of an
// immutable template with the operator's price and placement attached;
// they are merged with the base products table at read time.
type CustomProduct struct {
	ID              uint           `gorm:"primarykey" json:"id"`                                    // primary key
	TemplateID      *uint          `gorm:"index" json:"template_id,omitempty"`                      // source template, if any
	Name            string         `gorm:"uniqueIndex;not null" json:"name"`                        // product name, unique across the catalog
	Description     string         `gorm:"type:text" json:"description"`                            // description snapshot
	Image           string         `gorm:"type:varchar(500)" json:"image"`                          // image snapshot
	Category        string         `gorm:"type:varchar(20);not null;index" json:"category"`         // category snapshot
	Specifications  SpecMap        `gorm:"type:json" json:"specifications"`                         // spec map snapshot
	Price           Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`      // operator price
	DisplayLocation string         `gorm:"type:varchar(20);not null;index" json:"display_location"` // storefront placement
	CreatedBy       uint           `gorm:"index;not null" json:"created_by"`                        // registering admin
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                                 // creation time
	UpdatedAt       time.Time      `json:"updated_at"`                                              // update time
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                                          // soft delete time
}

// TableName specifies the table name
func (CustomProduct) TableName() string {
	return "custom_products"
}
