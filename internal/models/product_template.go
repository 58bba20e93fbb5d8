package models

import (
	"time"

	"gorm.io/gorm"
)

// ProductTemplate immutable catalog template table. Templates carry the
// descriptive data of a product and always keep a zero price; operators
// attach price and placement when registering from one.
type ProductTemplate struct {
	ID             uint           `gorm:"primarykey" json:"id"`                               // primary key
	Name           string         `gorm:"uniqueIndex;not null" json:"name"`                   // template name
	Description    string         `gorm:"type:text" json:"description"`                       // description
	Image          string         `gorm:"type:varchar(500)" json:"image"`                     // image path
	Category       string         `gorm:"type:varchar(20);not null;index" json:"category"`    // category
	Specifications SpecMap        `gorm:"type:json" json:"specifications"`                    // open spec map
	Price          Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // always zero
	SortOrder      int            `gorm:"default:0;index" json:"sort_order"`                  // ordering weight
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`                            // creation time
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`                                     // soft delete time
}

// TableName specifies the table name
func (ProductTemplate) TableName() string {
	return "product_templates"
}
