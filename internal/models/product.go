package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// SpecMap open specification map (label -> value), stored as JSON
type SpecMap map[string]string

// Value implements the driver.Valuer interface
func (s SpecMap) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan implements the sql.Scanner interface
func (s *SpecMap) Scan(value interface{}) error {
	if value == nil {
		*s = make(SpecMap)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, s)
}

// StringArray string array type, used for favorites and image lists
type StringArray []string

// Value implements the driver.Valuer interface
func (s StringArray) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan implements the sql.Scanner interface
func (s *StringArray) Scan(value interface{}) error {
	if value == nil {
		*s = StringArray{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, s)
}

// Product base catalog table
type Product struct {
	ID              uint           `gorm:"primarykey" json:"id"`                                        // primary key
	Name            string         `gorm:"uniqueIndex;not null" json:"name"`                            // product name, the catalog identity
	Description     string         `gorm:"type:text" json:"description"`                                // description
	Image           string         `gorm:"type:varchar(500)" json:"image"`                              // image path
	Category        string         `gorm:"type:varchar(20);not null;index" json:"category"`             // category (pistols/revolvers/...)
	Specifications  SpecMap        `gorm:"type:json" json:"specifications"`                             // open spec map
	Price           Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`          // sale price
	DisplayLocation string         `gorm:"type:varchar(20);not null;index" json:"display_location"`     // storefront placement
	SortOrder       int            `gorm:"default:0;index" json:"sort_order"`                           // ordering weight
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                                     // creation time
	UpdatedAt       time.Time      `json:"updated_at"`                                                  // update time
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                                              // soft delete time
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}
