package repository

import "time"

// CatalogListFilter filter for catalog listings
type CatalogListFilter struct {
	Category        string
	DisplayLocation string
	Search          string
}

// OrderListFilter filter for order listings
type OrderListFilter struct {
	Page        int
	PageSize    int
	UserID      uint
	Status      string
	OrderNo     string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// UserListFilter filter for user listings
type UserListFilter struct {
	Page        int
	PageSize    int
	Keyword     string
	Status      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}
