package repository

import (
	"errors"

	"gorm.io/gorm"
)

// applyPagination applies page parameters, normalizing bad pages and offsets.
func applyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	if query == nil || pageSize <= 0 {
		return query
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * pageSize
	if offset < 0 {
		offset = 0
	}
	return query.Limit(pageSize).Offset(offset)
}

// firstOrNil fetches a single row, mapping gorm.ErrRecordNotFound to
// (nil, nil) so callers branch on the pointer instead of the error.
func firstOrNil[T any](query *gorm.DB, conds ...interface{}) (*T, error) {
	var row T
	if err := query.First(&row, conds...).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}
