package database

import (
	"context"
	"errors"

	"github.com/aiclub/website-backend/errs"
	"github.com/aiclub/website-backend/filters"
	"gorm.io/gorm"
)

// ListResult is one page of a filtered list together with the size of the whole
// filtered set.
type ListResult[T any] struct {
	Items []T
	Count int64
	Page  filters.Page
}

// listPage counts the rows matching scopes, validates page against that count
// and loads the page in the given order.
func listPage[T any](ctx context.Context, db *gorm.DB, entity string, scopes []filters.Scope, order filters.Scope, page filters.Page, preload ...filters.Scope) (ListResult[T], error) {
	var count int64
	if err := db.WithContext(ctx).Model(new(T)).Scopes(scopes...).Count(&count).Error; err != nil {
		return ListResult[T]{}, errs.NewDatabaseError("count", entity, err)
	}

	page, err := page.Resolve(count)
	if err != nil {
		return ListResult[T]{}, err
	}

	items := make([]T, 0, page.Size)
	if count > 0 {
		query := db.WithContext(ctx).Scopes(preload...).Scopes(scopes...).Scopes(order, page.Scope())
		if err := query.Find(&items).Error; err != nil {
			return ListResult[T]{}, errs.NewDatabaseError("list", entity, err)
		}
	}
	return ListResult[T]{Items: items, Count: count, Page: page}, nil
}

// listAll loads every row matching scopes in the given order.
func listAll[T any](ctx context.Context, db *gorm.DB, entity string, order filters.Scope, scopes ...filters.Scope) ([]T, error) {
	var items []T
	if err := db.WithContext(ctx).Scopes(scopes...).Scopes(order).Find(&items).Error; err != nil {
		return nil, errs.NewDatabaseError("list", entity, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// findByID loads a single row, mapping a missing row to a not found error.
func findByID[T any](ctx context.Context, db *gorm.DB, entity string, id uint, preload ...filters.Scope) (*T, error) {
	var item T
	if err := db.WithContext(ctx).Scopes(preload...).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound(entity)
		}
		return nil, errs.NewDatabaseError("get", entity, err)
	}
	return &item, nil
}
