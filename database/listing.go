package database

import (
	"context"

	"gorm.io/gorm"
)

// ListingPatch moves a row within its section or shows/hides it. Nil fields
// are left as stored.
type ListingPatch struct {
	Order    *int
	IsActive *bool
}

func (p ListingPatch) updates() map[string]any {
	updates := make(map[string]any, 2)
	if p.Order != nil {
		updates["order"] = *p.Order
	}
	if p.IsActive != nil {
		updates["is_active"] = *p.IsActive
	}
	return updates
}

// setListing applies patch to the row of model's table with the given id
func setListing(ctx context.Context, db *gorm.DB, model any, id uint, patch ListingPatch) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return gorm.ErrRecordNotFound
		}
		updates := patch.updates()
		if len(updates) == 0 {
			return nil
		}
		return tx.Session(&gorm.Session{SkipHooks: true}).
			Model(model).
			Where("id = ?", id).
			Updates(updates).Error
	})
}

// deleteByID removes one row, reporting a missing row as gorm.ErrRecordNotFound
func deleteByID(ctx context.Context, db *gorm.DB, model any, id uint) error {
	res := db.WithContext(ctx).Delete(model, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// findByID loads one row into dest or returns gorm.ErrRecordNotFound
func findByID(ctx context.Context, db *gorm.DB, dest any, id uint) error {
	return db.WithContext(ctx).First(dest, id).Error
}
