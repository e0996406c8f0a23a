package database

import (
	"context"
	"errors"

	"github.com/rpupo63/portfolio-site-backend/models"
	"gorm.io/gorm"
)

type ProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db}
}

// First returns the profile, or nil when none has been created yet
func (r *ProfileRepo) First(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).Order("id").Limit(1).Find(&profile).Error
	if err != nil {
		return nil, err
	}
	if profile.ID == 0 {
		return nil, nil
	}
	return &profile, nil
}

// GetOrCreateSingleton returns the profile, creating an empty one on first use
func (r *ProfileRepo) GetOrCreateSingleton(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Order("id").First(&profile).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		profile = models.Profile{CupsOfCoffee: models.DefaultCupsOfCoffee}
		return tx.Create(&profile).Error
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Save writes the profile. A profile without an ID takes over the identity of
// the existing row, so the table never holds more than one profile.
func (r *ProfileRepo) Save(ctx context.Context, profile *models.Profile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if profile.ID == 0 {
			var existing models.Profile
			err := tx.Select("id", "created_at").Order("id").First(&existing).Error
			switch {
			case err == nil:
				profile.ID = existing.ID
				profile.CreatedAt = existing.CreatedAt
			case errors.Is(err, gorm.ErrRecordNotFound):
				return tx.Create(profile).Error
			default:
				return err
			}
		}
		return tx.Save(profile).Error
	})
}

// Count is exposed for admin diagnostics
func (r *ProfileRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Profile{}).Count(&n).Error
	return n, err
}
