package database

import (
	"context"

	"github.com/rpupo63/portfolio-site-backend/models"
	"gorm.io/gorm"
)

type ContactMessageRepo struct {
	db *gorm.DB
}

func NewContactMessageRepo(db *gorm.DB) *ContactMessageRepo {
	return &ContactMessageRepo{db}
}

// Create stores a submission as unread
func (r *ContactMessageRepo) Create(ctx context.Context, msg *models.ContactMessage) error {
	msg.IsRead = false
	return r.db.WithContext(ctx).Create(msg).Error
}

// FindAll returns every message, newest first
func (r *ContactMessageRepo) FindAll(ctx context.Context) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Order("id desc").
		Find(&messages).Error
	return messages, err
}

func (r *ContactMessageRepo) FindByID(ctx context.Context, id uint) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	if err := r.db.WithContext(ctx).First(&msg, id).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// SetRead flips the read flag, the only field that changes after insert
func (r *ContactMessageRepo) SetRead(ctx context.Context, id uint, read bool) error {
	res := r.db.WithContext(ctx).
		Model(&models.ContactMessage{}).
		Where("id = ?", id).
		Update("is_read", read)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ContactMessageRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.ContactMessage{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ContactMessageRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.ContactMessage{}).Count(&n).Error
	return n, err
}

// CountUnread backs the admin inbox badge
func (r *ContactMessageRepo) CountUnread(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.ContactMessage{}).Where("is_read = ?", false).Count(&n).Error
	return n, err
}
