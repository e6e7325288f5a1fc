package repo

import (
	"gorm.io/gorm"

	"petcare/internal/domain"
)

type BookingRepo struct{ db *gorm.DB }

func NewBookingRepo(db *gorm.DB) *BookingRepo { return &BookingRepo{db: db} }

func (r *BookingRepo) Create(b *domain.Booking) error { return r.db.Create(b).Error }

func (r *BookingRepo) CountAll() (int64, error) {
	var n int64
	err := r.db.Model(&domain.Booking{}).Count(&n).Error
	return n, err
}

func (r *BookingRepo) CountByStatus(status string) (int64, error) {
	var n int64
	err := r.db.Model(&domain.Booking{}).Where("status = ?", status).Count(&n).Error
	return n, err
}
