package repo

import (
	"errors"

	"gorm.io/gorm"

	"petcare/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(u *domain.User) error { return r.db.Create(u).Error }

func (r *UserRepo) FindByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindProfessional only matches active professional rows; a client id or
// a deactivated professional behaves like a missing record.
func (r *UserRepo) FindProfessional(id uint) (*domain.User, error) {
	var u domain.User
	err := r.db.
		Where("id = ? AND user_type = ? AND is_active = ?", id, domain.UserTypeProfessional, true).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ListProfessionals(f domain.ProfessionalFilter) ([]domain.User, error) {
	q := r.db.
		Where("user_type = ? AND is_active = ?", domain.UserTypeProfessional, true)
	if f.Profession != "" {
		q = q.Where("profession = ?", f.Profession)
	}
	if f.City != "" {
		q = q.Where("city = ?", f.City)
	}
	var users []domain.User
	// id ASC keeps equal ratings in a stable order.
	if err := q.Order("rating DESC, id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepo) CountAll() (int64, error) {
	var n int64
	err := r.db.Model(&domain.User{}).Count(&n).Error
	return n, err
}

func (r *UserRepo) CountByType(userType string) (int64, error) {
	var n int64
	err := r.db.Model(&domain.User{}).Where("user_type = ?", userType).Count(&n).Error
	return n, err
}

func (r *UserRepo) CountVerifiedProfessionals() (int64, error) {
	var n int64
	err := r.db.Model(&domain.User{}).
		Where("user_type = ? AND is_verified = ?", domain.UserTypeProfessional, true).
		Count(&n).Error
	return n, err
}
