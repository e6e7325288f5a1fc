package domain

import "time"

const (
	UserTypeClient       = "client"
	UserTypeProfessional = "professional"
)

// User covers both clients and professionals; the professional-only
// columns stay at their zero defaults for clients.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Email    string `gorm:"uniqueIndex;size:120;not null" json:"email"`
	Phone    string `gorm:"size:20" json:"phone"`
	UserType string `gorm:"size:20;not null;default:client" json:"user_type"`

	Profession      string  `gorm:"size:100" json:"profession"`
	City            string  `gorm:"size:100" json:"city"`
	Region          string  `gorm:"size:100" json:"region"`
	ExperienceYears int     `gorm:"default:0" json:"experience_years"`
	ServicesOffered string  `gorm:"type:text" json:"services_offered"`
	HourlyRate      float64 `gorm:"default:0" json:"hourly_rate"`
	Rating          float64 `gorm:"default:0" json:"rating"`
	TotalReviews    int     `gorm:"default:0" json:"total_reviews"`
	Bio             string  `gorm:"type:text" json:"bio"`

	IsVerified bool      `gorm:"default:false" json:"is_verified"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string { return "users" }

// ProfessionalFilter narrows the public listing; empty fields match all.
type ProfessionalFilter struct {
	Profession string
	City       string
}

type UserRepository interface {
	Create(u *User) error
	FindByEmail(email string) (*User, error)
	FindProfessional(id uint) (*User, error)
	ListProfessionals(f ProfessionalFilter) ([]User, error)
	CountAll() (int64, error)
	CountByType(userType string) (int64, error)
	CountVerifiedProfessionals() (int64, error)
}
