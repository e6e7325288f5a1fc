package domain

import "time"

const BookingStatusPending = "pending"

type Booking struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ClientID       uint      `gorm:"not null;index" json:"client_id"`
	ProfessionalID uint      `gorm:"not null;index" json:"professional_id"`
	ServiceType    string    `gorm:"size:100;not null" json:"service_type"`
	BookingDate    time.Time `gorm:"not null" json:"booking_date"`
	Status         string    `gorm:"size:20;default:pending" json:"status"`
	Notes          string    `gorm:"type:text" json:"notes"`
	TotalCost      float64   `json:"total_cost"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`

	Client       *User `gorm:"foreignKey:ClientID" json:"-"`
	Professional *User `gorm:"foreignKey:ProfessionalID" json:"-"`
}

func (Booking) TableName() string { return "bookings" }

type BookingRepository interface {
	Create(b *Booking) error
	CountAll() (int64, error)
	CountByStatus(status string) (int64, error)
}
