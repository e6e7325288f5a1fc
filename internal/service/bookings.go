package service

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"petcare/internal/domain"
)

// Bookings creates service appointments between a client and a
// professional. Referential integrity of the two user ids is left to the
// storage foreign keys.
type Bookings struct {
	bookings domain.BookingRepository
	log      *zap.Logger
}

func NewBookings(bookings domain.BookingRepository, log *zap.Logger) *Bookings {
	return &Bookings{bookings: bookings, log: log}
}

type BookingInput struct {
	ClientID       uint
	ProfessionalID uint
	ServiceType    string
	BookingDate    string // ISO-8601
	Notes          string
	TotalCost      float64
}

// bookingDateLayouts are tried in order; they cover the timezone-qualified,
// seconds-precision and date-only ISO-8601 forms the clients send.
var bookingDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseBookingDate(s string) (time.Time, error) {
	for _, layout := range bookingDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid booking date %q", s)
}

// Create stores a new pending booking. A malformed date is reported as a
// generic processing error, not a validation error; the transport keeps
// it on the 500 path.
func (s *Bookings) Create(in BookingInput) (uint, error) {
	when, err := parseBookingDate(in.BookingDate)
	if err != nil {
		s.log.Error("errore creazione prenotazione", zap.Error(err))
		return 0, err
	}
	b := domain.Booking{
		ClientID:       in.ClientID,
		ProfessionalID: in.ProfessionalID,
		ServiceType:    in.ServiceType,
		BookingDate:    when,
		Status:         domain.BookingStatusPending,
		Notes:          in.Notes,
		TotalCost:      in.TotalCost,
	}
	if err := s.bookings.Create(&b); err != nil {
		s.log.Error("errore creazione prenotazione", zap.Error(err))
		return 0, err
	}
	s.log.Info("nuova prenotazione creata", zap.Uint("booking_id", b.ID))
	return b.ID, nil
}
