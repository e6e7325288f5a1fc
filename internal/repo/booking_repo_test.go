package repo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"petcare/internal/domain"
)

func TestBookingCreateAndCounts(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepo(db)
	bookings := NewBookingRepo(db)

	client := domain.User{Name: "Anna", Email: "anna@example.com", UserType: domain.UserTypeClient, IsActive: true}
	prof := pro("B", "b@x.it", "Veterinario", "Roma", 4.9, true)
	require.NoError(t, users.Create(&client))
	require.NoError(t, users.Create(&prof))

	when := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	b1 := domain.Booking{
		ClientID: client.ID, ProfessionalID: prof.ID,
		ServiceType: "Visita generale", BookingDate: when,
		Status: domain.BookingStatusPending,
	}
	b2 := domain.Booking{
		ClientID: client.ID, ProfessionalID: prof.ID,
		ServiceType: "Vaccinazione", BookingDate: when.Add(24 * time.Hour),
		Status: "confirmed",
	}
	require.NoError(t, bookings.Create(&b1))
	require.NoError(t, bookings.Create(&b2))
	require.NotZero(t, b1.ID)

	total, err := bookings.CountAll()
	require.NoError(t, err)
	require.EqualValues(t, 2, total)

	pending, err := bookings.CountByStatus(domain.BookingStatusPending)
	require.NoError(t, err)
	require.EqualValues(t, 1, pending)
}
