package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"petcare/internal/domain"
	"petcare/internal/repo"
	"petcare/pkg/utils"
)

func TestCheckCredentialsPlain(t *testing.T) {
	db := newTestDB(t)
	s := NewAdmin("admin", "admin123", repo.NewUserRepo(db), repo.NewBookingRepo(db), zap.NewNop())

	require.True(t, s.CheckCredentials("admin", "admin123"))
	require.False(t, s.CheckCredentials("admin", "wrong"))
	require.False(t, s.CheckCredentials("root", "admin123"))
	require.False(t, s.CheckCredentials("", ""))
}

func TestCheckCredentialsBcryptHash(t *testing.T) {
	db := newTestDB(t)
	hashed := utils.HashPassword("s3gretissima")
	s := NewAdmin("admin", hashed, repo.NewUserRepo(db), repo.NewBookingRepo(db), zap.NewNop())

	require.True(t, s.CheckCredentials("admin", "s3gretissima"))
	require.False(t, s.CheckCredentials("admin", hashed), "the hash itself is not the password")
	require.False(t, s.CheckCredentials("admin", "admin123"))
}

func TestStatsCounters(t *testing.T) {
	db := newTestDB(t)
	users := repo.NewUserRepo(db)
	bookings := repo.NewBookingRepo(db)
	s := NewAdmin("admin", "admin123", users, bookings, zap.NewNop())

	verified := domain.User{
		Name: "A", Email: "a@x.it", UserType: domain.UserTypeProfessional,
		IsVerified: true, IsActive: true,
	}
	require.NoError(t, users.Create(&verified))
	require.NoError(t, users.Create(&domain.User{
		Name: "B", Email: "b@x.it", UserType: domain.UserTypeProfessional, IsActive: true,
	}))
	require.NoError(t, users.Create(&domain.User{
		Name: "C", Email: "c@x.it", UserType: domain.UserTypeClient, IsActive: true,
	}))

	when := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, bookings.Create(&domain.Booking{
		ClientID: 3, ProfessionalID: 1, ServiceType: "Visita",
		BookingDate: when, Status: domain.BookingStatusPending,
	}))
	require.NoError(t, bookings.Create(&domain.Booking{
		ClientID: 3, ProfessionalID: 2, ServiceType: "Visita",
		BookingDate: when, Status: "confirmed",
	}))

	stats, err := s.Stats()
	require.NoError(t, err)
	require.Equal(t, Stats{
		TotalUsers:            3,
		TotalProfessionals:    2,
		TotalClients:          1,
		VerifiedProfessionals: 1,
		TotalBookings:         2,
		PendingBookings:       1,
	}, stats)
}
