package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"petcare/internal/domain"
	"petcare/internal/repo"
)

func TestParseBookingDateAcceptedForms(t *testing.T) {
	cases := map[string]time.Time{
		"2026-09-01T10:30:00Z":      time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC),
		"2026-09-01T10:30:00+02:00": time.Date(2026, 9, 1, 10, 30, 0, 0, time.FixedZone("", 2*3600)),
		"2026-09-01T10:30:00":       time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC),
		"2026-09-01 10:30:00":       time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC),
		"2026-09-01":                time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	}
	for in, want := range cases {
		got, err := parseBookingDate(in)
		require.NoError(t, err, in)
		require.True(t, got.Equal(want), "%s parsed to %v", in, got)
	}
}

func TestParseBookingDateRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "domani", "01/09/2026", "2026-13-45T99:00:00Z"} {
		_, err := parseBookingDate(in)
		require.Error(t, err, in)
	}
}

func TestCreateBookingDefaultsToPending(t *testing.T) {
	db := newTestDB(t)
	s := NewBookings(repo.NewBookingRepo(db), zap.NewNop())

	id, err := s.Create(BookingInput{
		ClientID: 1, ProfessionalID: 2,
		ServiceType: "Toelettatura", BookingDate: "2026-09-01T10:30:00",
		Notes: "primo appuntamento", TotalCost: 45,
	})
	require.NoError(t, err)

	var b domain.Booking
	require.NoError(t, db.First(&b, id).Error)
	require.Equal(t, domain.BookingStatusPending, b.Status)
	require.Equal(t, "Toelettatura", b.ServiceType)
	require.InDelta(t, 45.0, b.TotalCost, 0.001)
}

func TestCreateBookingMalformedDateFails(t *testing.T) {
	db := newTestDB(t)
	s := NewBookings(repo.NewBookingRepo(db), zap.NewNop())

	_, err := s.Create(BookingInput{
		ClientID: 1, ProfessionalID: 2,
		ServiceType: "Toelettatura", BookingDate: "non-una-data",
	})
	require.Error(t, err)

	var n int64
	require.NoError(t, db.Model(&domain.Booking{}).Count(&n).Error)
	require.Zero(t, n)
}
