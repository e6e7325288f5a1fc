package service

import (
	"crypto/subtle"
	"strings"

	"go.uber.org/zap"

	"petcare/internal/domain"
	"petcare/pkg/utils"
)

// Admin gates the dashboard behind the single shared credential pair and
// aggregates the platform counters.
type Admin struct {
	username string
	password string
	users    domain.UserRepository
	bookings domain.BookingRepository
	log      *zap.Logger
}

func NewAdmin(username, password string, users domain.UserRepository, bookings domain.BookingRepository, log *zap.Logger) *Admin {
	return &Admin{
		username: username,
		password: password,
		users:    users,
		bookings: bookings,
		log:      log,
	}
}

// CheckCredentials accepts either a plain configured password or, when
// the configured value is a bcrypt hash, a bcrypt comparison.
func (s *Admin) CheckCredentials(username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) != 1 {
		s.log.Warn("tentativo login admin fallito", zap.String("username", username))
		return false
	}
	ok := false
	if strings.HasPrefix(s.password, "$2a$") || strings.HasPrefix(s.password, "$2b$") {
		ok = utils.CheckPassword(password, s.password)
	} else {
		ok = subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	}
	if !ok {
		s.log.Warn("tentativo login admin fallito", zap.String("username", username))
		return false
	}
	s.log.Info("admin login riuscito", zap.String("username", username))
	return true
}

type Stats struct {
	TotalUsers            int64 `json:"total_users"`
	TotalProfessionals    int64 `json:"total_professionals"`
	TotalClients          int64 `json:"total_clients"`
	VerifiedProfessionals int64 `json:"verified_professionals"`
	TotalBookings         int64 `json:"total_bookings"`
	PendingBookings       int64 `json:"pending_bookings"`
}

func (s *Admin) Stats() (Stats, error) {
	var (
		out Stats
		err error
	)
	if out.TotalUsers, err = s.users.CountAll(); err != nil {
		return Stats{}, err
	}
	if out.TotalProfessionals, err = s.users.CountByType(domain.UserTypeProfessional); err != nil {
		return Stats{}, err
	}
	if out.TotalClients, err = s.users.CountByType(domain.UserTypeClient); err != nil {
		return Stats{}, err
	}
	if out.VerifiedProfessionals, err = s.users.CountVerifiedProfessionals(); err != nil {
		return Stats{}, err
	}
	if out.TotalBookings, err = s.bookings.CountAll(); err != nil {
		return Stats{}, err
	}
	if out.PendingBookings, err = s.bookings.CountByStatus(domain.BookingStatusPending); err != nil {
		return Stats{}, err
	}
	return out, nil
}
