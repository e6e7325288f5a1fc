package service

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"petcare/internal/domain"
)

var (
	ErrMissingFields = errors.New("required fields missing")
	ErrEmailTaken    = errors.New("email already registered")
)

// Accounts handles user registration for both clients and professionals.
type Accounts struct {
	users domain.UserRepository
	log   *zap.Logger
}

func NewAccounts(users domain.UserRepository, log *zap.Logger) *Accounts {
	return &Accounts{users: users, log: log}
}

type RegisterInput struct {
	Name       string
	Email      string
	Phone      string
	UserType   string
	Profession string
	City       string
	Region     string
}

// Register inserts a new user. Uniqueness is enforced twice: a pre-check
// for the friendly error, and the unique index as the concurrent-writer
// backstop (a duplicate-key failure maps to the same ErrEmailTaken).
func (s *Accounts) Register(in RegisterInput) (uint, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return 0, ErrMissingFields
	}
	existing, err := s.users.FindByEmail(in.Email)
	if err != nil {
		s.log.Error("errore registrazione", zap.Error(err))
		return 0, err
	}
	if existing != nil {
		return 0, ErrEmailTaken
	}

	userType := in.UserType
	if userType == "" {
		userType = domain.UserTypeClient
	}
	u := domain.User{
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		UserType:   userType,
		Profession: in.Profession,
		City:       in.City,
		Region:     in.Region,
		IsActive:   true,
	}
	if err := s.users.Create(&u); err != nil {
		if isDupKey(err) {
			return 0, ErrEmailTaken
		}
		s.log.Error("errore registrazione", zap.Error(err))
		return 0, err
	}
	s.log.Info("nuovo utente registrato", zap.String("email", u.Email))
	return u.ID, nil
}

func isDupKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
