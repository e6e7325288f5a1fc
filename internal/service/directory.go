package service

import (
	"errors"

	"go.uber.org/zap"

	"petcare/internal/domain"
)

// ErrProfessionalNotFound distinguishes a missing record from a storage
// failure so the transport can answer 404 instead of 500.
var ErrProfessionalNotFound = errors.New("professional not found")

// Directory is the read side of the public catalog: listing and detail
// lookup of active professionals.
type Directory struct {
	users domain.UserRepository
	log   *zap.Logger
}

func NewDirectory(users domain.UserRepository, log *zap.Logger) *Directory {
	return &Directory{users: users, log: log}
}

// ListProfessionals returns active professionals ordered by rating
// descending, optionally restricted to an exact profession and city.
// No match is an empty slice, not an error.
func (s *Directory) ListProfessionals(profession, city string) ([]domain.ProfessionalSummary, error) {
	rows, err := s.users.ListProfessionals(domain.ProfessionalFilter{
		Profession: profession,
		City:       city,
	})
	if err != nil {
		s.log.Error("errore recupero professionisti", zap.Error(err))
		return nil, err
	}
	out := make([]domain.ProfessionalSummary, 0, len(rows))
	for _, u := range rows {
		out = append(out, domain.SummaryOf(u))
	}
	return out, nil
}

func (s *Directory) GetProfessional(id uint) (*domain.ProfessionalDetail, error) {
	u, err := s.users.FindProfessional(id)
	if err != nil {
		s.log.Error("errore recupero professionista", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	if u == nil {
		return nil, ErrProfessionalNotFound
	}
	d := domain.DetailOf(*u)
	return &d, nil
}
