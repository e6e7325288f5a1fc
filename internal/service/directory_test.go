package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"petcare/internal/domain"
	"petcare/internal/repo"
)

func TestListProfessionalsAppliesFallbacks(t *testing.T) {
	db := newTestDB(t)
	users := repo.NewUserRepo(db)
	s := NewDirectory(users, zap.NewNop())

	require.NoError(t, users.Create(&domain.User{
		Name: "Spoglio", Email: "spoglio@x.it",
		UserType: domain.UserTypeProfessional, IsActive: true,
	}))

	out, err := s.ListProfessionals("", "")
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, domain.FallbackProfession, out[0].Profession)
	require.Equal(t, domain.FallbackLocation, out[0].City)
	require.Equal(t, domain.FallbackLocation, out[0].Region)
	require.Equal(t, domain.FallbackServices, out[0].ServicesOffered)
	require.Equal(t, domain.FallbackBio, out[0].Bio)
}

func TestListProfessionalsEmptyResultIsNotError(t *testing.T) {
	db := newTestDB(t)
	s := NewDirectory(repo.NewUserRepo(db), zap.NewNop())

	out, err := s.ListProfessionals("Veterinario", "Palermo")
	require.NoError(t, err)
	require.NotNil(t, out)
	require.Empty(t, out)
}

func TestGetProfessionalNotFound(t *testing.T) {
	db := newTestDB(t)
	s := NewDirectory(repo.NewUserRepo(db), zap.NewNop())

	_, err := s.GetProfessional(9999)
	require.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestGetProfessionalReturnsRawFields(t *testing.T) {
	db := newTestDB(t)
	users := repo.NewUserRepo(db)
	s := NewDirectory(users, zap.NewNop())

	u := domain.User{
		Name: "Dr. Rossi", Email: "rossi@x.it", Phone: "+39 333 0000000",
		UserType: domain.UserTypeProfessional, IsActive: true,
	}
	require.NoError(t, users.Create(&u))

	detail, err := s.GetProfessional(u.ID)
	require.NoError(t, err)
	require.Equal(t, "+39 333 0000000", detail.Phone)
	require.Empty(t, detail.Profession, "detail view does not substitute fallbacks")
}
