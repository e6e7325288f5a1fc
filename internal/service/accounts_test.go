package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"petcare/internal/domain"
	"petcare/internal/repo"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Booking{}))
	return db
}

func TestRegisterDefaultsToClient(t *testing.T) {
	db := newTestDB(t)
	s := NewAccounts(repo.NewUserRepo(db), zap.NewNop())

	id, err := s.Register(RegisterInput{Name: "Anna", Email: "anna@example.com"})
	require.NoError(t, err)
	require.NotZero(t, id)

	var u domain.User
	require.NoError(t, db.First(&u, id).Error)
	require.Equal(t, domain.UserTypeClient, u.UserType)
	require.True(t, u.IsActive)
	require.False(t, u.IsVerified)
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	db := newTestDB(t)
	s := NewAccounts(repo.NewUserRepo(db), zap.NewNop())

	_, err := s.Register(RegisterInput{Email: "anna@example.com"})
	require.ErrorIs(t, err, ErrMissingFields)

	_, err = s.Register(RegisterInput{Name: "Anna"})
	require.ErrorIs(t, err, ErrMissingFields)

	_, err = s.Register(RegisterInput{Name: "  ", Email: "anna@example.com"})
	require.ErrorIs(t, err, ErrMissingFields)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	s := NewAccounts(repo.NewUserRepo(db), zap.NewNop())

	_, err := s.Register(RegisterInput{Name: "Anna", Email: "anna@example.com"})
	require.NoError(t, err)

	_, err = s.Register(RegisterInput{Name: "Altra Anna", Email: "anna@example.com"})
	require.ErrorIs(t, err, ErrEmailTaken)

	var n int64
	require.NoError(t, db.Model(&domain.User{}).Where("email = ?", "anna@example.com").Count(&n).Error)
	require.EqualValues(t, 1, n, "duplicate attempt must not create a second row")
}

func TestRegisterKeepsProfessionalFields(t *testing.T) {
	db := newTestDB(t)
	s := NewAccounts(repo.NewUserRepo(db), zap.NewNop())

	id, err := s.Register(RegisterInput{
		Name: "Dr. Bianchi", Email: "bianchi@example.com",
		UserType: domain.UserTypeProfessional,
		Profession: "Veterinario", City: "Roma", Region: "Lazio",
	})
	require.NoError(t, err)

	var u domain.User
	require.NoError(t, db.First(&u, id).Error)
	require.Equal(t, domain.UserTypeProfessional, u.UserType)
	require.Equal(t, "Veterinario", u.Profession)
	require.Equal(t, "Roma", u.City)
}

func TestIsDupKey(t *testing.T) {
	require.True(t, isDupKey(errFake("UNIQUE constraint failed: users.email")))
	require.True(t, isDupKey(errFake(`duplicate key value violates unique constraint "idx_users_email"`)))
	require.False(t, isDupKey(errFake("connection refused")))
}

type errFake string

func (e errFake) Error() string { return string(e) }
