package seed

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"petcare/internal/domain"
)

// Initializer lazily prepares the store: schema creation is
// create-if-absent and the sample data insert is guarded by an in-transaction
// empty check, so concurrent first requests from several workers stay safe.
// The done flag is only a fast path, never the correctness mechanism.
type Initializer struct {
	db   *gorm.DB
	log  *zap.Logger
	done atomic.Bool
}

func New(db *gorm.DB, log *zap.Logger) *Initializer {
	return &Initializer{db: db, log: log}
}

// EnsureReady is safe to call on every request. A failure leaves the flag
// unset so a later call retries.
func (i *Initializer) EnsureReady(ctx context.Context) error {
	if i.done.Load() {
		return nil
	}
	i.log.Info("inizializzazione database")

	if err := i.db.WithContext(ctx).AutoMigrate(&domain.User{}, &domain.Booking{}); err != nil {
		i.log.Error("migrazione schema fallita", zap.Error(err))
		return err
	}

	err := i.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&domain.User{}).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		i.log.Info("creazione professionisti di esempio")
		pros := SampleProfessionals()
		if err := tx.Create(&pros).Error; err != nil {
			return err
		}
		i.log.Info("professionisti di esempio creati", zap.Int("count", len(pros)))
		return nil
	})
	if err != nil {
		i.log.Error("inizializzazione database fallita", zap.Error(err))
		return err
	}

	i.done.Store(true)
	i.log.Info("database inizializzato con successo")
	return nil
}

// SampleProfessionals returns the fixed records seeded into an empty store:
// a veterinarian, a groomer, a dog sitter and a dog trainer.
func SampleProfessionals() []domain.User {
	return []domain.User{
		{
			Name:            "Dr. Marco Rossi",
			Email:           "marco.rossi@petcare.it",
			Phone:           "+39 333 1234567",
			UserType:        domain.UserTypeProfessional,
			Profession:      "Veterinario",
			City:            "Milano",
			Region:          "Lombardia",
			ExperienceYears: 8,
			ServicesOffered: "Visite generali, Chirurgia, Vaccinazioni",
			HourlyRate:      80.0,
			Rating:          4.8,
			TotalReviews:    156,
			Bio:             "Veterinario specializzato in chirurgia con 8 anni di esperienza",
			IsVerified:      true,
			IsActive:        true,
		},
		{
			Name:            "Laura Bianchi",
			Email:           "laura.bianchi@petcare.it",
			Phone:           "+39 347 9876543",
			UserType:        domain.UserTypeProfessional,
			Profession:      "Toelettatore",
			City:            "Roma",
			Region:          "Lazio",
			ExperienceYears: 5,
			ServicesOffered: "Toelettatura completa, Bagno, Taglio unghie",
			HourlyRate:      45.0,
			Rating:          4.9,
			TotalReviews:    89,
			Bio:             "Toelettatore certificato specializzato in razze di piccola taglia",
			IsVerified:      true,
			IsActive:        true,
		},
		{
			Name:            "Giuseppe Verde",
			Email:           "giuseppe.verde@petcare.it",
			Phone:           "+39 320 5551234",
			UserType:        domain.UserTypeProfessional,
			Profession:      "Dog Sitter",
			City:            "Napoli",
			Region:          "Campania",
			ExperienceYears: 3,
			ServicesOffered: "Passeggiate, Pet sitting, Addestramento base",
			HourlyRate:      25.0,
			Rating:          4.7,
			TotalReviews:    67,
			Bio:             "Dog sitter affidabile con passione per gli animali",
			IsVerified:      true,
			IsActive:        true,
		},
		{
			Name:            "Sofia Russo",
			Email:           "sofia.russo@petcare.it",
			Phone:           "+39 348 7778888",
			UserType:        domain.UserTypeProfessional,
			Profession:      "Addestratore Cinofilo",
			City:            "Torino",
			Region:          "Piemonte",
			ExperienceYears: 6,
			ServicesOffered: "Addestramento avanzato, Educazione cuccioli",
			HourlyRate:      60.0,
			Rating:          4.9,
			TotalReviews:    123,
			Bio:             "Addestratore cinofilo certificato ENCI",
			IsVerified:      true,
			IsActive:        true,
		},
	}
}
