package domain

// Fallback text substituted for blank optional fields in the public
// listing. The detail view returns the stored values untouched.
const (
	FallbackProfession = "Professionista"
	FallbackLocation   = "N/A"
	FallbackServices   = "Servizi vari"
	FallbackBio        = "Professionista qualificato"
)

type ProfessionalSummary struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	Profession      string  `json:"profession"`
	City            string  `json:"city"`
	Region          string  `json:"region"`
	Rating          float64 `json:"rating"`
	TotalReviews    int     `json:"total_reviews"`
	HourlyRate      float64 `json:"hourly_rate"`
	ServicesOffered string  `json:"services_offered"`
	Bio             string  `json:"bio"`
	IsVerified      bool    `json:"is_verified"`
	ExperienceYears int     `json:"experience_years"`
}

type ProfessionalDetail struct {
	ProfessionalSummary
	Phone string `json:"phone"`
}

func orElse(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// SummaryOf maps a professional row to its listing shape, applying the
// per-field fallback substitutions exactly once.
func SummaryOf(u User) ProfessionalSummary {
	return ProfessionalSummary{
		ID:              u.ID,
		Name:            u.Name,
		Profession:      orElse(u.Profession, FallbackProfession),
		City:            orElse(u.City, FallbackLocation),
		Region:          orElse(u.Region, FallbackLocation),
		Rating:          u.Rating,
		TotalReviews:    u.TotalReviews,
		HourlyRate:      u.HourlyRate,
		ServicesOffered: orElse(u.ServicesOffered, FallbackServices),
		Bio:             orElse(u.Bio, FallbackBio),
		IsVerified:      u.IsVerified,
		ExperienceYears: u.ExperienceYears,
	}
}

func DetailOf(u User) ProfessionalDetail {
	return ProfessionalDetail{
		ProfessionalSummary: ProfessionalSummary{
			ID:              u.ID,
			Name:            u.Name,
			Profession:      u.Profession,
			City:            u.City,
			Region:          u.Region,
			Rating:          u.Rating,
			TotalReviews:    u.TotalReviews,
			HourlyRate:      u.HourlyRate,
			ServicesOffered: u.ServicesOffered,
			Bio:             u.Bio,
			IsVerified:      u.IsVerified,
			ExperienceYears: u.ExperienceYears,
		},
		Phone: u.Phone,
	}
}
