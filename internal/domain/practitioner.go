package domain

import (
	"time"

	"github.com/google/uuid"
)

// Practitioner — карточка специалиста. Управление профилем живет вне ядра
// бронирования, здесь только то, что нужно подбору слотов и проверке прав.
type Practitioner struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"user_id"`
	LicenseNumber     string    `json:"license_number"`
	LicenseState      string    `json:"license_state"`
	Bio               *string   `json:"bio,omitempty"`
	YearsOfExperience *int      `json:"years_of_experience,omitempty"`
	Education         *string   `json:"education,omitempty"`
	IsVerified        bool      `json:"is_verified"`
	Rating            float64   `json:"rating"`
	TotalReviews      int       `json:"total_reviews"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
