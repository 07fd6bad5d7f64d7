package domain

import (
	"time"

	"github.com/google/uuid"
)

// Service — услуга из каталога консультаций. Справочные данные: ядро
// бронирования читает отсюда длительность приема, но не изменяет каталог.
type Service struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	Category        string    `json:"category"`
	DurationMinutes int       `json:"duration_minutes"`
	Price           *float64  `json:"price,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type ServiceFilter struct {
	Category *string `json:"category"`
	Limit    int     `json:"limit"`
	Offset   int     `json:"offset"`
}
