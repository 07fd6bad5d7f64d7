package domain

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityRule — еженедельное правило приема: окно времени для одного
// дня недели (0 — воскресенье). Отключенное правило хранится, но не
// участвует в подборе слотов.
type AvailabilityRule struct {
	ID             uuid.UUID `json:"id"`
	PractitionerID uuid.UUID `json:"practitioner_id"`
	DayOfWeek      int       `json:"day_of_week"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	IsAvailable    bool      `json:"is_available"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (r AvailabilityRule) Range() (TimeRange, error) {
	return NewTimeRange(r.StartTime, r.EndTime)
}

type AvailabilityRuleDTO struct {
	DayOfWeek   int    `json:"day_of_week" binding:"min=0,max=6"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	IsAvailable bool   `json:"is_available"`
}

// SetWeeklyAvailabilityDTO полностью заменяет недельное расписание
// специалиста: старые правила удаляются, новые записываются атомарно.
type SetWeeklyAvailabilityDTO struct {
	Rules []AvailabilityRuleDTO `json:"rules" binding:"required"`
}
