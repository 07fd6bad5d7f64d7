package domain

import "github.com/google/uuid"

// BookingSlot — вычисляемый слот для бронирования. Слоты не хранятся:
// они пересчитываются на каждый запрос по расписанию и занятым записям.
type BookingSlot struct {
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAvailable bool   `json:"is_available"`
}

type SlotsQuery struct {
	PractitionerID uuid.UUID
	ServiceID      uuid.UUID
	DateFrom       string
	DateTo         string
}
