package domain

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled  AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed  AppointmentStatus = "confirmed"
	AppointmentStatusInProgress AppointmentStatus = "in_progress"
	AppointmentStatusCompleted  AppointmentStatus = "completed"
	AppointmentStatusCancelled  AppointmentStatus = "cancelled"
	AppointmentStatusNoShow     AppointmentStatus = "no_show"
)

func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusConfirmed, AppointmentStatusInProgress,
		AppointmentStatusCompleted, AppointmentStatusCancelled, AppointmentStatusNoShow:
		return true
	}
	return false
}

// OccupyingStatuses — статусы, при которых запись блокирует свой интервал
// времени для новых бронирований. Отмененные и завершенные записи
// освобождают интервал, но остаются в истории.
var OccupyingStatuses = []AppointmentStatus{
	AppointmentStatusScheduled,
	AppointmentStatusConfirmed,
	AppointmentStatusInProgress,
}

func (s AppointmentStatus) IsOccupying() bool {
	for _, status := range OccupyingStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// statusTransitions — машина состояний записи. Переходы вне этой таблицы
// отклоняются с ErrInvalidStateTransition.
var statusTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusScheduled:  {AppointmentStatusConfirmed, AppointmentStatusCancelled},
	AppointmentStatusConfirmed:  {AppointmentStatusInProgress, AppointmentStatusCancelled},
	AppointmentStatusInProgress: {AppointmentStatusCompleted, AppointmentStatusNoShow},
	AppointmentStatusCompleted:  {},
	AppointmentStatusCancelled:  {},
	AppointmentStatusNoShow:     {},
}

func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Appointment struct {
	ID              uuid.UUID         `json:"id"`
	PatientID       uuid.UUID         `json:"patient_id"`
	PractitionerID  uuid.UUID         `json:"practitioner_id"`
	ServiceID       uuid.UUID         `json:"service_id"`
	AppointmentDate time.Time         `json:"appointment_date"`
	StartTime       string            `json:"start_time"`
	EndTime         string            `json:"end_time"`
	Status          AppointmentStatus `json:"status"`
	Notes           *string           `json:"notes,omitempty"`
	VideoRoomID     *string           `json:"video_room_id,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// Range возвращает интервал записи в минутах от начала суток.
func (a Appointment) Range() (TimeRange, error) {
	return NewTimeRange(a.StartTime, a.EndTime)
}

// StartsAt возвращает момент начала приема в часовом поясе loc.
func (a Appointment) StartsAt(loc *time.Location) (time.Time, error) {
	start, err := ParseClock(a.StartTime)
	if err != nil {
		return time.Time{}, err
	}

	d := a.AppointmentDate
	return time.Date(d.Year(), d.Month(), d.Day(), start/60, start%60, 0, 0, loc), nil
}

type CreateAppointmentDTO struct {
	PractitionerID  uuid.UUID `json:"practitioner_id" binding:"required"`
	ServiceID       uuid.UUID `json:"service_id" binding:"required"`
	AppointmentDate string    `json:"appointment_date" binding:"required"`
	StartTime       string    `json:"start_time" binding:"required"`
	Notes           *string   `json:"notes"`
}

// UpdateAppointmentStatusDTO — явная команда смены статуса. Каждая мутация
// записи выражается отдельной командой, а не набором опциональных полей.
type UpdateAppointmentStatusDTO struct {
	Status AppointmentStatus `json:"status" binding:"required,oneof=scheduled confirmed in_progress completed cancelled no_show"`
}

type SetVideoRoomDTO struct {
	VideoRoomID string `json:"video_room_id" binding:"required"`
}

type AppointmentFilter struct {
	PatientID      *uuid.UUID         `json:"patient_id"`
	PractitionerID *uuid.UUID         `json:"practitioner_id"`
	Status         *AppointmentStatus `json:"status"`
	StartDate      *time.Time         `json:"start_date"`
	EndDate        *time.Time         `json:"end_date"`
	Limit          int                `json:"limit"`
	Offset         int                `json:"offset"`
}
