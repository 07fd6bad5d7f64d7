package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"virtualcare/internal/domain"
)

func slotsQuery(f *fixture, from, to string) domain.SlotsQuery {
	return domain.SlotsQuery{
		PractitionerID: f.practitionerID,
		ServiceID:      f.serviceID,
		DateFrom:       from,
		DateTo:         to,
	}
}

func slotStarts(slots []domain.BookingSlot) []string {
	starts := make([]string, 0, len(slots))
	for _, slot := range slots {
		starts = append(starts, slot.StartTime)
	}
	return starts
}

func TestGetBookableSlotsEmptySchedule(t *testing.T) {
	f := newFixture(t)

	slots, err := f.appointmentSvc.GetBookableSlots(context.Background(), slotsQuery(f, mondayDate, mondayDate), mondayBefore())
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}, slotStarts(slots))
	for _, slot := range slots {
		assert.Equal(t, mondayDate, slot.Date)
		assert.True(t, slot.IsAvailable)
	}
}

func TestGetBookableSlotsExcludesBooked(t *testing.T) {
	f := newFixture(t)

	_, err := f.appointments.Create(context.Background(), domain.Appointment{
		PatientID:       f.patientID,
		PractitionerID:  f.practitionerID,
		ServiceID:       f.serviceID,
		AppointmentDate: mustParseDate(t, mondayDate),
		StartTime:       "10:00",
		EndTime:         "10:30",
	})
	require.NoError(t, err)

	slots, err := f.appointmentSvc.GetBookableSlots(context.Background(), slotsQuery(f, mondayDate, mondayDate), mondayBefore())
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "09:30", "11:00", "11:30"}, slotStarts(slots))
}

func TestGetBookableSlotsDurationRespected(t *testing.T) {
	f := newFixture(t)

	longServiceID := f.serviceID
	f.catalog.services[longServiceID] = domain.Service{
		ID:              longServiceID,
		Name:            "Расширенная консультация",
		Category:        "general",
		DurationMinutes: 60,
	}

	slots, err := f.appointmentSvc.GetBookableSlots(context.Background(), slotsQuery(f, mondayDate, mondayDate), mondayBefore())
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, slotStarts(slots))
	for _, slot := range slots {
		start, err := domain.ParseClock(slot.StartTime)
		require.NoError(t, err)
		end, err := domain.ParseClock(slot.EndTime)
		require.NoError(t, err)
		assert.Equal(t, 60, end-start)
	}
}

func TestGetBookableSlotsLeadTime(t *testing.T) {
	f := newFixture(t)

	// 08:30 того же понедельника: с часовым запасом слоты 09:00 и 09:30
	// уже недоступны.
	now := time.Date(2026, 6, 1, 8, 30, 0, 0, time.UTC)

	slots, err := f.appointmentSvc.GetBookableSlots(context.Background(), slotsQuery(f, mondayDate, mondayDate), now)
	require.NoError(t, err)

	assert.Equal(t, []string{"10:00", "10:30", "11:00", "11:30"}, slotStarts(slots))
}

func TestGetBookableSlotsDayWithoutRules(t *testing.T) {
	f := newFixture(t)

	// 2026-06-02 — вторник, правил нет: ноль слотов без ошибки.
	slots, err := f.appointmentSvc.GetBookableSlots(context.Background(), slotsQuery(f, "2026-06-02", "2026-06-02"), mondayBefore())
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetBookableSlotsBlockedWindow(t *testing.T) {
	f := newFixture(t)

	rules := f.availability.rules[f.practitionerID]
	f.availability.rules[f.practitionerID] = append(rules, domain.AvailabilityRule{
		ID:             uuid.New(),
		PractitionerID: f.practitionerID,
		DayOfWeek:      1,
		StartTime:      "10:00",
		EndTime:        "11:00",
		IsAvailable:    false,
	})

	slots, err := f.appointmentSvc.GetBookableSlots(context.Background(), slotsQuery(f, mondayDate, mondayDate), mondayBefore())
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "09:30", "11:00", "11:30"}, slotStarts(slots))
}

func TestGetBookableSlotsInvalidRange(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		from string
		to   string
	}{
		{"инвертированный диапазон", "2026-06-08", "2026-06-01"},
		{"неверный формат начала", "01.06.2026", "2026-06-08"},
		{"неверный формат конца", "2026-06-01", "завтра"},
		{"диапазон за пределом", "2026-06-01", "2026-07-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.appointmentSvc.GetBookableSlots(context.Background(), slotsQuery(f, tt.from, tt.to), mondayBefore())
			assert.ErrorIs(t, err, domain.ErrInvalidRange)
		})
	}
}

func TestGetBookableSlotsUnknownPractitioner(t *testing.T) {
	f := newFixture(t)

	query := slotsQuery(f, mondayDate, mondayDate)
	query.PractitionerID = uuid.New()

	_, err := f.appointmentSvc.GetBookableSlots(context.Background(), query, mondayBefore())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetBookableSlotsMultipleDays(t *testing.T) {
	f := newFixture(t)

	rules := f.availability.rules[f.practitionerID]
	f.availability.rules[f.practitionerID] = append(rules, domain.AvailabilityRule{
		PractitionerID: f.practitionerID,
		DayOfWeek:      3,
		StartTime:      "14:00",
		EndTime:        "15:00",
		IsAvailable:    true,
	})

	// Понедельник и среда одной недели.
	slots, err := f.appointmentSvc.GetBookableSlots(context.Background(), slotsQuery(f, "2026-06-01", "2026-06-03"), mondayBefore())
	require.NoError(t, err)

	byDate := make(map[string][]string)
	for _, slot := range slots {
		byDate[slot.Date] = append(byDate[slot.Date], slot.StartTime)
	}

	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}, byDate["2026-06-01"])
	assert.Empty(t, byDate["2026-06-02"])
	assert.Equal(t, []string{"14:00", "14:30"}, byDate["2026-06-03"])
}
