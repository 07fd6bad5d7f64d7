package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"virtualcare/internal/domain"
	"virtualcare/pkg/validator"
)

// GetBookableSlots вычисляет свободные слоты специалиста в диапазоне дат.
// Шаг сетки равен длительности услуги, слоты не пересекаются между собой.
// Результат носит справочный характер: между показом слота и бронированием
// блокировка не удерживается, конфликт обнаружится при вставке.
func (s *AppointmentServiceImpl) GetBookableSlots(ctx context.Context, query domain.SlotsQuery, now time.Time) ([]domain.BookingSlot, error) {
	if !validator.ValidateDate(query.DateFrom) {
		return nil, fmt.Errorf("неверный формат даты %q: %w", query.DateFrom, domain.ErrInvalidRange)
	}
	if !validator.ValidateDate(query.DateTo) {
		return nil, fmt.Errorf("неверный формат даты %q: %w", query.DateTo, domain.ErrInvalidRange)
	}

	from, _ := time.Parse("2006-01-02", query.DateFrom)
	to, _ := time.Parse("2006-01-02", query.DateTo)

	if from.After(to) {
		return nil, fmt.Errorf("дата начала %s позже даты окончания %s: %w",
			query.DateFrom, query.DateTo, domain.ErrInvalidRange)
	}

	days := int(to.Sub(from).Hours()/24) + 1
	if days > s.policy.MaxRangeDays {
		return nil, fmt.Errorf("диапазон %d дней превышает предел %d: %w",
			days, s.policy.MaxRangeDays, domain.ErrInvalidRange)
	}

	if _, err := s.practitionerRepo.GetByID(ctx, query.PractitionerID); err != nil {
		return nil, err
	}

	catalogService, err := s.catalogRepo.GetByID(ctx, query.ServiceID)
	if err != nil {
		return nil, err
	}
	if !validator.ValidateDuration(catalogService.DurationMinutes) {
		return nil, fmt.Errorf("некорректная длительность услуги %d мин: %w",
			catalogService.DurationMinutes, domain.ErrInvalidRange)
	}
	duration := catalogService.DurationMinutes

	rules, err := s.availabilityRepo.GetWeeklyRules(ctx, query.PractitionerID)
	if err != nil {
		return nil, err
	}

	windowsByDay := make(map[int][]domain.TimeRange)
	blockedByDay := make(map[int][]domain.TimeRange)
	for _, rule := range rules {
		tr, err := rule.Range()
		if err != nil {
			s.logger.Warn("правило доступности с некорректным интервалом",
				zap.String("ruleID", rule.ID.String()), zap.Error(err))
			continue
		}
		if rule.IsAvailable {
			windowsByDay[rule.DayOfWeek] = append(windowsByDay[rule.DayOfWeek], tr)
		} else {
			blockedByDay[rule.DayOfWeek] = append(blockedByDay[rule.DayOfWeek], tr)
		}
	}

	// Один запрос к журналу на весь диапазон, дальше группировка по датам.
	occupying, err := s.repo.ListOccupying(ctx, query.PractitionerID, from, to)
	if err != nil {
		return nil, err
	}

	occupiedByDate := make(map[string][]domain.TimeRange)
	for _, appt := range occupying {
		r, err := appt.Range()
		if err != nil {
			s.logger.Warn("запись с некорректным интервалом в журнале",
				zap.String("appointmentID", appt.ID.String()), zap.Error(err))
			continue
		}
		key := appt.AppointmentDate.Format("2006-01-02")
		occupiedByDate[key] = append(occupiedByDate[key], r)
	}

	earliest := now.Add(s.policy.MinLeadTime)
	slots := make([]domain.BookingSlot, 0)

	for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
		day := int(date.Weekday())
		windows := windowsByDay[day]
		if len(windows) == 0 {
			continue
		}

		dateKey := date.Format("2006-01-02")
		occupied := occupiedByDate[dateKey]

		busy := make([]domain.TimeRange, 0, len(occupied)+len(blockedByDay[day]))
		busy = append(busy, blockedByDay[day]...)
		busy = append(busy, occupied...)

		for _, window := range windows {
			free := window.Subtract(busy)

			for start := window.Start; start+duration <= window.End; start += duration {
				candidate := domain.TimeRange{Start: start, End: start + duration}

				if !containedInAny(free, candidate) {
					continue
				}
				// Слот вплотную после занятой записи не предлагается.
				if startsAtOccupiedEnd(occupied, start) {
					continue
				}
				if !clockOnDate(date, start, now.Location()).After(earliest) {
					continue
				}

				slots = append(slots, domain.BookingSlot{
					Date:        dateKey,
					StartTime:   domain.FormatClock(candidate.Start),
					EndTime:     domain.FormatClock(candidate.End),
					IsAvailable: true,
				})
			}
		}
	}

	return slots, nil
}

func containedInAny(ranges []domain.TimeRange, candidate domain.TimeRange) bool {
	for _, r := range ranges {
		if r.Contains(candidate) {
			return true
		}
	}
	return false
}

func startsAtOccupiedEnd(occupied []domain.TimeRange, start int) bool {
	for _, o := range occupied {
		if o.End == start {
			return true
		}
	}
	return false
}
