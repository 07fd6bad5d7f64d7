package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"virtualcare/config"
	"virtualcare/internal/domain"
	"virtualcare/internal/locker"
	"virtualcare/internal/repository"
	"virtualcare/pkg/validator"
)

type AppointmentServiceImpl struct {
	repo             repository.AppointmentRepository
	availabilityRepo repository.AvailabilityRepository
	catalogRepo      repository.CatalogRepository
	practitionerRepo repository.PractitionerRepository
	userRepo         repository.UserRepository
	locker           locker.Locker
	policy           config.BookingConfig
	logger           *zap.Logger
}

func NewAppointmentService(
	repos *repository.Repositories,
	lock locker.Locker,
	policy config.BookingConfig,
	logger *zap.Logger,
) *AppointmentServiceImpl {
	return &AppointmentServiceImpl{
		repo:             repos.Appointment,
		availabilityRepo: repos.Availability,
		catalogRepo:      repos.Catalog,
		practitionerRepo: repos.Practitioner,
		userRepo:         repos.User,
		locker:           lock,
		policy:           policy,
		logger:           logger,
	}
}

// Create проводит бронирование по фиксированной цепочке проверок: каждая
// проверка либо пропускает дальше, либо завершает запрос своей ошибкой.
// Проверки до вставки лишь быстрый отказ; авторитетная защита от двойного
// бронирования выполняется внутри repo.Create.
func (s *AppointmentServiceImpl) Create(ctx context.Context, patientID uuid.UUID, dto domain.CreateAppointmentDTO, now time.Time) (*domain.Appointment, error) {
	if _, err := s.userRepo.GetByID(ctx, patientID); err != nil {
		s.logger.Error("пациент не найден при создании записи",
			zap.String("patientID", patientID.String()), zap.Error(err))
		return nil, err
	}

	if _, err := s.practitionerRepo.GetByID(ctx, dto.PractitionerID); err != nil {
		s.logger.Error("специалист не найден при создании записи",
			zap.String("practitionerID", dto.PractitionerID.String()), zap.Error(err))
		return nil, err
	}

	catalogService, err := s.catalogRepo.GetByID(ctx, dto.ServiceID)
	if err != nil {
		s.logger.Error("услуга не найдена при создании записи",
			zap.String("serviceID", dto.ServiceID.String()), zap.Error(err))
		return nil, err
	}

	if !validator.ValidateDate(dto.AppointmentDate) {
		return nil, fmt.Errorf("неверный формат даты %q: %w", dto.AppointmentDate, domain.ErrInvalidRange)
	}
	date, _ := time.Parse("2006-01-02", dto.AppointmentDate)

	start, err := domain.ParseClock(dto.StartTime)
	if err != nil {
		return nil, err
	}

	end := start + catalogService.DurationMinutes
	if end > 24*60 {
		return nil, fmt.Errorf("прием выходит за пределы суток: %w", domain.ErrOutsideAvailability)
	}
	slot := domain.TimeRange{Start: start, End: end}

	slotStart := clockOnDate(date, start, now.Location())
	if !slotStart.After(now.Add(s.policy.MinLeadTime)) {
		return nil, fmt.Errorf("слот %s %s слишком близко к текущему времени: %w",
			dto.AppointmentDate, dto.StartTime, domain.ErrSlotTooSoon)
	}

	rules, err := s.availabilityRepo.GetWeeklyRules(ctx, dto.PractitionerID)
	if err != nil {
		return nil, err
	}

	if err := s.checkWithinAvailability(rules, int(date.Weekday()), slot); err != nil {
		return nil, err
	}

	// Свежее чтение занятых записей: слоты на экране пациента могли
	// устареть за время раздумий.
	occupying, err := s.repo.ListOccupying(ctx, dto.PractitionerID, date, date)
	if err != nil {
		return nil, err
	}
	for _, appt := range occupying {
		r, err := appt.Range()
		if err != nil {
			s.logger.Warn("запись с некорректным интервалом в журнале",
				zap.String("appointmentID", appt.ID.String()), zap.Error(err))
			continue
		}
		if r.Overlaps(slot) {
			return nil, domain.ErrSlotAlreadyBooked
		}
	}

	appointment := domain.Appointment{
		PatientID:       patientID,
		PractitionerID:  dto.PractitionerID,
		ServiceID:       dto.ServiceID,
		AppointmentDate: date,
		StartTime:       domain.FormatClock(start),
		EndTime:         domain.FormatClock(end),
		Notes:           dto.Notes,
	}

	var created *domain.Appointment
	err = s.locker.WithScheduleLock(ctx, dto.PractitionerID, dto.AppointmentDate, func(ctx context.Context) error {
		var createErr error
		created, createErr = s.repo.Create(ctx, appointment)
		return createErr
	})
	if err != nil {
		if errors.Is(err, locker.ErrLockNotAcquired) {
			return nil, domain.ErrSlotBeingBooked
		}
		s.logger.Error("ошибка создания записи на прием", zap.Error(err))
		return nil, err
	}

	s.logger.Info("запись на прием создана",
		zap.String("appointmentID", created.ID.String()),
		zap.String("practitionerID", dto.PractitionerID.String()),
		zap.String("date", dto.AppointmentDate),
		zap.String("start", created.StartTime))

	return created, nil
}

// checkWithinAvailability требует полного вхождения слота в одно из
// включенных окон дня и отсутствия пересечений с выключенными окнами.
func (s *AppointmentServiceImpl) checkWithinAvailability(rules []domain.AvailabilityRule, dayOfWeek int, slot domain.TimeRange) error {
	contained := false
	for _, rule := range rules {
		if rule.DayOfWeek != dayOfWeek {
			continue
		}

		tr, err := rule.Range()
		if err != nil {
			s.logger.Warn("правило доступности с некорректным интервалом",
				zap.String("ruleID", rule.ID.String()), zap.Error(err))
			continue
		}

		if rule.IsAvailable {
			if tr.Contains(slot) {
				contained = true
			}
		} else if tr.Overlaps(slot) {
			return domain.ErrOutsideAvailability
		}
	}

	if !contained {
		return domain.ErrOutsideAvailability
	}
	return nil
}

func (s *AppointmentServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AppointmentServiceImpl) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	return s.repo.List(ctx, filter)
}

func (s *AppointmentServiceImpl) UpdateStatus(ctx context.Context, id uuid.UUID, target domain.AppointmentStatus, actorRole domain.UserRole, now time.Time) (*domain.Appointment, error) {
	switch target {
	case domain.AppointmentStatusConfirmed:
		return s.Confirm(ctx, id)
	case domain.AppointmentStatusCancelled:
		return s.Cancel(ctx, id, actorRole, now)
	case domain.AppointmentStatusInProgress:
		return s.Start(ctx, id)
	case domain.AppointmentStatusCompleted:
		return s.Complete(ctx, id)
	case domain.AppointmentStatusNoShow:
		return s.MarkNoShow(ctx, id)
	default:
		return nil, fmt.Errorf("перевод в статус %s невозможен: %w", target, domain.ErrInvalidStateTransition)
	}
}

func (s *AppointmentServiceImpl) Confirm(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	return s.transition(ctx, id, domain.AppointmentStatusConfirmed)
}

func (s *AppointmentServiceImpl) Cancel(ctx context.Context, id uuid.UUID, actorRole domain.UserRole, now time.Time) (*domain.Appointment, error) {
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !appointment.Status.CanTransitionTo(domain.AppointmentStatusCancelled) {
		return nil, fmt.Errorf("отмена из статуса %s невозможна: %w",
			appointment.Status, domain.ErrInvalidStateTransition)
	}

	exempt := actorRole == domain.UserRolePractitioner && s.policy.PractitionerCancelAnytime
	if !exempt {
		startsAt, err := appointment.StartsAt(now.Location())
		if err != nil {
			return nil, err
		}
		if startsAt.Sub(now) < s.policy.CancellationCutoff {
			return nil, domain.ErrCancellationWindowClosed
		}
	}

	return s.casTransition(ctx, id, appointment.Status, domain.AppointmentStatusCancelled)
}

func (s *AppointmentServiceImpl) Start(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	return s.transition(ctx, id, domain.AppointmentStatusInProgress)
}

func (s *AppointmentServiceImpl) Complete(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	return s.transition(ctx, id, domain.AppointmentStatusCompleted)
}

func (s *AppointmentServiceImpl) MarkNoShow(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	return s.transition(ctx, id, domain.AppointmentStatusNoShow)
}

func (s *AppointmentServiceImpl) SetVideoRoom(ctx context.Context, id uuid.UUID, videoRoomID string) (*domain.Appointment, error) {
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if appointment.Status != domain.AppointmentStatusConfirmed && appointment.Status != domain.AppointmentStatusInProgress {
		return nil, fmt.Errorf("видеокомната недоступна в статусе %s: %w",
			appointment.Status, domain.ErrInvalidStateTransition)
	}

	return s.repo.SetVideoRoom(ctx, id, videoRoomID)
}

func (s *AppointmentServiceImpl) transition(ctx context.Context, id uuid.UUID, target domain.AppointmentStatus) (*domain.Appointment, error) {
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !appointment.Status.CanTransitionTo(target) {
		return nil, fmt.Errorf("недопустимый переход из %s в %s: %w",
			appointment.Status, target, domain.ErrInvalidStateTransition)
	}

	return s.casTransition(ctx, id, appointment.Status, target)
}

// casTransition выполняет смену статуса compare-and-set. Если строка не
// обновилась, значит статус сменили конкурентно: проигравший запрос
// получает ErrInvalidStateTransition, а не затирает чужой переход.
func (s *AppointmentServiceImpl) casTransition(ctx context.Context, id uuid.UUID, from, to domain.AppointmentStatus) (*domain.Appointment, error) {
	updated, err := s.repo.UpdateStatus(ctx, id, from, to)
	if err == nil {
		s.logger.Info("статус записи изменен",
			zap.String("appointmentID", id.String()),
			zap.String("from", string(from)),
			zap.String("to", string(to)))
		return updated, nil
	}

	if errors.Is(err, domain.ErrNotFound) {
		if _, getErr := s.repo.GetByID(ctx, id); getErr != nil {
			return nil, getErr
		}
		return nil, fmt.Errorf("статус записи изменен конкурентно: %w", domain.ErrInvalidStateTransition)
	}

	return nil, err
}

// clockOnDate собирает момент времени из календарной даты и минут от
// начала суток в часовом поясе loc.
func clockOnDate(date time.Time, minutes int, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, loc)
}
