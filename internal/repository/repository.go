package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"virtualcare/internal/domain"
)

type Repositories struct {
	User         UserRepository
	Practitioner PractitionerRepository
	Catalog      CatalogRepository
	Availability AvailabilityRepository
	Appointment  AppointmentRepository
}

func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Practitioner: NewPractitionerRepository(db),
		Catalog:      NewCatalogRepository(db),
		Availability: NewAvailabilityRepository(db),
		Appointment:  NewAppointmentRepository(db),
	}
}

type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type PractitionerRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Practitioner, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Practitioner, error)
}

type CatalogRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	List(ctx context.Context, filter domain.ServiceFilter) ([]domain.Service, error)
}

type AvailabilityRepository interface {
	GetWeeklyRules(ctx context.Context, practitionerID uuid.UUID) ([]domain.AvailabilityRule, error)
	ReplaceWeeklyRules(ctx context.Context, practitionerID uuid.UUID, rules []domain.AvailabilityRule) error
}

type AppointmentRepository interface {
	// Create атомарно проверяет отсутствие пересечений и вставляет запись.
	// Это авторитетная проверка конфликтов: проверки на уровне сервиса
	// лишь быстрый отказ до обращения к хранилищу.
	Create(ctx context.Context, appointment domain.Appointment) (*domain.Appointment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	ListOccupying(ctx context.Context, practitionerID uuid.UUID, from, to time.Time) ([]domain.Appointment, error)
	List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, int, error)
	// UpdateStatus выполняет переход статуса по принципу compare-and-set:
	// строка меняется только если текущий статус равен from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.AppointmentStatus) (*domain.Appointment, error)
	SetVideoRoom(ctx context.Context, id uuid.UUID, videoRoomID string) (*domain.Appointment, error)
}

// storageError помечает неожиданные ошибки хранилища как временные:
// вызывающая сторона может повторить запрос, в отличие от ошибок валидации.
func storageError(op string, err error) error {
	return fmt.Errorf("%s: %w", op, errors.Join(domain.ErrStorageUnavailable, err))
}

func occupyingStatusStrings() []string {
	statuses := make([]string, 0, len(domain.OccupyingStatuses))
	for _, s := range domain.OccupyingStatuses {
		statuses = append(statuses, string(s))
	}
	return statuses
}
