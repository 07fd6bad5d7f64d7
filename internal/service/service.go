package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"virtualcare/config"
	"virtualcare/internal/domain"
	"virtualcare/internal/locker"
	"virtualcare/internal/repository"
)

type Deps struct {
	Repos  *repository.Repositories
	Logger *zap.Logger
	Config *config.Config
	Locker locker.Locker
}

type Services struct {
	Practitioner PractitionerService
	Catalog      CatalogService
	Availability AvailabilityService
	Appointment  AppointmentService
}

func NewServices(deps Deps) *Services {
	return &Services{
		Practitioner: NewPractitionerService(deps.Repos.Practitioner, deps.Logger),
		Catalog:      NewCatalogService(deps.Repos.Catalog, deps.Logger),
		Availability: NewAvailabilityService(deps.Repos.Availability, deps.Repos.Practitioner, deps.Logger),
		Appointment:  NewAppointmentService(deps.Repos, deps.Locker, deps.Config.Booking, deps.Logger),
	}
}

type PractitionerService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Practitioner, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Practitioner, error)
}

type CatalogService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	List(ctx context.Context, filter domain.ServiceFilter) ([]domain.Service, error)
}

type AvailabilityService interface {
	GetWeekly(ctx context.Context, practitionerID uuid.UUID) ([]domain.AvailabilityRule, error)
	ReplaceWeekly(ctx context.Context, practitionerID uuid.UUID, dto domain.SetWeeklyAvailabilityDTO) ([]domain.AvailabilityRule, error)
}

type AppointmentService interface {
	Create(ctx context.Context, patientID uuid.UUID, dto domain.CreateAppointmentDTO, now time.Time) (*domain.Appointment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, int, error)
	GetBookableSlots(ctx context.Context, query domain.SlotsQuery, now time.Time) ([]domain.BookingSlot, error)

	// Каждая смена статуса выражается отдельной командой, проверяемой
	// машиной состояний; UpdateStatus диспетчеризует целевой статус
	// в соответствующую команду.
	UpdateStatus(ctx context.Context, id uuid.UUID, target domain.AppointmentStatus, actorRole domain.UserRole, now time.Time) (*domain.Appointment, error)
	Confirm(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	Cancel(ctx context.Context, id uuid.UUID, actorRole domain.UserRole, now time.Time) (*domain.Appointment, error)
	Start(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	Complete(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	MarkNoShow(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	SetVideoRoom(ctx context.Context, id uuid.UUID, videoRoomID string) (*domain.Appointment, error)
}
