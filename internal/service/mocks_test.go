package service

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"virtualcare/config"
	"virtualcare/internal/domain"
	"virtualcare/internal/locker"
	"virtualcare/internal/repository"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]domain.User)}
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &user, nil
}

type fakePractitionerRepo struct {
	mu            sync.Mutex
	practitioners map[uuid.UUID]domain.Practitioner
}

func newFakePractitionerRepo() *fakePractitionerRepo {
	return &fakePractitionerRepo{practitioners: make(map[uuid.UUID]domain.Practitioner)}
}

func (f *fakePractitionerRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Practitioner, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	practitioner, ok := f.practitioners[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &practitioner, nil
}

func (f *fakePractitionerRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*domain.Practitioner, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, practitioner := range f.practitioners {
		if practitioner.UserID == userID {
			return &practitioner, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fakeCatalogRepo struct {
	mu       sync.Mutex
	services map[uuid.UUID]domain.Service
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{services: make(map[uuid.UUID]domain.Service)}
}

func (f *fakeCatalogRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	service, ok := f.services[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &service, nil
}

func (f *fakeCatalogRepo) List(_ context.Context, filter domain.ServiceFilter) ([]domain.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	services := make([]domain.Service, 0, len(f.services))
	for _, service := range f.services {
		if filter.Category != nil && service.Category != *filter.Category {
			continue
		}
		services = append(services, service)
	}
	return services, nil
}

type fakeAvailabilityRepo struct {
	mu    sync.Mutex
	rules map[uuid.UUID][]domain.AvailabilityRule
}

func newFakeAvailabilityRepo() *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{rules: make(map[uuid.UUID][]domain.AvailabilityRule)}
}

func (f *fakeAvailabilityRepo) GetWeeklyRules(_ context.Context, practitionerID uuid.UUID) ([]domain.AvailabilityRule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	rules := make([]domain.AvailabilityRule, len(f.rules[practitionerID]))
	copy(rules, f.rules[practitionerID])
	return rules, nil
}

func (f *fakeAvailabilityRepo) ReplaceWeeklyRules(_ context.Context, practitionerID uuid.UUID, rules []domain.AvailabilityRule) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored := make([]domain.AvailabilityRule, 0, len(rules))
	now := time.Now()
	for _, rule := range rules {
		rule.ID = uuid.New()
		rule.PractitionerID = practitionerID
		rule.CreatedAt = now
		rule.UpdatedAt = now
		stored = append(stored, rule)
	}
	f.rules[practitionerID] = stored
	return nil
}

// fakeAppointmentRepo повторяет контракт хранилища: Create атомарно
// проверяет пересечения под мьютексом, UpdateStatus работает по принципу
// compare-and-set.
type fakeAppointmentRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]domain.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{items: make(map[uuid.UUID]domain.Appointment)}
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appointment domain.Appointment) (*domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	r, err := appointment.Range()
	if err != nil {
		return nil, err
	}

	for _, existing := range f.items {
		if existing.PractitionerID != appointment.PractitionerID {
			continue
		}
		if !existing.AppointmentDate.Equal(appointment.AppointmentDate) {
			continue
		}
		if !existing.Status.IsOccupying() {
			continue
		}
		er, err := existing.Range()
		if err != nil {
			continue
		}
		if er.Overlaps(r) {
			return nil, domain.ErrSlotAlreadyBooked
		}
	}

	now := time.Now()
	appointment.ID = uuid.New()
	appointment.Status = domain.AppointmentStatusScheduled
	appointment.CreatedAt = now
	appointment.UpdatedAt = now
	f.items[appointment.ID] = appointment

	return &appointment, nil
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	appointment, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &appointment, nil
}

func (f *fakeAppointmentRepo) ListOccupying(_ context.Context, practitionerID uuid.UUID, from, to time.Time) ([]domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	appointments := make([]domain.Appointment, 0)
	for _, appointment := range f.items {
		if appointment.PractitionerID != practitionerID {
			continue
		}
		if appointment.AppointmentDate.Before(from) || appointment.AppointmentDate.After(to) {
			continue
		}
		if !appointment.Status.IsOccupying() {
			continue
		}
		appointments = append(appointments, appointment)
	}

	sort.Slice(appointments, func(i, j int) bool {
		if !appointments[i].AppointmentDate.Equal(appointments[j].AppointmentDate) {
			return appointments[i].AppointmentDate.Before(appointments[j].AppointmentDate)
		}
		return appointments[i].StartTime < appointments[j].StartTime
	})

	return appointments, nil
}

func (f *fakeAppointmentRepo) List(_ context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	appointments := make([]domain.Appointment, 0)
	for _, appointment := range f.items {
		if filter.PatientID != nil && appointment.PatientID != *filter.PatientID {
			continue
		}
		if filter.PractitionerID != nil && appointment.PractitionerID != *filter.PractitionerID {
			continue
		}
		if filter.Status != nil && appointment.Status != *filter.Status {
			continue
		}
		if filter.StartDate != nil && appointment.AppointmentDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && appointment.AppointmentDate.After(*filter.EndDate) {
			continue
		}
		appointments = append(appointments, appointment)
	}

	// Порядок хранилища: сначала более поздние даты и слоты.
	sort.Slice(appointments, func(i, j int) bool {
		if !appointments[i].AppointmentDate.Equal(appointments[j].AppointmentDate) {
			return appointments[i].AppointmentDate.After(appointments[j].AppointmentDate)
		}
		return appointments[i].StartTime > appointments[j].StartTime
	})

	total := len(appointments)

	if filter.Offset > 0 {
		if filter.Offset >= len(appointments) {
			appointments = appointments[:0]
		} else {
			appointments = appointments[filter.Offset:]
		}
	}
	if filter.Limit > 0 && filter.Limit < len(appointments) {
		appointments = appointments[:filter.Limit]
	}

	return appointments, total, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, id uuid.UUID, from, to domain.AppointmentStatus) (*domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	appointment, ok := f.items[id]
	if !ok || appointment.Status != from {
		return nil, domain.ErrNotFound
	}

	appointment.Status = to
	appointment.UpdatedAt = time.Now()
	f.items[id] = appointment

	return &appointment, nil
}

func (f *fakeAppointmentRepo) SetVideoRoom(_ context.Context, id uuid.UUID, videoRoomID string) (*domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	appointment, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	appointment.VideoRoomID = &videoRoomID
	appointment.UpdatedAt = time.Now()
	f.items[id] = appointment

	return &appointment, nil
}

// setStatus подменяет статус записи напрямую, минуя машину состояний.
func (f *fakeAppointmentRepo) setStatus(t *testing.T, id uuid.UUID, status domain.AppointmentStatus) {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()

	appointment, ok := f.items[id]
	require.True(t, ok)
	appointment.Status = status
	f.items[id] = appointment
}

type passLocker struct{}

func (passLocker) WithScheduleLock(ctx context.Context, _ uuid.UUID, _ string, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type busyLocker struct{}

func (busyLocker) WithScheduleLock(context.Context, uuid.UUID, string, func(ctx context.Context) error) error {
	return locker.ErrLockNotAcquired
}

type fixture struct {
	appointments *fakeAppointmentRepo
	availability *fakeAvailabilityRepo
	catalog      *fakeCatalogRepo

	appointmentSvc  *AppointmentServiceImpl
	availabilitySvc *AvailabilityServiceImpl

	patientID          uuid.UUID
	practitionerID     uuid.UUID
	practitionerUserID uuid.UUID
	serviceID          uuid.UUID
}

func defaultPolicy() config.BookingConfig {
	return config.BookingConfig{
		MinLeadTime:               time.Hour,
		CancellationCutoff:        2 * time.Hour,
		MaxRangeDays:              31,
		PractitionerCancelAnytime: true,
	}
}

// newFixture собирает сервисы на in-memory хранилищах: пациент, специалист
// с приемом по понедельникам 09:00-12:00 и услуга длительностью 30 минут.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	users := newFakeUserRepo()
	practitioners := newFakePractitionerRepo()
	catalog := newFakeCatalogRepo()
	availability := newFakeAvailabilityRepo()
	appointments := newFakeAppointmentRepo()

	patientID := uuid.New()
	users.users[patientID] = domain.User{
		ID:       patientID,
		Email:    "patient@example.com",
		FullName: "Анна Иванова",
		Role:     domain.UserRolePatient,
	}

	practitionerUserID := uuid.New()
	users.users[practitionerUserID] = domain.User{
		ID:       practitionerUserID,
		Email:    "doctor@example.com",
		FullName: "Петр Сидоров",
		Role:     domain.UserRolePractitioner,
	}

	practitionerID := uuid.New()
	practitioners.practitioners[practitionerID] = domain.Practitioner{
		ID:            practitionerID,
		UserID:        practitionerUserID,
		LicenseNumber: "MD-12345",
		LicenseState:  "CA",
		IsVerified:    true,
	}

	serviceID := uuid.New()
	catalog.services[serviceID] = domain.Service{
		ID:              serviceID,
		Name:            "Первичная консультация",
		Category:        "general",
		DurationMinutes: 30,
	}

	availability.rules[practitionerID] = []domain.AvailabilityRule{
		{
			ID:             uuid.New(),
			PractitionerID: practitionerID,
			DayOfWeek:      1,
			StartTime:      "09:00",
			EndTime:        "12:00",
			IsAvailable:    true,
		},
	}

	repos := &repository.Repositories{
		User:         users,
		Practitioner: practitioners,
		Catalog:      catalog,
		Availability: availability,
		Appointment:  appointments,
	}

	logger := zap.NewNop()

	return &fixture{
		appointments:       appointments,
		availability:       availability,
		catalog:            catalog,
		appointmentSvc:     NewAppointmentService(repos, passLocker{}, defaultPolicy(), logger),
		availabilitySvc:    NewAvailabilityService(availability, practitioners, logger),
		patientID:          patientID,
		practitionerID:     practitionerID,
		practitionerUserID: practitionerUserID,
		serviceID:          serviceID,
	}
}

// monday — понедельник в будущем относительно mondayBefore.
const (
	mondayDate = "2026-06-01"
)

func mondayBefore() time.Time {
	// Понедельник за неделю до mondayDate: политики времени не мешают
	// тестам расписания.
	return time.Date(2026, 5, 25, 9, 0, 0, 0, time.UTC)
}

func mustParseDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return date
}
