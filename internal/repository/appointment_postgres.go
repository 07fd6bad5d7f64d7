package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"virtualcare/internal/domain"
)

const appointmentColumns = `id, patient_id, practitioner_id, service_id, appointment_date, start_time, end_time, status, notes, video_room_id, created_at, updated_at`

type AppointmentRepo struct {
	db *pgxpool.Pool
}

func NewAppointmentRepository(db *pgxpool.Pool) *AppointmentRepo {
	return &AppointmentRepo{
		db: db,
	}
}

func scanAppointment(row pgx.Row) (*domain.Appointment, error) {
	var a domain.Appointment

	err := row.Scan(
		&a.ID,
		&a.PatientID,
		&a.PractitionerID,
		&a.ServiceID,
		&a.AppointmentDate,
		&a.StartTime,
		&a.EndTime,
		&a.Status,
		&a.Notes,
		&a.VideoRoomID,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &a, nil
}

// Create — единственная точка записи в журнал приемов. Проверка пересечений
// и вставка выполняются в одной транзакции под advisory-блокировкой пары
// (специалист, дата); частичный уникальный индекс по занимающим статусам
// остается последней линией защиты от двойного бронирования.
func (r *AppointmentRepo) Create(ctx context.Context, appointment domain.Appointment) (*domain.Appointment, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, storageError("ошибка начала транзакции", err)
	}
	defer tx.Rollback(ctx)

	lockKey := fmt.Sprintf("%s:%s", appointment.PractitionerID, appointment.AppointmentDate.Format("2006-01-02"))
	if _, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, lockKey); err != nil {
		return nil, storageError("ошибка получения блокировки журнала", err)
	}

	checkQuery := `
		SELECT COUNT(*)
		FROM appointments
		WHERE practitioner_id = $1
		AND appointment_date = $2
		AND status = ANY($3)
		AND start_time < $4
		AND $5 < end_time
	`

	var count int
	err = tx.QueryRow(ctx, checkQuery,
		appointment.PractitionerID,
		appointment.AppointmentDate,
		occupyingStatusStrings(),
		appointment.EndTime,
		appointment.StartTime,
	).Scan(&count)
	if err != nil {
		return nil, storageError("ошибка проверки доступности слота", err)
	}

	if count > 0 {
		return nil, domain.ErrSlotAlreadyBooked
	}

	query := fmt.Sprintf(`
		INSERT INTO appointments (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
		RETURNING %s
	`, appointmentColumns, appointmentColumns)

	now := time.Now()
	created, err := scanAppointment(tx.QueryRow(ctx, query,
		uuid.New(),
		appointment.PatientID,
		appointment.PractitionerID,
		appointment.ServiceID,
		appointment.AppointmentDate,
		appointment.StartTime,
		appointment.EndTime,
		domain.AppointmentStatusScheduled,
		appointment.Notes,
		appointment.VideoRoomID,
		now,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "appointments_slot") {
			return nil, domain.ErrSlotAlreadyBooked
		}
		return nil, storageError("ошибка создания записи на прием", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, storageError("ошибка при коммите транзакции", err)
	}

	return created, nil
}

func (r *AppointmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	query := fmt.Sprintf(`SELECT %s FROM appointments WHERE id = $1`, appointmentColumns)

	appointment, err := scanAppointment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, storageError("ошибка получения записи на прием", err)
	}

	return appointment, nil
}

// ListOccupying возвращает записи, занимающие время специалиста в диапазоне
// дат включительно. Один запрос на весь диапазон: группировка по датам
// выполняется вызывающей стороной.
func (r *AppointmentRepo) ListOccupying(ctx context.Context, practitionerID uuid.UUID, from, to time.Time) ([]domain.Appointment, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM appointments
		WHERE practitioner_id = $1
		AND appointment_date BETWEEN $2 AND $3
		AND status = ANY($4)
		ORDER BY appointment_date, start_time
	`, appointmentColumns)

	rows, err := r.db.Query(ctx, query, practitionerID, from, to, occupyingStatusStrings())
	if err != nil {
		return nil, storageError("ошибка получения занятых слотов", err)
	}
	defer rows.Close()

	appointments := make([]domain.Appointment, 0)
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, storageError("ошибка сканирования строки записи", err)
		}
		appointments = append(appointments, *appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, storageError("ошибка при итерации по строкам", err)
	}

	return appointments, nil
}

func (r *AppointmentRepo) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, int, error) {
	var conditions []string
	var args []interface{}
	argCount := 1

	if filter.PatientID != nil {
		conditions = append(conditions, fmt.Sprintf("patient_id = $%d", argCount))
		args = append(args, *filter.PatientID)
		argCount++
	}

	if filter.PractitionerID != nil {
		conditions = append(conditions, fmt.Sprintf("practitioner_id = $%d", argCount))
		args = append(args, *filter.PractitionerID)
		argCount++
	}

	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argCount))
		args = append(args, *filter.Status)
		argCount++
	}

	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("appointment_date >= $%d", argCount))
		args = append(args, *filter.StartDate)
		argCount++
	}

	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("appointment_date <= $%d", argCount))
		args = append(args, *filter.EndDate)
		argCount++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM appointments %s`, whereClause)

	var total int
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, storageError("ошибка подсчета записей", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM appointments
		%s
		ORDER BY appointment_date DESC, start_time DESC
		LIMIT $%d OFFSET $%d
	`, appointmentColumns, whereClause, argCount, argCount+1)

	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, storageError("ошибка выполнения запроса", err)
	}
	defer rows.Close()

	appointments := make([]domain.Appointment, 0)
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, 0, storageError("ошибка сканирования строки записи", err)
		}
		appointments = append(appointments, *appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, storageError("ошибка при итерации по строкам", err)
	}

	return appointments, total, nil
}

func (r *AppointmentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.AppointmentStatus) (*domain.Appointment, error) {
	query := fmt.Sprintf(`
		UPDATE appointments
		SET status = $2, updated_at = $3
		WHERE id = $1 AND status = $4
		RETURNING %s
	`, appointmentColumns)

	appointment, err := scanAppointment(r.db.QueryRow(ctx, query, id, to, time.Now(), from))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, storageError("ошибка обновления статуса записи", err)
	}

	return appointment, nil
}

func (r *AppointmentRepo) SetVideoRoom(ctx context.Context, id uuid.UUID, videoRoomID string) (*domain.Appointment, error) {
	query := fmt.Sprintf(`
		UPDATE appointments
		SET video_room_id = $2, updated_at = $3
		WHERE id = $1
		RETURNING %s
	`, appointmentColumns)

	appointment, err := scanAppointment(r.db.QueryRow(ctx, query, id, videoRoomID, time.Now()))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, storageError("ошибка привязки видеокомнаты", err)
	}

	return appointment, nil
}
