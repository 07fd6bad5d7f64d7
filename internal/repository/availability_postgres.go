package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"virtualcare/internal/domain"
)

type AvailabilityRepo struct {
	db *pgxpool.Pool
}

func NewAvailabilityRepository(db *pgxpool.Pool) *AvailabilityRepo {
	return &AvailabilityRepo{
		db: db,
	}
}

func (r *AvailabilityRepo) GetWeeklyRules(ctx context.Context, practitionerID uuid.UUID) ([]domain.AvailabilityRule, error) {
	query := `
		SELECT id, practitioner_id, day_of_week, start_time, end_time, is_available, created_at, updated_at
		FROM availability_rules
		WHERE practitioner_id = $1
		ORDER BY day_of_week, start_time
	`

	rows, err := r.db.Query(ctx, query, practitionerID)
	if err != nil {
		return nil, storageError("ошибка получения правил доступности", err)
	}
	defer rows.Close()

	rules := make([]domain.AvailabilityRule, 0)
	for rows.Next() {
		var rule domain.AvailabilityRule
		err := rows.Scan(
			&rule.ID,
			&rule.PractitionerID,
			&rule.DayOfWeek,
			&rule.StartTime,
			&rule.EndTime,
			&rule.IsAvailable,
			&rule.CreatedAt,
			&rule.UpdatedAt,
		)
		if err != nil {
			return nil, storageError("ошибка сканирования правила доступности", err)
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, storageError("ошибка при итерации по правилам", err)
	}

	return rules, nil
}

// ReplaceWeeklyRules заменяет недельный шаблон целиком: старые правила
// удаляются и новые вставляются в одной транзакции, чтобы читатели никогда
// не видели частично обновленный шаблон.
func (r *AvailabilityRepo) ReplaceWeeklyRules(ctx context.Context, practitionerID uuid.UUID, rules []domain.AvailabilityRule) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return storageError("ошибка начала транзакции", err)
	}
	defer tx.Rollback(ctx)

	if _, err = tx.Exec(ctx, `DELETE FROM availability_rules WHERE practitioner_id = $1`, practitionerID); err != nil {
		return storageError("ошибка удаления прежних правил", err)
	}

	query := `
		INSERT INTO availability_rules (id, practitioner_id, day_of_week, start_time, end_time, is_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
	`

	now := time.Now()
	for _, rule := range rules {
		_, err = tx.Exec(ctx, query,
			uuid.New(),
			practitionerID,
			rule.DayOfWeek,
			rule.StartTime,
			rule.EndTime,
			rule.IsAvailable,
			now,
		)
		if err != nil {
			return storageError("ошибка вставки правила доступности", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return storageError("ошибка при коммите транзакции", err)
	}

	return nil
}
