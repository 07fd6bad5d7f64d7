package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"virtualcare/internal/domain"
)

type CatalogRepo struct {
	db *pgxpool.Pool
}

func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepo {
	return &CatalogRepo{
		db: db,
	}
}

func (r *CatalogRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	query := `
		SELECT id, name, description, category, duration_minutes, price, created_at
		FROM services
		WHERE id = $1
	`

	var service domain.Service
	err := r.db.QueryRow(ctx, query, id).Scan(
		&service.ID,
		&service.Name,
		&service.Description,
		&service.Category,
		&service.DurationMinutes,
		&service.Price,
		&service.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, storageError("ошибка получения услуги", err)
	}

	return &service, nil
}

func (r *CatalogRepo) List(ctx context.Context, filter domain.ServiceFilter) ([]domain.Service, error) {
	query := `
		SELECT id, name, description, category, duration_minutes, price, created_at
		FROM services
		WHERE 1=1
	`

	var args []interface{}
	argCount := 1

	if filter.Category != nil {
		query += fmt.Sprintf(" AND category = $%d", argCount)
		args = append(args, *filter.Category)
		argCount++
	}

	query += fmt.Sprintf(" ORDER BY category, name LIMIT $%d OFFSET $%d", argCount, argCount+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, storageError("ошибка получения списка услуг", err)
	}
	defer rows.Close()

	services := make([]domain.Service, 0)
	for rows.Next() {
		var service domain.Service
		err := rows.Scan(
			&service.ID,
			&service.Name,
			&service.Description,
			&service.Category,
			&service.DurationMinutes,
			&service.Price,
			&service.CreatedAt,
		)
		if err != nil {
			return nil, storageError("ошибка сканирования строки услуги", err)
		}
		services = append(services, service)
	}

	if err := rows.Err(); err != nil {
		return nil, storageError("ошибка при итерации по услугам", err)
	}

	return services, nil
}
