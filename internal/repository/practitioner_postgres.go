package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"virtualcare/internal/domain"
)

const practitionerColumns = `id, user_id, license_number, license_state, bio, years_of_experience, education, is_verified, rating, total_reviews, created_at, updated_at`

type PractitionerRepo struct {
	db *pgxpool.Pool
}

func NewPractitionerRepository(db *pgxpool.Pool) *PractitionerRepo {
	return &PractitionerRepo{
		db: db,
	}
}

func scanPractitioner(row pgx.Row) (*domain.Practitioner, error) {
	var p domain.Practitioner

	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.LicenseNumber,
		&p.LicenseState,
		&p.Bio,
		&p.YearsOfExperience,
		&p.Education,
		&p.IsVerified,
		&p.Rating,
		&p.TotalReviews,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &p, nil
}

func (r *PractitionerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Practitioner, error) {
	query := `SELECT ` + practitionerColumns + ` FROM practitioners WHERE id = $1`

	practitioner, err := scanPractitioner(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, storageError("ошибка получения специалиста", err)
	}

	return practitioner, nil
}

func (r *PractitionerRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Practitioner, error) {
	query := `SELECT ` + practitionerColumns + ` FROM practitioners WHERE user_id = $1`

	practitioner, err := scanPractitioner(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, storageError("ошибка получения специалиста по пользователю", err)
	}

	return practitioner, nil
}
