package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"virtualcare/internal/domain"
	"virtualcare/internal/repository"
)

type PractitionerServiceImpl struct {
	repo   repository.PractitionerRepository
	logger *zap.Logger
}

func NewPractitionerService(repo repository.PractitionerRepository, logger *zap.Logger) *PractitionerServiceImpl {
	return &PractitionerServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *PractitionerServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Practitioner, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByUserID находит карточку специалиста по идентификатору пользователя
// из токена: расписанием управляет владелец карточки.
func (s *PractitionerServiceImpl) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Practitioner, error) {
	return s.repo.GetByUserID(ctx, userID)
}
