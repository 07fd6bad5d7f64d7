package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"virtualcare/internal/domain"
	"virtualcare/internal/repository"
)

type CatalogServiceImpl struct {
	repo   repository.CatalogRepository
	logger *zap.Logger
}

func NewCatalogService(repo repository.CatalogRepository, logger *zap.Logger) *CatalogServiceImpl {
	return &CatalogServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *CatalogServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CatalogServiceImpl) List(ctx context.Context, filter domain.ServiceFilter) ([]domain.Service, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	return s.repo.List(ctx, filter)
}
