package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"virtualcare/internal/domain"
	"virtualcare/internal/repository"
	"virtualcare/pkg/validator"
)

type AvailabilityServiceImpl struct {
	repo             repository.AvailabilityRepository
	practitionerRepo repository.PractitionerRepository
	logger           *zap.Logger
}

func NewAvailabilityService(
	repo repository.AvailabilityRepository,
	practitionerRepo repository.PractitionerRepository,
	logger *zap.Logger,
) *AvailabilityServiceImpl {
	return &AvailabilityServiceImpl{
		repo:             repo,
		practitionerRepo: practitionerRepo,
		logger:           logger,
	}
}

func (s *AvailabilityServiceImpl) GetWeekly(ctx context.Context, practitionerID uuid.UUID) ([]domain.AvailabilityRule, error) {
	if _, err := s.practitionerRepo.GetByID(ctx, practitionerID); err != nil {
		return nil, err
	}

	return s.repo.GetWeeklyRules(ctx, practitionerID)
}

// ReplaceWeekly валидирует и атомарно заменяет недельное расписание.
// Включенные окна одного дня не должны пересекаться между собой;
// хотя бы одно окно должно быть включено.
func (s *AvailabilityServiceImpl) ReplaceWeekly(ctx context.Context, practitionerID uuid.UUID, dto domain.SetWeeklyAvailabilityDTO) ([]domain.AvailabilityRule, error) {
	if _, err := s.practitionerRepo.GetByID(ctx, practitionerID); err != nil {
		return nil, err
	}

	enabledByDay := make(map[int][]domain.TimeRange)
	enabledCount := 0
	rules := make([]domain.AvailabilityRule, 0, len(dto.Rules))

	for _, ruleDTO := range dto.Rules {
		if !validator.ValidateDayOfWeek(ruleDTO.DayOfWeek) {
			return nil, fmt.Errorf("недопустимый день недели %d: %w", ruleDTO.DayOfWeek, domain.ErrInvalidRange)
		}

		tr, err := domain.NewTimeRange(ruleDTO.StartTime, ruleDTO.EndTime)
		if err != nil {
			return nil, err
		}

		if ruleDTO.IsAvailable {
			for _, existing := range enabledByDay[ruleDTO.DayOfWeek] {
				if tr.Overlaps(existing) {
					return nil, fmt.Errorf("окна приема %s-%s и %s-%s в дне %d пересекаются: %w",
						domain.FormatClock(existing.Start), domain.FormatClock(existing.End),
						ruleDTO.StartTime, ruleDTO.EndTime, ruleDTO.DayOfWeek, domain.ErrInvalidRange)
				}
			}
			enabledByDay[ruleDTO.DayOfWeek] = append(enabledByDay[ruleDTO.DayOfWeek], tr)
			enabledCount++
		}

		rules = append(rules, domain.AvailabilityRule{
			PractitionerID: practitionerID,
			DayOfWeek:      ruleDTO.DayOfWeek,
			StartTime:      ruleDTO.StartTime,
			EndTime:        ruleDTO.EndTime,
			IsAvailable:    ruleDTO.IsAvailable,
		})
	}

	if enabledCount == 0 {
		return nil, domain.ErrNoAvailabilityConfigured
	}

	if err := s.repo.ReplaceWeeklyRules(ctx, practitionerID, rules); err != nil {
		s.logger.Error("ошибка замены расписания специалиста",
			zap.String("practitionerID", practitionerID.String()),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("недельное расписание обновлено",
		zap.String("practitionerID", practitionerID.String()),
		zap.Int("rules", len(rules)))

	return s.repo.GetWeeklyRules(ctx, practitionerID)
}
