package services

import (
	"jobboard/internal/appErrors"
	"jobboard/internal/models"
	"jobboard/internal/repositories"
)

type StatsService interface {
	EmployerStats(employerID string) (*models.EmployerStats, error)
	SeekerStats(userID string) (*models.SeekerStats, error)
}

type StatsServiceImpl struct {
	statsRepo repositories.StatsRepository
}

func NewStatsService(statsRepo repositories.StatsRepository) StatsService {
	return &StatsServiceImpl{statsRepo: statsRepo}
}

func (s *StatsServiceImpl) EmployerStats(employerID string) (*models.EmployerStats, error) {
	stats, err := s.statsRepo.GetEmployerStats(employerID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return stats, nil
}

func (s *StatsServiceImpl) SeekerStats(userID string) (*models.SeekerStats, error) {
	stats, err := s.statsRepo.GetSeekerStats(userID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return stats, nil
}
