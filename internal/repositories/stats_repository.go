package repositories

import (
	"gorm.io/gorm"

	"jobboard/internal/models"
)

type StatsRepository interface {
	GetEmployerStats(employerID string) (*models.EmployerStats, error)
	GetSeekerStats(userID string) (*models.SeekerStats, error)
}

type StatsRepositoryImpl struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &StatsRepositoryImpl{db: db}
}

func (r *StatsRepositoryImpl) GetEmployerStats(employerID string) (*models.EmployerStats, error) {
	var stats models.EmployerStats

	if err := r.db.Model(&models.Job{}).
		Where("employer_id = ?", employerID).
		Count(&stats.TotalJobs).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&models.Job{}).
		Where("employer_id = ? AND status = ?", employerID, models.JobStatusActive).
		Count(&stats.ActiveJobs).Error; err != nil {
		return nil, err
	}

	// Applications are joined through the employer's jobs.
	appsForEmployer := r.db.Model(&models.Application{}).
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.employer_id = ?", employerID)

	if err := appsForEmployer.Session(&gorm.Session{}).
		Count(&stats.TotalApplications).Error; err != nil {
		return nil, err
	}

	if err := appsForEmployer.Session(&gorm.Session{}).
		Where("applications.status = ?", models.ApplicationStatusReviewed).
		Count(&stats.ReviewedApplications).Error; err != nil {
		return nil, err
	}

	if err := appsForEmployer.Session(&gorm.Session{}).
		Where("applications.status = ?", models.ApplicationStatusInterviewed).
		Count(&stats.InterviewedCandidates).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}

func (r *StatsRepositoryImpl) GetSeekerStats(userID string) (*models.SeekerStats, error) {
	var stats models.SeekerStats

	byStatus := func(status models.ApplicationStatus, out *int64) error {
		return r.db.Model(&models.Application{}).
			Where("user_id = ? AND status = ?", userID, status).
			Count(out).Error
	}

	if err := r.db.Model(&models.Application{}).
		Where("user_id = ?", userID).
		Count(&stats.TotalApplications).Error; err != nil {
		return nil, err
	}
	if err := byStatus(models.ApplicationStatusPending, &stats.PendingApplications); err != nil {
		return nil, err
	}
	if err := byStatus(models.ApplicationStatusReviewed, &stats.ReviewedApplications); err != nil {
		return nil, err
	}
	if err := byStatus(models.ApplicationStatusInterviewed, &stats.Interviews); err != nil {
		return nil, err
	}
	if err := byStatus(models.ApplicationStatusOffered, &stats.Offers); err != nil {
		return nil, err
	}

	return &stats, nil
}
