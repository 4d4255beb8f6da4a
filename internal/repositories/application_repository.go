package repositories

import (
	"errors"

	"gorm.io/gorm"

	"jobboard/internal/models"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrApplicationExists   = errors.New("application already exists")
)

type ApplicationRepository interface {
	Create(app *models.Application) error
	FindByID(id string) (*models.Application, error)
	FindByUser(userID string) ([]models.Application, error)
	FindByJob(jobID string) ([]models.Application, error)
	Update(app *models.Application) error
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(app *models.Application) error {
	var existing models.Application
	if err := r.db.Where("job_id = ? AND user_id = ?", app.JobID, app.UserID).
		First(&existing).Error; err == nil {
		return ErrApplicationExists
	}

	return r.db.Create(app).Error
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	var app models.Application
	err := r.db.First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindByUser(userID string) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.Where("user_id = ?", userID).
		Order("applied_date DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) FindByJob(jobID string) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.Where("job_id = ?", jobID).
		Order("applied_date DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) Update(app *models.Application) error {
	result := r.db.Model(&models.Application{}).Where("id = ?", app.ID).Updates(map[string]interface{}{
		"status":         app.Status,
		"notes":          app.Notes,
		"status_history": app.StatusHistory,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
