package repositories

import (
	"errors"

	"gorm.io/gorm"

	"jobboard/internal/models"
)

var ErrResumeNotFound = errors.New("resume not found")

type ResumeRepository interface {
	Create(resume *models.Resume) error
	FindByID(id string) (*models.Resume, error)
	FindByUser(userID string) ([]models.Resume, error)
	Delete(id string) error
	SetDefault(userID, resumeID string) (*models.Resume, error)
}

type ResumeRepositoryImpl struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &ResumeRepositoryImpl{db: db}
}

// Create inserts the resume. When it is marked default, other defaults of
// the same user are unset in the same transaction so at most one default
// exists per user.
func (r *ResumeRepositoryImpl) Create(resume *models.Resume) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if resume.IsDefault {
			if err := tx.Model(&models.Resume{}).
				Where("user_id = ? AND is_default", resume.UserID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(resume).Error
	})
}

func (r *ResumeRepositoryImpl) FindByID(id string) (*models.Resume, error) {
	var resume models.Resume
	err := r.db.First(&resume, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResumeNotFound
		}
		return nil, err
	}
	return &resume, nil
}

func (r *ResumeRepositoryImpl) FindByUser(userID string) ([]models.Resume, error) {
	var resumes []models.Resume
	err := r.db.Where("user_id = ?", userID).
		Order("upload_date ASC").
		Find(&resumes).Error
	return resumes, err
}

func (r *ResumeRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Resume{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrResumeNotFound
	}
	return nil
}

// SetDefault flips the default flag atomically: siblings first, then the
// requested resume.
func (r *ResumeRepositoryImpl) SetDefault(userID, resumeID string) (*models.Resume, error) {
	var resume models.Resume
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&resume, "id = ? AND user_id = ?", resumeID, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrResumeNotFound
			}
			return err
		}
		if err := tx.Model(&models.Resume{}).
			Where("user_id = ? AND id <> ?", userID, resumeID).
			Update("is_default", false).Error; err != nil {
			return err
		}
		resume.IsDefault = true
		return tx.Model(&resume).Update("is_default", true).Error
	})
	if err != nil {
		return nil, err
	}
	return &resume, nil
}
