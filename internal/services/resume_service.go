package services

import (
	"context"
	"io"
	"path"

	"github.com/google/uuid"

	"jobboard/internal/appErrors"
	"jobboard/internal/models"
	"jobboard/internal/repositories"
	"jobboard/internal/storage"
)

type ResumeService interface {
	UserResumes(userID string) ([]models.Resume, error)
	Upload(ctx context.Context, userID, title, fileName, contentType string, file io.Reader, isDefault bool) (*models.Resume, error)
	Download(ctx context.Context, userID string, role models.UserRole, resumeID string) (*models.Resume, io.ReadCloser, error)
	Delete(ctx context.Context, userID, resumeID string) error
	SetDefault(userID, resumeID string) (*models.Resume, error)
}

type ResumeServiceImpl struct {
	resumeRepo repositories.ResumeRepository
	files      storage.Storage
}

func NewResumeService(resumeRepo repositories.ResumeRepository, files storage.Storage) ResumeService {
	return &ResumeServiceImpl{
		resumeRepo: resumeRepo,
		files:      files,
	}
}

func (s *ResumeServiceImpl) UserResumes(userID string) ([]models.Resume, error) {
	resumes, err := s.resumeRepo.FindByUser(userID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return resumes, nil
}

// Upload stores the file and records the resume metadata. The first resume
// a user uploads becomes the default regardless of the flag.
func (s *ResumeServiceImpl) Upload(ctx context.Context, userID, title, fileName, contentType string, file io.Reader, isDefault bool) (*models.Resume, error) {
	existing, err := s.resumeRepo.FindByUser(userID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	if len(existing) == 0 {
		isDefault = true
	}

	resume := &models.Resume{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		FileName:  fileName,
		IsDefault: isDefault,
	}

	if err := s.files.Save(ctx, fileKey(resume), file, contentType); err != nil {
		return nil, appErrors.InternalError(err)
	}

	if err := s.resumeRepo.Create(resume); err != nil {
		// Don't leave an orphaned file behind.
		_ = s.files.Delete(ctx, fileKey(resume))
		return nil, appErrors.InternalError(err)
	}
	return resume, nil
}

// Download streams a stored resume file. The owner always has access;
// employers may read applicant resumes.
func (s *ResumeServiceImpl) Download(ctx context.Context, userID string, role models.UserRole, resumeID string) (*models.Resume, io.ReadCloser, error) {
	resume, err := s.resumeRepo.FindByID(resumeID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrResumeNotFound) {
			return nil, nil, appErrors.ErrResumeNotFound
		}
		return nil, nil, appErrors.InternalError(err)
	}
	if resume.UserID != userID && role != models.UserRoleEmployer {
		return nil, nil, appErrors.ErrNotResumeOwner
	}

	reader, err := s.files.Open(ctx, fileKey(resume))
	if err != nil {
		return nil, nil, appErrors.InternalError(err)
	}
	return resume, reader, nil
}

func (s *ResumeServiceImpl) Delete(ctx context.Context, userID, resumeID string) error {
	resume, err := s.resumeRepo.FindByID(resumeID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrResumeNotFound) {
			return appErrors.ErrResumeNotFound
		}
		return appErrors.InternalError(err)
	}
	if resume.UserID != userID {
		return appErrors.ErrNotResumeOwner
	}

	if err := s.resumeRepo.Delete(resumeID); err != nil {
		return appErrors.InternalError(err)
	}
	if err := s.files.Delete(ctx, fileKey(resume)); err != nil {
		return appErrors.InternalError(err)
	}
	return nil
}

func (s *ResumeServiceImpl) SetDefault(userID, resumeID string) (*models.Resume, error) {
	resume, err := s.resumeRepo.SetDefault(userID, resumeID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrResumeNotFound) {
			return nil, appErrors.ErrResumeNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return resume, nil
}

func fileKey(resume *models.Resume) string {
	return path.Join("resumes", resume.ID, resume.FileName)
}
