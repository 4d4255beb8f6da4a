package app

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"jobboard/internal/auth"
	"jobboard/internal/logger"
	"jobboard/internal/models"
)

type demoAccount struct {
	Username string
	Email    string
	Password string
	Role     models.UserRole
}

// The demo credentials mirror the seed accounts the client ships with, so
// an SDK built against fixtures talks to the same identities here.
var demoAccounts = []demoAccount{
	{Username: "muser", Email: "muser@example.com", Password: "muser", Role: models.UserRoleSeeker},
	{Username: "mvc", Email: "mvc@example.com", Password: "mvc", Role: models.UserRoleEmployer},
}

// seedDemoData creates the demo accounts and a handful of postings when the
// users table is empty. Everything runs in one transaction.
func seedDemoData(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count users: %w", err)
		}
		if count > 0 {
			logger.Info("Demo data already present. Skipping seed.")
			return nil
		}

		logger.Warn("Empty user table. Seeding demo accounts and postings...")

		usersByName := make(map[string]*models.User)
		for _, acc := range demoAccounts {
			hash, err := auth.HashPassword(acc.Password)
			if err != nil {
				return fmt.Errorf("failed to hash demo password: %w", err)
			}
			user := &models.User{
				Username:     acc.Username,
				Email:        acc.Email,
				PasswordHash: hash,
				Role:         acc.Role,
			}
			if err := tx.Create(user).Error; err != nil {
				return fmt.Errorf("failed to create demo user %s: %w", acc.Username, err)
			}
			usersByName[acc.Username] = user
		}

		employer, ok := usersByName["mvc"]
		if !ok {
			return errors.New("demo employer missing after seed")
		}

		posted := time.Now().AddDate(0, 0, -14)
		jobs := []models.Job{
			{
				Title: "Senior Frontend Developer", Company: "TechCorp Inc.", Location: "New York, NY",
				Description:  "We are looking for an experienced Frontend Developer to join our team.",
				Requirements: "5+ years of experience with React, TypeScript, and modern frontend frameworks.",
				Salary:       "$120,000 - $150,000", JobType: models.JobTypeFullTime,
			},
			{
				Title: "Backend Engineer", Company: "TechCorp Inc.", Location: "Remote",
				Description:  "Join our backend team to build scalable APIs and services.",
				Requirements: "Experience with Node.js, Python, and database design.",
				Salary:       "$110,000 - $140,000", JobType: models.JobTypeFullTime,
			},
			{
				Title: "Data Scientist", Company: "TechCorp Inc.", Location: "Boston, MA",
				Description:  "Analyze large datasets and build predictive models.",
				Requirements: "Experience with Python, R, and machine learning frameworks.",
				Salary:       "$125,000 - $155,000", JobType: models.JobTypeFullTime,
			},
		}
		for i := range jobs {
			jobs[i].EmployerID = employer.ID
			jobs[i].Status = models.JobStatusActive
			jobs[i].PostedDate = posted.AddDate(0, 0, i)
			if err := tx.Create(&jobs[i]).Error; err != nil {
				return fmt.Errorf("failed to create demo job: %w", err)
			}
		}

		logger.Info("Demo data seeded", "users", len(demoAccounts), "jobs", len(jobs))
		return nil
	})
}
