package services

// ServiceContainer groups the services for wiring in app setup.
type ServiceContainer struct {
	AuthService        AuthService
	JobService         JobService
	ApplicationService ApplicationService
	ResumeService      ResumeService
	StatsService       StatsService
}
