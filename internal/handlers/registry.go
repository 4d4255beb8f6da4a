package handlers

// AppHandlers groups the HTTP handlers for route registration.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	JobHandler         *JobHandler
	ApplicationHandler *ApplicationHandler
	ResumeHandler      *ResumeHandler
	StatsHandler       *StatsHandler
}
