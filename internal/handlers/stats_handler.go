package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/internal/middleware"
	"jobboard/internal/services"
)

type StatsHandler struct {
	*BaseHandler
	statsService services.StatsService
}

func NewStatsHandler(base *BaseHandler, statsService services.StatsService) *StatsHandler {
	return &StatsHandler{
		BaseHandler:  base,
		statsService: statsService,
	}
}

func (h *StatsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	authed := rg.Group("")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.GET("/employers/:employerId/stats", h.EmployerStats)
		authed.GET("/users/:userId/stats", h.SeekerStats)
	}
}

func (h *StatsHandler) EmployerStats(c *gin.Context) {
	employerID, ok := h.RequireSelf(c, c.Param("employerId"))
	if !ok {
		return
	}

	stats, err := h.statsService.EmployerStats(employerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *StatsHandler) SeekerStats(c *gin.Context) {
	userID, ok := h.RequireSelf(c, c.Param("userId"))
	if !ok {
		return
	}

	stats, err := h.statsService.SeekerStats(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
