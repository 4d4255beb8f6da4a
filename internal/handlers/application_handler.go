package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/internal/middleware"
	"jobboard/internal/models"
	"jobboard/internal/services"
	"jobboard/internal/services/dto"
)

type ApplicationHandler struct {
	*BaseHandler
	appService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, appService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler: base,
		appService:  appService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PUT("/applications/:id/status",
		middleware.AuthMiddleware(),
		middleware.RequireRoles(models.UserRoleEmployer),
		h.UpdateStatus,
	)

	rg.GET("/users/:userId/applications", middleware.AuthMiddleware(), h.UserApplications)
}

func (h *ApplicationHandler) UserApplications(c *gin.Context) {
	userID, ok := h.RequireSelf(c, c.Param("userId"))
	if !ok {
		return
	}

	apps, err := h.appService.UserApplications(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	app, err := h.appService.UpdateStatus(actorID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}
