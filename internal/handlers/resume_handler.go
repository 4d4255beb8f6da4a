package handlers

import (
	"io"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"jobboard/internal/appErrors"
	"jobboard/internal/logger"
	"jobboard/internal/middleware"
	"jobboard/internal/models"
	"jobboard/internal/services"
)

type ResumeHandler struct {
	*BaseHandler
	resumeService services.ResumeService
}

func NewResumeHandler(base *BaseHandler, resumeService services.ResumeService) *ResumeHandler {
	return &ResumeHandler{
		BaseHandler:   base,
		resumeService: resumeService,
	}
}

func (h *ResumeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	authed := rg.Group("")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.GET("/users/:userId/resumes", h.UserResumes)
		authed.POST("/users/:userId/resumes", h.Upload)
		authed.PUT("/users/:userId/resumes/:resumeId/default", h.SetDefault)
		authed.GET("/resumes/:id/file", h.Download)
		authed.DELETE("/resumes/:id", h.Delete)
	}
}

func (h *ResumeHandler) UserResumes(c *gin.Context) {
	userID, ok := h.RequireSelf(c, c.Param("userId"))
	if !ok {
		return
	}

	resumes, err := h.resumeService.UserResumes(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resumes)
}

// Upload accepts a multipart form with a "file" part, a "title" field and
// an optional "isDefault" flag.
func (h *ResumeHandler) Upload(c *gin.Context) {
	userID, ok := h.RequireSelf(c, c.Param("userId"))
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		appErrors.HandleError(c, appErrors.NewBadRequestError("Missing resume file"))
		return
	}

	title := c.PostForm("title")
	if title == "" {
		title = fileHeader.Filename
	}
	isDefault := c.PostForm("isDefault") == "true"

	file, err := fileHeader.Open()
	if err != nil {
		appErrors.HandleError(c, appErrors.NewBadRequestError("Unreadable resume file"))
		return
	}
	defer file.Close()

	resume, err := h.resumeService.Upload(
		c.Request.Context(),
		userID,
		title,
		filepath.Base(fileHeader.Filename),
		fileHeader.Header.Get("Content-Type"),
		file,
		isDefault,
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resume)
}

// Download streams the stored file back with an attachment disposition.
func (h *ResumeHandler) Download(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	role := models.UserRole(c.GetString("role"))

	resume, reader, err := h.resumeService.Download(c.Request.Context(), userID, role, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", `attachment; filename="`+resume.FileName+`"`)
	c.Header("Content-Type", "application/octet-stream")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		// Headers are already out; all we can do is record the broken stream.
		logger.CtxError(c.Request.Context(), "Failed to stream resume file", "resumeId", resume.ID, "error", err)
	}
}

func (h *ResumeHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.resumeService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Resume deleted"})
}

func (h *ResumeHandler) SetDefault(c *gin.Context) {
	userID, ok := h.RequireSelf(c, c.Param("userId"))
	if !ok {
		return
	}

	resume, err := h.resumeService.SetDefault(userID, c.Param("resumeId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resume)
}
