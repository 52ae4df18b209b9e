package handlers

import (
	"io"
	"net/http"

	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/middleware"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/services"
	"jobportal_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
	authService        services.AuthService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService, authService services.AuthService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
		authService:        authService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Applicant routes
	applicant := r.Group("/applications")
	applicant.Use(middleware.AuthMiddleware(h.authService), middleware.RequireRoles(models.UserRoleApplicant))
	{
		applicant.POST("/apply", h.Apply)
		applicant.GET("/user/list", h.ListMyApplications)
	}

	// Employer routes
	employer := r.Group("/applications")
	employer.Use(middleware.AuthMiddleware(h.authService), middleware.RequireRoles(models.UserRoleEmployer))
	{
		employer.GET("/job/:jobId/applicants", h.ListApplicants)
		employer.PUT("/update_status/:applicationId", h.UpdateStatus)
	}

	// Resume download is open to both roles; the service enforces the
	// fine-grained ownership rule.
	resume := r.Group("/applications")
	resume.Use(middleware.AuthMiddleware(h.authService))
	{
		resume.GET("/resume/:applicantId", h.DownloadResume)
	}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	applicantID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.applicationService.Apply(c.Request.Context(), applicantID, req.JobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) ListMyApplications(c *gin.Context) {
	applicantID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	apps, err := h.applicationService.ListForApplicant(c.Request.Context(), applicantID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applications": apps,
		"total":        len(apps),
	})
}

func (h *ApplicationHandler) ListApplicants(c *gin.Context) {
	employerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ListApplicantsRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	resp, err := h.applicationService.ListApplicants(c.Request.Context(), employerID, c.Param("jobId"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	employerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	err := h.applicationService.UpdateStatus(c.Request.Context(), employerID, c.Param("applicationId"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application status updated to " + req.Status})
}

func (h *ApplicationHandler) DownloadResume(c *gin.Context) {
	callerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	reader, filename, err := h.applicationService.GetResume(
		c.Request.Context(),
		callerID,
		middleware.GetRole(c),
		c.Param("applicantId"),
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/octet-stream")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		// The response is already streaming; nothing left to send the client.
		logger.CtxWithError(c.Request.Context(), "resume stream interrupted", err)
	}
}
