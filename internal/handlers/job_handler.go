package handlers

import (
	"net/http"

	"jobportal_backend/internal/middleware"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/services"
	"jobportal_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService  services.JobService
	authService services.AuthService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService, authService services.AuthService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
		authService: authService,
	}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public routes
	public := r.Group("/jobs")
	{
		public.GET("", h.ListJobs)
		public.GET("/search", h.SearchJobs)
		public.GET("/:jobId", h.GetJob)
	}

	// Protected routes - employer only
	jobs := r.Group("/jobs")
	jobs.Use(middleware.AuthMiddleware(h.authService), middleware.RequireRoles(models.UserRoleEmployer))
	{
		jobs.POST("", h.CreateJob)
		jobs.PUT("/close/:jobId", h.CloseJob)
		jobs.DELETE("/delete/:jobId", h.DeleteJob)
	}
}

func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.jobService.ListJobs(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs":  jobs,
		"total": len(jobs),
	})
}

func (h *JobHandler) SearchJobs(c *gin.Context) {
	var req dto.SearchJobsRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	jobs, err := h.jobService.SearchJobs(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs":  jobs,
		"total": len(jobs),
	})
}

func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.jobService.GetJob(c.Request.Context(), c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	employerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	req.EmployerID = employerID

	job, err := h.jobService.CreateJob(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Job created successfully",
		"job_id":  job.ID,
	})
}

func (h *JobHandler) CloseJob(c *gin.Context) {
	employerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.jobService.CloseJob(c.Request.Context(), employerID, c.Param("jobId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job closed successfully"})
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	employerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.jobService.DeleteJob(c.Request.Context(), employerID, c.Param("jobId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}
