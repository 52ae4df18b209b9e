package handlers

import (
	"net/http"

	"jobportal_backend/internal/middleware"
	"jobportal_backend/internal/services"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
	authService services.AuthService
}

func NewUserHandler(base *BaseHandler, userService services.UserService, authService services.AuthService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
		authService: authService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/users")
	{
		public.POST("/register", h.Register)
	}

	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware(h.authService))
	{
		users.GET("/me", h.GetProfile)
		users.PUT("/update_profile", h.UpdateProfile)
		users.POST("/upload_resume", h.UploadResume)
	}
}

// Register accepts a multipart form with an optional resume file for
// applicants.
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	var resume *services.ResumeFile
	if fileHeader, err := c.FormFile("resume"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			apperrors.HandleError(c, apperrors.NewBadRequestError("Failed to read resume file"))
			return
		}
		defer file.Close()
		resume = &services.ResumeFile{
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Size:        fileHeader.Size,
			Reader:      file,
		}
	}

	user, err := h.userService.Register(c.Request.Context(), &req, resume)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered as " + string(user.Role) + " successfully",
		"user_id": user.ID,
	})
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	profile, err := h.userService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) UploadResume(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing resume file"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Failed to read resume file"))
		return
	}
	defer file.Close()

	resumeRef, err := h.userService.UploadResume(c.Request.Context(), userID, &services.ResumeFile{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Reader:      file,
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UploadResumeResponse{
		Message:   "Resume uploaded successfully",
		ResumeURL: resumeRef,
	})
}
