package middleware

import (
	"strings"

	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/services"
	"jobportal_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey = "userID"
	ContextNameKey   = "userName"
	ContextEmailKey  = "userEmail"
	ContextRoleKey   = "role"
	ContextTokenKey  = "rawToken"
)

// AuthMiddleware extracts and verifies the bearer token and stores the
// identity claims in the gin context.
func AuthMiddleware(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortWith(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := authService.Verify(tokenStr)
		if err != nil {
			abortWith(c, err)
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextNameKey, claims.Name)
		c.Set(ContextEmailKey, claims.Email)
		c.Set(ContextRoleKey, models.UserRole(claims.Role))
		c.Set(ContextTokenKey, tokenStr)

		// Propagate the identity into the request context for logging.
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID))

		c.Next()
	}
}

// RequireRoles allows the request through only when the authenticated role
// is in the allowed set.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		roleVal, exists := c.Get(ContextRoleKey)
		if !exists {
			abortWith(c, apperrors.NewForbiddenError("Access denied: no role"))
			return
		}

		role, ok := roleVal.(models.UserRole)
		if !ok {
			roleStr, isString := roleVal.(string)
			if !isString {
				abortWith(c, apperrors.NewForbiddenError("Access denied: invalid role type"))
				return
			}
			role = models.UserRole(roleStr)
		}

		if !roleSet[role] {
			abortWith(c, apperrors.ErrInsufficientRole)
			return
		}

		c.Next()
	}
}

// GetUserID returns the authenticated user's ID, or "".
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(ContextUserIDKey)
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}
	return id
}

// GetRole returns the authenticated user's role, or "".
func GetRole(c *gin.Context) models.UserRole {
	roleVal, exists := c.Get(ContextRoleKey)
	if !exists {
		return ""
	}
	role, ok := roleVal.(models.UserRole)
	if !ok {
		return ""
	}
	return role
}

// GetRawToken returns the bearer token the request carried, or "".
func GetRawToken(c *gin.Context) string {
	tokenVal, exists := c.Get(ContextTokenKey)
	if !exists {
		return ""
	}
	token, ok := tokenVal.(string)
	if !ok {
		return ""
	}
	return token
}

func abortWith(c *gin.Context, err error) {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		appErr = apperrors.NewUnauthorizedError("Invalid token")
	}
	c.AbortWithStatusJSON(appErr.HTTPCode, apperrors.ErrorResponse{Error: appErr})
}
