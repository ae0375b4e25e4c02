package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"estatevoice-backend/internal/auth"
	apperrors "estatevoice-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// tenantFromContext extracts the authenticated tenant or aborts with 401
func tenantFromContext(c *gin.Context) (uuid.UUID, bool) {
	tenantID, ok := auth.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing tenant context"})
		return uuid.Nil, false
	}
	return tenantID, true
}

// parseUUIDParam parses a path parameter as a UUID or aborts with 400
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

// pagination reads limit/offset query parameters with bounds
func pagination(c *gin.Context) (int, int) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > maxLimit {
		limit = defaultLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// respondError maps domain errors to HTTP statuses
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case isBusinessError(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func isBusinessError(err error) bool {
	for _, sentinel := range []error{
		apperrors.ErrLeadAlreadyConverted,
		apperrors.ErrConversationNotActive,
		apperrors.ErrNoDefaultVoiceAgent,
		apperrors.ErrNoTranscript,
		apperrors.ErrInvalidPriceRange,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
