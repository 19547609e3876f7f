package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/mvoronin/userhub/internal/domain/errors"
	"github.com/mvoronin/userhub/internal/domain/model"
	"github.com/mvoronin/userhub/internal/server/http/dto"
	"github.com/mvoronin/userhub/internal/server/http/middleware"
)

// CurrentIdentity extracts the authenticated identity from context.
func CurrentIdentity(c *gin.Context) model.Identity {
	val, ok := c.Get(middleware.IdentityContextKey)
	if !ok {
		return model.Identity{}
	}
	identity, _ := val.(model.Identity)
	return identity
}

// bindError renders binding failures with field-level feedback.
func bindError(c *gin.Context, err error) {
	if fields := dto.FieldErrors(err); fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": fields})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
}

// domainError maps the error taxonomy to HTTP statuses. Internal errors
// cross the boundary as a bare 500, never with their message.
func domainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed"})
	case errors.Is(err, domainErrors.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid e-mail address"})
	case errors.Is(err, domainErrors.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown role"})
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, domainErrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "not permitted"})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "e-mail already in use"})
	default:
		c.Status(http.StatusInternalServerError)
	}
}
