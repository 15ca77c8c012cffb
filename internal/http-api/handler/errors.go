package handler

import (
	"errors"
	"net/http"

	"platerate/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors onto HTTP status codes. Store failures fall
// through to a generic 500 so callers never see half-applied state details.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidPlate),
		errors.Is(err, service.ErrInvalidRating),
		errors.Is(err, service.ErrInvalidVoteType),
		errors.Is(err, service.ErrEmptyComment),
		errors.Is(err, service.ErrInvalidIncident),
		errors.Is(err, service.ErrInvalidUsername),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrWeakPassword):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrVehicleBlocked):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrVehicleNotFound),
		errors.Is(err, service.ErrCommentNotFound),
		errors.Is(err, service.ErrFavoriteNotFound),
		errors.Is(err, service.ErrNotCommentOwner):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrAlreadyVoted),
		errors.Is(err, service.ErrAlreadyReported),
		errors.Is(err, service.ErrAlreadyFavorite),
		errors.Is(err, service.ErrNameInUse),
		errors.Is(err, service.ErrEmailInUse):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
