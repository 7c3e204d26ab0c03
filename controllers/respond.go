package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/methodhub/backend/apperr"
)

// respondError maps the error taxonomy to HTTP statuses in one place.
// Unclassified storage failures are logged with their cause and answered
// as 500 without leaking detail.
func respondError(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	status := http.StatusInternalServerError
	message := apperr.MessageOf(err)

	switch kind {
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindConflict:
		status = http.StatusConflict
	case apperr.KindForbidden:
		status = http.StatusForbidden
	case apperr.KindUnauthorized:
		status = http.StatusUnauthorized
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		message = "internal server error"
	}

	c.JSON(status, gin.H{"message": message})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
}
