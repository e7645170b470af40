package controllers

import (
	"errors"
	"net/http"

	"ads-video-pipeline/application/ports/outbound"
	"github.com/gin-gonic/gin"
)

var errMissingSessionParam = errors.New("at least one session query parameter is required")

func abortWithError(c *gin.Context, logger outbound.LoggerPort, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, outbound.ErrSessionNotFound) {
		status = http.StatusNotFound
	}
	if abortErr := c.AbortWithError(status, err); abortErr != nil {
		logger.Error(abortErr, "failed to abort with error")
	}
}
