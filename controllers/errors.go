package controllers

import (
	"errors"
	"net/http"

	"dbgatewayapi/pkg/logger"
	"dbgatewayapi/services/dberror"
	"dbgatewayapi/utils"

	"github.com/gin-gonic/gin"
)

// statusFor maps an error kind to its HTTP status.
func statusFor(kind dberror.Kind) int {
	switch kind {
	case dberror.ProfileNotFound:
		return http.StatusNotFound
	case dberror.UnsupportedEngine, dberror.EngineMismatch:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError logs a failed operation once, with its raw details, and writes
// the normalized error body.
func respondError(c *gin.Context, err error) {
	var execErr *dberror.ExecutionError
	if !errors.As(err, &execErr) {
		execErr = dberror.Wrap(dberror.UnknownDriverError, "", err.Error(), err)
	}

	status := statusFor(execErr.Kind)
	logger.Errorf("Request %s %s failed [%s id=%s]: %s | details: %s",
		c.Request.Method, c.Request.URL.Path, execErr.Kind, utils.RequestID(c), execErr.Message, execErr.Details)

	c.JSON(status, GatewayErrorResponse{
		Success: false,
		Error:   execErr.Message,
		Details: execErr.Details,
		Kind:    string(execErr.Kind),
	})
}
