package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hospital-admission-service/internal/service"
	"hospital-admission-service/pkg/utils"
)

// respondError maps the service error taxonomy onto HTTP status codes.
// Store failures are not echoed to the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrConflict):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidInput):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, "internal error")
	}
}
