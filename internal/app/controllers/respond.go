package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/edukta/backend/internal/app/models/dto"
	"github.com/edukta/backend/internal/pkg/apperrors"
)

// respond writes the standard envelope. An empty message falls back to the
// status default.
func respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, dto.NewAPIResponse(status, message, data))
}

// parseIDParam reads a positive int64 path parameter.
func parseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewBadRequestError("Invalid " + name + " parameter")
	}
	return id, nil
}
