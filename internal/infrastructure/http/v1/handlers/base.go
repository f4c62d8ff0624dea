// Package handlers implements the v1 API endpoints.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wakala/internal/core/apperror"
	"wakala/internal/core/id"
	"wakala/internal/core/types"
	"wakala/internal/infrastructure/http/v1/dto"
)

// BaseHandler provides common handler utilities.
type BaseHandler struct{}

// BindJSON binds and validates a JSON request body.
func (h *BaseHandler) BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		h.Error(c, apperror.NewValidation("invalid request body").WithDetail("error", err.Error()))
		return false
	}
	return true
}

// Error registers an error on the gin context and aborts. The actual
// JSON body is produced by middleware.ErrorHandler.
func (h *BaseHandler) Error(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ParseID parses a path parameter as an entity ID.
func (h *BaseHandler) ParseID(c *gin.Context, param string) (id.ID, bool) {
	parsed, err := id.Parse(c.Param(param))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id").WithDetail("param", param))
		return id.Nil(), false
	}
	return parsed, true
}

// ParseDayQuery reads an optional ?date=2006-01-02 query, defaulting to
// the current UTC day.
func (h *BaseHandler) ParseDayQuery(c *gin.Context) (types.CivilDate, bool) {
	raw := c.Query("date")
	if raw == "" {
		return types.CivilDateOf(time.Now()), true
	}
	day, err := types.ParseCivilDate(raw)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid date, expected YYYY-MM-DD").WithDetail("date", raw))
		return types.CivilDate{}, false
	}
	return day, true
}

// ParseMoney parses a decimal string from a request field.
func (h *BaseHandler) ParseMoney(c *gin.Context, field, raw string) (types.Money, bool) {
	m, err := types.NewMoneyFromString(raw)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid amount").WithDetail("field", field))
		return types.Zero(), false
	}
	return m, true
}

// ParseDate parses an optional RFC 3339 timestamp, defaulting to now.
func (h *BaseHandler) ParseDate(c *gin.Context, raw string) (time.Time, bool) {
	if raw == "" {
		return time.Now().UTC(), true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid date, expected RFC 3339").WithDetail("date", raw))
		return time.Time{}, false
	}
	return t.UTC(), true
}

// Created sends a 201 response with the new ID.
func (h *BaseHandler) Created(c *gin.Context, entityID id.ID) {
	c.JSON(http.StatusCreated, dto.IDResponse{ID: entityID.String()})
}

// OK sends a 200 response with data.
func (h *BaseHandler) OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// NoContent sends a 204 response.
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Success sends a success confirmation.
func (h *BaseHandler) Success(c *gin.Context, message string) {
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: message})
}
