package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"wakala/internal/core/apperror"
	"wakala/internal/core/types"
	"wakala/internal/domain/closing"
	"wakala/internal/infrastructure/http/v1/dto"
)

// ClosingHandler serves the daily reconciliation flow.
type ClosingHandler struct {
	BaseHandler
	svc *closing.Service
}

// NewClosingHandler creates a closing handler.
func NewClosingHandler(svc *closing.Service) *ClosingHandler {
	return &ClosingHandler{svc: svc}
}

// Summary computes a day's cash picture without storing anything.
func (h *ClosingHandler) Summary(c *gin.Context) {
	day, ok := h.ParseDayQuery(c)
	if !ok {
		return
	}

	summary, err := h.svc.Summary(c.Request.Context(), day)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, summary)
}

// Finalize seals a day against the counted drawer.
func (h *ClosingHandler) Finalize(c *gin.Context) {
	var req dto.FinalizeClosingRequest
	if !h.BindJSON(c, &req) {
		return
	}

	actualCash, ok := h.ParseMoney(c, "actualCash", req.ActualCash)
	if !ok {
		return
	}

	day := types.CivilDateOf(time.Now())
	if req.Date != "" {
		parsed, err := types.ParseCivilDate(req.Date)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid date, expected YYYY-MM-DD").WithDetail("date", req.Date))
			return
		}
		day = parsed
	}

	record, err := h.svc.Finalize(c.Request.Context(), day, actualCash, req.Note)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, record)
}

// History returns finalized closings, newest first.
func (h *ClosingHandler) History(c *gin.Context) {
	out, err := h.svc.History(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, out)
}
