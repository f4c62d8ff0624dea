package handlers

import (
	"github.com/gin-gonic/gin"

	"wakala/internal/domain/currency"
	"wakala/internal/infrastructure/http/v1/dto"
)

// RateHandler serves the exchange-rate timeline.
type RateHandler struct {
	BaseHandler
	svc *currency.Service
}

// NewRateHandler creates a rate handler.
func NewRateHandler(svc *currency.Service) *RateHandler {
	return &RateHandler{svc: svc}
}

// History returns the recorded rates, newest first.
func (h *RateHandler) History(c *gin.Context) {
	history, err := h.svc.History(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, history)
}

// Record stores a daily rate snapshot.
func (h *RateHandler) Record(c *gin.Context) {
	var req dto.RecordRateRequest
	if !h.BindJSON(c, &req) {
		return
	}

	sar, ok := h.ParseMoney(c, "sar", req.SAR)
	if !ok {
		return
	}
	omr, ok := h.ParseMoney(c, "omr", req.OMR)
	if !ok {
		return
	}
	at, ok := h.ParseDate(c, req.Date)
	if !ok {
		return
	}

	if err := h.svc.Record(c.Request.Context(), currency.NewRate(sar, omr, at)); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "rate recorded")
}
