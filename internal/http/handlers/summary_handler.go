// README: Trip summary handler (validate body, summarize, relay result or error).
package handlers

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripsummary/internal/service"
	"tripsummary/internal/trip"
)

const (
	msgBodyRequired = "Request body is required"
	msgTripRequired = "Trip data is required"
)

type SummaryHandler struct {
	summarizer *service.Summarizer
}

func NewSummaryHandler(s *service.Summarizer) *SummaryHandler {
	return &SummaryHandler{summarizer: s}
}

type generateSummaryReq struct {
	Trip        json.RawMessage `json:"trip"`
	Model       *string         `json:"model"`
	MaxTokens   *int            `json:"max_tokens"`
	Temperature *float64        `json:"temperature"`
}

type generateSummaryResp struct {
	Summary string `json:"summary"`
	Model   string `json:"model"`
}

// Generate handles POST /api/generate-summary.
// Missing body or trip -> 400, anything else that fails -> 500 with the error text.
func (h *SummaryHandler) Generate(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		writeError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if isBlank(raw) {
		writeError(c, http.StatusBadRequest, msgBodyRequired)
		return
	}

	var req generateSummaryReq
	if err := json.Unmarshal(raw, &req); err != nil {
		writeError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if isBlank(req.Trip) {
		writeError(c, http.StatusBadRequest, msgTripRequired)
		return
	}

	var rec trip.Record
	if err := json.Unmarshal(req.Trip, &rec); err != nil {
		writeError(c, http.StatusInternalServerError, err.Error())
		return
	}

	summary, err := h.summarizer.Summarize(c.Request.Context(), rec, service.Params{
		Model:       req.Model,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		log.Printf("generate summary: %v", err)
		writeError(c, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(c, http.StatusOK, generateSummaryResp{Summary: summary.Text, Model: summary.Model})
}

// isBlank reports whether raw is absent or an empty JSON value:
// null, false, 0, "", [] or {}.
func isBlank(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return true
	}
	var v any
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return false
	}
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case float64:
		return t == 0
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	}
	return false
}
