package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"easyappointment/models"
	"easyappointment/services/schedule"
	"easyappointment/utils"
)

// SlotHandler exposes the provider schedule view.
type SlotHandler struct {
	Service schedule.ScheduleService
}

func NewSlotHandler(svc schedule.ScheduleService) *SlotHandler {
	return &SlotHandler{Service: svc}
}

// parseTimeParam accepts RFC 3339 timestamps or plain dates.
func parseTimeParam(value string, fallback time.Time) (time.Time, bool) {
	if value == "" {
		return fallback, true
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), true
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// GetProviderSlotsHandler handles GET /providers/:id/slots?from=&to=.
// The range defaults to the full scheduling horizon from now.
func (h *SlotHandler) GetProviderSlotsHandler(c *gin.Context) {
	now := time.Now().UTC()
	from, ok := parseTimeParam(c.Query("from"), now)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from' timestamp"})
		return
	}
	to, ok := parseTimeParam(c.Query("to"), now.AddDate(0, 3, 0))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'to' timestamp"})
		return
	}

	slots, err := h.Service.ListSlotsForProvider(c.Request.Context(), c.Param("id"), from, to)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": models.SlotResponses(slots)})
}
