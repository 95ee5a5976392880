package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"easyappointment/models"
	"easyappointment/services/booking"
	"easyappointment/utils"
)

// BookingHandler exposes booking endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBookingHandler handles POST /bookings. The caller is identified by
// an explicit userId in the payload.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var input struct {
		UserID     string   `json:"userId" binding:"required"`
		ProviderID string   `json:"providerId" binding:"required"`
		SlotIDs    []string `json:"slotIds" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "details": err.Error()})
		return
	}

	b, err := h.Service.CreateBooking(c.Request.Context(), input.UserID, input.SlotIDs, input.ProviderID)
	if err != nil {
		logger.Warn("Booking creation failed",
			zap.String("userId", input.UserID),
			zap.Strings("slotIds", input.SlotIDs),
			zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// CancelBookingHandler handles DELETE /bookings/by-slot/:slotID. The whole
// booking owning the slot is cancelled, even when it spans several slots.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()
	slotID := c.Param("slotID")

	b, err := h.Service.CancelBooking(c.Request.Context(), slotID)
	if err != nil {
		logger.Warn("Booking cancellation failed", zap.String("slotId", slotID), zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListUserBookingsHandler handles GET /users/:userID/bookings?from=&to=&includePast=.
func (h *BookingHandler) ListUserBookingsHandler(c *gin.Context) {
	now := time.Now().UTC()
	from, ok := parseTimeParam(c.Query("from"), now.AddDate(0, -3, 0))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from' timestamp"})
		return
	}
	to, ok := parseTimeParam(c.Query("to"), now.AddDate(0, 3, 0))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'to' timestamp"})
		return
	}
	includePast := c.Query("includePast") == "true"

	slots, err := h.Service.ListUserBookings(c.Request.Context(), c.Param("userID"), from, to, includePast)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": models.SlotResponses(slots)})
}
