package handlers

import (
	"errors"
	"net/http"

	availabilitySvc "homely/services/availability"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves booking-calendar endpoints.
type AvailabilityHandler struct {
	AvailSvc availabilitySvc.AvailabilityService
	Logger   *zap.Logger
}

func NewAvailabilityHandler(svc availabilitySvc.AvailabilityService, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{AvailSvc: svc, Logger: logger}
}

// GetCalendar handles GET /api/availability/:serviceId/calendar?month=YYYY-MM.
func (h *AvailabilityHandler) GetCalendar(c *gin.Context) {
	serviceID := c.Param("serviceId")
	month := c.Query("month")

	calendar, err := h.AvailSvc.Calendar(c.Request.Context(), serviceID, month)
	if err != nil {
		var ae *availabilitySvc.AvailabilityError
		if errors.As(err, &ae) {
			c.JSON(http.StatusBadRequest, gin.H{"error": ae.Message})
			return
		}
		h.Logger.Error("GetCalendar: failed to build calendar",
			zap.String("serviceID", serviceID), zap.String("month", month), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build calendar"})
		return
	}

	c.JSON(http.StatusOK, calendar)
}

// GetSlots handles GET /api/availability/:serviceId/slots?date=YYYY-MM-DD.
func (h *AvailabilityHandler) GetSlots(c *gin.Context) {
	serviceID := c.Param("serviceId")
	date := c.Query("date")

	slots, err := h.AvailSvc.SlotsOn(c.Request.Context(), serviceID, date)
	if err != nil {
		var ae *availabilitySvc.AvailabilityError
		if errors.As(err, &ae) {
			c.JSON(http.StatusBadRequest, gin.H{"error": ae.Message})
			return
		}
		h.Logger.Error("GetSlots: failed to fetch slots",
			zap.String("serviceID", serviceID), zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch slots"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"serviceId": serviceID, "date": date, "slots": slots})
}
