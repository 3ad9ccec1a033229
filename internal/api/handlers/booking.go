package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/spiceterra/webapi/internal/domain"
	"github.com/spiceterra/webapi/internal/wizard"
	pkgerrors "github.com/spiceterra/webapi/pkg/errors"
)

// BookingStateResponse represents the full reservation wizard state
type BookingStateResponse struct {
	Step      domain.BookingStep     `json:"step"`
	Guests    int                    `json:"guests"`
	Date      string                 `json:"date,omitempty"`
	Time      string                 `json:"time,omitempty"`
	TimeSlots []string               `json:"time_slots"`
	Contact   map[string]string      `json:"contact"`
	Errors    map[string]string      `json:"errors"`
	Summary   *domain.BookingSummary `json:"summary,omitempty"`
}

func bookingState(b *wizard.Booking) BookingStateResponse {
	resp := BookingStateResponse{
		Step:      b.Step(),
		Guests:    b.Guests(),
		Time:      b.TimeSlot(),
		TimeSlots: wizard.TimeSlots,
		Contact:   b.ContactValues(),
		Errors:    b.ContactErrors(),
	}
	if date := b.Date(); !date.IsZero() {
		resp.Date = date.Format("2006-01-02")
	}
	if summary, err := b.Summary(); err == nil {
		resp.Summary = &summary
	}
	return resp
}

// GuestsRequest adjusts the guest count one step in either direction
type GuestsRequest struct {
	Action string `json:"action" binding:"required,oneof=increment decrement"`
}

// DateRequest selects the reservation date
type DateRequest struct {
	Date string `json:"date" binding:"required"`
}

// TimeRequest selects the reservation time slot
type TimeRequest struct {
	Slot string `json:"slot" binding:"required"`
}

// FieldEditRequest edits one form field, optionally blurring it
type FieldEditRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
	Blur  bool   `json:"blur"`
}

// HandleBookingState handles GET /v1/booking
func HandleBookingState(b *wizard.Booking) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, bookingState(b))
	}
}

// HandleBookingGuests handles POST /v1/booking/guests
func HandleBookingGuests(b *wizard.Booking) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req GuestsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		if req.Action == "increment" {
			b.IncrementGuests()
		} else {
			b.DecrementGuests()
		}
		c.JSON(http.StatusOK, bookingState(b))
	}
}

// HandleBookingDate handles POST /v1/booking/date
func HandleBookingDate(b *wizard.Booking, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
		if err != nil {
			respondError(c, logger, &pkgerrors.ErrInvalidInput{Field: "date", Reason: "expected YYYY-MM-DD"})
			return
		}

		if err := b.SelectDate(date); err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, bookingState(b))
	}
}

// HandleBookingTime handles POST /v1/booking/time
func HandleBookingTime(b *wizard.Booking, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TimeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		if err := b.SelectTime(req.Slot); err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, bookingState(b))
	}
}

// HandleBookingContact handles POST /v1/booking/contact
func HandleBookingContact(b *wizard.Booking) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req FieldEditRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		b.EditContact(req.Field, req.Value, req.Blur)
		c.JSON(http.StatusOK, bookingState(b))
	}
}

// HandleBookingAdvance handles POST /v1/booking/advance
func HandleBookingAdvance(b *wizard.Booking, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := b.Advance(); err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, bookingState(b))
	}
}

// HandleBookingBack handles POST /v1/booking/back
func HandleBookingBack(b *wizard.Booking, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := b.Back(); err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, bookingState(b))
	}
}

// HandleBookingConfirm handles POST /v1/booking/confirm
func HandleBookingConfirm(b *wizard.Booking, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := b.Confirm(); err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, bookingState(b))
	}
}

// HandleBookingRestart handles POST /v1/booking/restart
func HandleBookingRestart(b *wizard.Booking) gin.HandlerFunc {
	return func(c *gin.Context) {
		b.StartOver()
		c.JSON(http.StatusOK, bookingState(b))
	}
}
