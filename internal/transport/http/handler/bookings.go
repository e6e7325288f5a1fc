package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petcare/internal/service"
	"petcare/internal/transport/http/response"
)

type Bookings struct {
	bookings *service.Bookings
}

func NewBookings(bookings *service.Bookings) *Bookings {
	return &Bookings{bookings: bookings}
}

// Pointer fields distinguish "absent from the payload" from a zero value.
type bookingIn struct {
	ClientID       *uint    `json:"client_id"`
	ProfessionalID *uint    `json:"professional_id"`
	ServiceType    *string  `json:"service_type"`
	BookingDate    *string  `json:"booking_date"`
	Notes          string   `json:"notes"`
	TotalCost      *float64 `json:"total_cost"`
}

func (h *Bookings) Create(c *gin.Context) {
	var in bookingIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, response.MsgBookingRequired)
		return
	}
	if in.ClientID == nil || in.ProfessionalID == nil || in.ServiceType == nil || in.BookingDate == nil {
		response.Error(c, http.StatusBadRequest, response.MsgBookingRequired)
		return
	}
	totalCost := 0.0
	if in.TotalCost != nil {
		totalCost = *in.TotalCost
	}
	id, err := h.bookings.Create(service.BookingInput{
		ClientID:       *in.ClientID,
		ProfessionalID: *in.ProfessionalID,
		ServiceType:    *in.ServiceType,
		BookingDate:    *in.BookingDate,
		Notes:          in.Notes,
		TotalCost:      totalCost,
	})
	if err != nil {
		// Malformed dates ride the same generic path as storage failures.
		response.Error(c, http.StatusInternalServerError, response.MsgBookingFailed)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":    response.MsgBookingOK,
		"booking_id": id,
	})
}
