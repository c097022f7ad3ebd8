package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/usecase/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/usecase/catalog"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	locations    *catalog.ListLocations
	barbers      *catalog.ListBarbersByLocation
	availability *appointment.GetAvailability
	window       *appointment.CheckBookingWindow
	log          *zap.Logger
}

func NewPublicHandler(
	locations *catalog.ListLocations,
	barbers *catalog.ListBarbersByLocation,
	availability *appointment.GetAvailability,
	window *appointment.CheckBookingWindow,
	log *zap.Logger,
) *PublicHandler {
	return &PublicHandler{
		locations:    locations,
		barbers:      barbers,
		availability: availability,
		window:       window,
		log:          log,
	}
}

////////////////////////////////////////////////////////
// CATALOG
////////////////////////////////////////////////////////

func (h *PublicHandler) ListLocations(c *gin.Context) {
	locations, err := h.locations.Execute(c.Request.Context())
	if err != nil {
		respond(c, h.log, err)
		return
	}
	httpresp.List(c, locations)
}

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	barbers, err := h.barbers.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond(c, h.log, err)
		return
	}
	httpresp.List(c, barbers)
}

////////////////////////////////////////////////////////
// SLOTS / BOOKING WINDOW
////////////////////////////////////////////////////////

func (h *PublicHandler) Slots(c *gin.Context) {
	httpresp.List(c, h.window.Slots())
}

func (h *PublicHandler) CheckDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Query parameter date is required.")
		return
	}

	if err := h.window.Execute(date, ""); err != nil {
		respond(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "bookable": true})
}

func (h *PublicHandler) CheckSlot(c *gin.Context) {
	date := c.Query("date")
	hhmm := c.Query("time")
	if date == "" || hhmm == "" {
		httperr.BadRequest(c, "missing_params", "Query parameters date and time are required.")
		return
	}

	if err := h.window.Execute(date, hhmm); err != nil {
		respond(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "time": hhmm, "bookable": true})
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Query parameter date is required.")
		return
	}

	slots, err := h.availability.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			BarberID: c.Param("id"),
			Date:     date,
		},
	)
	if err != nil {
		respond(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  date,
		"slots": domain.ToTimeSlots(slots),
	})
}
