package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
	"github.com/BruksfildServices01/salon-booking/internal/payment"
	"github.com/BruksfildServices01/salon-booking/internal/usecase/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/usecase/catalog"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	target   *catalog.ResolveBookingTarget
	payments payment.Processor
	price    int64

	create   *appointment.CreateAppointment
	cancel   *appointment.CancelAppointment
	complete *appointment.CompleteAppointment
	list     *appointment.ListUserAppointments

	log *zap.Logger
}

type AppointmentHandlerDeps struct {
	Target   *catalog.ResolveBookingTarget
	Payments payment.Processor
	Price    int64

	Create   *appointment.CreateAppointment
	Cancel   *appointment.CancelAppointment
	Complete *appointment.CompleteAppointment
	List     *appointment.ListUserAppointments

	Log *zap.Logger
}

func NewAppointmentHandler(d AppointmentHandlerDeps) *AppointmentHandler {
	return &AppointmentHandler{
		target:   d.Target,
		payments: d.Payments,
		price:    d.Price,
		create:   d.Create,
		cancel:   d.Cancel,
		complete: d.Complete,
		list:     d.List,
		log:      d.Log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	LocationID string `json:"location_id" binding:"required"`
	BarberID   string `json:"barber_id" binding:"required"`
	Date       string `json:"date" binding:"required"` // YYYY-MM-DD
	Time       string `json:"time" binding:"required"` // HH:MM
	Duration   int    `json:"duration"`
}

type CompleteAppointmentRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

// Create validates the booking, charges the customer and then books the
// slot.
func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := middleware.UserID(c)
	ctx := c.Request.Context()

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	target, err := h.target.Execute(ctx, req.BarberID, req.LocationID)
	if err != nil {
		respond(c, h.log, err)
		return
	}

	in := appointment.CreateAppointmentInput{
		UserID:       userID,
		BarberID:     target.Barber.ID,
		BarberName:   target.Barber.Name,
		LocationID:   target.Location.ID,
		LocationName: target.Location.Name,
		Date:         req.Date,
		Time:         req.Time,
		Duration:     req.Duration,
	}

	// reject before charging; Execute checks the slot again after payment
	if err := h.create.Precheck(ctx, in); err != nil {
		respond(c, h.log, err)
		return
	}

	paid, err := h.payments.ProcessPayment(ctx, payment.PaymentInput{
		Amount:      h.price,
		Description: "Appointment with " + target.Barber.Name,
		UserID:      userID,
	})
	if err != nil {
		h.log.Error("payment failed", zap.String("user_id", userID), zap.Error(err))
		httperr.Respond(c, httperr.ErrBusiness("payment_failed"))
		return
	}
	if !paid.Success {
		httperr.Respond(c, httperr.ErrBusiness("payment_failed"))
		return
	}

	in.Amount = paid.Amount
	in.PaymentID = paid.PaymentID
	in.PaymentStatus = paid.Status

	ap, err := h.create.Execute(ctx, in)
	if err != nil {
		h.log.Warn("appointment not created after payment",
			zap.String("payment_id", paid.PaymentID),
			zap.Error(err),
		)
		respond(c, h.log, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	items, err := h.list.Execute(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respond(c, h.log, err)
		return
	}
	httpresp.List(c, items)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	ap, err := h.cancel.Execute(c.Request.Context(), appointment.CancelAppointmentInput{
		AppointmentID: c.Param("id"),
		UserID:        middleware.UserID(c),
		Staff:         middleware.IsStaff(c),
	})
	if err != nil {
		respond(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, ap)
}

// ======================================================
// COMPLETE (staff)
// ======================================================

func (h *AppointmentHandler) Complete(c *gin.Context) {
	var req CompleteAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "user_id is required.")
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), c.Param("id"), req.UserID)
	if err != nil {
		respond(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, ap)
}
