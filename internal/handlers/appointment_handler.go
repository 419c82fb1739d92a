package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/groomly/salon-scheduler/internal/domain/appointment"
	"github.com/groomly/salon-scheduler/internal/httperr"
	"github.com/groomly/salon-scheduler/internal/httpresp"
	"github.com/groomly/salon-scheduler/internal/middleware"
	ucAppointment "github.com/groomly/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	availabilityUC *ucAppointment.GetAvailability
	createUC       *ucAppointment.CreateAppointment
	cancelUC       *ucAppointment.CancelAppointment
	transitionUC   *ucAppointment.TransitionStatus
	listUC         *ucAppointment.ListAppointments
	loc            *time.Location
}

func NewAppointmentHandler(
	availabilityUC *ucAppointment.GetAvailability,
	createUC *ucAppointment.CreateAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	transitionUC *ucAppointment.TransitionStatus,
	listUC *ucAppointment.ListAppointments,
	loc *time.Location,
) *AppointmentHandler {
	return &AppointmentHandler{
		availabilityUC: availabilityUC,
		createUC:       createUC,
		cancelUC:       cancelUC,
		transitionUC:   transitionUC,
		listUC:         listUC,
		loc:            loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	ServiceID      uint   `json:"service_id" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
	Notes          string `json:"notes"`
}

type CancelAppointmentRequest struct {
	Reason string `json:"reason"`
}

type TransitionStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// AVAILABILITY (public)
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	proID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_professional_id", "Identificador inválido.")
		return
	}

	serviceID, err := strconv.ParseUint(c.Query("service_id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	date, err := parseDate(h.loc, c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), domain.AvailabilityInput{
		ProfessionalID: uint(proID),
		ServiceID:      uint(serviceID),
		Date:           date,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), actor, ucAppointment.CreateAppointmentInput{
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		Date:           req.Date,
		Time:           req.Time,
		Notes:          req.Notes,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	var req CancelAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), actor, c.Param("id"), req.Reason)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// STATUS TRANSITION
// ======================================================

func (h *AppointmentHandler) Transition(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	var req TransitionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.transitionUC.Execute(
		c.Request.Context(),
		actor,
		c.Param("id"),
		domain.Status(req.Status),
	)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// LISTINGS
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	if actor.Role == domain.RoleClient {
		out, err := h.listUC.ForClient(c.Request.Context(), actor.ID)
		if err != nil {
			writeError(c, err)
			return
		}
		httpresp.List(c, out)
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		dateStr = time.Now().In(h.loc).Format("2006-01-02")
	}

	date, err := parseDate(h.loc, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	out, err := h.listUC.ByDate(c.Request.Context(), actor.ID, date)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	year, err1 := strconv.Atoi(c.Query("year"))
	month, err2 := strconv.Atoi(c.Query("month"))
	if err1 != nil || err2 != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Ano ou mês inválido.")
		return
	}

	out, err := h.listUC.ByMonth(c.Request.Context(), actor.ID, year, month)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, out)
}
