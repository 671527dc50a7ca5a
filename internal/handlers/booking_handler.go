package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/slot-booking/internal/domain/booking"
	"github.com/BruksfildServices01/slot-booking/internal/dto"
	"github.com/BruksfildServices01/slot-booking/internal/httperr"
	"github.com/BruksfildServices01/slot-booking/internal/httpresp"
	"github.com/BruksfildServices01/slot-booking/internal/middleware"
	bookinguc "github.com/BruksfildServices01/slot-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	slots        *bookinguc.FindSlotAvailability
	create       *bookinguc.CreateBooking
	findOne      *bookinguc.FindBooking
	list         *bookinguc.ListBookings
	cancel       *bookinguc.CancelBooking
	updateStatus *bookinguc.UpdateStatus
	report       *bookinguc.CustomerReport

	log logrus.FieldLogger
}

func NewBookingHandler(
	slots *bookinguc.FindSlotAvailability,
	create *bookinguc.CreateBooking,
	findOne *bookinguc.FindBooking,
	list *bookinguc.ListBookings,
	cancel *bookinguc.CancelBooking,
	updateStatus *bookinguc.UpdateStatus,
	report *bookinguc.CustomerReport,
	log logrus.FieldLogger,
) *BookingHandler {
	return &BookingHandler{
		slots:        slots,
		create:       create,
		findOne:      findOne,
		list:         list,
		cancel:       cancel,
		updateStatus: updateStatus,
		report:       report,
		log:          log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ServiceID  string `json:"service_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	StartTime  string `json:"start_time" binding:"required"`
	EmployeeID string `json:"employee_id"`
	VoucherID  string `json:"voucher_id"`
	Note       string `json:"note"`
}

type CancelBookingRequest struct {
	Note string `json:"note"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CustomerReportRequest struct {
	Emails []string `json:"emails" binding:"required"`
}

// ======================================================
// SLOTS
// ======================================================

func (h *BookingHandler) Slots(c *gin.Context) {
	date, err := parseDate(c.Query("date"))
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	start, err := parseOptionalTimeOfDay(c.Query("start_time"))
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	end, err := parseOptionalTimeOfDay(c.Query("end_time"))
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	out, err := h.slots.Execute(c.Request.Context(), middleware.CallerFrom(c), domain.AvailabilityInput{
		ServiceID: c.Param("id"),
		Date:      date,
		StartTime: start,
		EndTime:   end,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	start, err := parseStartTime(date, req.StartTime)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	b, err := h.create.Execute(c.Request.Context(), middleware.CallerFrom(c), bookinguc.CreateBookingInput{
		ServiceID:  req.ServiceID,
		Date:       date,
		StartTime:  start,
		EmployeeID: req.EmployeeID,
		VoucherID:  req.VoucherID,
		Note:       req.Note,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.Created(c, dto.FromBooking(*b))
}

// ======================================================
// READ
// ======================================================

func (h *BookingHandler) FindOne(c *gin.Context) {
	b, err := h.findOne.Execute(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"))
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, dto.FromBooking(*b))
}

func (h *BookingHandler) List(c *gin.Context) {
	from, err := parseOptionalDate(c.Query("from"))
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	to, err := parseOptionalDate(c.Query("to"))
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	var statuses []domain.Status
	for _, raw := range splitList(c.QueryArray("status")) {
		s, err := domain.ParseStatus(raw)
		if err != nil {
			httperr.Respond(c, h.log, err)
			return
		}
		statuses = append(statuses, s)
	}

	// malformed paging falls back to the defaults
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	out, err := h.list.Execute(c.Request.Context(), middleware.CallerFrom(c), bookinguc.ListBookingsInput{
		ServiceIDs: splitList(c.QueryArray("services")),
		From:       from,
		To:         to,
		Statuses:   statuses,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.Page(c, dto.FromBookings(out.Items), out.Total, out.Page, out.Limit)
}

// ======================================================
// LIFECYCLE
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	var req CancelBookingRequest
	// body is optional
	_ = c.ShouldBindJSON(&req)

	b, err := h.cancel.Execute(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), req.Note)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, dto.FromBooking(*b))
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.updateStatus.Execute(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), req.Status)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, dto.FromBooking(*b))
}

// ======================================================
// REPORTS
// ======================================================

func (h *BookingHandler) CustomerReport(c *gin.Context) {
	var req CustomerReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	out, err := h.report.Execute(c.Request.Context(), middleware.CallerFrom(c), req.Emails)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.List(c, out)
}
