package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/slot-booking/internal/dto"
	"github.com/BruksfildServices01/slot-booking/internal/httperr"
	"github.com/BruksfildServices01/slot-booking/internal/httpresp"
	"github.com/BruksfildServices01/slot-booking/internal/middleware"
	"github.com/BruksfildServices01/slot-booking/internal/usecase/catalog"
)

type CatalogHandler struct {
	createService *catalog.CreateService
	findService   *catalog.FindService
	listServices  *catalog.ListServices
	updateService *catalog.UpdateService
	deleteService *catalog.DeleteService

	createEmployee *catalog.CreateEmployee
	findEmployee   *catalog.FindEmployee
	listEmployees  *catalog.ListEmployees
	updateEmployee *catalog.UpdateEmployee
	deleteEmployee *catalog.DeleteEmployee

	log logrus.FieldLogger
}

// CatalogUseCases groups the catalog operations the handler serves.
type CatalogUseCases struct {
	CreateService *catalog.CreateService
	FindService   *catalog.FindService
	ListServices  *catalog.ListServices
	UpdateService *catalog.UpdateService
	DeleteService *catalog.DeleteService

	CreateEmployee *catalog.CreateEmployee
	FindEmployee   *catalog.FindEmployee
	ListEmployees  *catalog.ListEmployees
	UpdateEmployee *catalog.UpdateEmployee
	DeleteEmployee *catalog.DeleteEmployee
}

func NewCatalogHandler(uc CatalogUseCases, log logrus.FieldLogger) *CatalogHandler {
	return &CatalogHandler{
		createService:  uc.CreateService,
		findService:    uc.FindService,
		listServices:   uc.ListServices,
		updateService:  uc.UpdateService,
		deleteService:  uc.DeleteService,
		createEmployee: uc.CreateEmployee,
		findEmployee:   uc.FindEmployee,
		listEmployees:  uc.ListEmployees,
		updateEmployee: uc.UpdateEmployee,
		deleteEmployee: uc.DeleteEmployee,
		log:            log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateServiceRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	StartTime   string          `json:"start_time" binding:"required"`
	EndTime     string          `json:"end_time" binding:"required"`
	BreakStart  string          `json:"break_start"`
	BreakEnd    string          `json:"break_end"`
	Duration    int             `json:"duration" binding:"required"`
}

type CreateEmployeeRequest struct {
	FirstName  string   `json:"first_name" binding:"required"`
	LastName   string   `json:"last_name"`
	Email      string   `json:"email" binding:"omitempty,email"`
	Phone      string   `json:"phone"`
	Image      string   `json:"image"`
	WorkDays   []string `json:"work_days" binding:"required"`
	WorkShifts []string `json:"work_shifts" binding:"required"`
	ServiceIDs []string `json:"service_ids"`
}

// ======================================================
// SERVICES
// ======================================================

func (r CreateServiceRequest) input() catalog.CreateServiceInput {
	return catalog.CreateServiceInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		BreakStart:  r.BreakStart,
		BreakEnd:    r.BreakEnd,
		Duration:    r.Duration,
	}
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	svc, err := h.createService.Execute(c.Request.Context(), middleware.CallerFrom(c), req.input())
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.Created(c, svc)
}

func (h *CatalogHandler) FindService(c *gin.Context) {
	svc, err := h.findService.Execute(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"))
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, svc)
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	minPrice, err := parseOptionalPrice(c.Query("min_price"))
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	maxPrice, err := parseOptionalPrice(c.Query("max_price"))
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	out, err := h.listServices.Execute(c.Request.Context(), middleware.CallerFrom(c), catalog.ListServicesInput{
		Name:     c.Query("name"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.List(c, out)
}

func (h *CatalogHandler) UpdateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	svc, err := h.updateService.Execute(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), req.input())
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, svc)
}

func (h *CatalogHandler) DeleteService(c *gin.Context) {
	if err := h.deleteService.Execute(c.Request.Context(), middleware.CallerFrom(c), c.Param("id")); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ======================================================
// EMPLOYEES
// ======================================================

func (r CreateEmployeeRequest) input() catalog.CreateEmployeeInput {
	return catalog.CreateEmployeeInput{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		Phone:      r.Phone,
		Image:      r.Image,
		WorkDays:   r.WorkDays,
		WorkShifts: r.WorkShifts,
		ServiceIDs: r.ServiceIDs,
	}
}

func (h *CatalogHandler) CreateEmployee(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	emp, err := h.createEmployee.Execute(c.Request.Context(), middleware.CallerFrom(c), req.input())
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.Created(c, dto.FromEmployee(*emp))
}

func (h *CatalogHandler) FindEmployee(c *gin.Context) {
	emp, err := h.findEmployee.Execute(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"))
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, dto.FromEmployee(*emp))
}

func (h *CatalogHandler) ListEmployees(c *gin.Context) {
	out, err := h.listEmployees.Execute(c.Request.Context(), middleware.CallerFrom(c), catalog.ListEmployeesInput{
		Name:       c.Query("name"),
		WorkDays:   splitList(c.QueryArray("work_days")),
		WorkShifts: splitList(c.QueryArray("work_shifts")),
		ServiceIDs: splitList(c.QueryArray("services")),
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.List(c, dto.FromEmployees(out))
}

func (h *CatalogHandler) UpdateEmployee(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	emp, err := h.updateEmployee.Execute(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), req.input())
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, dto.FromEmployee(*emp))
}

func (h *CatalogHandler) DeleteEmployee(c *gin.Context) {
	if err := h.deleteEmployee.Execute(c.Request.Context(), middleware.CallerFrom(c), c.Param("id")); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// parseOptionalPrice returns nil for an empty value.
func parseOptionalPrice(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, httperr.ErrBusiness(catalog.CodeInvalidData)
	}
	return &d, nil
}
