package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/slot-booking/internal/config"
	"github.com/BruksfildServices01/slot-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/slot-booking/internal/infra/repository"
	"github.com/BruksfildServices01/slot-booking/internal/metrics"
	"github.com/BruksfildServices01/slot-booking/internal/middleware"
	"github.com/BruksfildServices01/slot-booking/internal/notify"
	ucBooking "github.com/BruksfildServices01/slot-booking/internal/usecase/booking"
	ucCatalog "github.com/BruksfildServices01/slot-booking/internal/usecase/catalog"
)

// Deps are the process-wide singletons the routes are built from. Metrics
// and Gatherer are nil when metrics are disabled; Profiles is nil when no
// profile service is configured.
type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Log    logrus.FieldLogger

	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer

	Events   *notify.Dispatcher
	Profiles ucBooking.ProfileClient
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(d.Config.CORSOrigins))
	if d.Metrics != nil {
		r.Use(metrics.Middleware(d.Metrics))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(d.DB)
	catalogRepo := infraRepo.NewCatalogGormRepository(d.DB)
	mailer := notify.NewTemplateMailer(d.Events)

	// ======================================================
	// 🧠 USE CASES / BOOKINGS
	// ======================================================
	slotsUC := ucBooking.NewFindSlotAvailability(bookingRepo)

	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		d.Profiles,
		d.Events,
		d.Log,
		d.Metrics,
	)

	findBookingUC := ucBooking.NewFindBooking(bookingRepo)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		mailer,
		d.Events,
		d.Log,
		d.Metrics,
	)

	updateStatusUC := ucBooking.NewUpdateStatus(
		bookingRepo,
		d.Log,
		d.Metrics,
	)

	customerReportUC := ucBooking.NewCustomerReport(bookingRepo)

	// ======================================================
	// 🧠 USE CASES / CATALOG
	// ======================================================
	catalogUC := handlers.CatalogUseCases{
		CreateService: ucCatalog.NewCreateService(catalogRepo, d.Log),
		FindService:   ucCatalog.NewFindService(catalogRepo),
		ListServices:  ucCatalog.NewListServices(catalogRepo),
		UpdateService: ucCatalog.NewUpdateService(catalogRepo, d.Log),
		DeleteService: ucCatalog.NewDeleteService(catalogRepo, d.Log),

		CreateEmployee: ucCatalog.NewCreateEmployee(catalogRepo, d.Log),
		FindEmployee:   ucCatalog.NewFindEmployee(catalogRepo),
		ListEmployees:  ucCatalog.NewListEmployees(catalogRepo),
		UpdateEmployee: ucCatalog.NewUpdateEmployee(catalogRepo, d.Log),
		DeleteEmployee: ucCatalog.NewDeleteEmployee(catalogRepo, d.Log),
	}

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(
		slotsUC,
		createBookingUC,
		findBookingUC,
		listBookingsUC,
		cancelBookingUC,
		updateStatusUC,
		customerReportUC,
		d.Log,
	)

	catalogHandler := handlers.NewCatalogHandler(catalogUC, d.Log)

	// ======================================================
	// 🔐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(d.Config.JWTSecret))
	{
		// ------------------------------
		// SLOTS
		// ------------------------------
		api.GET("/services/:id/slots", bookingHandler.Slots)

		// ------------------------------
		// BOOKINGS
		// ------------------------------
		api.POST("/bookings", bookingHandler.Create)
		api.GET("/bookings", bookingHandler.List)
		api.GET("/bookings/:id", bookingHandler.FindOne)
		api.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)
		api.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)

		api.POST("/reports/customers", bookingHandler.CustomerReport)

		// ------------------------------
		// CATALOG
		// ------------------------------
		api.GET("/services", catalogHandler.ListServices)
		api.POST("/services", catalogHandler.CreateService)
		api.GET("/services/:id", catalogHandler.FindService)
		api.PUT("/services/:id", catalogHandler.UpdateService)
		api.DELETE("/services/:id", catalogHandler.DeleteService)

		api.GET("/employees", catalogHandler.ListEmployees)
		api.POST("/employees", catalogHandler.CreateEmployee)
		api.GET("/employees/:id", catalogHandler.FindEmployee)
		api.PUT("/employees/:id", catalogHandler.UpdateEmployee)
		api.DELETE("/employees/:id", catalogHandler.DeleteEmployee)
	}
}
