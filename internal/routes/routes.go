package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/ratelimit"
	ucAvailability "github.com/BruksfildServices01/barber-booking/internal/usecase/availability"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
	ucSchedule "github.com/BruksfildServices01/barber-booking/internal/usecase/schedule"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log zerolog.Logger,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger(log))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	bookingLimiter := ratelimit.New(rdb, cfg.BookingRateLimit, cfg.BookingRateWindow)

	// ======================================================
	// USE CASES
	// ======================================================
	getAvailableTimesUC := ucAvailability.NewGetAvailableTimes(bookingRepo)

	bookAppointmentUC := ucBooking.NewBookAppointment(
		bookingRepo,
		auditDispatcher,
		cfg.WeekStartDay,
	)

	cancelAppointmentUC := ucBooking.NewCancelAppointment(
		bookingRepo,
		auditDispatcher,
	)

	createScheduleUC := ucSchedule.NewCreateSchedule(scheduleRepo, auditDispatcher)
	updateScheduleUC := ucSchedule.NewUpdateSchedule(scheduleRepo, auditDispatcher)
	deleteScheduleUC := ucSchedule.NewDeleteSchedule(scheduleRepo, auditDispatcher)

	createSpecialUC := ucSchedule.NewCreateSpecialSchedule(scheduleRepo, auditDispatcher)
	updateSpecialUC := ucSchedule.NewUpdateSpecialSchedule(scheduleRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	barberHandler := handlers.NewBarberHandler(db)
	availabilityHandler := handlers.NewAvailabilityHandler(getAvailableTimesUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		bookAppointmentUC,
		cancelAppointmentUC,
		bookingRepo,
	)

	scheduleHandler := handlers.NewScheduleHandler(
		createScheduleUC,
		updateScheduleUC,
		deleteScheduleUC,
		scheduleRepo,
	)

	specialScheduleHandler := handlers.NewSpecialScheduleHandler(
		createSpecialUC,
		updateSpecialUC,
		scheduleRepo,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PÚBLICA
		// ------------------------------
		api.GET("/barbers", barberHandler.List)
		api.GET("/barbers/:id/available-times", availabilityHandler.GetAvailableTimes)

		// ------------------------------
		// AUTENTICADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// self-service, com rate limit por identidade
			secured.POST(
				"/appointments",
				middleware.BookingRateLimit(bookingLimiter, log),
				appointmentHandler.Create,
			)
			secured.DELETE("/appointments", appointmentHandler.Delete)

			// ------------------------------
			// EQUIPE
			// ------------------------------
			staff := secured.Group("/")
			staff.Use(middleware.RequireStaff())
			{
				staff.POST("/appointments/admin/book", appointmentHandler.AdminBook)
				staff.POST("/appointments/admin/book-guest", appointmentHandler.AdminBookGuest)
				staff.GET("/appointments", appointmentHandler.ListByDate)

				staff.GET("/schedules", scheduleHandler.List)
				staff.POST("/schedules", scheduleHandler.Create)
				staff.PUT("/schedules/:id", scheduleHandler.Update)
				staff.DELETE("/schedules/:id", scheduleHandler.Delete)

				staff.GET("/special-schedules", specialScheduleHandler.List)
				staff.POST("/special-schedules", specialScheduleHandler.Create)
				staff.PUT("/special-schedules/:id", specialScheduleHandler.Update)

				staff.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
