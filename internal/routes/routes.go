package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/groomly/salon-scheduler/internal/config"
	domain "github.com/groomly/salon-scheduler/internal/domain/appointment"
	"github.com/groomly/salon-scheduler/internal/events"
	"github.com/groomly/salon-scheduler/internal/handlers"
	infraRepo "github.com/groomly/salon-scheduler/internal/infra/repository"
	"github.com/groomly/salon-scheduler/internal/lock"
	"github.com/groomly/salon-scheduler/internal/middleware"
	"github.com/groomly/salon-scheduler/internal/timezone"
	ucAppointment "github.com/groomly/salon-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	eventLogger := events.New(db)
	eventDispatcher := events.NewDispatcher(eventLogger)

	var slotLocker lock.SlotLocker = lock.Noop{}
	if cfg.RedisAddr != "" {
		redisLock, err := lock.NewRedisLock(cfg.RedisAddr)
		if err != nil {
			log.Printf("redis lock unavailable, falling back to db-only guard: %v", err)
		} else {
			slotLocker = redisLock
		}
	}

	policy := cfg.Policy()
	loc := timezone.Location(cfg.Timezone)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo, policy)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		slotLocker,
		eventDispatcher,
		policy,
		loc,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		eventDispatcher,
		policy,
		loc,
	)

	transitionStatusUC := ucAppointment.NewTransitionStatus(
		appointmentRepo,
		eventDispatcher,
		loc,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo, loc)

	sweepUC := ucAppointment.NewSweepCompleted(appointmentRepo, eventDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	professionalHandler := handlers.NewProfessionalHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db)
	blockedTimeHandler := handlers.NewBlockedTimeHandler(db, loc)

	appointmentHandler := handlers.NewAppointmentHandler(
		availabilityUC,
		createAppointmentUC,
		cancelAppointmentUC,
		transitionStatusUC,
		listAppointmentsUC,
		loc,
	)

	eventsHandler := handlers.NewEventsHandler(db)

	// The sweeper piggybacks on every API request.
	r.Use(middleware.SweepMiddleware(sweepUC, cfg.Timezone))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/professionals", professionalHandler.List)
		api.GET("/professionals/:id/availability", appointmentHandler.Availability)
		api.GET("/services", serviceHandler.List)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.List)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)

			// ------------------------------
			// PROFESSIONAL AGENDA & SETUP
			// ------------------------------
			pro := secured.Group("/me")
			pro.Use(middleware.RequireRole(domain.RoleProfessional))
			{
				pro.GET("/appointments/month", appointmentHandler.ListByMonth)
				pro.PATCH("/appointments/:id/status", appointmentHandler.Transition)

				pro.GET("/working-hours", workingHoursHandler.Get)
				pro.PUT("/working-hours", workingHoursHandler.Update)

				pro.GET("/blocked-times", blockedTimeHandler.List)
				pro.POST("/blocked-times", blockedTimeHandler.Create)
				pro.DELETE("/blocked-times/:id", blockedTimeHandler.Delete)

				pro.GET("/prices", serviceHandler.ListOverrides)
				pro.PUT("/prices", serviceHandler.UpdateOverrides)

				pro.GET("/events", eventsHandler.List)
			}
		}
	}
}
