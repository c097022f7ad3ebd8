package routes

import (
	"context"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/assistant"
	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/config"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/handlers"
	"github.com/BruksfildServices01/salon-booking/internal/infra/repository"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/payment"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
	ucAccount "github.com/BruksfildServices01/salon-booking/internal/usecase/account"
	ucAppointment "github.com/BruksfildServices01/salon-booking/internal/usecase/appointment"
	ucCatalog "github.com/BruksfildServices01/salon-booking/internal/usecase/catalog"
	ucLoyalty "github.com/BruksfildServices01/salon-booking/internal/usecase/loyalty"
	"github.com/BruksfildServices01/salon-booking/internal/validators"
)

// Deps are the long-lived collaborators built by main.
type Deps struct {
	Config   *config.Config
	Store    repository.Store
	Locker   domain.Locker
	Payments payment.Processor
	Audit    *audit.Dispatcher
	Clock    timezone.Clock
	Log      *zap.Logger
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	r.Use(middleware.NewRateLimiter(cfg.RateLimitPerMin).Middleware(d.Log))

	// ======================================================
	// BOOKING RULES
	// ======================================================
	workingDay := domain.WorkingDay{
		StartHour:       cfg.DayStartHour,
		EndHour:         cfg.DayEndHour,
		IntervalMinutes: cfg.SlotIntervalMinutes,
	}
	window := domain.NewBookingWindow(workingDay, timezone.Location(cfg.Timezone))
	window.HorizonDays = cfg.BookingHorizonDays

	// ======================================================
	// USE CASES: APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(d.Store, window, d.Clock, d.Audit, d.Log)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(d.Store, window, d.Clock, d.Audit)
	completeAppointmentUC := ucAppointment.NewCompleteAppointment(d.Store, d.Locker, d.Clock, d.Audit, d.Log)
	listAppointmentsUC := ucAppointment.NewListUserAppointments(d.Store, window, d.Clock)
	availabilityUC := ucAppointment.NewGetAvailability(d.Store, window, d.Log)
	windowUC := ucAppointment.NewCheckBookingWindow(window, d.Clock)

	// ======================================================
	// USE CASES: ACCOUNTS / CATALOG / LOYALTY
	// ======================================================
	var checkDomain func(ctx context.Context, email string) bool
	if cfg.IsProduction() {
		checkDomain = validators.DomainChecker(net.DefaultResolver)
	}

	registerUC := ucAccount.NewRegisterUser(d.Store, checkDomain)
	loginUC := ucAccount.NewAuthenticate(d.Store)
	profileUC := ucAccount.NewGetProfile(d.Store)

	listLocationsUC := ucCatalog.NewListLocations(d.Store)
	listBarbersUC := ucCatalog.NewListBarbersByLocation(d.Store)
	targetUC := ucCatalog.NewResolveBookingTarget(d.Store)

	balanceUC := ucLoyalty.NewGetBalance(d.Store)
	historyUC := ucLoyalty.NewListPointsHistory(d.Store)
	rewardsUC := ucLoyalty.NewListRewards(d.Store)
	redeemUC := ucLoyalty.NewRedeemReward(d.Store, d.Clock, d.Audit, d.Log)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, cfg.JWTSecret, d.Clock, d.Log)
	meHandler := handlers.NewMeHandler(profileUC, d.Log)
	publicHandler := handlers.NewPublicHandler(listLocationsUC, listBarbersUC, availabilityUC, windowUC, d.Log)
	loyaltyHandler := handlers.NewLoyaltyHandler(balanceUC, historyUC, rewardsUC, redeemUC, d.Log)
	assistantHandler := handlers.NewAssistantHandler(assistant.New())

	appointmentHandler := handlers.NewAppointmentHandler(handlers.AppointmentHandlerDeps{
		Target:   targetUC,
		Payments: d.Payments,
		Price:    cfg.AppointmentPrice,
		Create:   createAppointmentUC,
		Cancel:   cancelAppointmentUC,
		Complete: completeAppointmentUC,
		List:     listAppointmentsUC,
		Log:      d.Log,
	})

	// ======================================================
	// ROUTES
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/locations", publicHandler.ListLocations)
		api.GET("/locations/:id/barbers", publicHandler.ListBarbers)
		api.GET("/slots", publicHandler.Slots)
		api.GET("/barbers/:id/availability", publicHandler.Availability)
		api.GET("/booking-window/date", publicHandler.CheckDate)
		api.GET("/booking-window/slot", publicHandler.CheckSlot)

		api.GET("/assistant/questions", assistantHandler.Questions)
		api.POST("/assistant/messages", assistantHandler.Message)

		// ------------------------------
		// SECURED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg.JWTSecret))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListMine)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)

			secured.GET("/me/points", loyaltyHandler.Balance)
			secured.GET("/me/points/history", loyaltyHandler.History)
			secured.GET("/rewards", loyaltyHandler.Rewards)
			secured.POST("/rewards/:id/redeem", loyaltyHandler.Redeem)
		}

		// ------------------------------
		// STAFF
		// ------------------------------
		staff := api.Group("/staff")
		staff.Use(middleware.AuthMiddleware(cfg.JWTSecret), middleware.RequireRole(models.RoleStaff))
		{
			staff.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
		}
	}
}
