package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/reservation-api/internal/audit"
	"github.com/BruksfildServices01/reservation-api/internal/auth"
	"github.com/BruksfildServices01/reservation-api/internal/config"
	reservationDomain "github.com/BruksfildServices01/reservation-api/internal/domain/reservation"
	"github.com/BruksfildServices01/reservation-api/internal/handlers"
	infraCache "github.com/BruksfildServices01/reservation-api/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/reservation-api/internal/infra/repository"
	"github.com/BruksfildServices01/reservation-api/internal/metrics"
	"github.com/BruksfildServices01/reservation-api/internal/middleware"
	"github.com/BruksfildServices01/reservation-api/internal/timezone"
	ucAuth "github.com/BruksfildServices01/reservation-api/internal/usecase/auth"
	ucMenu "github.com/BruksfildServices01/reservation-api/internal/usecase/menu"
	ucReservation "github.com/BruksfildServices01/reservation-api/internal/usecase/reservation"
	"github.com/BruksfildServices01/reservation-api/internal/validators"
)

// Deps are built once in main. Redis and Audit may be nil.
type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Log    *logrus.Logger
	Redis  *redis.Client
	Audit  *audit.Dispatcher
}

func RegisterRoutes(r *gin.Engine, d Deps) error {
	cfg := d.Config

	if err := validators.RegisterWithGin(); err != nil {
		return err
	}

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestID())
	if d.Log != nil {
		r.Use(middleware.LoggerMiddleware(d.Log))
	}
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins...))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	accountRepo := infraRepo.NewAccountGormRepository(d.DB)
	reservationRepo := infraRepo.NewReservationGormRepository(d.DB)
	menuRepo := infraCache.NewCachingMenuRepository(
		d.Redis,
		cfg.MenuCacheTTL,
		infraRepo.NewMenuGormRepository(d.DB),
	)

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL, cfg.JWTExpiresIn)
	authLimiter := middleware.NewRateLimiter(cfg.AuthRatePerMinute)

	policy := reservationDomain.Policy{
		MinDuration: cfg.ReservationMinDuration,
		MaxDuration: cfg.ReservationMaxDuration,
	}

	// ======================================================
	// USE CASES
	// ======================================================
	loginUC := ucAuth.NewLogin(accountRepo, tokens)
	signupUC := ucAuth.NewSignup(accountRepo)

	listMenusUC := ucMenu.NewListMenus(menuRepo)
	createMenuUC := ucMenu.NewCreateMenu(menuRepo, d.Audit)
	deleteMenuUC := ucMenu.NewDeleteMenu(menuRepo, d.Audit)

	createReservationUC := ucReservation.NewCreateReservation(reservationRepo, d.Audit, policy)
	listReservationsUC := ucReservation.NewListReservations(reservationRepo, timezone.Location(cfg.Timezone))
	updateReservationUC := ucReservation.NewUpdateReservation(reservationRepo, d.Audit)
	cancelReservationUC := ucReservation.NewCancelReservation(reservationRepo, d.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	healthHandler := handlers.NewHealthHandler(d.DB, cfg.DBDriver)
	authHandler := handlers.NewAuthHandler(loginUC, signupUC)
	menuHandler := handlers.NewMenuHandler(listMenusUC, createMenuUC, deleteMenuUC)
	reservationHandler := handlers.NewReservationHandler(
		createReservationUC,
		listReservationsUC,
		updateReservationUC,
		cancelReservationUC,
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(audit.New(d.DB))

	metrics.Register()
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/", healthHandler.Check)

		// ------------------------------
		// AUTH
		// ------------------------------
		authAPI := api.Group("/auth")
		authAPI.Use(authLimiter.Middleware())
		{
			authAPI.POST("/customer/login", authHandler.CustomerLogin)
			authAPI.POST("/restaurant/login", authHandler.RestaurantLogin)
			authAPI.POST("/customer/signup", authHandler.CustomerSignup)
			authAPI.POST("/restaurant/signup", authHandler.RestaurantSignup)
		}

		secured := api.Group("")
		secured.Use(middleware.AuthMiddleware(tokens))

		asCustomer := middleware.RequireRole(auth.RoleCustomer)
		asRestaurant := middleware.RequireRole(auth.RoleRestaurant)

		// ------------------------------
		// MENUS
		// ------------------------------
		menus := secured.Group("/menus", asRestaurant)
		{
			menus.GET("", menuHandler.List)
			menus.POST("", menuHandler.Create)
			menus.DELETE("/:id", menuHandler.Delete)
		}

		// ------------------------------
		// RESERVATIONS
		// ------------------------------
		reservations := secured.Group("/reservations")
		{
			reservations.POST("", asCustomer, reservationHandler.Create)
			reservations.GET("/customer", asCustomer, reservationHandler.List)
			reservations.GET("/restaurant", asRestaurant, reservationHandler.List)
			reservations.PUT("/:id", asCustomer, reservationHandler.Update)
			reservations.DELETE("/:id", asCustomer, reservationHandler.Delete)
		}

		secured.GET("/audit-logs", asRestaurant, auditLogsHandler.List)
	}

	return nil
}
