package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bistro-systems/table-reserve/internal/audit"
	"github.com/bistro-systems/table-reserve/internal/config"
	"github.com/bistro-systems/table-reserve/internal/handlers"
	infraRepo "github.com/bistro-systems/table-reserve/internal/infra/repository"
	"github.com/bistro-systems/table-reserve/internal/middleware"
	"github.com/bistro-systems/table-reserve/internal/token"
	ucReservation "github.com/bistro-systems/table-reserve/internal/usecase/reservation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ------------------------------
	// Infra (singletons)
	// ------------------------------
	tokenSvc := token.NewService(cfg.JWTSecret, cfg.TokenTTL)
	reservationRepo := infraRepo.NewReservationGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ------------------------------
	// Use cases
	// ------------------------------
	createReservationUC := ucReservation.NewCreateReservation(
		reservationRepo,
		auditDispatcher,
	)

	cancelReservationUC := ucReservation.NewCancelReservation(
		reservationRepo,
		auditDispatcher,
	)

	availableTablesUC := ucReservation.NewFindAvailableTables(reservationRepo)
	myReservationUC := ucReservation.NewGetMyReservation(reservationRepo)
	allReservationsUC := ucReservation.NewListAllReservations(reservationRepo)

	// ------------------------------
	// Handlers
	// ------------------------------
	authHandler := handlers.NewAuthHandler(db, tokenSvc)
	meHandler := handlers.NewMeHandler(db)
	tableHandler := handlers.NewTableHandler(db, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	reservationHandler := handlers.NewReservationHandler(
		createReservationUC,
		cancelReservationUC,
		availableTablesUC,
		myReservationUC,
		allReservationsUC,
	)

	// ------------------------------
	// Routes
	// ------------------------------
	api := r.Group("/api")
	api.Use(middleware.Identify(tokenSvc))
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)

		// Browsing availability needs no account.
		api.GET("/reservations/available", reservationHandler.Available)

		secured := api.Group("/")
		secured.Use(middleware.RequireUser())
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me/password", meHandler.ChangePassword)

			secured.POST("/reservations", reservationHandler.Create)
			secured.GET("/reservations/mine", reservationHandler.Mine)
			secured.DELETE("/reservations/:id", reservationHandler.Cancel)
		}

		admin := api.Group("/")
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/reservations/all", reservationHandler.ListAll)

			admin.GET("/tables", tableHandler.List)
			admin.POST("/tables", tableHandler.Create)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
