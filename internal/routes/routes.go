package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/oficinahub/workshop-scheduler/internal/audit"
	"github.com/oficinahub/workshop-scheduler/internal/cache"
	"github.com/oficinahub/workshop-scheduler/internal/config"
	domain "github.com/oficinahub/workshop-scheduler/internal/domain/schedule"
	"github.com/oficinahub/workshop-scheduler/internal/handlers"
	infraRepo "github.com/oficinahub/workshop-scheduler/internal/infra/repository"
	"github.com/oficinahub/workshop-scheduler/internal/middleware"
	ucSchedule "github.com/oficinahub/workshop-scheduler/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, logger *zap.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}
	serviceCatalog := cache.NewServiceCache(scheduleRepo, rdb, logger)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, logger)

	capacityPolicy := domain.DefaultCapacityPolicy()
	dayLocks := domain.NewDayLocker()

	// ======================================================
	// SCHEDULE USE CASES
	// ======================================================
	createScheduleUC := ucSchedule.NewCreateSchedule(
		scheduleRepo,
		serviceCatalog,
		capacityPolicy,
		dayLocks,
		auditDispatcher,
		logger,
	)

	availableWorkloadUC := ucSchedule.NewGetAvailableWorkload(
		scheduleRepo,
		serviceCatalog,
		capacityPolicy,
		logger,
	)

	listTodayUC := ucSchedule.NewListToday(scheduleRepo, serviceCatalog)
	listPeriodUC := ucSchedule.NewListPeriod(scheduleRepo, serviceCatalog)

	removeScheduleUC := ucSchedule.NewRemoveSchedule(
		scheduleRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	workshopHandler := handlers.NewWorkshopHandler(db)
	serviceHandler := handlers.NewServiceHandler(db, serviceCatalog)

	scheduleHandler := handlers.NewScheduleHandler(
		db,
		createScheduleUC,
		availableWorkloadUC,
		listTodayUC,
		listPeriodUC,
		removeScheduleUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(
		db,
		createScheduleUC,
		availableWorkloadUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/available-workload", publicHandler.AvailableWorkload)
			publicAPI.POST("/:slug/schedules", publicHandler.CreateSchedule)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/workshop", workshopHandler.GetMeWorkshop)
			secured.PATCH("/me/workshop", workshopHandler.UpdateMeWorkshop)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)

			// ------------------------------
			// SCHEDULES
			// ------------------------------
			secured.GET("/me/schedules/today", scheduleHandler.ListToday)
			secured.GET("/me/schedules/available-workload", scheduleHandler.AvailableWorkload)
			secured.GET("/me/schedules", scheduleHandler.ListPeriod)
			secured.POST("/me/schedules", scheduleHandler.Create)
			secured.DELETE("/me/schedules/:id", scheduleHandler.Remove)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
