package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gotham/cmd/fx/attractions_fx"
	"gotham/cmd/fx/auth_fx"
	"gotham/cmd/fx/categories_fx"
	"gotham/cmd/fx/controllers_fx"
	"gotham/cmd/fx/db_fx"
	"gotham/cmd/fx/mail_fx"
	"gotham/cmd/fx/memcache_fx"
	"gotham/cmd/fx/redis_fx"
	"gotham/cmd/fx/schedule_fx"
	"gotham/cmd/fx/trips_fx"
	"gotham/internal/api/controllers"
	"gotham/internal/catalog"
	"gotham/internal/config"
	"gotham/internal/models/db_models"
	"gotham/pkg/logger"
	"gotham/pkg/middleware"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		fx.Provide(config.Load),
		fx.Provide(provideLogger),

		db_fx.Module,
		redis_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		auth_fx.Module,
		categories_fx.Module,
		attractions_fx.Module,
		schedule_fx.Module,
		trips_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(PrepareDatabase),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func provideLogger(cfg *config.Config) *zap.Logger {
	l, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	return l
}

func PrepareDatabase(db *gorm.DB, l *zap.Logger) {
	err := db.AutoMigrate(
		&db_models.User{},
		&db_models.Category{},
		&db_models.Attraction{},
		&db_models.TripSchedule{},
		&db_models.ScheduledAttraction{},
	)
	if err != nil {
		l.Fatal("Database migration failed", zap.Error(err))
	}

	if err := catalog.Seed(db, l); err != nil {
		l.Fatal("Catalog seed failed", zap.Error(err))
	}
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, l *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				l.Info("Starting HTTP server", zap.String("port", cfg.Server.Port))
				if err := engine.Run(":" + cfg.Server.Port); err != nil {
					l.Fatal("Failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			l.Info("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	attractionsController *controllers.AttractionsController,
	categoriesController *controllers.CategoriesController,
	authController *controllers.AuthController,
	scheduleController *controllers.ScheduleController,
	tripsController *controllers.TripsController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, attractionsController, categoriesController, authController, scheduleController, tripsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	attractionsController *controllers.AttractionsController,
	categoriesController *controllers.CategoriesController,
	authController *controllers.AuthController,
	scheduleController *controllers.ScheduleController,
	tripsController *controllers.TripsController) {

	authGroup := r.Group("/auth")
	authGroup.POST("/request-link", authController.RequestLoginLink)
	authGroup.POST("/verify", authController.VerifyLoginLink)
	authGroup.GET("/me", middleware.JWTAuthMiddleware(), authController.Me)
	authGroup.DELETE("/account", middleware.JWTAuthMiddleware(), authController.DeleteAccount)

	attractionsGroup := r.Group("/attractions")
	attractionsGroup.GET("", attractionsController.ListAttractions)
	attractionsGroup.GET("/:id", attractionsController.GetAttractionByID)
	attractionsGroup.POST("", middleware.JWTAuthMiddleware(), attractionsController.CreateAttraction)
	attractionsGroup.PUT("/:id", middleware.JWTAuthMiddleware(), attractionsController.UpdateAttraction)
	attractionsGroup.DELETE("/:id", middleware.JWTAuthMiddleware(), attractionsController.DeleteAttraction)

	r.GET("/my/attractions", middleware.JWTAuthMiddleware(), attractionsController.ListMine)

	adminGroup := r.Group("/admin", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	adminGroup.GET("/attractions/pending", attractionsController.ListPending)
	adminGroup.POST("/attractions/:id/approve", attractionsController.ApproveAttraction)

	categoriesGroup := r.Group("/categories")
	categoriesGroup.GET("", categoriesController.ListCategories)
	categoriesGroup.POST("", middleware.JWTAuthMiddleware(), categoriesController.CreateCategory)

	scheduleGroup := r.Group("/schedule", middleware.JWTAuthMiddleware())
	scheduleGroup.GET("", scheduleController.GetSchedule)
	scheduleGroup.PUT("/date-range", scheduleController.SetDateRange)
	scheduleGroup.PUT("/active-day", scheduleController.SetActiveDay)
	scheduleGroup.POST("/items", scheduleController.AddItem)
	scheduleGroup.DELETE("/items", scheduleController.RemoveItem)
	scheduleGroup.POST("/reset", scheduleController.ResetSchedule)

	tripsGroup := r.Group("/trips", middleware.JWTAuthMiddleware())
	tripsGroup.POST("", tripsController.SaveTrip)
	tripsGroup.GET("", tripsController.ListTrips)
	tripsGroup.GET("/:tripId", tripsController.GetTripDetails)
	tripsGroup.POST("/:tripId/restore", tripsController.RestoreTrip)
	tripsGroup.DELETE("/:tripId", tripsController.DeleteTrip)
}
