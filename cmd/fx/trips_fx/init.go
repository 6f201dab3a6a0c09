package trips_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gotham/internal/repositories"
	"gotham/internal/services"
)

var Module = fx.Provide(provideTripRepo, provideTripService)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(
	tripRepo repositories.TripRepository,
	attractionRepo repositories.AttractionRepository,
	userRepo repositories.UserRepository,
	log *zap.Logger,
) services.TripServiceInterface {
	return services.NewTripService(tripRepo, attractionRepo, userRepo, log)
}
