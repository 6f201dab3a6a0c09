package attractions_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gotham/internal/repositories"
	"gotham/internal/services"
)

var Module = fx.Provide(provideAttractionRepo, provideAttractionService)

func provideAttractionRepo(db *gorm.DB) repositories.AttractionRepository {
	return repositories.NewAttractionRepository(db)
}

func provideAttractionService(
	attractionRepo repositories.AttractionRepository,
	categoryRepo repositories.CategoryRepositoryInterface,
	userRepo repositories.UserRepository,
) services.AttractionServiceInterface {
	return services.NewAttractionService(attractionRepo, categoryRepo, userRepo)
}
