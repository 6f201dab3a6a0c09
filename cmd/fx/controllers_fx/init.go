package controllers_fx

import (
	"go.uber.org/fx"

	"gotham/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAttractionsController),
	fx.Provide(controllers.NewCategoriesController),
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewScheduleController),
	fx.Provide(controllers.NewTripsController))
