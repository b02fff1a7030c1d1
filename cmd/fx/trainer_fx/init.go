package trainer_fx

import (
	"fitple/internal/repositories"
	"fitple/internal/services"
	"go.uber.org/fx"
)

var Module = fx.Provide(
	repositories.NewTrainerRepository,
	services.NewTrainerService)
