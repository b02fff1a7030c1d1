package controllers_fx

import (
	"fitple/internal/api/controllers"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewUserController),
	fx.Provide(controllers.NewOwnerController),
	fx.Provide(controllers.NewTrainerController),
	fx.Provide(controllers.NewStoreController),
	fx.Provide(controllers.NewPtPaymentController),
	fx.Provide(controllers.NewPtPaymentFlowController))
