package pt_payment_fx

import (
	"fitple/internal/config"
	"fitple/internal/repositories"
	"fitple/internal/services"
	"go.uber.org/fx"
)

var Module = fx.Provide(
	repositories.NewPtInformationRepository,
	repositories.NewPtPaymentRepository,
	repositories.NewUserPtRepository,
	services.NewStubApprovalGateway,
	providePtPaymentConfig,
	services.NewPtPaymentService,
)

func providePtPaymentConfig(cfg *config.Config) services.PtPaymentConfig {
	return services.PtPaymentConfig{
		MaxApprovalAttempts: cfg.Payment.ApprovalMaxAttempts,
		FailurePolicy:       services.FailurePolicy(cfg.Payment.FailurePolicy),
	}
}
