package kafka_fx

import (
	"context"

	"fitple/internal/config"
	"fitple/internal/infra"
	"fitple/internal/services"
	"go.uber.org/fx"
)

var Module = fx.Provide(providePaymentEventPublisher)

func providePaymentEventPublisher(lc fx.Lifecycle, cfg *config.Config) services.PaymentEventPublisher {
	writer := infra.NewKafkaWriter(cfg)
	if writer == nil {
		return services.NewNoopPaymentEventPublisher()
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return writer.Close()
		},
	})
	return services.NewKafkaPaymentEventPublisher(writer)
}
