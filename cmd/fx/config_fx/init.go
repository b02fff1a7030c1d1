package config_fx

import (
	"fitple/internal/config"
	"go.uber.org/fx"
)

var Module = fx.Provide(config.Load)
