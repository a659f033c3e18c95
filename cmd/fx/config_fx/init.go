package config_fx

import (
	"go.uber.org/fx"

	"github.com/yifan996/Itinerary/internal/config"
)

var Module = fx.Provide(config.Load)
