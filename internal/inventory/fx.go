package inventory

import (
	"github.com/aurelia-jewels/aurelia/internal/inventory/service"
	"go.uber.org/fx"
)

var Module = fx.Module("inventory.service",
	fx.Provide(service.New),
)
