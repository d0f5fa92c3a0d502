package charge

import (
	"github.com/aurelia-jewels/aurelia/internal/charge/repository"
	"github.com/aurelia-jewels/aurelia/internal/charge/service"
	"go.uber.org/fx"
)

var Module = fx.Module("charge.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
