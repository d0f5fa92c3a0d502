package goldrate

import (
	"github.com/aurelia-jewels/aurelia/internal/goldrate/repository"
	"github.com/aurelia-jewels/aurelia/internal/goldrate/service"
	"go.uber.org/fx"
)

var Module = fx.Module("goldrate.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
