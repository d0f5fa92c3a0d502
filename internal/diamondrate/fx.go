package diamondrate

import (
	"github.com/aurelia-jewels/aurelia/internal/diamondrate/repository"
	"github.com/aurelia-jewels/aurelia/internal/diamondrate/service"
	"go.uber.org/fx"
)

var Module = fx.Module("diamondrate.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
