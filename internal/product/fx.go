package product

import (
	"github.com/aurelia-jewels/aurelia/internal/product/repository"
	"github.com/aurelia-jewels/aurelia/internal/product/service"
	"go.uber.org/fx"
)

var Module = fx.Module("product.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
