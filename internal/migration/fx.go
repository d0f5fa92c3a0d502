package migration

import (
	chargedomain "github.com/aurelia-jewels/aurelia/internal/charge/domain"
	"github.com/aurelia-jewels/aurelia/internal/config"
	diamondratedomain "github.com/aurelia-jewels/aurelia/internal/diamondrate/domain"
	goldratedomain "github.com/aurelia-jewels/aurelia/internal/goldrate/domain"
	productdomain "github.com/aurelia-jewels/aurelia/internal/product/domain"
	"github.com/aurelia-jewels/aurelia/internal/seed"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// mysql and sqlite installs lean on the model schema.
			if err := conn.AutoMigrate(
				&productdomain.Product{},
				&goldratedomain.GoldRate{},
				&diamondratedomain.DiamondRate{},
				&chargedomain.Charge{},
			); err != nil {
				return err
			}
		}

		return seed.EnsureDefaults(conn)
	}),
)
