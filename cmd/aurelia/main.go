package main

import (
	"github.com/aurelia-jewels/aurelia/internal/clock"
	"github.com/aurelia-jewels/aurelia/internal/config"
	"github.com/aurelia-jewels/aurelia/internal/migration"
	"github.com/aurelia-jewels/aurelia/internal/observability"
	"github.com/aurelia-jewels/aurelia/internal/server"
	"github.com/aurelia-jewels/aurelia/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
