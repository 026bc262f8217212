package main

import (
	"minigrep/internal/config"
	"minigrep/internal/di"
	"minigrep/internal/logger"
	"minigrep/internal/web"

	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		fx.Provide(
			config.MustLoad,
			logger.ProvideLogger,
			web.NewSearchHandler,
			di.NewRouter,
		),

		fx.Invoke(
			di.StartHttpServer,
		),
	)
	app.Run()
}
