package app

import (
	"github.com/matheus3301/posts/internal/bus"
	"github.com/matheus3301/posts/internal/posts"
	"github.com/matheus3301/posts/internal/screen"
	"github.com/matheus3301/posts/internal/tui"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// TUI adds the terminal front end on top of Module.
func TUI() fx.Option {
	return fx.Provide(provideTUI)
}

func provideTUI(p Params, f *posts.HTTPFetcher, ctrl *screen.Controller, b *bus.Bus, logger *zap.Logger) *tui.App {
	return tui.NewApp(tui.Options{
		Controller: ctrl,
		Bus:        b,
		Logger:     logger.Named("tui"),
		Profile:    p.Profile,
		Endpoint:   f.Endpoint(),
	})
}
