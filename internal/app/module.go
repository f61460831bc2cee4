// Package app wires the post screen's components together with fx.
package app

import (
	"context"
	"net/http"

	"github.com/matheus3301/posts/internal/bus"
	"github.com/matheus3301/posts/internal/config"
	"github.com/matheus3301/posts/internal/lock"
	"github.com/matheus3301/posts/internal/logging"
	"github.com/matheus3301/posts/internal/posts"
	"github.com/matheus3301/posts/internal/profile"
	"github.com/matheus3301/posts/internal/querystore"
	"github.com/matheus3301/posts/internal/screen"
	"github.com/matheus3301/posts/internal/store"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// Params holds the resolved profile and configuration passed to the module.
type Params struct {
	Profile string
	Binary  string // names the lock owner and the log file
	Config  *config.Config
	// Console tees logs to stderr. Leave it off when a TUI owns the terminal.
	Console bool
	// NoSkeleton skips the skeleton dwell regardless of configuration.
	NoSkeleton bool
	// HTTPClient overrides the client used for fetches; nil uses http.DefaultClient.
	HTTPClient *http.Client
}

// Module returns the fx module composing all providers and lifecycle hooks.
func Module(p Params) fx.Option {
	if p.Config == nil {
		p.Config = config.Defaults()
	}
	return fx.Module("posts",
		fx.Supply(p),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		fx.Provide(
			provideLogger,
			provideBus,
			provideLock,
			provideStore,
			provideQueryStore,
			providePersister,
			provideFetcher,
			provideController,
		),
		fx.Invoke(registerLifecycle),
	)
}

func provideLogger(p Params) (*zap.Logger, error) {
	if err := profile.EnsureDir(p.Profile); err != nil {
		return nil, err
	}
	return logging.New(profile.LogPath(p.Profile, p.Binary), logging.Options{
		Profile: p.Profile,
		Level:   p.Config.LogLevel,
		Console: p.Console,
	})
}

func provideBus() *bus.Bus {
	return bus.New()
}

func provideLock(p Params, logger *zap.Logger) (*lock.Lock, error) {
	logger.Info("acquiring profile lock", zap.String("profile", p.Profile))
	l, err := lock.Acquire(profile.Dir(p.Profile), p.Binary)
	if err != nil {
		return nil, err
	}
	logger.Info("profile lock acquired")
	return l, nil
}

// provideStore takes the lock as a dependency so the database is only
// opened by the lock holder.
func provideStore(p Params, _ *lock.Lock, logger *zap.Logger) (*store.DB, error) {
	dbPath := profile.DBPath(p.Profile)
	db, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}
	result, err := db.Migrate()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if result.Changed {
		logger.Info("migrations applied", zap.Uint("version", result.Version))
	} else {
		logger.Debug("migrations up to date", zap.Uint("version", result.Version))
	}
	logger.Info("store initialized", zap.String("path", dbPath))
	return db, nil
}

func provideQueryStore(p Params, db *store.DB) *querystore.Store {
	return querystore.New(db, p.Config.StorageKey)
}

func providePersister(qs *querystore.Store, b *bus.Bus, logger *zap.Logger) *querystore.Persister {
	return querystore.NewPersister(qs, b, logger.Named("persister"))
}

func provideFetcher(p Params, logger *zap.Logger) *posts.HTTPFetcher {
	return posts.NewHTTPFetcher(p.Config.Endpoint, p.HTTPClient, logger.Named("fetcher"))
}

func provideController(p Params, f *posts.HTTPFetcher, qs *querystore.Persister, b *bus.Bus, logger *zap.Logger) (*screen.Controller, error) {
	dwell, err := p.Config.Dwell()
	if err != nil {
		return nil, err
	}
	if p.NoSkeleton {
		dwell = 0
	}
	return screen.NewController(f, qs, screen.Options{
		Dwell:  dwell,
		Bus:    b,
		Logger: logger.Named("screen"),
	}), nil
}

func registerLifecycle(lc fx.Lifecycle, lk *lock.Lock, db *store.DB, persister *querystore.Persister, ctrl *screen.Controller, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			persister.Start(context.Background())
			return nil
		},
		OnStop: func(_ context.Context) error {
			ctrl.Close()
			ctrl.Wait()
			persister.Stop()
			if err := db.Close(); err != nil {
				logger.Warn("error closing store", zap.Error(err))
			}
			if err := lk.Release(); err != nil {
				logger.Warn("error releasing lock", zap.Error(err))
			}
			logger.Info("stopped")
			_ = logger.Sync()
			return nil
		},
	})
}
