package daemon

import (
	"context"
	"fmt"
	"os"

	"github.com/matheus3301/wppsearch/internal/api"
	"github.com/matheus3301/wppsearch/internal/bus"
	"github.com/matheus3301/wppsearch/internal/config"
	"github.com/matheus3301/wppsearch/internal/lock"
	"github.com/matheus3301/wppsearch/internal/logging"
	"github.com/matheus3301/wppsearch/internal/registry"
	"github.com/matheus3301/wppsearch/internal/scheduler"
	"github.com/matheus3301/wppsearch/internal/search"
	"github.com/matheus3301/wppsearch/internal/session"
	"github.com/matheus3301/wppsearch/internal/store"
	intsync "github.com/matheus3301/wppsearch/internal/sync"
	"github.com/matheus3301/wppsearch/internal/wa"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Params holds the resolved session configuration passed to the fx module.
type Params struct {
	SessionName string
	SocketPath  string // optional override for testing; empty = use default
	ConfigPath  string // optional override; empty = ~/.wpp/config.toml
}

// Module returns the fx module for the daemon, composing all providers and lifecycle hooks.
func Module(p Params) fx.Option {
	return fx.Module("daemon",
		fx.Supply(p),
		fx.Provide(
			provideConfig,
			provideLogger,
			provideBus,
			provideLock,
			provideStore,
			provideRegistry,
			provideSearcher,
			provideAdapter,
			provideEventHandler,
			provideSyncEngine,
			provideScheduler,
			provideSearchService,
			provideSessionService,
			NewServer,
		),
		fx.Invoke(registerLifecycle),
	)
}

func provideConfig(p Params) (*config.Config, error) {
	path := p.ConfigPath
	if path == "" {
		path = session.ConfigPath()
	}
	return config.LoadOrDefault(path)
}

func provideLogger(p Params, cfg *config.Config) (*zap.Logger, error) {
	return logging.New(logging.Options{
		Path:    session.LogPath(p.SessionName),
		Session: p.SessionName,
		Level:   cfg.Log.Level,
		Console: os.Stderr,
	})
}

func provideBus() *bus.Bus {
	return bus.New()
}

func provideLock(p Params, logger *zap.Logger) (*lock.Lock, error) {
	if err := session.EnsureDir(p.SessionName); err != nil {
		return nil, err
	}
	logger.Info("acquiring session lock", zap.String("session", p.SessionName))
	l, err := lock.Acquire(session.Dir(p.SessionName))
	if err != nil {
		return nil, err
	}
	logger.Info("session lock acquired")
	return l, nil
}

// provideStore depends on the lock so the database is never opened by two daemons.
func provideStore(p Params, cfg *config.Config, _ *lock.Lock, logger *zap.Logger) (*store.DB, error) {
	dbPath := session.StoreDBPath(p.SessionName)
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
		logger.Info("migrations up to date", zap.Uint("version", result.Version))
	}
	db.SetSearchLimit(cfg.Search.ResultLimit)
	logger.Info("store initialized", zap.String("path", dbPath), zap.Int("result_limit", cfg.Search.ResultLimit))
	return db, nil
}

func provideRegistry(db *store.DB, logger *zap.Logger) (*registry.Registry, error) {
	reg := registry.New(logger.Named("registry"))
	if err := reg.Load(context.Background(), db); err != nil {
		return nil, fmt.Errorf("load registry: %w", err)
	}
	return reg, nil
}

func provideSearcher(db *store.DB, reg *registry.Registry, logger *zap.Logger) *search.Searcher {
	return search.New(search.DBStore(db), reg, logger.Named("search"))
}

func provideAdapter(p Params, _ *lock.Lock, b *bus.Bus, logger *zap.Logger) (*wa.Adapter, error) {
	return wa.NewAdapter(context.Background(), session.SessionDBPath(p.SessionName), b, logger.Named("wa"))
}

func provideEventHandler(b *bus.Bus, adapter *wa.Adapter, logger *zap.Logger) *wa.EventHandler {
	return wa.NewEventHandler(b, adapter, adapter, logger.Named("wa"))
}

func provideSyncEngine(db *store.DB, reg *registry.Registry, b *bus.Bus, logger *zap.Logger) *intsync.Engine {
	return intsync.NewEngine(db, reg, b, logger.Named("sync"))
}

// provideScheduler returns nil when maintenance is disabled.
func provideScheduler(cfg *config.Config, db *store.DB, logger *zap.Logger) (*scheduler.Scheduler, error) {
	expr := cfg.Maintenance.OptimizeSchedule
	if expr == "off" {
		return nil, nil
	}
	return scheduler.New("optimize_index", expr, func(context.Context) error {
		return db.OptimizeIndex()
	}, logger.Named("scheduler"))
}

func provideSearchService(s *search.Searcher, b *bus.Bus, logger *zap.Logger) *api.SearchService {
	return api.NewSearchService(s, b, logger.Named("api"))
}

func provideSessionService(
	p Params,
	h *wa.EventHandler,
	adapter *wa.Adapter,
	db *store.DB,
	reg *registry.Registry,
	engine *intsync.Engine,
	s *search.Searcher,
	b *bus.Bus,
	sched *scheduler.Scheduler,
) *api.SessionService {
	deps := api.SessionDeps{
		Conn:     h,
		Self:     adapter,
		DB:       db,
		Registry: reg,
		Archiver: engine,
		Searcher: s,
		Events:   b,
	}
	// sched is nil when maintenance is off.
	if sched != nil {
		deps.Maintenance = sched
	}
	return api.NewSessionService(p.SessionName, deps)
}

func registerLifecycle(
	lc fx.Lifecycle,
	srv *Server,
	lk *lock.Lock,
	db *store.DB,
	adapter *wa.Adapter,
	handler *wa.EventHandler,
	engine *intsync.Engine,
	searcher *search.Searcher,
	sched *scheduler.Scheduler,
	logger *zap.Logger,
) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			// Start sync engine (subscribes to wa.* bus events).
			engine.Start(ctx)

			adapter.RegisterEventHandler(handler.Handle)

			// Start gRPC server in background.
			go func() {
				if err := srv.Start(); err != nil {
					logger.Error("gRPC server error", zap.Error(err))
				}
			}()

			if sched != nil {
				sched.Start()
			}

			if adapter.IsLoggedIn() {
				go func() {
					if err := adapter.Connect(); err != nil {
						logger.Error("auto-connect failed", zap.Error(err))
					}
				}()
				return nil
			}

			logger.Info("no credentials found, starting pairing")
			events, err := adapter.StartPairing(ctx)
			if err != nil {
				return fmt.Errorf("start pairing: %w", err)
			}
			go printPairing(events, logger)
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			if sched != nil {
				sched.Stop()
			}
			searcher.CancelRunningTasks()
			searcher.Close()
			if !awaitDone(stopCtx, searcher.Done()) {
				logger.Warn("search worker still running at shutdown")
			}
			engine.Stop()
			if err := adapter.Close(); err != nil {
				logger.Warn("error closing session store", zap.Error(err))
			}
			srv.Stop(stopCtx)
			if err := db.Close(); err != nil {
				logger.Warn("error closing store", zap.Error(err))
			}
			if err := lk.Release(); err != nil {
				logger.Warn("error releasing lock", zap.Error(err))
			}
			logger.Info("daemon stopped")
			_ = logger.Sync()
			return nil
		},
	})
}

// awaitDone blocks until done is closed or ctx ends. It reports whether done
// was closed.
func awaitDone(ctx context.Context, done <-chan struct{}) bool {
	select {
	case <-done:
		return true
	case <-ctx.Done():
		return false
	}
}
