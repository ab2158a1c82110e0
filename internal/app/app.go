package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/GlebRadaev/zearn/internal/cache"
	"github.com/GlebRadaev/zearn/internal/config"
	"github.com/GlebRadaev/zearn/internal/handlers"
	"github.com/GlebRadaev/zearn/internal/pg"
	"github.com/GlebRadaev/zearn/internal/repo"
	"github.com/GlebRadaev/zearn/internal/service"
	"github.com/GlebRadaev/zearn/internal/worker"
	"github.com/GlebRadaev/zearn/pkg/logger"
)

const refreshWorkers = 2

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg       *config.Config
	api       *handlers.Handlers
	srv       *service.Services
	repo      *repo.Repositories
	refresher *worker.Refresher
	redis     *redis.Client

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, cfg, a.leaderboardCache(ctx))
	if err := a.srv.SettingsService.Load(ctx); err != nil {
		return fmt.Errorf("can't load settings: %w", err)
	}
	a.api = handlers.New(a.srv)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startRefresher(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

// leaderboardCache returns nil when redis is not configured or unreachable;
// the leaderboard is then read straight from postgres.
func (a *Application) leaderboardCache(ctx context.Context) *cache.Leaderboard {
	if a.cfg.RedisAddress == "" {
		return nil
	}
	client := cache.NewRedisClient(a.cfg.RedisAddress, a.cfg.RedisPassword)
	if err := client.Ping(ctx).Err(); err != nil {
		zap.L().Warn("redis unavailable, leaderboard cache disabled", zap.String("address", a.cfg.RedisAddress), zap.Error(err))
		client.Close()
		return nil
	}
	a.redis = client
	return cache.NewLeaderboard(client, a.cfg.LeaderboardTTL)
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
		if a.redis != nil {
			a.redis.Close()
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) refreshJobs() []worker.Job {
	return []worker.Job{
		{
			Name: "settings",
			Run:  a.srv.SettingsService.Refresh,
		},
		{
			Name: "leaderboard",
			Run: func(ctx context.Context) error {
				_, err := a.srv.AccountService.RefreshLeaderboard(ctx)
				return err
			},
		},
	}
}

func (a *Application) startRefresher(ctx context.Context) {
	a.refresher = worker.NewRefresher(a.cfg.RefreshInterval, worker.NewWorkerPool(refreshWorkers), a.refreshJobs()...)
	a.refresher.Start(ctx)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-a.refresher.Done()
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
