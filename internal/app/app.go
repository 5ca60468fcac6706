package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/courtscan/internal/config"
	"github.com/MrSnakeDoc/courtscan/internal/dayservice"
	"github.com/MrSnakeDoc/courtscan/internal/fetch"
	"github.com/MrSnakeDoc/courtscan/internal/httpserver"
	"github.com/MrSnakeDoc/courtscan/internal/httpserver/deps"
	"github.com/MrSnakeDoc/courtscan/internal/index"
	"github.com/MrSnakeDoc/courtscan/internal/logger"
	"github.com/MrSnakeDoc/courtscan/internal/metrics"
	"github.com/MrSnakeDoc/courtscan/internal/redis"
	"github.com/MrSnakeDoc/courtscan/internal/scanner"
	"github.com/MrSnakeDoc/courtscan/internal/scheduler"
	"github.com/MrSnakeDoc/courtscan/internal/store"
	memorystore "github.com/MrSnakeDoc/courtscan/internal/store/memory"
	redisstore "github.com/MrSnakeDoc/courtscan/internal/store/redis"
	"github.com/MrSnakeDoc/courtscan/internal/upstream"
	"github.com/MrSnakeDoc/courtscan/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	venueIndex  *index.VenueIndex
	reloader    *scheduler.VenueReloader
	scan        *scanner.Scanner
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Cache backend: redis when configured, in-memory otherwise.
	var (
		cache        store.Cache
		redisClient  *goredis.Client
		cacheBackend string
	)
	if cfg.RedisAddr != "" {
		client, err := redis.New(redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			RedisDB:        cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		if err != nil {
			loggerClient.Errorf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		redisClient = client
		cache = redisstore.NewStore(client)
		cacheBackend = "redis"
	} else {
		cache = memorystore.New()
		cacheBackend = "memory"
	}
	loggerClient.Info("cache backend initialized",
		logger.String("backend", cacheBackend),
		logger.Duration("ttl", cfg.CacheTTL))

	m := metrics.New("courtscan")

	// Venue index + file reloader
	venueIndex := index.NewVenueIndex()
	reloadTrigger := make(chan struct{}, 1)
	reloader := scheduler.NewVenueReloader(
		cfg.VenueFile,
		venueIndex,
		loggerClient,
		cfg.ReloadInterval,
		reloadTrigger,
	)

	// Proxy/cache core in front of the upstream gateway
	gateway := upstream.New(cfg.UpstreamURL, cfg.UpstreamTimeout)
	dayService := dayservice.New(cache, gateway, cfg.CacheTTL, loggerClient, m)

	// Scan orchestrator, driven through the day endpoint
	fetcher := fetch.New(cfg.DayEndpoint, cfg.UpstreamTimeout+5*time.Second)
	scan := scanner.New(fetcher, venueIndex, loggerClient, m, scanner.Options{
		ItemDelay:  cfg.ItemDelay,
		RetryDelay: cfg.RetryDelay,
	})

	d := deps.Deps{
		Logger:        loggerClient,
		StartTime:     time.Now(),
		Version:       version.Version,
		Commit:        version.Commit,
		BuildDate:     version.BuildDate,
		GoVersion:     version.GoVersion,
		DayService:    dayService,
		Scanner:       scan,
		VenueIndex:    venueIndex,
		RedisClient:   redisClient,
		CacheBackend:  cacheBackend,
		ReloadTrigger: reloadTrigger,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		venueIndex:  venueIndex,
		reloader:    reloader,
		scan:        scan,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting courtscan v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("courtscan %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start venue reloader (loads venues and starts periodic refresh)
	if err := a.reloader.Start(ctx); err != nil {
		return fmt.Errorf("failed to start venue reloader: %w", err)
	}
	a.logger.Info("venue reloader started",
		logger.Duration("interval", a.cfg.ReloadInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	// Stop background work before the server drains
	a.scan.Cancel()
	a.reloader.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ courtscan stopped cleanly")
	return nil
}
