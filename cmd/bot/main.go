package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	sentry "github.com/getsentry/sentry-go"

	"github.com/raolabs/raobot/internal/bot"
	"github.com/raolabs/raobot/internal/bot/handlers"
	"github.com/raolabs/raobot/internal/clients"
	"github.com/raolabs/raobot/internal/flow"
	"github.com/raolabs/raobot/internal/game"
	"github.com/raolabs/raobot/internal/health"
	"github.com/raolabs/raobot/internal/idempotency"
	"github.com/raolabs/raobot/internal/lifecycle"
	"github.com/raolabs/raobot/internal/middleware"
	"github.com/raolabs/raobot/internal/ratelimit"
	"github.com/raolabs/raobot/internal/storage"
	"github.com/raolabs/raobot/internal/styles"
	"github.com/raolabs/raobot/internal/texts"
	"github.com/raolabs/raobot/internal/user"
	"github.com/raolabs/raobot/internal/usercache"
	"github.com/raolabs/raobot/pkg/config"
	"github.com/raolabs/raobot/pkg/graceful"
	"github.com/raolabs/raobot/pkg/logger"
	"github.com/raolabs/raobot/pkg/metrics"
	redisx "github.com/raolabs/raobot/pkg/redis"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, v, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:         cfg.Log.Level,
		Format:        cfg.Log.Format,
		File:          cfg.Log.File,
		MaxSizeMB:     cfg.Log.MaxSizeMB,
		MaxBackups:    cfg.Log.MaxBackups,
		MaxAgeDays:    cfg.Log.MaxAgeDays,
		SentryEnabled: cfg.Sentry.Enabled,
	})
	slog.SetDefault(log)

	if cfg.Sentry.Enabled {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.AppEnv,
		}); err != nil {
			log.Warn("sentry init failed, continuing without it", slog.Any("error", err))
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	log.Info("starting raobot",
		slog.String("env", cfg.AppEnv),
		slog.String("mode", cfg.Bot.Mode),
		slog.String("data_dir", cfg.Data.Dir),
	)

	store, err := storage.NewStore(cfg.Data.Dir, log)
	if err != nil {
		log.Error("failed to open data directory", slog.Any("error", err))
		os.Exit(1)
	}

	settingsRepo, err := storage.NewSettingsRepository(store, log)
	if err != nil {
		log.Error("failed to load settings", slog.Any("error", err))
		os.Exit(1)
	}
	usersRepo, err := storage.NewUserRepository(store, log)
	if err != nil {
		log.Error("failed to load users", slog.Any("error", err))
		os.Exit(1)
	}
	bansRepo, err := storage.NewBanRepository(store, log)
	if err != nil {
		log.Error("failed to load ban list", slog.Any("error", err))
		os.Exit(1)
	}
	styleCacheRepo, err := storage.NewStyleCacheRepository(store, log)
	if err != nil {
		log.Error("failed to load style cache", slog.Any("error", err))
		os.Exit(1)
	}
	namesRepo, err := storage.NewUsernameRepository(store, log)
	if err != nil {
		log.Error("failed to load username cache", slog.Any("error", err))
		os.Exit(1)
	}

	txt, err := texts.LoadFromDir(filepath.Join(cfg.Data.Dir, "texts"))
	if err != nil {
		log.Error("failed to load text overrides", slog.Any("error", err))
		os.Exit(1)
	}

	userSvc := user.NewService(usersRepo, settingsRepo, log)
	names := usercache.NewCache(namesRepo, log)
	gameSvc := game.NewService(userSvc, log)

	imageClient := clients.NewImageClient(cfg.APIs.ImageURL, log)
	ttsClient := clients.NewTTSClient(cfg.APIs.TTSURL, log)
	searchClient := clients.NewSearchClient(cfg.APIs.SearchURL, log)
	stylesClient := clients.NewStylesClient(cfg.APIs.StylesURL, log)
	styleCatalog := styles.NewCatalog(styleCacheRepo, stylesClient, log)

	var redisClient *redisx.Client
	if cfg.Redis.Enabled {
		redisClient, err = redisx.New(ctx, redisx.Config{
			Addr:         cfg.Redis.Addr,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			PoolTimeout:  cfg.Redis.PoolTimeout,
			IdleTimeout:  cfg.Redis.IdleTimeout,
			MaxRetries:   cfg.Redis.MaxRetries,
		})
		if err != nil {
			log.Warn("redis unavailable, falling back to in-memory backends", slog.Any("error", err))
			redisClient = nil
		}
	}

	var flowStorage flow.Storage
	var idemStore idempotency.Store
	if redisClient != nil {
		flowStorage = flow.NewRedisStorage(redisClient.Client, log)
		idemStore = idempotency.NewRedisStore(redisClient.Client, log)
	} else {
		flowStorage = flow.NewMemoryStorage()
		idemStore = idempotency.NewMemoryStore()
	}
	flowMachine := flow.NewMachine(flowStorage, log)
	flow.RegisterStepRecorder(metrics.RecordOwnerFlow)
	idemManager := idempotency.NewManager(idemStore, log)

	var rateLimitMw *middleware.RateLimitMiddleware
	if cfg.RateLimit.Enabled {
		// The owner always bypasses the flood limiter.
		cfg.RateLimit.Whitelist = append(cfg.RateLimit.Whitelist, cfg.Owner.ID)
		rules := ratelimit.NewRules(cfg.RateLimit)
		memLimiter := ratelimit.NewMemoryLimiter(log)
		go memLimiter.Janitor(ctx, time.Hour)
		var limiter ratelimit.Limiter = memLimiter
		if redisClient != nil {
			limiter = ratelimit.NewAdaptiveLimiter(
				ratelimit.NewRedisLimiter(redisClient.Client, log),
				memLimiter,
				log,
			)
		}
		rateLimitMw = middleware.NewRateLimitMiddleware(limiter, rules, log)
	}

	if redisClient != nil {
		go ratelimit.NewCleaner(redisClient.Client, log, time.Hour).Run(ctx)
		go idempotency.NewCleaner(redisClient.Client, log, time.Hour).Run(ctx)
	}

	deps := &handlers.Deps{
		Log:      log,
		Texts:    txt,
		Users:    userSvc,
		Settings: settingsRepo,
		Bans:     bansRepo,
		Flow:     flowMachine,
		Styles:   styleCatalog,
		Game:     gameSvc,
		Names:    names,
		Images:   imageClient,
		TTS:      ttsClient,
		Search:   searchClient,
		BotName:  cfg.Bot.Name,
		OwnerID:  cfg.Owner.ID,
		Owner: texts.OwnerInfo{
			Name:     cfg.Owner.Name,
			Username: cfg.Owner.Username,
			Link:     cfg.Owner.Link,
			Bio:      cfg.Owner.Bio,
		},
		StartedAt: time.Now(),
	}

	b, err := bot.New(*cfg, log, deps, idemManager, rateLimitMw)
	if err != nil {
		log.Error("failed to initialize telegram bot", slog.Any("error", err))
		os.Exit(1)
	}

	checker := health.NewChecker(log)
	checker.AddCheck("storage", health.NewStorageChecker(store))
	checker.AddCheck("telegram", health.NewTelegramChecker(b.Telebot()))
	if redisClient != nil {
		checker.AddCheck("redis", health.NewRedisChecker(redisClient))
	}

	opsServer := graceful.NewServer(log, &http.Server{
		Addr:              cfg.Server.Port,
		Handler:           middleware.New(log)(graceful.NewOpsHandler(checker)),
		ReadHeaderTimeout: 5 * time.Second,
	}, cfg.Server.ShutdownTimeout)
	go func() {
		if err := opsServer.ListenAndServe(ctx); err != nil {
			log.Error("ops server stopped with error", slog.Any("error", err))
		}
	}()

	go metrics.NewGaugeCollector(usersRepo, bansRepo).Run(ctx)

	config.Watch(v, log, func(next config.Config) {
		logger.SetLevel(next.Log.Level)
		log.Info("configuration reloaded",
			slog.String("log_level", next.Log.Level),
			slog.String("note", "connection-level settings need a restart"),
		)
	})

	shutdown := lifecycle.NewShutdown(log)
	shutdown.Register("telegram", func(context.Context) error {
		b.Stop()
		return nil
	})
	if redisClient != nil {
		shutdown.Register("redis", func(context.Context) error {
			return redisClient.Close()
		})
	}

	go b.Start()
	log.Info("raobot is running", slog.String("ops_addr", cfg.Server.Port))

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := shutdown.Execute(shutdownCtx); err != nil {
		log.Error("shutdown finished with errors", slog.Any("error", err))
	}

	log.Info("raobot stopped")
}
