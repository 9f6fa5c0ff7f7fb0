package bot

import (
	"fmt"
	"log/slog"

	telebot "gopkg.in/telebot.v3"

	"github.com/raolabs/raobot/internal/access"
	"github.com/raolabs/raobot/internal/apperrors"
	"github.com/raolabs/raobot/internal/bot/handlers"
	"github.com/raolabs/raobot/internal/bot/keyboard"
	"github.com/raolabs/raobot/internal/idempotency"
	"github.com/raolabs/raobot/internal/middleware"
	"github.com/raolabs/raobot/pkg/config"
)

// Bot wraps telebot.Bot with the routing and middleware stack.
type Bot struct {
	telebot            *telebot.Bot
	log                *slog.Logger
	cfg                config.Config
	router             *Router
	deps               *handlers.Deps
	errHandler         *apperrors.Handler
	rateLimitMw        *middleware.RateLimitMiddleware
	idempotencyManager idempotency.Manager
}

// New builds a telegram bot instance configured according to the application
// settings. The join-gate membership checker is wired here because it needs
// the live Telegram connection.
func New(
	cfg config.Config,
	log *slog.Logger,
	deps *handlers.Deps,
	idempotencyManager idempotency.Manager,
	rateLimitMw *middleware.RateLimitMiddleware,
) (*Bot, error) {
	settings := telebot.Settings{
		Token: cfg.Bot.Token,
	}

	if cfg.Bot.Mode == "webhook" {
		settings.Poller = &telebot.Webhook{
			Listen: cfg.Server.Port,
		}
	} else {
		settings.Poller = &telebot.LongPoller{
			Timeout: cfg.Bot.Timeout,
		}
	}

	tb, err := telebot.NewBot(settings)
	if err != nil {
		return nil, fmt.Errorf("initialize telebot: %w", err)
	}

	if deps.Keyboard == nil {
		deps.Keyboard = keyboard.NewBuilder(log)
	}

	deps.Gate = access.NewGatekeeper(
		deps.Settings,
		deps.Bans,
		deps.Users,
		NewMembershipChecker(tb),
		cfg.Owner.ID,
		log,
	)

	b := &Bot{
		telebot:            tb,
		log:                log,
		cfg:                cfg,
		router:             NewRouter(log),
		deps:               deps,
		errHandler:         apperrors.NewHandler(log, cfg.Sentry.Enabled),
		rateLimitMw:        rateLimitMw,
		idempotencyManager: idempotencyManager,
	}

	b.setupRouter()

	if b.rateLimitMw != nil {
		b.telebot.Use(b.rateLimitMw.Handle)
	}

	b.registerTelebotHandlers()

	if err := tb.SetCommands(BotCommands()); err != nil {
		log.Warn("failed to register command menu", slog.Any("error", err))
	}

	return b, nil
}

// Start runs the telegram bot event loop.
func (b *Bot) Start() {
	if b.telebot != nil {
		b.telebot.Start()
	}
}

// Stop gracefully stops the telegram bot.
func (b *Bot) Stop() {
	if b.telebot == nil {
		return
	}

	b.log.Info("stopping telegram bot...")
	b.telebot.Stop()
}

// Telebot exposes the underlying telebot.Bot instance for integrations such
// as health checks.
func (b *Bot) Telebot() *telebot.Bot {
	return b.telebot
}

func (b *Bot) setupRouter() {
	d := b.deps

	b.router.Use(RecoveryMiddleware(b.log, b.errHandler))
	b.router.Use(middleware.Idempotency(b.idempotencyManager, b.log))
	b.router.Use(ErrorHandlingMiddleware(b.errHandler))
	b.router.Use(LoggingMiddleware(b.log))
	b.router.Use(UsernameCaptureMiddleware(d.Names))
	b.router.Use(ProfileMiddleware(d.Users, b.log))
	b.router.Use(middleware.Metrics)

	b.router.RegisterCommand(CommandStart, handlers.NewStartHandler(d))
	b.router.RegisterCommand(CommandGen, b.flood("gen", handlers.NewGenHandler(d)))
	b.router.RegisterCommand(CommandStyle, handlers.NewStyleHandler(d))
	b.router.RegisterCommand(CommandModel, handlers.NewModelHandler(d))
	b.router.RegisterCommand(CommandRandomStyle, handlers.NewRandomStyleHandler(d))
	b.router.RegisterCommand(CommandRandom, b.flood("gen", handlers.NewRandomHandler(d)))
	b.router.RegisterCommand(CommandEnhance, handlers.NewEnhanceHandler(d))
	b.router.RegisterCommand(CommandTTS, b.flood("tts", handlers.NewTTSHandler(d)))
	b.router.RegisterCommand(CommandVoices, handlers.NewVoicesHandler(d))
	b.router.RegisterCommand(CommandVoice, handlers.NewVoiceHandler(d))
	b.router.RegisterCommand(CommandSearch, b.flood("search", handlers.NewSearchHandler(d)))
	b.router.RegisterCommand(CommandHistory, handlers.NewHistoryHandler(d))
	b.router.RegisterCommand(CommandCurrent, handlers.NewCurrentHandler(d))
	b.router.RegisterCommand(CommandPing, handlers.NewPingHandler(d))
	b.router.RegisterCommand(CommandHelp, handlers.NewHelpHandler(d))
	b.router.RegisterCommand(CommandID, handlers.NewIDHandler(d))
	b.router.RegisterCommand(CommandUID, handlers.NewUIDHandler(d))
	b.router.RegisterCommand(CommandWordGame, handlers.NewWordGameHandler(d))

	b.router.RegisterCallback(keyboard.CallbackNoop, handlers.NewNoopCallback())
	b.router.RegisterCallback(keyboard.CallbackBackMain, handlers.NewBackMainCallback(d))
	b.router.RegisterCallback(keyboard.CallbackMenuHelp, handlers.NewMenuHelpCallback(d))
	b.router.RegisterCallback(keyboard.CallbackMenuHistory, handlers.NewMenuHistoryCallback(d))
	b.router.RegisterCallback(keyboard.CallbackMenuCurrent, handlers.NewMenuCurrentCallback(d))
	b.router.RegisterCallback(keyboard.CallbackMenuStyle, handlers.NewMenuStyleCallback(d))
	b.router.RegisterCallback(keyboard.CallbackMenuModel, handlers.NewMenuModelCallback(d))
	b.router.RegisterCallback(keyboard.CallbackToggleEnhance, handlers.NewToggleEnhanceCallback(d))
	b.router.RegisterCallback(keyboard.CallbackGenAsk, handlers.NewGenAskCallback(d))
	b.router.RegisterCallback(keyboard.CallbackTTSAsk, handlers.NewTTSAskCallback(d))
	b.router.RegisterCallback(keyboard.CallbackSearchAsk, handlers.NewSearchAskCallback(d))
	b.router.RegisterCallback(keyboard.CallbackGateRecheck, handlers.NewGateRecheckCallback(d))
	b.router.RegisterCallback(keyboard.CallbackGameStart, handlers.NewGameStartCallback(d))
	b.router.RegisterCallback(keyboard.CallbackGameShow, handlers.NewGameShowCallback(d))
	b.router.RegisterCallback(keyboard.CallbackRandStyle, handlers.NewRandStyleCallback(d))

	b.router.RegisterCallback(keyboard.ActionSetStyle+":", handlers.NewSetStyleCallback(d))
	b.router.RegisterCallback(keyboard.ActionStylePage+":", handlers.NewStylePageCallback(d))
	b.router.RegisterCallback(keyboard.ActionSetModel+":", handlers.NewSetModelCallback(d))
	b.router.RegisterCallback(keyboard.OwnerPrefix+":", handlers.NewOwnerCallback(d))

	b.router.SetDefault(handlers.NewOwnerTextHandler(d))
}

// flood applies the per-command flood limit on top of the per-user one.
func (b *Bot) flood(command string, h handlers.Handler) handlers.Handler {
	if b.rateLimitMw == nil {
		return h
	}

	wrapped := b.rateLimitMw.ForCommand(command)(telebot.HandlerFunc(h))
	return handlers.Handler(wrapped)
}

func (b *Bot) registerTelebotHandlers() {
	if b.telebot == nil || b.router == nil {
		return
	}

	b.telebot.Handle(telebot.OnText, b.router.Route)
	b.telebot.Handle(telebot.OnCallback, b.router.Route)
}
