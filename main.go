package main

import (
	"context"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/handler"
	"github.com/sayuri-dev/cardfall/cardfall"
	"github.com/sayuri-dev/cardfall/cardfall/commands"
	"github.com/sayuri-dev/cardfall/cardfall/config"
	"github.com/sayuri-dev/cardfall/cardfall/database"
	"github.com/sayuri-dev/cardfall/cardfall/database/repositories"
	"github.com/sayuri-dev/cardfall/cardfall/economy/catching"
	"github.com/sayuri-dev/cardfall/cardfall/economy/cooldown"
	"github.com/sayuri-dev/cardfall/cardfall/economy/goals"
	"github.com/sayuri-dev/cardfall/cardfall/economy/ledger"
	"github.com/sayuri-dev/cardfall/cardfall/economy/progression"
	"github.com/sayuri-dev/cardfall/cardfall/economy/social"
	"github.com/sayuri-dev/cardfall/cardfall/economy/weekly"
	"github.com/sayuri-dev/cardfall/cardfall/handlers"
	"github.com/sayuri-dev/cardfall/cardfall/logger"
	"github.com/sayuri-dev/cardfall/cardfall/services"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	customHandler := logger.NewHandler()
	slog.SetDefault(slog.New(customHandler))

	slog.Info("Starting Cardfall",
		slog.String("version", version),
		slog.String("commit", commit))

	shouldSyncCommands := flag.Bool("sync-commands", false, "Whether to sync commands to discord")
	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	cfg, err := cardfall.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}
	slog.Info("Configuration loaded successfully")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dbStartTime := time.Now()
	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		slog.Error("Database connection failed",
			slog.String("error", err.Error()),
			slog.Duration("attempted_for", time.Since(dbStartTime)))
		os.Exit(-1)
	}
	defer db.Close()

	if err := db.InitializeSchema(ctx); err != nil {
		slog.Error("Failed to initialize database schema",
			slog.String("error", err.Error()))
		os.Exit(-1)
	}
	slog.Info("Database ready",
		slog.String("path", cfg.DB.Path),
		slog.Duration("took", time.Since(dbStartTime)))

	b := cardfall.New(*cfg, version, commit)
	b.DB = db

	b.UserRepository = repositories.NewUserRepository(db.BunDB())
	b.CardRepository = repositories.NewCardRepository(db.BunDB())
	b.UserCardRepository = repositories.NewUserCardRepository(db.BunDB())
	b.ItemRepository = repositories.NewItemRepository(db.BunDB())
	b.TransactionRepository = repositories.NewTransactionRepository(db.BunDB())
	b.WeeklyRepository = repositories.NewWeeklyRepository(db.BunDB())
	b.FriendRepository = repositories.NewFriendRepository(db.BunDB())
	b.GoalRepository = repositories.NewGoalRepository(db.BunDB())
	b.AdminRepository = repositories.NewAdminRepository(db.BunDB())

	b.Ledger = ledger.New(b.UserRepository, b.TransactionRepository, b.WeeklyRepository)
	b.Progression = progression.NewService(b.UserRepository, progression.Config{
		DailyBonusBase: cfg.Game.DailyBonusBase,
		StreakCap:      cfg.Game.MaxStreakMultiplier,
	})
	b.Catching = catching.NewService(
		b.CardRepository,
		b.UserCardRepository,
		b.UserRepository,
		b.ItemRepository,
		b.AdminRepository,
		rand.New(rand.NewSource(time.Now().UnixNano())),
	)
	b.Goals = goals.NewService(goals.NewRepository(
		b.GoalRepository,
		b.UserRepository,
		b.FriendRepository,
		b.UserCardRepository,
	))
	b.Social = social.NewService(b.UserRepository, b.FriendRepository, b.Ledger)
	b.Cooldowns = cooldown.NewManager(config.PendingActionTTL)
	b.Cooldowns.StartCleanupRoutine(context.Background())

	if cfg.Spaces.Key != "" {
		spacesService, err := services.NewSpacesService(
			cfg.Spaces.Key,
			cfg.Spaces.Secret,
			cfg.Spaces.Region,
			cfg.Spaces.Bucket,
			cfg.Spaces.CardRoot,
		)
		if err != nil {
			slog.Error("Failed to initialize Spaces service", slog.Any("error", err))
			os.Exit(-1)
		}
		b.SpacesService = spacesService
	} else {
		slog.Warn("Spaces not configured, card media will use attachment URLs")
	}

	weeklySvc := weekly.NewService(b.WeeklyRepository, b.Ledger, cfg.Game.WeeklyWinnerBonus)
	rolloverCtx, rolloverCancel := context.WithCancel(context.Background())
	defer rolloverCancel()
	go runWeeklyRollover(rolloverCtx, weeklySvc)

	h := handler.New()

	// Player commands
	h.Command("/profile", handlers.WrapWithLogging("profile", commands.ProfileHandler(b)))
	h.Command("/daily", handlers.WrapWithLogging("daily", commands.DailyHandler(b)))
	h.Command("/catch", handlers.WrapWithLogging("catch", commands.CatchHandler(b)))
	h.Command("/collection", handlers.WrapWithLogging("collection", commands.CollectionHandler(b)))
	h.Command("/favorite", handlers.WrapWithLogging("favorite", commands.FavoriteHandler(b)))

	// Shop
	h.Command("/shop", handlers.WrapWithLogging("shop", commands.ShopHandler(b)))
	h.Command("/buy", handlers.WrapWithLogging("buy", commands.BuyHandler(b)))
	h.Command("/inventory", handlers.WrapWithLogging("inventory", commands.InventoryHandler(b)))

	// Games
	h.Command("/slots", handlers.WrapWithLogging("slots", commands.SlotsHandler(b)))
	h.Command("/basket", handlers.WrapWithLogging("basket", commands.BasketHandler(b)))
	h.Command("/wheel", handlers.WrapWithLogging("wheel", commands.WheelHandler(b)))

	// Social
	h.Command("/give", handlers.WrapWithLogging("give", commands.GiveHandler(b)))
	h.Command("/marry", handlers.WrapWithLogging("marry", commands.MarryHandler(b)))
	h.Command("/divorce", handlers.WrapWithLogging("divorce", commands.DivorceHandler(b)))
	h.Command("/friends", handlers.WrapWithLogging("friends", commands.FriendsHandler(b)))
	h.Command("/top", handlers.WrapWithLogging("top", commands.TopHandler(b)))

	// Goals
	h.Command("/missions", handlers.WrapWithLogging("missions", commands.MissionsHandler(b)))
	h.Command("/achievements", handlers.WrapWithLogging("achievements", commands.AchievementsHandler(b)))
	h.Command("/titles", handlers.WrapWithLogging("titles", commands.TitlesHandler(b)))
	h.Command("/settitle", handlers.WrapWithLogging("settitle", commands.SetTitleHandler(b)))

	// Admin
	h.Command("/admin/upload", handlers.WrapWithLogging("admin-upload", commands.AdminUploadHandler(b)))
	h.Command("/admin/editcard", handlers.WrapWithLogging("admin-editcard", commands.AdminEditCardHandler(b)))
	h.Command("/admin/deletecard", handlers.WrapWithLogging("admin-deletecard", commands.AdminDeleteCardHandler(b)))
	h.Command("/admin/setdrop", handlers.WrapWithLogging("admin-setdrop", commands.AdminSetDropHandler(b)))
	h.Command("/admin/stats", handlers.WrapWithLogging("admin-stats", commands.AdminStatsHandler(b)))
	h.Component("/deletecard/confirm", handlers.WrapComponentWithLogging("deletecard-confirm", commands.DeleteCardConfirmHandler(b)))
	h.Component("/deletecard/cancel", handlers.WrapComponentWithLogging("deletecard-cancel", commands.DeleteCardCancelHandler(b)))

	// Owner
	h.Command("/owner/addsudo", handlers.WrapWithLogging("owner-addsudo", commands.OwnerAddSudoHandler(b)))
	h.Command("/owner/sudolist", handlers.WrapWithLogging("owner-sudolist", commands.OwnerSudoListHandler(b)))
	h.Command("/owner/addcoin", handlers.WrapWithLogging("owner-addcoin", commands.OwnerAddCoinHandler(b)))
	h.Command("/owner/broadcast", handlers.WrapWithLogging("owner-broadcast", commands.OwnerBroadcastHandler(b)))
	h.Command("/owner/reset", handlers.WrapWithLogging("owner-reset", commands.OwnerResetHandler(b)))
	h.Command("/owner/systemcheck", handlers.WrapWithLogging("owner-systemcheck", commands.OwnerSystemCheckHandler(b)))
	h.Component("/reset/confirm", handlers.WrapComponentWithLogging("reset-confirm", commands.ResetConfirmHandler(b)))
	h.Component("/reset/cancel", handlers.WrapComponentWithLogging("reset-cancel", commands.ResetCancelHandler(b)))

	if err = b.SetupBot(h, bot.NewListenerFunc(b.OnReady)); err != nil {
		slog.Error("Failed to setup bot",
			slog.String("type", "sys"),
			slog.Any("error", err))
		os.Exit(-1)
	}

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		b.Client.Close(ctx)
	}()

	if *shouldSyncCommands {
		slog.Info("Syncing commands",
			slog.String("type", "sys"),
			slog.Any("guild_ids", cfg.Bot.DevGuilds))
		if err = handler.SyncCommands(b.Client, commands.Commands, cfg.Bot.DevGuilds); err != nil {
			slog.Error("Failed to sync commands",
				slog.String("type", "sys"),
				slog.Any("error", err))
		}
	}

	gatewayCtx, gatewayCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer gatewayCancel()
	if err = b.Client.OpenGateway(gatewayCtx); err != nil {
		slog.Error("Failed to open gateway",
			slog.String("type", "sys"),
			slog.Any("error", err))
		os.Exit(-1)
	}

	slog.Info("Bot is running. Press CTRL-C to exit.")
	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM)
	<-s
	slog.Info("Shutting down bot...")
}

// runWeeklyRollover settles the weekly board on startup and then
// hourly, so the winner payout lands shortly after Monday midnight
// without a dedicated scheduler.
func runWeeklyRollover(ctx context.Context, svc *weekly.Service) {
	rollover := func() {
		ctx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()
		if err := svc.Rollover(ctx); err != nil {
			slog.Error("Weekly rollover failed", slog.Any("error", err))
		}
	}

	rollover()

	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			rollover()
		case <-ctx.Done():
			return
		}
	}
}
