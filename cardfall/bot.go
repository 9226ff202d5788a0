package cardfall

import (
	"context"
	"log/slog"
	"time"

	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/cache"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/gateway"
	"github.com/disgoorg/paginator"
	"github.com/sayuri-dev/cardfall/cardfall/database"
	"github.com/sayuri-dev/cardfall/cardfall/database/repositories"
	"github.com/sayuri-dev/cardfall/cardfall/economy/catching"
	"github.com/sayuri-dev/cardfall/cardfall/economy/cooldown"
	"github.com/sayuri-dev/cardfall/cardfall/economy/goals"
	"github.com/sayuri-dev/cardfall/cardfall/economy/ledger"
	"github.com/sayuri-dev/cardfall/cardfall/economy/progression"
	"github.com/sayuri-dev/cardfall/cardfall/economy/social"
	"github.com/sayuri-dev/cardfall/cardfall/services"
)

func New(cfg Config, version string, commit string) *Bot {
	return &Bot{
		Cfg:       cfg,
		Paginator: paginator.New(),
		Version:   version,
		Commit:    commit,
	}
}

type Bot struct {
	Cfg       Config
	Client    bot.Client
	Paginator *paginator.Manager
	Version   string
	Commit    string
	DB        *database.DB

	UserRepository        repositories.UserRepository
	CardRepository        repositories.CardRepository
	UserCardRepository    repositories.UserCardRepository
	ItemRepository        repositories.ItemRepository
	TransactionRepository repositories.TransactionRepository
	WeeklyRepository      repositories.WeeklyRepository
	FriendRepository      repositories.FriendRepository
	GoalRepository        repositories.GoalRepository
	AdminRepository       repositories.AdminRepository

	Ledger      *ledger.Ledger
	Progression *progression.Service
	Catching    *catching.Service
	Goals       *goals.Service
	Social      *social.Service
	Cooldowns   *cooldown.Manager

	SpacesService *services.SpacesService
}

func (b *Bot) SetupBot(listeners ...bot.EventListener) error {
	client, err := disgo.New(b.Cfg.Bot.Token,
		bot.WithGatewayConfigOpts(gateway.WithIntents(gateway.IntentGuilds)),
		bot.WithCacheConfigOpts(cache.WithCaches(cache.FlagGuilds)),
		bot.WithEventListeners(b.Paginator),
		bot.WithEventListeners(listeners...),
	)
	if err != nil {
		return err
	}

	b.Client = client
	return nil
}

func (b *Bot) OnReady(_ *events.Ready) {
	slog.Info("Cardfall is now ready",
		slog.String("version", b.Version),
		slog.String("commit", b.Commit))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := b.Client.SetPresence(ctx,
		gateway.WithPlayingActivity("cards falling from the sky"),
		gateway.WithOnlineStatus(discord.OnlineStatusOnline)); err != nil {
		slog.Error("Failed to set presence", slog.Any("error", err))
	}
}

// IsOwner reports whether the given user is the configured bot owner.
func (b *Bot) IsOwner(userID string) bool {
	return b.Cfg.Bot.OwnerID != 0 && b.Cfg.Bot.OwnerID.String() == userID
}

// IsAdmin reports whether the user is the owner or a sudo admin.
func (b *Bot) IsAdmin(ctx context.Context, userID string) (bool, error) {
	if b.IsOwner(userID) {
		return true, nil
	}
	return b.AdminRepository.IsSudo(ctx, userID)
}
