package cardfall

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/disgoorg/snowflake/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/sayuri-dev/cardfall/cardfall/config"
	"github.com/sayuri-dev/cardfall/cardfall/database"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}
	cfg.Game.applyDefaults()
	return &cfg, nil
}

type Config struct {
	Log    LogConfig       `toml:"log"`
	Bot    BotConfig       `toml:"bot"`
	DB     database.Config `toml:"db"`
	Game   GameConfig      `toml:"game"`
	Spaces SpacesConfig    `toml:"spaces"`
}

type BotConfig struct {
	DevGuilds []snowflake.ID `toml:"dev_guilds"`
	Token     string         `toml:"token"`
	OwnerID   snowflake.ID   `toml:"owner_id"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    string     `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

type SpacesConfig struct {
	Key      string `toml:"key"`
	Secret   string `toml:"secret"`
	Region   string `toml:"region"`
	Bucket   string `toml:"bucket"`
	CardRoot string `toml:"cardroot"`
}

type GameConfig struct {
	StartingCoins       int64 `toml:"starting_coins"`
	DailyBonusBase      int64 `toml:"daily_bonus_base"`
	MaxStreakMultiplier int   `toml:"max_streak_multiplier"`
	WeeklyWinnerBonus   int64 `toml:"weekly_winner_bonus"`
}

func (g *GameConfig) applyDefaults() {
	if g.StartingCoins == 0 {
		g.StartingCoins = config.StartingCoins
	}
	if g.DailyBonusBase == 0 {
		g.DailyBonusBase = config.DailyBonusBase
	}
	if g.MaxStreakMultiplier == 0 {
		g.MaxStreakMultiplier = config.MaxStreakMultiplier
	}
	if g.WeeklyWinnerBonus == 0 {
		g.WeeklyWinnerBonus = config.WeeklyWinnerBonus
	}
}
