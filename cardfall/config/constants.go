package config

import "time"

// UI and display constants
const (
	// Pagination
	CardsPerPage    = 7
	DefaultPageSize = 10

	// Colors
	ErrorColor   = 0xFF0000
	SuccessColor = 0x00FF00
	InfoColor    = 0x0099FF
	WarningColor = 0xFFAA00

	EmbedDefaultColor = 0x2B2D31

	// Rarity colors
	RarityCommonColor    = 0x808080
	RarityUncommonColor  = 0x00FF00
	RarityRareColor      = 0x0000FF
	RarityEpicColor      = 0x800080
	RarityLegendaryColor = 0xFFD700
)

// Timeouts
const (
	DefaultQueryTimeout     = 30 * time.Second
	CommandExecutionTimeout = 10 * time.Second
	SearchTimeout           = 10 * time.Second

	// Cache settings
	CardCacheSize = 1024
)

// Game cooldowns
const (
	CatchCooldown  = 8 * time.Second
	SlotsCooldown  = 5 * time.Second
	BasketCooldown = 10 * time.Second
	WheelCooldown  = 15 * time.Second

	PendingActionTTL = 2 * time.Minute
)

// Economy defaults, overridable via the [game] config section
const (
	StartingCoins       = 1000
	DailyBonusBase      = 200
	MaxStreakMultiplier = 5
	WeeklyWinnerBonus   = 2000

	// Stake bounds per game
	SlotsMinBet  = 50
	BasketMinBet = 50
	WheelMinBet  = 100
	MaxBet       = 10000

	DailyXP     = 30
	MarryXP     = 50
	WheelXP     = 15
	SlotsWinXP  = 10
	SlotsLoseXP = 5
)

// Drop-rate multiplier bounds for /setdrop
const (
	MinDropMultiplier = 0.1
	MaxDropMultiplier = 10.0
)
