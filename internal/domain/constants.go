package domain

import "time"

// Shop rules
const (
	ShopPageSize = 5

	// Items sell back for 75% of catalog price, rounded down.
	SellPriceNumerator   = 3
	SellPriceDenominator = 4
)

// Ledger defaults
const (
	DefaultDailyReward         = 1000
	DefaultDailyCooldown       = 24 * time.Hour
	DefaultRobCooldown         = 2 * time.Hour
	DefaultRobSuccessChance    = 0.5
	DefaultRobMinVictimBalance = 100
	DefaultRobFine             = 250
	RobMinStealPercent         = 10
	RobMaxStealPercent         = 30
)

// Dig defaults
const (
	DefaultDigCooldown = 30 * time.Minute
	DigNothingChance   = 0.4
	DigCreditsChance   = 0.4
	DigCreditsMin      = 10
	DigCreditsMax      = 100
)

// Job market defaults
const (
	DefaultApplyCooldown    = time.Hour
	DefaultWorkCooldown     = time.Hour
	DefaultResignTenure     = 2 * time.Hour
	DefaultWorkAnswerWindow = 30 * time.Second

	WorkOperandMin = 1
	WorkOperandMax = 12

	WorkPointsMin = 100
	WorkPointsMax = 1000
)

// Stock market defaults
const (
	DefaultImpactRate          = 0.025
	DefaultFluctuationRange    = 5.0
	DefaultFluctuationInterval = 30 * time.Second
	DefaultHistoryCap          = 2000
	DefaultPruneBatch          = 1000
	DefaultTrendWindow         = 24 * time.Hour
	StockPageSize              = 5
	DefaultHistoryLimit        = 100
)

// Cooldown action names
const (
	ActionDaily  = "daily"
	ActionApply  = "apply"
	ActionWork   = "work"
	ActionResign = "resign"
	ActionRob    = "rob"
	ActionDig    = "dig"
)
