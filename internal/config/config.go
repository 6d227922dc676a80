package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/osse101/SpaceBot_Go/internal/cooldown"
	"github.com/osse101/SpaceBot_Go/internal/domain"
	"github.com/osse101/SpaceBot_Go/internal/economy"
	"github.com/osse101/SpaceBot_Go/internal/job"
	"github.com/osse101/SpaceBot_Go/internal/ledger"
	"github.com/osse101/SpaceBot_Go/internal/stock"
)

// Config holds the application configuration
type Config struct {
	Port           int
	LogLevel       string
	LogFormat      string
	Environment    string
	ServiceName    string
	Version        string
	APIKey         string // API key for authentication
	TrustedProxies []string

	StorageDriver     string
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	CatalogPath string
	SeedCatalog bool
	DevMode     bool // bypasses all cooldowns

	LogDir          string // optional; when set logs are also written to rotating session files
	WorkerCount     int
	WorkerQueueSize int
	ShutdownTimeout time.Duration

	Economy Economy
}

// Economy holds the game tunables
type Economy struct {
	DailyReward      int64
	DailyCooldown    time.Duration
	RobCooldown      time.Duration
	RobSuccessChance float64
	DigCooldown      time.Duration

	ApplyCooldown    time.Duration
	WorkCooldown     time.Duration
	WorkAnswerWindow time.Duration
	ResignTenure     time.Duration

	ShopCacheTTL time.Duration

	StockImpactRate        float64
	MarketTickInterval     time.Duration
	MarketFluctuationRange float64
	PriceHistoryCap        int64
	PriceHistoryPrune      int
}

// Load loads the server configuration from environment variables. The API key is mandatory.
func Load() (*Config, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}
	return cfg, nil
}

// LoadCLI loads the same configuration for offline tooling, which never serves HTTP and so
// needs no API key.
func LoadCLI() (*Config, error) {
	return load()
}

func load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
		Environment:    getEnv("ENVIRONMENT", "dev"),
		ServiceName:    getEnv("SERVICE_NAME", DefaultServiceName),
		Version:        getEnv("VERSION", "dev"),
		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),

		StorageDriver:     strings.ToLower(getEnv("STORAGE_DRIVER", StorageDriverPostgres)),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "spacebot"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", 20),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),

		CatalogPath: getEnv("CATALOG_PATH", ConfigPathCatalog),
		SeedCatalog: getEnvAsBool("SEED_CATALOG", true),
		DevMode:     getEnvAsBool("DEV_MODE", false),

		LogDir:          getEnv("LOG_DIR", ""),
		WorkerCount:     getEnvAsInt("WORKER_COUNT", DefaultWorkerCount),
		WorkerQueueSize: getEnvAsInt("WORKER_QUEUE_SIZE", DefaultWorkerQueueSize),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),

		Economy: Economy{
			DailyReward:      int64(getEnvAsInt("DAILY_REWARD", domain.DefaultDailyReward)),
			DailyCooldown:    getEnvAsDuration("DAILY_COOLDOWN", domain.DefaultDailyCooldown),
			RobCooldown:      getEnvAsDuration("ROB_COOLDOWN", domain.DefaultRobCooldown),
			RobSuccessChance: getEnvAsFloat("ROB_SUCCESS_CHANCE", domain.DefaultRobSuccessChance),
			DigCooldown:      getEnvAsDuration("DIG_COOLDOWN", domain.DefaultDigCooldown),

			ApplyCooldown:    getEnvAsDuration("APPLY_COOLDOWN", domain.DefaultApplyCooldown),
			WorkCooldown:     getEnvAsDuration("WORK_COOLDOWN", domain.DefaultWorkCooldown),
			WorkAnswerWindow: getEnvAsDuration("WORK_ANSWER_WINDOW", domain.DefaultWorkAnswerWindow),
			ResignTenure:     getEnvAsDuration("RESIGN_TENURE", domain.DefaultResignTenure),

			ShopCacheTTL: getEnvAsDuration("SHOP_CACHE_TTL", economy.DefaultCacheTTL),

			StockImpactRate:        getEnvAsFloat("STOCK_IMPACT_RATE", domain.DefaultImpactRate),
			MarketTickInterval:     getEnvAsDuration("MARKET_TICK_INTERVAL", domain.DefaultFluctuationInterval),
			MarketFluctuationRange: getEnvAsFloat("MARKET_FLUCTUATION_RANGE", domain.DefaultFluctuationRange),
			PriceHistoryCap:        int64(getEnvAsInt("PRICE_HISTORY_CAP", domain.DefaultHistoryCap)),
			PriceHistoryPrune:      getEnvAsInt("PRICE_HISTORY_PRUNE", domain.DefaultPruneBatch),
		},
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	v, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsList splits a comma separated variable, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// Cooldowns builds the cooldown table shared by every service
func (c *Config) Cooldowns() cooldown.Config {
	return cooldown.Config{
		DevMode: c.DevMode,
		Cooldowns: map[string]time.Duration{
			domain.ActionDaily:  c.Economy.DailyCooldown,
			domain.ActionRob:    c.Economy.RobCooldown,
			domain.ActionDig:    c.Economy.DigCooldown,
			domain.ActionApply:  c.Economy.ApplyCooldown,
			domain.ActionWork:   c.Economy.WorkCooldown,
			domain.ActionResign: c.Economy.ResignTenure,
		},
	}
}

// LedgerConfig returns the ledger rules
func (c *Config) LedgerConfig() ledger.Config {
	lc := ledger.DefaultConfig()
	lc.DailyReward = c.Economy.DailyReward
	lc.RobSuccessChance = c.Economy.RobSuccessChance
	lc.Cooldowns = c.Cooldowns()
	return lc
}

// ShopConfig returns the shop cache settings
func (c *Config) ShopConfig() economy.Config {
	sc := economy.DefaultConfig()
	sc.CacheTTL = c.Economy.ShopCacheTTL
	return sc
}

// JobConfig returns the job market timings
func (c *Config) JobConfig() job.Config {
	jc := job.DefaultConfig()
	jc.Cooldowns = c.Cooldowns()
	jc.AnswerWindow = c.Economy.WorkAnswerWindow
	return jc
}

// StockConfig returns the market model parameters
func (c *Config) StockConfig() stock.Config {
	sc := stock.DefaultConfig()
	sc.ImpactRate = decimal.NewFromFloat(c.Economy.StockImpactRate)
	sc.FluctuationRange = c.Economy.MarketFluctuationRange
	sc.HistoryCap = c.Economy.PriceHistoryCap
	sc.PruneBatch = c.Economy.PriceHistoryPrune
	return sc
}

// Validate rejects settings the services cannot run with
func (c *Config) Validate() error {
	var problems []string
	add := func(format string, args ...any) { problems = append(problems, fmt.Sprintf(format, args...)) }

	if c.Port < 1 || c.Port > 65535 {
		add("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.StorageDriver != StorageDriverPostgres && c.StorageDriver != StorageDriverMemory {
		add("STORAGE_DRIVER must be %q or %q, got %q", StorageDriverPostgres, StorageDriverMemory, c.StorageDriver)
	}
	if c.StorageDriver == StorageDriverPostgres && c.DBMaxConns < 1 {
		add("DB_MAX_CONNS must be positive, got %d", c.DBMaxConns)
	}

	if c.WorkerCount < 1 || c.WorkerQueueSize < 1 {
		add("WORKER_COUNT and WORKER_QUEUE_SIZE must be positive")
	}

	e := c.Economy
	if e.DailyReward <= 0 {
		add("DAILY_REWARD must be positive, got %d", e.DailyReward)
	}
	if e.RobSuccessChance < 0 || e.RobSuccessChance > 1 {
		add("ROB_SUCCESS_CHANCE must be within [0, 1], got %v", e.RobSuccessChance)
	}
	if e.WorkAnswerWindow <= 0 {
		add("WORK_ANSWER_WINDOW must be positive, got %s", e.WorkAnswerWindow)
	}
	if e.MarketTickInterval <= 0 {
		add("MARKET_TICK_INTERVAL must be positive, got %s", e.MarketTickInterval)
	}
	if e.StockImpactRate < 0 || e.StockImpactRate >= 1 {
		add("STOCK_IMPACT_RATE must be within [0, 1), got %v", e.StockImpactRate)
	}
	if e.MarketFluctuationRange < 0 {
		add("MARKET_FLUCTUATION_RANGE must not be negative, got %v", e.MarketFluctuationRange)
	}
	if e.PriceHistoryCap < 1 || e.PriceHistoryPrune < 1 {
		add("PRICE_HISTORY_CAP and PRICE_HISTORY_PRUNE must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
