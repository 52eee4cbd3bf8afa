package shared

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Bot variants select which tool set a process exposes.
const (
	VariantSki  = "ski"
	VariantCars = "cars"
	VariantAll  = "all"
)

type Config struct {
	AppEnv       string
	BotVariant   string
	HTTPAddr     string
	MetricsAddr  string
	HotelsPath   string
	CampsPath    string
	KosherPath   string
	SalesBase    string
	SalesRPS     int
	SalesTimeout time.Duration
	RedisAddr    string
	RedisPass    string
	RedisDB      int
	HandoffQueue string
	ToolWorkers  int
	ToolTimeout  time.Duration
	MaxBatch     int
}

// Load reads the environment after applying envFiles (default ".env").
// Variables already set in the environment win over file values; missing
// files are ignored.
func Load(envFiles ...string) Config {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Warn().Err(err).Str("file", f).Msg("could not read env file")
		}
	}

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Msg("not an integer, using default")
		}
		return def
	}
	c := Config{
		AppEnv:       env("APP_ENV", "prod"),
		BotVariant:   strings.ToLower(env("BOT_VARIANT", VariantAll)),
		HTTPAddr:     env("HTTP_ADDR", ":8080"),
		MetricsAddr:  env("METRICS_ADDR", ""),
		HotelsPath:   env("HOTELS_PATH", "data/hotels.jsonl"),
		CampsPath:    env("CAMPS_PATH", "data/camps.jsonl"),
		KosherPath:   env("KOSHER_PATH", "data/kosher.md"),
		SalesBase:    env("SALES_BASE_URL", "https://sales-backend-prod.shlomo.co.il/api/shlomo"),
		SalesRPS:     atoi("SALES_RPS", 5),
		SalesTimeout: time.Duration(atoi("SALES_TIMEOUT_SECONDS", 30)) * time.Second,
		RedisAddr:    env("REDIS_ADDR", ""),
		RedisPass:    env("REDIS_PASSWORD", ""),
		RedisDB:      atoi("REDIS_DB", 0),
		HandoffQueue: env("HANDOFF_QUEUE", "handoff:leads"),
		ToolWorkers:  atoi("TOOL_WORKERS", 4),
		ToolTimeout:  time.Duration(atoi("TOOL_TIMEOUT_SECONDS", 35)) * time.Second,
		MaxBatch:     atoi("MAX_BATCH_CALLS", 16),
	}
	if c.RedisAddr == "" {
		log.Warn().Msg("REDIS_ADDR is empty; handoff leads are only logged")
	}
	return c
}

// Validate rejects settings no process can run with.
func (c Config) Validate() error {
	switch c.BotVariant {
	case VariantSki, VariantCars, VariantAll:
	default:
		return fmt.Errorf("BOT_VARIANT must be one of ski|cars|all, got %q", c.BotVariant)
	}
	if c.ToolWorkers < 1 {
		return fmt.Errorf("TOOL_WORKERS must be positive, got %d", c.ToolWorkers)
	}
	return nil
}

func (c Config) WantsSki() bool  { return c.BotVariant == VariantSki || c.BotVariant == VariantAll }
func (c Config) WantsCars() bool { return c.BotVariant == VariantCars || c.BotVariant == VariantAll }

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
