// Package config carries the engine's deployment configuration: where the
// store lives and the emission parameters the pool is initialized with.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DataDir string

	StartTick         uint64
	HalvingInterval   uint64
	TotalSupply       uint64
	InitialRewardRate uint64
	CooldownTicks     uint64
}

// Load reads an optional .env file, then environment overrides. Missing
// values fall back to defaults; HalvingInterval and TotalSupply have no
// sensible default and must be present.
func Load(envPath string) (*Config, error) {
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("loading env file %s: %w", envPath, err)
		}
	}

	cfg := &Config{
		DataDir:       envOr("POOL_DATA_DIR", "./data"),
		CooldownTicks: DefaultCooldownTicks,
	}

	var err error
	if cfg.HalvingInterval, err = envUint("POOL_HALVING_INTERVAL", 0); err != nil {
		return nil, err
	}
	if cfg.TotalSupply, err = envUint("POOL_TOTAL_SUPPLY", 0); err != nil {
		return nil, err
	}
	if cfg.InitialRewardRate, err = envUint("POOL_INITIAL_REWARD_RATE", 0); err != nil {
		return nil, err
	}
	if cfg.StartTick, err = envUint("POOL_START_TICK", 0); err != nil {
		return nil, err
	}
	if cfg.CooldownTicks, err = envUint("POOL_COOLDOWN_TICKS", cfg.CooldownTicks); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.HalvingInterval == 0 {
		return fmt.Errorf("halving interval must be > 0")
	}
	if c.TotalSupply == 0 {
		return fmt.Errorf("total supply must be > 0")
	}
	if c.CooldownTicks == 0 {
		return fmt.Errorf("cooldown ticks must be > 0")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envUint(key string, fallback uint64) (uint64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %v", key, err)
	}
	return n, nil
}
