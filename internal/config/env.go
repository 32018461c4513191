// Package config loads process settings from the environment and gameplay
// tuning from YAML.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"furrow/internal/domain/farmer"
)

type Env struct {
	HTTPAddr      string `env:"FARM_HTTP_ADDR"      envDefault:":8080"`
	EventsAddr    string `env:"FARM_EVENTS_ADDR"    envDefault:":8081"`
	DBDSN         string `env:"FARM_DB_DSN"`
	MigrationsDir string `env:"FARM_MIGRATIONS_DIR" envDefault:"db/migrations"`
	SQLitePath    string `env:"FARM_SQLITE_PATH"`
	ArchiveDir    string `env:"FARM_ARCHIVE_DIR"`
	TuningPath    string `env:"FARM_TUNING_PATH"`
	Seed          int64  `env:"FARM_SEED"`
	// AutoPerk picks perks right after an upgrade: "", "first" or "strongest".
	AutoPerk string `env:"FARM_AUTO_PERK"`
}

func LoadEnv() (Env, error) {
	cfg, err := env.ParseAs[Env]()
	if err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.AutoPerk = strings.ToLower(strings.TrimSpace(cfg.AutoPerk))
	if _, err := cfg.Chooser(); err != nil {
		return Env{}, err
	}
	return cfg, nil
}

// Chooser maps AutoPerk onto a perk chooser. Nil leaves the choice to the
// player.
func (e Env) Chooser() (farmer.Chooser, error) {
	switch e.AutoPerk {
	case "", "off", "none":
		return nil, nil
	case "first":
		return farmer.ChooseFirst, nil
	case "strongest":
		return farmer.ChooseStrongest, nil
	default:
		return nil, fmt.Errorf("FARM_AUTO_PERK: unknown chooser %q", e.AutoPerk)
	}
}
