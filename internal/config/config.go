// Package config loads the server configuration from an optional YAML
// file and applies environment overrides on top. With no file and no
// environment the zero configuration boots an in-memory world.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   Server   `yaml:"server"`
	Database Database `yaml:"database"`
	World    World    `yaml:"world"`
	Snapshot Snapshot `yaml:"snapshot"`
	Skills   Skills   `yaml:"skills"`
}

type Server struct {
	// Addr is the REST API listener.
	Addr string `yaml:"addr"`
	// WatchAddr serves the websocket watch hub on its own listener.
	WatchAddr string `yaml:"watch_addr"`
}

type Database struct {
	// Driver selects the persistence backend: memory, sqlite or postgres.
	Driver string `yaml:"driver"`
	// DSN is the postgres connection string.
	DSN string `yaml:"dsn"`
	// Path is the sqlite save file.
	Path string `yaml:"path"`
}

type World struct {
	ID   string `yaml:"id"`
	Seed uint64 `yaml:"seed"`
}

type Snapshot struct {
	Dir string `yaml:"dir"`
	// EveryTicks archives the world each time the clock crosses a
	// multiple of it. Zero disables cadence snapshots.
	EveryTicks int64 `yaml:"every_ticks"`
}

type Skills struct {
	// Root holds the field-guide markdown served under /skills.
	Root string `yaml:"root"`
}

func Default() Config {
	return Config{
		Server: Server{
			Addr:      ":8080",
			WatchAddr: ":8081",
		},
		Database: Database{
			Driver: "memory",
			Path:   "emberside.db",
		},
		World: World{
			ID:   "homestead",
			Seed: 2024,
		},
		Snapshot: Snapshot{
			Dir:        "./snapshots",
			EveryTicks: 144, // one in-world day at ten minutes per tick
		},
		Skills: Skills{
			Root: "./skills",
		},
	}
}

// Load reads path when it is non-empty, layers environment overrides on
// top and validates the result. An empty path means file-less defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Server.Addr = strEnv("EMBERSIDE_ADDR", c.Server.Addr)
	c.Server.WatchAddr = strEnv("EMBERSIDE_WATCH_ADDR", c.Server.WatchAddr)
	c.Database.Driver = strEnv("EMBERSIDE_DB_DRIVER", c.Database.Driver)
	c.Database.DSN = strEnv("EMBERSIDE_DB_DSN", c.Database.DSN)
	c.Database.Path = strEnv("EMBERSIDE_DB_PATH", c.Database.Path)
	c.World.ID = strEnv("EMBERSIDE_WORLD_ID", c.World.ID)
	c.World.Seed = uint64Env("EMBERSIDE_WORLD_SEED", c.World.Seed)
	c.Snapshot.Dir = strEnv("EMBERSIDE_SNAPSHOT_DIR", c.Snapshot.Dir)
	c.Snapshot.EveryTicks = int64Env("EMBERSIDE_SNAPSHOT_EVERY_TICKS", c.Snapshot.EveryTicks)
	c.Skills.Root = strEnv("EMBERSIDE_SKILLS_ROOT", c.Skills.Root)
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	switch c.Database.Driver {
	case "memory":
	case "sqlite":
		if strings.TrimSpace(c.Database.Path) == "" {
			return fmt.Errorf("database.path is required for the sqlite driver")
		}
	case "postgres":
		if strings.TrimSpace(c.Database.DSN) == "" {
			return fmt.Errorf("database.dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("database.driver %q is not one of memory, sqlite, postgres", c.Database.Driver)
	}
	if strings.TrimSpace(c.World.ID) == "" {
		return fmt.Errorf("world.id must not be empty")
	}
	if c.Snapshot.EveryTicks < 0 {
		return fmt.Errorf("snapshot.every_ticks must be >= 0")
	}
	if c.Snapshot.EveryTicks > 0 && strings.TrimSpace(c.Snapshot.Dir) == "" {
		return fmt.Errorf("snapshot.dir is required when snapshot.every_ticks > 0")
	}
	return nil
}

func strEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func int64Env(key string, fallback int64) int64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

func uint64Env(key string, fallback uint64) uint64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
