// Package config carries the root CLI state shared by all subcommands.
package config

import (
	"fmt"

	appcfg "github.com/kumaryash98110-netizen/investcore/config"
	"github.com/kumaryash98110-netizen/investcore/store"
)

// RootConfig holds the persistent flag values. Flags left empty defer to the
// config file / environment; non-empty flags win.
type RootConfig struct {
	ConfigPath string
	Storage    string
	DBPath     string
	RedisAddr  string
	LogLevel   string

	resolved *appcfg.Config
}

// Resolve loads the application config (file + env) and applies the flag
// overrides. The result is cached for the life of the command.
func (rc *RootConfig) Resolve() (*appcfg.Config, error) {
	if rc.resolved != nil {
		return rc.resolved, nil
	}

	cfg, err := appcfg.Load(rc.ConfigPath)
	if err != nil {
		return nil, err
	}

	if rc.Storage != "" {
		cfg.Storage.Backend = rc.Storage
	}
	if rc.DBPath != "" {
		cfg.Storage.DBPath = rc.DBPath
	}
	if rc.RedisAddr != "" {
		cfg.Storage.RedisAddr = rc.RedisAddr
	}
	if rc.LogLevel != "" {
		cfg.Logging.Level = rc.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	rc.resolved = cfg
	return cfg, nil
}

// OpenProvider builds the persistence provider the config selects. The
// returned close func releases the backend connection and is always non-nil.
func (rc *RootConfig) OpenProvider() (store.Provider, func() error, error) {
	cfg, err := rc.Resolve()
	if err != nil {
		return nil, nil, err
	}

	switch cfg.Storage.Backend {
	case "memory":
		return store.NewMemory(), func() error { return nil }, nil
	case "sqlite":
		p, err := store.NewSQLite(cfg.Storage.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return p, p.Close, nil
	case "redis":
		p := store.NewRedis(cfg.Storage.RedisAddr)
		return p, p.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}
