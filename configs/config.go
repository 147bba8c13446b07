package configs

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	App struct {
		Name     string `koanf:"name"`
		HTTPAddr string `koanf:"http_addr"`
		LogFile  string `koanf:"log_file"`
	} `koanf:"app"`

	HTTP struct {
		ReadTimeout  time.Duration `koanf:"read_timeout"`
		WriteTimeout time.Duration `koanf:"write_timeout"`
		IdleTimeout  time.Duration `koanf:"idle_timeout"`
	} `koanf:"http"`

	Cart struct {
		// Store selects the snapshot backend: "redis" or "mysql".
		Store string        `koanf:"store"`
		TTL   time.Duration `koanf:"ttl"`
		// SessionIdle bounds how long an untouched checkout session stays in memory.
		SessionIdle time.Duration `koanf:"session_idle"`
	} `koanf:"cart"`

	Redis struct {
		Addr     string `koanf:"addr"`
		Password string `koanf:"password"`
	} `koanf:"redis"`

	MySQL struct {
		DSN             string        `koanf:"dsn"`
		MaxOpenConns    int           `koanf:"max_open_conns"`
		MaxIdleConns    int           `koanf:"max_idle_conns"`
		ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	} `koanf:"mysql"`

	Catalog struct {
		BaseURL string        `koanf:"base_url"`
		Refresh time.Duration `koanf:"refresh"`
		Timeout time.Duration `koanf:"timeout"`
	} `koanf:"catalog"`

	Orders struct {
		BaseURL string        `koanf:"base_url"`
		Token   string        `koanf:"token"`
		Timeout time.Duration `koanf:"timeout"`
	} `koanf:"orders"`

	Security struct {
		JWTSecret string `koanf:"jwt_secret"`
		Issuer    string `koanf:"issuer"`
		Audience  string `koanf:"audience"`
	} `koanf:"security"`
}

func Load(pathDir, envName string) (Config, error) {
	k := koanf.New(".")
	// 1) base
	if err := k.Load(file.Provider(fmt.Sprintf("%s/base.yaml", pathDir)), yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("load base: %w", err)
	}

	// 2) env overlay (dev/staging/prod). Optional: allow missing for local runs.
	_ = k.Load(file.Provider(fmt.Sprintf("%s/%s.yaml", pathDir, envName)), yaml.Parser())

	// 3) environment variables override (prefix RSBAZAR_, nested with __)
	// e.g. RSBAZAR_REDIS__ADDR, RSBAZAR_ORDERS__TOKEN
	if err := k.Load(env.Provider("RSBAZAR_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "RSBAZAR_")
		s = strings.ReplaceAll(s, "__", ".")
		return strings.ToLower(s)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("env overlay: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.App.HTTPAddr == "" {
		return fmt.Errorf("app.http_addr required")
	}
	switch c.Cart.Store {
	case "redis":
		if c.Redis.Addr == "" {
			return fmt.Errorf("redis.addr required when cart.store=redis")
		}
	case "mysql":
		if c.MySQL.DSN == "" {
			return fmt.Errorf("mysql.dsn required when cart.store=mysql")
		}
	default:
		return fmt.Errorf("cart.store must be redis or mysql, got %q", c.Cart.Store)
	}
	if c.Orders.BaseURL == "" {
		return fmt.Errorf("orders.base_url required")
	}
	if c.Security.JWTSecret == "" {
		return fmt.Errorf("security.jwt_secret required")
	}
	return nil
}
