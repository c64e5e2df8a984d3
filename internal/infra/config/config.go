package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
)

// Account son las credenciales de HoYoLab (uid + cookies de sesión).
type Account struct {
	UID   string `env:"ACCOUNT_UID,required,notEmpty"`
	Token string `env:"ACCOUNT_TOKEN,required,notEmpty"`
	TMID  string `env:"ACCOUNT_TMID,required,notEmpty"`
}

// Publish apunta al gist que se sobreescribe en cada corrida.
type Publish struct {
	Token  string `env:"PUBLISH_TOKEN,required,notEmpty"`
	DestID string `env:"PUBLISH_DEST_ID,required,notEmpty"`
}

type Config struct {
	Account Account
	Publish Publish

	PlatformBaseURL string        `env:"PLATFORM_BASE_URL" envDefault:"https://bbs-api-os.hoyolab.com"`
	PublishAPIURL   string        `env:"PUBLISH_API_URL" envDefault:"https://api.github.com"`
	Locale          string        `env:"PLATFORM_LOCALE" envDefault:"en-us"`
	HTTPTimeout     time.Duration `env:"HTTP_TIMEOUT" envDefault:"0s"` // 0 = sin timeout
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`

	// StrictExit: si está activo, main sale con código != 0 cuando falla la corrida.
	StrictExit bool `env:"STRICT_EXIT" envDefault:"false"`
}

// Load lee la config del entorno. Cualquier variable requerida faltante es error.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	// solo valida; se manda tal cual lo puso el operador (Parse canonicaliza iw -> he)
	if _, err := language.Parse(cfg.Locale); err != nil {
		return nil, fmt.Errorf("config: PLATFORM_LOCALE %q: %w", cfg.Locale, err)
	}
	// HoYoLab espera el tag en minúsculas (en-us, zh-cn, ...)
	cfg.Locale = strings.ToLower(strings.TrimSpace(cfg.Locale))

	cfg.PlatformBaseURL = strings.TrimRight(cfg.PlatformBaseURL, "/")
	cfg.PublishAPIURL = strings.TrimRight(cfg.PublishAPIURL, "/")
	return &cfg, nil
}
