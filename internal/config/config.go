package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env         string `env:"ENV" env-default:"local"`
	DatabaseURL string `env:"DATABASE_URL" env-required:"true"`
	HTTP        HTTPConfig
	Matching    MatchingConfig
	Redis       RedisConfig
}

type HTTPConfig struct {
	Port           int           `env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout    time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout   time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"30s"`
	IdleTimeout    time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"20s"`
	// AllowedOrigins — origin'ы админки для CORS
	AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-separator:"," env-default:"*"`
}

// MatchingConfig — политика ранжирования результатов матчинга.
// Веса критериев сюда не входят: это константы пакета matching.
type MatchingConfig struct {
	// MinScore — минимально допустимый score, всё что ниже отбрасывается
	MinScore int `env:"MATCH_MIN_SCORE" env-default:"50"`
	// PriorityPercent — доля (в процентах) верхних результатов, помечаемых как priority
	PriorityPercent int `env:"MATCH_PRIORITY_PERCENT" env-default:"80"`
	// ScoringWorkers — размер пула горутин для расчёта score
	ScoringWorkers int `env:"MATCH_SCORING_WORKERS" env-default:"8"`
	DefaultLimit   int `env:"MATCH_DEFAULT_LIMIT" env-default:"20"`
	MaxLimit       int `env:"MATCH_MAX_LIMIT" env-default:"100"`
}

// RedisConfig — кэш записей предпочтений (результаты матчинга не кэшируются).
type RedisConfig struct {
	Enabled       bool          `env:"REDIS_ENABLE" env-default:"false"`
	Addr          string        `env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password      string        `env:"REDIS_PASSWORD"`
	DB            int           `env:"REDIS_DB" env-default:"0"`
	PreferenceTTL time.Duration `env:"REDIS_PREFERENCE_TTL" env-default:"1m"`
}

// MustLoad читает конфигурацию из окружения, предварительно подгрузив .env, если он есть.
func MustLoad() *Config {
	// .env опционален: в контейнере переменные приходят из окружения
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		panic("cannot read config from environment: " + err.Error())
	}
	return &cfg
}
