package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is applied by envconfig when resolving variables.
const EnvPrefix = "nursery"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Password     PasswordConfig
	Cart         CartConfig
	FeatureFlags FeatureFlagsConfig
	CORS         CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.DB.DSN == "" {
		return nil, fmt.Errorf("NURSERY_DB_DSN is required")
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"NURSERY_APP_ENV" required:"true"`
	Port         string `envconfig:"NURSERY_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"NURSERY_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"NURSERY_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"NURSERY_DB_DSN"`
	Driver string `envconfig:"NURSERY_DB_DRIVER" default:"postgres"`

	MaxOpenConns    int           `envconfig:"NURSERY_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"NURSERY_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"NURSERY_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"NURSERY_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"NURSERY_REDIS_URL" required:"true"`
	Address      string        `envconfig:"NURSERY_REDIS_ADDR"`
	Password     string        `envconfig:"NURSERY_REDIS_PASSWORD"`
	DB           int           `envconfig:"NURSERY_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"NURSERY_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"NURSERY_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"NURSERY_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"NURSERY_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"NURSERY_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"NURSERY_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"NURSERY_JWT_ISSUER" default:"paradise-nursery"`
	ExpirationMinutes int    `envconfig:"NURSERY_JWT_EXPIRATION_MINUTES" default:"1440"`
}

// SessionTTL returns how long an issued token's server-side session lives.
func (j JWTConfig) SessionTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"NURSERY_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"NURSERY_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"NURSERY_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"NURSERY_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"NURSERY_ARGON_KEY_LEN" default:"32"`
}

// CartConfig controls the durable cart-session snapshots kept in Redis.
type CartConfig struct {
	SessionTTLHours int `envconfig:"NURSERY_CART_SESSION_TTL_HOURS" default:"168"`
}

func (c CartConfig) SessionTTL() time.Duration {
	if c.SessionTTLHours <= 0 {
		return 0
	}
	return time.Duration(c.SessionTTLHours) * time.Hour
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"NURSERY_AUTO_MIGRATE" default:"false"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"NURSERY_CORS_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
}
