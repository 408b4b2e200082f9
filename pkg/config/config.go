package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	SMTP         SMTPConfig
	Password     PasswordConfig
	OTP          OTPConfig
	Registration RegistrationConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"EVENTRAVE_APP_ENV" required:"true"`
	Port         string `envconfig:"EVENTRAVE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"EVENTRAVE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"EVENTRAVE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"EVENTRAVE_DB_DSN"`

	Host     string `envconfig:"EVENTRAVE_DB_HOST"`
	Port     int    `envconfig:"EVENTRAVE_DB_PORT" default:"5432"`
	User     string `envconfig:"EVENTRAVE_DB_USER"`
	Password string `envconfig:"EVENTRAVE_DB_PASSWORD"`
	Name     string `envconfig:"EVENTRAVE_DB_NAME"`
	SSLMode  string `envconfig:"EVENTRAVE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"EVENTRAVE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"EVENTRAVE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"EVENTRAVE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"EVENTRAVE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// RedisConfig is optional: when neither URL nor Address is set the API runs
// without the token cache.
type RedisConfig struct {
	URL          string        `envconfig:"EVENTRAVE_REDIS_URL"`
	Address      string        `envconfig:"EVENTRAVE_REDIS_ADDR"`
	Password     string        `envconfig:"EVENTRAVE_REDIS_PASSWORD"`
	DB           int           `envconfig:"EVENTRAVE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"EVENTRAVE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"EVENTRAVE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"EVENTRAVE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"EVENTRAVE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"EVENTRAVE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a Redis endpoint is configured at all.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type SMTPConfig struct {
	Host     string `envconfig:"EVENTRAVE_SMTP_HOST"`
	Port     int    `envconfig:"EVENTRAVE_SMTP_PORT" default:"587"`
	Username string `envconfig:"EVENTRAVE_SMTP_USERNAME"`
	Password string `envconfig:"EVENTRAVE_SMTP_PASSWORD"`
	From     string `envconfig:"EVENTRAVE_SMTP_FROM"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"EVENTRAVE_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"EVENTRAVE_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"EVENTRAVE_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"EVENTRAVE_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"EVENTRAVE_ARGON_KEY_LEN" default:"32"`
}

type OTPConfig struct {
	Digits int `envconfig:"EVENTRAVE_OTP_DIGITS" default:"6"`
}

type RegistrationConfig struct {
	StudentEmailDomain string `envconfig:"EVENTRAVE_STUDENT_EMAIL_DOMAIN" default:"meaec.edu.in"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"EVENTRAVE_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	values := map[string]string{
		EnvDBHost: db.Host,
		EnvDBUser: db.User,
		EnvDBName: db.Name,
	}
	for _, env := range componentDBEnvVars {
		if values[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}

	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
