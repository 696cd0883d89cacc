package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

type Config struct {
	Env     string
	DB      DB
	Server  Server
	Logger  Logger
	Session Session
	Mail    Mail
	AI      AI
}

type DB struct {
	Driver string `env:"DB_DRIVER" envDefault:"sqlite3"`
	DSN    string `env:"DATABASE_URI" envDefault:"advocate_elite.db"`
}

type Server struct {
	RunAddress string `env:"RUN_ADDRESS" envDefault:":8080"`
}

type Logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

type Session struct {
	CookieName string        `env:"SESSION_COOKIE" envDefault:"legaldesk_session"`
	TTL        time.Duration `env:"SESSION_TTL" envDefault:"12h"`
	Secure     bool          `env:"SESSION_SECURE" envDefault:"false"`
}

// Mail describes the outbound relay. Port 465 means implicit TLS.
type Mail struct {
	Host           string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	Port           int    `env:"SMTP_PORT" envDefault:"465"`
	SenderEmail    string `env:"SENDER_EMAIL"`
	SenderPassword string `env:"SENDER_APP_PASSWORD"`
}

type AI struct {
	APIKey  string        `env:"GEMINI_API_KEY"`
	Model   string        `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	Timeout time.Duration `env:"AI_TIMEOUT" envDefault:"60s"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", EnvLocal)
	v.SetDefault("db_driver", DriverSQLite)
	v.SetDefault("database_uri", "advocate_elite.db")
	v.SetDefault("run_address", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("session_cookie", "legaldesk_session")
	v.SetDefault("session_ttl", 12*time.Hour)
	v.SetDefault("session_secure", false)
	v.SetDefault("smtp_host", "smtp.gmail.com")
	v.SetDefault("smtp_port", 465)
	v.SetDefault("gemini_model", "gemini-2.5-flash")
	v.SetDefault("ai_timeout", 60*time.Second)
}

// NewConfig loads .env (if present) and reads the environment.
func NewConfig(envFile string) *Config {
	cfg, err := Load(envFile, "")
	if err != nil {
		// only a config file can fail to load
		log.Fatalf("load config: %v", err)
	}
	return cfg
}

// Load is NewConfig plus an optional config file (yaml, toml or json, keyed
// like the environment variables in lower case). The environment wins over
// the file.
func Load(envFile, configFile string) (*Config, error) {
	if envFile == "" {
		envFile = envPath
	}
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			log.Printf("load %s: %v", envFile, err)
		}
	} else {
		log.Println("No .env file found, relying on environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	return FromViper(v), nil
}

// FromViper builds the typed config from an already populated viper instance.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		Env: v.GetString("app_env"),
		DB: DB{
			Driver: v.GetString("db_driver"),
			DSN:    v.GetString("database_uri"),
		},
		Server: Server{RunAddress: v.GetString("run_address")},
		Logger: Logger{LogLevel: v.GetString("log_level")},
		Session: Session{
			CookieName: v.GetString("session_cookie"),
			TTL:        v.GetDuration("session_ttl"),
			Secure:     v.GetBool("session_secure"),
		},
		Mail: Mail{
			Host:           v.GetString("smtp_host"),
			Port:           v.GetInt("smtp_port"),
			SenderEmail:    v.GetString("sender_email"),
			SenderPassword: v.GetString("sender_app_password"),
		},
		AI: AI{
			APIKey:  v.GetString("gemini_api_key"),
			Model:   v.GetString("gemini_model"),
			Timeout: v.GetDuration("ai_timeout"),
		},
	}
}

// Defaults returns a config built only from defaults; used by tests.
func Defaults() *Config {
	v := viper.New()
	setDefaults(v)
	return FromViper(v)
}
