package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type SessionConfig struct {
	Secret string `yaml:"secret"`
	Issuer string `yaml:"issuer"`
	TTL    string `yaml:"ttl"`
}

type VerificationConfig struct {
	TTL          string `yaml:"ttl"`
	MaxAttempts  int    `yaml:"max_attempts"`
	ResendWindow string `yaml:"resend_window"`
}

type SMTPConfig struct {
	Host            string `yaml:"host"`
	Port            int    `yaml:"port"`
	Username        string `yaml:"username"`
	Password        string `yaml:"password"`
	From            string `yaml:"from"`
	DialTimeout     string `yaml:"dial_timeout"`
	GreetingTimeout string `yaml:"greeting_timeout"`
}

type StorageConfig struct {
	Backend    string `yaml:"backend"` // "s3" or "local"
	S3Region   string `yaml:"s3_region"`
	S3Bucket   string `yaml:"s3_bucket"`
	S3Endpoint string `yaml:"s3_endpoint"`
	S3Key      string `yaml:"s3_key"`
	S3Secret   string `yaml:"s3_secret"`
	LocalDir   string `yaml:"local_dir"`
	BaseURL    string `yaml:"base_url"`
}

type RateLimitConfig struct {
	AuthPerMinute int `yaml:"auth_per_minute"`
	AuthBurst     int `yaml:"auth_burst"`
}

type ConfigFile struct {
	App          AppConfig          `yaml:"app"`
	Database     DatabaseConfig     `yaml:"database"`
	Redis        RedisConfig        `yaml:"redis"`
	Session      SessionConfig      `yaml:"session"`
	Verification VerificationConfig `yaml:"verification"`
	SMTP         SMTPConfig         `yaml:"smtp"`
	Storage      StorageConfig      `yaml:"storage"`
	RateLimit    RateLimitConfig    `yaml:"rate_limit"`
}

type Config struct {
	Port    string
	GinMode string

	DSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SessionSecret string
	SessionIssuer string
	SessionTTL    time.Duration

	VerificationTTL    time.Duration
	VerifyMaxAttempts  int
	VerifyResendWindow time.Duration

	SMTPHost            string
	SMTPPort            int
	SMTPUsername        string
	SMTPPassword        string
	SMTPFrom            string
	SMTPDialTimeout     time.Duration
	SMTPGreetingTimeout time.Duration

	StorageBackend string
	S3Region       string
	S3Bucket       string
	S3Endpoint     string
	S3Key          string
	S3Secret       string
	LocalDir       string
	StorageBaseURL string

	AuthPerMinute int
	AuthBurst     int
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() (*Config, error) {
	return LoadFrom(env("PORTAL_CONFIG", "config/config.yml"))
}

func LoadFrom(path string) (*Config, error) {
	// .env is optional and used in local development only.
	_ = godotenv.Load()

	configFile, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	sessionTTL, err := duration(configFile.Session.TTL, 24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("invalid session TTL: %w", err)
	}
	verifyTTL, err := duration(configFile.Verification.TTL, 15*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("invalid verification TTL: %w", err)
	}
	resendWindow, err := duration(configFile.Verification.ResendWindow, time.Minute)
	if err != nil {
		return nil, fmt.Errorf("invalid verification resend window: %w", err)
	}
	dialTimeout, err := duration(configFile.SMTP.DialTimeout, 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP dial timeout: %w", err)
	}
	greetingTimeout, err := duration(configFile.SMTP.GreetingTimeout, 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP greeting timeout: %w", err)
	}

	maxAttempts := configFile.Verification.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 5
	}

	authPerMinute := configFile.RateLimit.AuthPerMinute
	if authPerMinute <= 0 {
		authPerMinute = 30
	}
	authBurst := configFile.RateLimit.AuthBurst
	if authBurst <= 0 {
		authBurst = 10
	}

	return &Config{
		Port:    fmt.Sprintf("%d", configFile.App.Port),
		GinMode: configFile.App.GinMode,

		DSN: env("PORTAL_DSN", configFile.Database.DSN),

		RedisAddr:     env("PORTAL_REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword: env("PORTAL_REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:       configFile.Redis.DB,

		SessionSecret: env("PORTAL_SESSION_SECRET", configFile.Session.Secret),
		SessionIssuer: configFile.Session.Issuer,
		SessionTTL:    sessionTTL,

		VerificationTTL:    verifyTTL,
		VerifyMaxAttempts:  maxAttempts,
		VerifyResendWindow: resendWindow,

		SMTPHost:            env("PORTAL_SMTP_HOST", configFile.SMTP.Host),
		SMTPPort:            configFile.SMTP.Port,
		SMTPUsername:        env("PORTAL_SMTP_USERNAME", configFile.SMTP.Username),
		SMTPPassword:        env("PORTAL_SMTP_PASSWORD", configFile.SMTP.Password),
		SMTPFrom:            configFile.SMTP.From,
		SMTPDialTimeout:     dialTimeout,
		SMTPGreetingTimeout: greetingTimeout,

		StorageBackend: configFile.Storage.Backend,
		S3Region:       configFile.Storage.S3Region,
		S3Bucket:       configFile.Storage.S3Bucket,
		S3Endpoint:     configFile.Storage.S3Endpoint,
		S3Key:          env("PORTAL_S3_KEY", configFile.Storage.S3Key),
		S3Secret:       env("PORTAL_S3_SECRET", configFile.Storage.S3Secret),
		LocalDir:       configFile.Storage.LocalDir,
		StorageBaseURL: configFile.Storage.BaseURL,

		AuthPerMinute: authPerMinute,
		AuthBurst:     authBurst,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}

func duration(s string, def time.Duration) (time.Duration, error) {
	if s == "" {
		return def, nil
	}
	return time.ParseDuration(s)
}
