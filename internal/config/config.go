package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

type MQConfig struct {
	URL string `yaml:"url"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

// AdminConfig carries the single admin credential and the secret used
// to sign the admin session token.
type AdminConfig struct {
	PasswordHash string `yaml:"password_hash"`
	JWTSecret    string `yaml:"jwt_secret"`
}

type MailConfig struct {
	SendGridAPIKey string `yaml:"sendgrid_api_key"`
	FromName       string `yaml:"from_name"`
	FromEmail      string `yaml:"from_email"`
	CoupleEmail    string `yaml:"couple_email"`
}

// ContentConfig locates the JSON documents and the uploaded photo files.
type ContentConfig struct {
	Dir       string `yaml:"dir"`
	PhotosDir string `yaml:"photos_dir"`
}

type RateLimitConfig struct {
	Requests      int `yaml:"requests"`
	WindowSeconds int `yaml:"window_seconds"`
}

func (c RateLimitConfig) Window() time.Duration {
	return time.Duration(c.WindowSeconds) * time.Second
}

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	DB        DBConfig        `yaml:"db"`
	MQ        MQConfig        `yaml:"mq"`
	Redis     RedisConfig     `yaml:"redis"`
	Admin     AdminConfig     `yaml:"admin"`
	Mail      MailConfig      `yaml:"mail"`
	Content   ContentConfig   `yaml:"content"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// Load reads config/base.yaml, overlays config/<CONFIG_ENV>.yaml when it
// exists, then applies environment variable overrides.
func Load() *Config {
	configDir := getEnv("CONFIG_DIR", "config")

	var cfg Config
	if err := decodeFile(filepath.Join(configDir, "base.yaml"), &cfg); err != nil {
		log.Fatalf("failed to load base config: %v", err)
	}

	if env := os.Getenv("CONFIG_ENV"); env != "" && env != "base" {
		envFile := filepath.Join(configDir, env+".yaml")
		if _, err := os.Stat(envFile); err == nil {
			if err := decodeFile(envFile, &cfg); err != nil {
				log.Fatalf("failed to load %s config: %v", env, err)
			}
		}
	}

	overrideFromEnv(&cfg)

	if cfg.Content.Dir == "" {
		cfg.Content.Dir = "data/content"
	}
	if cfg.Content.PhotosDir == "" {
		cfg.Content.PhotosDir = "data/photos"
	}
	if cfg.RateLimit.Requests == 0 {
		cfg.RateLimit.Requests = 20
	}
	if cfg.RateLimit.WindowSeconds == 0 {
		cfg.RateLimit.WindowSeconds = 60
	}

	return &cfg
}

func decodeFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return yaml.NewDecoder(f).Decode(cfg)
}

func overrideFromEnv(cfg *Config) {
	if port := os.Getenv("SERVER_PORT"); port != "" {
		cfg.Server.Port = port
	}

	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.DB.Host = host
	}
	if port := os.Getenv("DB_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.DB.Port = p
		}
	}
	if user := os.Getenv("DB_USER"); user != "" {
		cfg.DB.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		cfg.DB.Password = password
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		cfg.DB.Name = name
	}

	if url := os.Getenv("MQ_URL"); url != "" {
		cfg.MQ.URL = url
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		cfg.Redis.Password = password
	}

	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" {
		cfg.Admin.PasswordHash = hash
	}
	if secret := os.Getenv("ADMIN_JWT_SECRET"); secret != "" {
		cfg.Admin.JWTSecret = secret
	}

	if key := os.Getenv("SENDGRID_API_KEY"); key != "" {
		cfg.Mail.SendGridAPIKey = key
	}
	if email := os.Getenv("NOTIFICATION_EMAIL"); email != "" {
		cfg.Mail.CoupleEmail = email
	}

	if dir := os.Getenv("CONTENT_DIR"); dir != "" {
		cfg.Content.Dir = dir
	}
	if dir := os.Getenv("PHOTOS_DIR"); dir != "" {
		cfg.Content.PhotosDir = dir
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
