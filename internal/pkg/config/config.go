package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/rnjstp9754-jpg/swing-screener/internal/strategy"
)

// Config represents the application configuration
// SSOT: 모든 설정은 .env 파일에서 로드됨
type Config struct {
	Logging  LoggingConfig
	Telegram TelegramConfig
	Screener ScreenerConfig
}

type LoggingConfig struct {
	Level         string
	Format        string
	FileEnabled   bool
	FilePath      string
	RotationSize  int
	RetentionDays int
}

type TelegramConfig struct {
	BotToken string
	ChatID   string
}

// Enabled 토큰과 채팅 ID가 모두 설정된 경우에만 알림 사용
func (t TelegramConfig) Enabled() bool {
	return t.BotToken != "" && t.ChatID != ""
}

type ScreenerConfig struct {
	Market       string // US | KR
	Strategy     string // 프리셋 이름, 빈 값이면 시장 기본값
	Workers      int
	LookbackDays int
}

// Load loads configuration from .env file
// SSOT: .env 파일이 모든 설정의 유일한 진실 소스
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env 파일이 없어도 계속 진행 (환경 변수에서 로드 시도)
		fmt.Println("Warning: .env file not found, using environment variables")
	}

	config := &Config{
		Logging: LoggingConfig{
			Level:         getEnv("LOG_LEVEL", "info"),
			Format:        getEnv("LOG_FORMAT", "pretty"),
			FileEnabled:   getEnvBool("LOG_FILE_ENABLED", false),
			FilePath:      getEnv("LOG_FILE_PATH", "logs"),
			RotationSize:  getEnvInt("LOG_ROTATION_MB", 50),
			RetentionDays: getEnvInt("LOG_RETENTION_DAYS", 14),
		},
		Telegram: TelegramConfig{
			BotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
			ChatID:   getEnv("TELEGRAM_CHAT_ID", ""),
		},
		Screener: ScreenerConfig{
			Market:       getEnv("SCREENER_MARKET", "US"),
			Strategy:     getEnv("SCREENER_STRATEGY", ""),
			Workers:      getEnvInt("SCREENER_WORKERS", 4),
			LookbackDays: getEnvInt("SCREENER_LOOKBACK_DAYS", 500),
		},
	}

	return config, nil
}

// ApplyStrategyFile overlays YAML threshold overrides on a preset.
// Only the keys present in the file change; everything else keeps the
// preset's value.
func ApplyStrategyFile(path string, cfg *strategy.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read strategy file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse strategy file %s: %w", path, err)
	}
	return nil
}

// getEnv gets environment variable with fallback
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
