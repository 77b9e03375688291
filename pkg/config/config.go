package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shouni/gemini-relay/pkg/generator"
)

// Config はリレーのプロセス全体の設定です。起動時に一度だけ読み込み、以降は変更しません。
type Config struct {
	APIKey string `env:"GEMINI_API_KEY"` // 未設定でも起動はする (呼び出し時に SDK のエラーになる)
	Addr   string `env:"RELAY_ADDR"`

	TextModel       string  `env:"GEMINI_TEXT_MODEL"` // /health でも報告する
	ImageModel      string  `env:"GEMINI_IMAGE_MODEL"`
	Temperature     float32 `env:"GEMINI_TEMPERATURE"`
	MaxOutputTokens int32   `env:"GEMINI_MAX_OUTPUT_TOKENS"`

	MaxBodyBytes    int64         `env:"RELAY_MAX_BODY_BYTES"`
	WriteTimeout    time.Duration `env:"RELAY_WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `env:"RELAY_SHUTDOWN_TIMEOUT"`

	LogLevel  string `env:"LOG_LEVEL"`  // debug|info|warn|error
	LogFormat string `env:"LOG_FORMAT"` // text|json
}

// Defaults は既定値を設定した Config を返します。
// これらの値は .env と環境変数で上書きされます。
func Defaults() *Config {
	return &Config{
		Addr:            ":8000",
		TextModel:       generator.DefaultTextModel,
		ImageModel:      generator.DefaultImageModel,
		Temperature:     generator.DefaultTemperature,
		MaxOutputTokens: generator.DefaultMaxOutputTokens,
		MaxBodyBytes:    1 << 20,
		WriteTimeout:    5 * time.Minute,
		ShutdownTimeout: 10 * time.Second,
		LogLevel:        "info",
		LogFormat:       "text",
	}
}

// Load は .env (存在すれば) とプロセス環境から設定を読み込みます。
func Load() (*Config, error) {
	// .env は任意
	_ = godotenv.Load()

	cfg := Defaults()
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("環境変数の解析に失敗しました: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFrom は与えられた環境変数マップだけから設定を読み込みます。
func LoadFrom(environ map[string]string) (*Config, error) {
	cfg := Defaults()
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("環境変数の解析に失敗しました: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate は設定値の範囲を検証します。問題はまとめて返します。
func (c *Config) Validate() error {
	var errs []error
	if c.Addr == "" {
		errs = append(errs, errors.New("RELAY_ADDR must not be empty"))
	}
	if c.TextModel == "" {
		errs = append(errs, errors.New("GEMINI_TEXT_MODEL must not be empty"))
	}
	if c.ImageModel == "" {
		errs = append(errs, errors.New("GEMINI_IMAGE_MODEL must not be empty"))
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		errs = append(errs, fmt.Errorf("GEMINI_TEMPERATURE must be within [0, 2], got %v", c.Temperature))
	}
	if c.MaxOutputTokens <= 0 {
		errs = append(errs, fmt.Errorf("GEMINI_MAX_OUTPUT_TOKENS must be positive, got %d", c.MaxOutputTokens))
	}
	if c.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("RELAY_MAX_BODY_BYTES must be positive, got %d", c.MaxBodyBytes))
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.LogFormat))
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be debug, info, warn or error, got %q", c.LogLevel))
	}
	return errors.Join(errs...)
}

// HasAPIKey は認証情報が設定されているかを返します。
func (c *Config) HasAPIKey() bool { return strings.TrimSpace(c.APIKey) != "" }

// TextOptions はテキストジェネレーター用のパラメータを返します。
func (c *Config) TextOptions() generator.TextOptions {
	return generator.TextOptions{
		Model:           c.TextModel,
		Temperature:     c.Temperature,
		MaxOutputTokens: c.MaxOutputTokens,
	}
}

// ImageOptions は画像ジェネレーター用のパラメータを返します。
func (c *Config) ImageOptions() generator.ImageOptions {
	return generator.ImageOptions{
		Model:       c.ImageModel,
		Temperature: c.Temperature,
	}
}
