package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/shouni/gemini-relay/pkg/config"
	"github.com/shouni/gemini-relay/pkg/generator"
	"github.com/shouni/gemini-relay/pkg/logging"
	"github.com/shouni/gemini-relay/pkg/server"
	"google.golang.org/genai"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "gemini-relay: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	aiClient := newContentGenerator(ctx, cfg)

	text, err := generator.NewGeminiTextGenerator(aiClient, cfg.TextOptions())
	if err != nil {
		return err
	}
	image, err := generator.NewGeminiImageGenerator(aiClient, cfg.ImageOptions())
	if err != nil {
		return err
	}

	srv, err := server.New(text, image, server.Options{
		Model:           cfg.TextModel,
		MaxBodyBytes:    cfg.MaxBodyBytes,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	})
	if err != nil {
		return err
	}

	slog.Info("設定を読み込みました",
		"text_model", cfg.TextModel,
		"image_model", cfg.ImageModel,
		"temperature", cfg.Temperature,
		"max_output_tokens", cfg.MaxOutputTokens,
		"api_key_set", cfg.HasAPIKey(),
	)
	return srv.Run(ctx, cfg.Addr)
}

// newContentGenerator は Gemini API クライアントを生成します。
// 生成に失敗しても起動は続け、各呼び出しがそのエラーで失敗するようにします。
func newContentGenerator(ctx context.Context, cfg *config.Config) generator.ContentGenerator {
	if !cfg.HasAPIKey() {
		slog.Warn("GEMINI_API_KEY が設定されていません。/ask/* は失敗します")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		slog.Warn("Geminiクライアントの作成に失敗しました", "error", err)
		return generator.Unavailable{Err: err}
	}
	return client.Models
}
