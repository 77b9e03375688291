package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/rs/cors"
	"github.com/shouni/gemini-relay/pkg/generator"
	"golang.org/x/sync/errgroup"
)

// Options は Server の動作パラメータです。
type Options struct {
	Model           string // /health で報告するモデル名
	MaxBodyBytes    int64
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Server は /ask/text, /ask/image, /health を公開する HTTP 層です。
// リクエスト間で共有する可変状態は持ちません。
type Server struct {
	text    generator.TextAsker
	image   generator.ImageAsker
	opts    Options
	handler http.Handler
}

// New は依存関係を注入して Server を初期化します。
func New(text generator.TextAsker, image generator.ImageAsker, opts Options) (*Server, error) {
	if text == nil {
		return nil, fmt.Errorf("text (TextAsker) is required")
	}
	if image == nil {
		return nil, fmt.Errorf("image (ImageAsker) is required")
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 1 << 20
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}

	s := &Server{text: text, image: image, opts: opts}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /ask/text", s.handleAskText)
	mux.HandleFunc("POST /ask/image", s.handleAskImage)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.handler = corsPolicy().Handler(withRequestID(withAccessLog(mux)))
	return s, nil
}

// Handler はミドルウェア込みのルートハンドラーを返します。
func (s *Server) Handler() http.Handler { return s.handler }

// corsPolicy は任意のオリジン・ヘッダーを認め、資格情報付きリクエストも許可します。
// 資格情報を許可するため Access-Control-Allow-Origin にはリクエストのオリジンを返します。
func corsPolicy() *cors.Cors {
	return cors.New(cors.Options{
		AllowOriginFunc: func(string) bool { return true },
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
			http.MethodDelete, http.MethodHead, http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{requestIDHeader},
		AllowCredentials: true,
	})
}

// Run は addr で待ち受け、ctx が終了したらグレースフルシャットダウンします。
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      s.opts.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("リレーサーバーを起動します", "addr", addr, "model", s.opts.Model)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen %s: %w", addr, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeoutCause(context.WithoutCancel(gctx), s.opts.ShutdownTimeout, errors.New("relay shutdown timeout"))
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("グレースフルシャットダウンに失敗しました", "error", err)
			return srv.Close()
		}
		slog.Info("リレーサーバーを停止しました")
		return nil
	})
	return g.Wait()
}
