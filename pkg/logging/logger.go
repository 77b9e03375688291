package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ParseLevel は debug|info|warn|error を slog.Level に変換します。
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(s)))); err != nil {
		return slog.LevelInfo, fmt.Errorf("不明なログレベルです: %q", s)
	}
	return level, nil
}

// New は形式 (text|json) とレベルを指定して slog.Logger を生成します。
func New(w io.Writer, level, format string) (*slog.Logger, error) {
	lv, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lv}

	switch strings.ToLower(format) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("不明なログ形式です: %q", format)
	}
}
