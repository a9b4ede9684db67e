// Package ctxlog 通过 context.Context 传递 slog.Logger。
package ctxlog

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// key 为非导出类型，避免与其他包的 context key 冲突。
type key struct{}

var loggerKey = key{}

// WithLogger 返回携带 logger 的新 context。
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext 取出 context 中的 logger，没有时返回 slog.Default()。
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// New 创建写入 writer 的文本 logger。
// level 取值 debug/info/warn/error，大小写不敏感；无法识别时返回 false。
func New(writer io.Writer, level string) (*slog.Logger, bool) {
	var parsed slog.Level
	if err := parsed.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, false
	}
	return slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{Level: parsed})), true
}
