package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
)

const (
	DEBUG = "DEBUG"
	INFO  = "INFO"
	WARN  = "WARN"
	ERROR = "ERROR"
)

type contextKey string

// SessionKey context key holding import session id
const SessionKey = contextKey("SessionId")

// Logger represents leveled structured logger
type Logger interface {
	IsDebugEnabled() bool
	Debugc(ctx context.Context, msg string, args ...any)
	Infoc(ctx context.Context, msg string, args ...any)
	Warnc(ctx context.Context, msg string, args ...any)
	Errorc(ctx context.Context, msg string, args ...any)
}

type slogger struct {
	logger *slog.Logger
	level  slog.Level
}

// New creates a structured logger using the JSON Handler.
func New(level string, dest io.Writer) Logger {
	if dest == nil {
		dest = os.Stdout
	}
	logLevel := slog.LevelInfo
	switch strings.ToUpper(level) {
	case DEBUG:
		logLevel = slog.LevelDebug
	case WARN:
		logLevel = slog.LevelWarn
	case ERROR:
		logLevel = slog.LevelError
	}

	handler := slog.NewJSONHandler(dest, &slog.HandlerOptions{
		AddSource: false,
		Level:     logLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				a.Key = "timestamp"
			}
			return a
		},
	})
	return &slogger{logger: slog.New(handler), level: logLevel}
}

// WithSession returns context carrying session id
func WithSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, SessionKey, sessionID)
}

func (s *slogger) IsDebugEnabled() bool {
	return s.level.Level() <= slog.LevelDebug
}

func (s *slogger) isEnabled(level slog.Level) bool {
	return s.level.Level() <= level
}

// getCallerInfo uses runtime to get the caller's program counter
// and extract info from the stack frame to get the function name, etc.
func (s *slogger) getCallerInfo() []any {
	callers := make([]uintptr, 1)
	count := runtime.Callers(4, callers[:])
	if count == 0 {
		return nil
	}
	frames := runtime.CallersFrames(callers)
	frame, _ := frames.Next()
	return []any{
		"function", frame.Function, "file", frame.File, "line", frame.Line,
	}
}

// getContextValues retrieves "known" logging values from the Context.
func (s *slogger) getContextValues(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}
	var values []any
	if sessionID := ctx.Value(SessionKey); sessionID != nil {
		values = append(values, string(SessionKey), sessionID)
	}
	return values
}

func (s *slogger) log(ctx context.Context, level slog.Level, msg string, args []any) {
	if !s.isEnabled(level) {
		return
	}
	attrs := s.getCallerInfo()
	attrs = append(attrs, s.getContextValues(ctx)...)
	attrs = append(attrs, args...)
	if ctx == nil {
		ctx = context.Background()
	}
	s.logger.Log(ctx, level, msg, attrs...)
}

// Debugc wraps a call to slog.Debug, inserting details for the calling function,
// and retrieving known values from the context object.
func (s *slogger) Debugc(ctx context.Context, msg string, args ...any) {
	s.log(ctx, slog.LevelDebug, msg, args)
}

// Infoc wraps a call to slog.Info, inserting details for the calling function,
// and retrieving known values from the context object.
func (s *slogger) Infoc(ctx context.Context, msg string, args ...any) {
	s.log(ctx, slog.LevelInfo, msg, args)
}

// Warnc wraps a call to slog.Warn, inserting details for the calling function,
// and retrieving known values from the context object.
func (s *slogger) Warnc(ctx context.Context, msg string, args ...any) {
	s.log(ctx, slog.LevelWarn, msg, args)
}

// Errorc wraps a call to slog.Error, inserting details for the calling function,
// and retrieving known values from the context object.
func (s *slogger) Errorc(ctx context.Context, msg string, args ...any) {
	s.log(ctx, slog.LevelError, msg, args)
}

type nop struct{}

func (n nop) IsDebugEnabled() bool { return false }

func (n nop) Debugc(_ context.Context, _ string, _ ...any) {}

func (n nop) Infoc(_ context.Context, _ string, _ ...any) {}

func (n nop) Warnc(_ context.Context, _ string, _ ...any) {}

func (n nop) Errorc(_ context.Context, _ string, _ ...any) {}

// Nop returns logger discarding all messages
func Nop() Logger {
	return nop{}
}
