package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func parseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Logger writes one JSON object per line. Derived loggers share the writer
// and its mutex.
type Logger struct {
	level     Level
	out       io.Writer
	mu        *sync.Mutex
	component string
}

func NewLogger(levelStr string) *Logger {
	return NewLoggerWithWriter(levelStr, os.Stdout)
}

func NewLoggerWithWriter(levelStr string, w io.Writer) *Logger {
	return &Logger{
		level: parseLevel(levelStr),
		out:   w,
		mu:    &sync.Mutex{},
	}
}

func (l *Logger) WithComponent(name string) *Logger {
	clone := *l
	clone.component = name
	return &clone
}

func (l *Logger) Debug(format string, args ...any) { l.logf(LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...any)  { l.logf(LevelInfo, format, args...) }
func (l *Logger) Warn(format string, args ...any)  { l.logf(LevelWarn, format, args...) }
func (l *Logger) Error(format string, args ...any) { l.logf(LevelError, format, args...) }

func (l *Logger) Debugw(msg string, fields map[string]any) { l.emit(LevelDebug, msg, fields) }
func (l *Logger) Infow(msg string, fields map[string]any)  { l.emit(LevelInfo, msg, fields) }
func (l *Logger) Warnw(msg string, fields map[string]any)  { l.emit(LevelWarn, msg, fields) }
func (l *Logger) Errorw(msg string, fields map[string]any) { l.emit(LevelError, msg, fields) }

func (l *Logger) Fatal(format string, args ...any) {
	l.logf(LevelError, format, args...)
	os.Exit(1)
}

func (l *Logger) logf(level Level, format string, args ...any) {
	l.emit(level, fmt.Sprintf(format, args...), nil)
}

func (l *Logger) emit(level Level, msg string, fields map[string]any) {
	if level < l.level {
		return
	}

	rec := make(map[string]any, len(fields)+4)
	rec["ts"] = time.Now().UTC().Format(time.RFC3339Nano)
	rec["level"] = level.String()
	rec["msg"] = msg
	if l.component != "" {
		rec["component"] = l.component
	}
	for k, v := range fields {
		rec[k] = v
	}

	line, err := json.Marshal(rec)
	if err != nil {
		line = []byte(fmt.Sprintf(`{"level":"error","msg":"log marshal failed: %v"}`, err))
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.out.Write(append(line, '\n'))
}
