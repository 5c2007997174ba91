// Package xlog provides a small structured-logging facade over zerolog
// so call sites in the rest of the module never import zerolog
// directly. Logging here is diagnostic only: candidate rejection
// during random-prime search and Miller-Rabin/Lucas round failures
// (package prime). No arithmetic result depends on
// a log call executing, and a Discard logger is always a valid choice.
package xlog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Field is a single structured key/value pair attached to a log line.
type Field struct {
	Key   string
	Value any
}

func String(key, val string) Field  { return Field{Key: key, Value: val} }
func Int(key string, val int) Field { return Field{Key: key, Value: val} }
func Uint64(key string, val uint64) Field {
	return Field{Key: key, Value: val}
}
func Bool(key string, val bool) Field { return Field{Key: key, Value: val} }
func Err(err error) Field             { return Field{Key: "error", Value: err} }

// Logger is the interface the rest of the module programs against.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, err error, fields ...Field)
}

// ZerologAdapter implements Logger over a zerolog.Logger.
type ZerologAdapter struct {
	zl zerolog.Logger
}

// NewZerologAdapter wraps an already-configured zerolog.Logger.
func NewZerologAdapter(zl zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{zl: zl}
}

// NewLogger builds a component-tagged JSON logger writing to w, at the
// level named by the BIGNUM_LOG_LEVEL environment variable (default
// "info"), read directly from the environment by this package.
func NewLogger(w io.Writer, component string) *ZerologAdapter {
	zl := zerolog.New(w).With().Timestamp().Str("component", component).Logger()
	zl = zl.Level(levelFromEnv())
	return &ZerologAdapter{zl: zl}
}

// NewDefaultLogger writes to stderr, tagged "bignum".
func NewDefaultLogger() *ZerologAdapter {
	return NewLogger(os.Stderr, "bignum")
}

func levelFromEnv() zerolog.Level {
	switch os.Getenv("BIGNUM_LOG_LEVEL") {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

func (a *ZerologAdapter) applyFields(ev *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			ev = ev.Str(f.Key, v)
		case int:
			ev = ev.Int(f.Key, v)
		case uint64:
			ev = ev.Uint64(f.Key, v)
		case bool:
			ev = ev.Bool(f.Key, v)
		case error:
			ev = ev.AnErr(f.Key, v)
		default:
			ev = ev.Interface(f.Key, v)
		}
	}
	return ev
}

func (a *ZerologAdapter) Debug(msg string, fields ...Field) {
	a.applyFields(a.zl.Debug(), fields).Msg(msg)
}

func (a *ZerologAdapter) Info(msg string, fields ...Field) {
	a.applyFields(a.zl.Info(), fields).Msg(msg)
}

func (a *ZerologAdapter) Warn(msg string, fields ...Field) {
	a.applyFields(a.zl.Warn(), fields).Msg(msg)
}

func (a *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	a.applyFields(a.zl.Error().Err(err), fields).Msg(msg)
}

// discardLogger drops every call; the zero value of Discard is ready
// to use and is the default for library code that never calls
// SetDefault.
type discardLogger struct{}

func (discardLogger) Debug(string, ...Field)        {}
func (discardLogger) Info(string, ...Field)         {}
func (discardLogger) Warn(string, ...Field)         {}
func (discardLogger) Error(string, error, ...Field) {}

// Discard is a Logger that does nothing; it is the package default.
var Discard Logger = discardLogger{}

var current = Discard

// SetDefault installs l as the logger returned by Default. Library
// code should call this once at program startup (see cmd/bnconsole);
// internal packages never call it themselves.
func SetDefault(l Logger) { current = l }

// Default returns the currently installed default logger (Discard
// until SetDefault is called).
func Default() Logger { return current }
