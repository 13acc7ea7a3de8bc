// Package log holds the process wide structured logger of menu.
package log

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/motemen/go-loghttp"
)

// EnvDebug enables debug logging when set to any non-empty value
const EnvDebug = "MENU_DEBUG"

var (
	// Logger is the global logger instance
	Logger *slog.Logger

	level = new(slog.LevelVar)
)

// InitLogger writes text logs to stderr, at debug level if MENU_DEBUG is set
func InitLogger() {
	level.Set(slog.LevelInfo)
	if os.Getenv(EnvDebug) != "" {
		level.Set(slog.LevelDebug)
	}

	Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(Logger)

	loghttp.DefaultTransport.LogRequest = func(req *http.Request) {
		Debug("HTTP request",
			"method", req.Method,
			"url", req.URL.String(),
		)
	}

	loghttp.DefaultTransport.LogResponse = func(resp *http.Response) {
		Debug("HTTP response",
			"method", resp.Request.Method,
			"url", resp.Request.URL.String(),
			"status_code", resp.StatusCode,
			"content_length", resp.ContentLength,
		)
	}
}

func init() {
	InitLogger()
}

// SetDebug switches debug logging on or off at runtime
func SetDebug(on bool) {
	if on {
		level.Set(slog.LevelDebug)
		return
	}
	level.Set(slog.LevelInfo)
}

// Transport returns a round tripper that logs every request and response at debug level
func Transport() http.RoundTripper {
	return loghttp.DefaultTransport
}

func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}
