// Package logger sets up the global zap logger and the gin middlewares built on it.
package logger

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"cadastro_api/internal/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Init builds the logger described by cfg and installs it as zap's global logger.
// In "dev" (or gin debug) mode lines go to the rotated file and to stdout;
// otherwise only to the file, JSON encoded.
func Init(cfg *config.LogConfig, appName, mode string) (err error) {
	if cfg == nil {
		return fmt.Errorf("logger.Init received nil config")
	}
	applyDefaults(cfg)

	var level zapcore.Level
	if err = level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}
	if dir := filepath.Dir(cfg.FileName); dir != "" {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
	}

	fileCore := zapcore.NewCore(getEncoder(), getLogWriter(cfg), level)

	var core zapcore.Core
	if mode == "dev" || mode == gin.DebugMode {
		consoleEncoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		consoleCore := zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stdout), zapcore.DebugLevel)
		core = zapcore.NewTee(fileCore, consoleCore)
	} else {
		core = fileCore
	}

	lg := zap.New(core, zap.AddCaller(), zap.Fields(zap.String("app", appName)))
	zap.ReplaceGlobals(lg)
	return nil
}

func applyDefaults(cfg *config.LogConfig) {
	if cfg.LogPath == "" {
		cfg.LogPath = "logs"
	}
	if cfg.FileName == "" {
		cfg.FileName = cfg.LogPath + "/app.log"
	}
	if cfg.MaxSize == 0 {
		cfg.MaxSize = 100
	}
	if cfg.MaxBackups == 0 {
		cfg.MaxBackups = 5
	}
	if cfg.MaxAge == 0 {
		cfg.MaxAge = 30
	}
	if cfg.Level == "" {
		cfg.Level = "info"
	}
}

// getLogWriter rotates the log file with lumberjack.
func getLogWriter(cfg *config.LogConfig) zapcore.WriteSyncer {
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.FileName,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
	})
}

func getEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewJSONEncoder(encoderConfig)
}

// GinLogger logs one line per request through zap instead of gin's default writer.
func GinLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		zap.L().Info("http request",
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.String("ip", c.ClientIP()),
			zap.String("user-agent", c.Request.UserAgent()),
			zap.Duration("cost", time.Since(start)),
			zap.String("errors", c.Errors.ByType(gin.ErrorTypePrivate).String()),
		)
	}
}

// GinRecovery turns a handler panic into a 500 and a log line.
// A broken connection is only logged since the client is gone anyway.
func GinRecovery(stack bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			var brokenPipe bool
			if err, ok := rec.(error); ok {
				brokenPipe = isBrokenPipeError(err)
			}

			httpRequest, _ := httputil.DumpRequest(c.Request, false)
			fields := []zap.Field{
				zap.Any("error", rec),
				zap.String("request", string(httpRequest)),
			}

			if brokenPipe {
				zap.L().Error("broken pipe", append(fields, zap.String("path", c.Request.URL.Path))...)
				_ = c.Error(rec.(error))
				c.Abort()
				return
			}

			if stack {
				fields = append(fields, zap.String("stack", string(debug.Stack())))
			}
			zap.L().Error("[Recovery from panic]", fields...)
			c.AbortWithStatus(http.StatusInternalServerError)
		}()
		c.Next()
	}
}

func isBrokenPipeError(err error) bool {
	if err == nil {
		return false
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		var syscallErr *os.SyscallError
		if errors.As(opErr.Err, &syscallErr) {
			return hasBrokenPipeText(syscallErr.Error())
		}
	}
	return hasBrokenPipeText(err.Error())
}

func hasBrokenPipeText(msg string) bool {
	msg = strings.ToLower(msg)
	return strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "connection reset by peer")
}
