// Package logger provides the process-wide structured logger (zerodha/logf),
// generalising the teacher's singleton-plus-file-sink pattern to the BEM
// core's own output directory.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/user"
	"path/filepath"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zerodha/logf"
)

var (
	globalLogger logf.Logger
	once         sync.Once
	logFile      *os.File
	defaultOpts  = logf.Opts{
		EnableCaller:    true,
		TimestampFormat: "15:04:05",
		EnableColor:     false,
		Level:           logf.InfoLevel,
	}
	// UserCurrentFunc is overridable for tests that need to avoid touching
	// the real home directory.
	UserCurrentFunc = user.Current
)

// GetDefaultOpts returns a copy of the default logger options.
func GetDefaultOpts() logf.Opts {
	return defaultOpts
}

// InitFileLogger sets up the global logger with both stdout and a
// timestamped file under ~/.bemcore/logs.
func InitFileLogger(configuredLevel string, appName string) (*logf.Logger, error) {
	usr, err := UserCurrentFunc()
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	logsDir := filepath.Join(usr.HomeDir, ".bemcore", "logs")

	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory '%s': %w", logsDir, err)
	}

	currentTime := time.Now().Format("2006-01-02_15-04-05")
	logFileName := fmt.Sprintf("%s-%s.log", appName, currentTime)
	fullLogFilePath := filepath.Join(logsDir, logFileName)

	lg := GetLogger(configuredLevel, fullLogFilePath)
	lg.Info("file logger initialized", "app", appName, "path", fullLogFilePath, "level", configuredLevel)
	return lg, nil
}

// GetLogger returns the singleton logger instance. level and filePath are
// only effective on the first call that initializes it.
func GetLogger(level string, filePath ...string) *logf.Logger {
	once.Do(func() {
		currentOpts := GetDefaultOpts()
		var logLevel logf.Level
		switch level {
		case "debug":
			logLevel = logf.DebugLevel
		case "info":
			logLevel = logf.InfoLevel
		case "warn":
			logLevel = logf.WarnLevel
		case "error":
			logLevel = logf.ErrorLevel
		case "fatal":
			logLevel = logf.FatalLevel
		default:
			logLevel = currentOpts.Level
		}
		currentOpts.Level = logLevel

		writers := []io.Writer{os.Stdout}

		if len(filePath) > 0 && filePath[0] != "" {
			var err error
			logFile, err = os.OpenFile(filePath[0], os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
			if err != nil {
				log.Printf("[logger] failed to open log file '%s': %v, continuing with stdout only", filePath[0], err)
			} else {
				writers = append(writers, logFile)
			}
		}
		currentOpts.Writer = io.MultiWriter(writers...)
		globalLogger = logf.New(currentOpts)
	})
	return &globalLogger
}

// LoggingMiddleware returns a Gin middleware that logs every HTTP request
// bemserver handles.
func LoggingMiddleware(log *logf.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery
		method := c.Request.Method
		clientIP := c.ClientIP()

		c.Next()

		log.Info("http request",
			"status", c.Writer.Status(),
			"method", method,
			"path", path,
			"query", query,
			"ip", clientIP,
			"latency", time.Since(start).String(),
		)
	}
}

// Reset clears the logger singleton; used by tests.
func Reset() {
	once = sync.Once{}
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	globalLogger = logf.Logger{}
}
