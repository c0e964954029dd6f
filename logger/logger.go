package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// 日志级别映射
var logLevelMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

// Logger 日志接口
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	Sync() error
}

type logger struct {
	sugar *zap.SugaredLogger
}

// NewLogger 创建日志实例。日志输出到 stderr, logsDir 非空时同时写入按日期命名的滚动文件。
func NewLogger(logsDir, level string) (Logger, error) {
	encoder := zapcore.NewJSONEncoder(encoderConfig())

	logLevel, exists := logLevelMap[strings.ToLower(level)]
	if !exists {
		logLevel = zapcore.InfoLevel
	}

	cores := []zapcore.Core{zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), logLevel)}

	if logsDir != "" {
		if err := os.MkdirAll(logsDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory %s: %w", logsDir, err)
		}
		logFileName := filepath.Join(logsDir, fmt.Sprintf("autotemplate-%s.log", time.Now().Format("20060102")))
		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:  logFileName,
			MaxSize:   100, // megabytes
			MaxAge:    5,   // days
			Compress:  true,
			LocalTime: true,
		})
		cores = append(cores, zapcore.NewCore(encoder, fileWriter, logLevel))
	}

	return FromZap(zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1))), nil
}

// FromZap 包装一个已有的 zap.Logger, 测试中配合 zaptest/observer 使用
func FromZap(l *zap.Logger) Logger {
	return &logger{sugar: l.Sugar()}
}

// NewNop 返回丢弃所有输出的日志实例
func NewNop() Logger {
	return FromZap(zap.NewNop())
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000"),
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

func (l *logger) Debug(format string, args ...any) { l.sugar.Debugf(format, args...) }

func (l *logger) Info(format string, args ...any) { l.sugar.Infof(format, args...) }

func (l *logger) Warn(format string, args ...any) { l.sugar.Warnf(format, args...) }

func (l *logger) Error(format string, args ...any) { l.sugar.Errorf(format, args...) }

func (l *logger) Sync() error { return l.sugar.Sync() }
