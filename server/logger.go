package server

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log 是全局可用的 SugaredLogger，InitLogger 之前为空实现
var Log = zap.NewNop().Sugar()

// InitLogger 初始化全局日志到本地文件（支持滚动）
func InitLogger(filePath, level string, stderr bool) error {
	l, err := NewLogger(filePath, level, stderr)
	if err != nil {
		return err
	}
	Log = l
	return nil
}

// NewLogger 构造写入滚动文件的 zap 日志，stderr 为真时同时输出到终端
// filePath: 日志文件路径，如 "app.log"
func NewLogger(filePath, level string, stderr bool) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	// 文件滚动策略：10MB 每文件，保留3个备份，保留7天
	lj := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
		Compress:   false,
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(lj), lvl)
	if stderr {
		console := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), lvl)
		core = zapcore.NewTee(core, console)
	}

	// 添加调用者信息（文件:行号）
	return zap.New(core, zap.AddCaller()).Sugar(), nil
}

// SyncLogger 清理和同步缓冲
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
