package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"snakearena/server"
)

// SnakeArena 入口：启动 HTTP + WebSocket 服务，每个房间一局贪吃蛇
func main() {
	cfg := server.DefaultConfig()
	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "server listen address, e.g. :8080")
	flag.StringVar(&cfg.LogFile, "log", cfg.LogFile, "log file path")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug|info|warn|error")
	flag.BoolVar(&cfg.LogStderr, "log-stderr", cfg.LogStderr, "also log to stderr")
	flag.StringVar(&cfg.WebDir, "web", cfg.WebDir, "static web client directory")
	flag.StringVar(&cfg.HighScoreFile, "highscores", cfg.HighScoreFile, "high score file")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "grid width in cells")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "grid height in cells")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "food placement seed, 0 for random")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}
	// 使用第三方 zap 日志库写入日志文件（带滚动）
	if err := server.InitLogger(cfg.LogFile, cfg.LogLevel, cfg.LogStderr); err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer server.SyncLogger()

	rm := server.SetupRoomManager(cfg)
	// 先预创建一个默认房间，便于快速试跑
	if _, err := rm.GetOrCreateRoom(server.DefaultRoomID); err != nil {
		server.Log.Fatalf("create default room: %v", err)
	}

	mux := http.NewServeMux()
	rm.Routes(mux)
	// 前后端分离：将 / 映射到 web 目录的静态资源
	mux.Handle("/", http.FileServer(http.Dir(cfg.WebDir)))

	srv := &http.Server{Addr: cfg.Addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		server.Log.Infof("SnakeArena listening on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			server.Log.Fatalf("listen: %v", err)
		}
	}()

	// 优雅退出（Ctrl+C）：先停 HTTP，再结束所有进行中的对局以保存最高分
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	server.Log.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		server.Log.Warnf("shutdown: %v", err)
	}
	rm.CloseAll()
}
