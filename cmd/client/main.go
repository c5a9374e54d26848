package main

import (
	"fmt"
	"os"

	"gx_client/internal/client"
	"gx_client/internal/shared/config"
	"gx_client/internal/shared/logger"
)

func main() {
	// 1. 加载内置配置
	cfg, err := config.Default()
	if err != nil {
		// Use standard fmt before logger is initialized.
		fmt.Fprintf(os.Stderr, "Fatal: Failed to load built-in config: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志系统
	if err := logger.Init(cfg.LogConf); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger.Info().Str("host", cfg.Host).Int("port", cfg.Port).Msg("Starting TCP client")

	// 3. 执行一次请求/响应；socket 错误由 runner 自行报告，进程始终正常退出
	client.New(cfg.ClientConf).Run()
}
