package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/yaolongt/smua/config"
	"github.com/yaolongt/smua/internal/api/handler"
	"github.com/yaolongt/smua/internal/api/router"
	"github.com/yaolongt/smua/internal/service"
	applogger "github.com/yaolongt/smua/pkg/logger"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 加载校区建筑名单（进程启动时加载一次，之后只读）
	buildings, err := service.LoadSchools(cfg.Report.SchoolsFile)
	if err != nil {
		logger.Fatal("加载建筑名单失败", zap.Error(err))
	}
	logger.Info("建筑名单加载完成", zap.Int("count", len(buildings)))

	// 4. 依赖注入: Service → Handler
	svc := service.NewService(cfg, buildings, logger)
	h := handler.NewHandler(cfg, svc)

	// 5. 初始化路由
	engine := router.Setup(cfg, h, logger)

	// 6. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	// 7. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	logger.Info("服务器已关闭")
}
