package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/shopora-next/internal/app"
	"github.com/shopora-next/internal/config"
	"github.com/shopora-next/internal/logger"
	"github.com/shopora-next/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiDim   = "\033[2m"
	ansiGreen = "\033[32m"
	ansiBlue  = "\033[34m"
	ansiCyan  = "\033[36m"
)

func main() {
	mode := flag.String("mode", app.ModeAll, "启动模式: all (默认), api, worker")
	flag.Parse()

	printStartupBanner()

	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	guardJWTSecret(cfg, stdLog.Fatalf, stdLog.Printf)

	if err := initDatabase(cfg); err != nil {
		stdLog.Fatalf("数据库初始化失败: %v", err)
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    *mode,
	}); err != nil {
		stdLog.Fatalf("服务运行失败: %v", err)
	}
}

// guardJWTSecret 生产模式下弱密钥直接拒绝启动，开发模式仅告警
func guardJWTSecret(cfg *config.Config, fatalf, printf func(string, ...interface{})) {
	if !isWeakSecret(cfg.UserJWT.SecretKey) {
		return
	}
	if cfg.Server.Mode == "release" {
		fatalf("JWT secret 过弱或仍为默认值，请在生产环境中配置强随机密钥")
		return
	}
	printf("警告: JWT secret 过弱或仍为默认值，建议在生产环境中更换")
}

func initDatabase(cfg *config.Config) error {
	err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	})
	if err != nil {
		return err
	}
	return models.AutoMigrate()
}

func printStartupBanner() {
	fmt.Println(ansiCyan + "███████╗██╗  ██╗ ██████╗ ██████╗  ██████╗ ██████╗  █████╗ " + ansiReset)
	fmt.Println(ansiCyan + "██╔════╝██║  ██║██╔═══██╗██╔══██╗██╔═══██╗██╔══██╗██╔══██╗" + ansiReset)
	fmt.Println(ansiCyan + "███████╗███████║██║   ██║██████╔╝██║   ██║██████╔╝███████║" + ansiReset)
	fmt.Println(ansiCyan + "╚════██║██╔══██║██║   ██║██╔═══╝ ██║   ██║██╔══██╗██╔══██║" + ansiReset)
	fmt.Println(ansiCyan + "███████║██║  ██║╚██████╔╝██║     ╚██████╔╝██║  ██║██║  ██║" + ansiReset)
	fmt.Println(ansiCyan + "╚══════╝╚═╝  ╚═╝ ╚═════╝ ╚═╝      ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝" + ansiReset)
	fmt.Println(ansiGreen + ansiBold + "Shopora-Next API" + ansiReset)
	fmt.Println(ansiBlue + "• Repo: https://github.com/shopora-next" + ansiReset)
	fmt.Println(ansiDim + "--------------------------------------------------------------" + ansiReset)
}

// isWeakSecret 识别过短或明显占位的密钥
func isWeakSecret(secret string) bool {
	if len(secret) < 32 {
		return true
	}
	normalized := strings.ToLower(secret)
	for _, placeholder := range []string{"change-me", "change-in-production", "your-secret-key"} {
		if strings.Contains(normalized, placeholder) {
			return true
		}
	}
	return false
}
