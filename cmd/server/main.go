package main

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/finotty/duqueLoja/internal/app"
	"github.com/finotty/duqueLoja/internal/config"
	"github.com/finotty/duqueLoja/internal/logger"
	"github.com/finotty/duqueLoja/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiDim   = "\033[2m"
	ansiGreen = "\033[32m"
	ansiCyan  = "\033[36m"
)

func main() {
	printStartupBanner()

	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if cfg.Server.Mode == "release" {
		if isWeakSecret(cfg.JWT.SecretKey) || isWeakSecret(cfg.UserJWT.SecretKey) {
			stdLog.Fatalf("JWT secret fraco ou ainda com o valor padrão; configure uma chave forte em produção")
		}
	} else if isWeakSecret(cfg.JWT.SecretKey) || isWeakSecret(cfg.UserJWT.SecretKey) {
		stdLog.Printf("aviso: JWT secret fraco ou ainda com o valor padrão; troque antes de ir para produção")
	}

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("falha ao inicializar o banco de dados: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("falha ao migrar o banco de dados: %v", err)
	}

	defaultAdminUser := os.Getenv("DL_DEFAULT_ADMIN_USERNAME")
	defaultAdminPass := os.Getenv("DL_DEFAULT_ADMIN_PASSWORD")
	if cfg.Server.Mode == "release" && defaultAdminPass == "" {
		stdLog.Printf("aviso: DL_DEFAULT_ADMIN_PASSWORD não definida, inicialização do admin padrão ignorada")
	} else if err := models.InitDefaultAdmin(defaultAdminUser, defaultAdminPass); err != nil {
		stdLog.Printf("aviso: falha ao inicializar o admin padrão: %v", err)
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
	}); err != nil {
		stdLog.Fatalf("falha ao executar o serviço: %v", err)
	}
}

func printStartupBanner() {
	fmt.Println(ansiCyan + "██████╗ ██╗   ██╗ ██████╗ ██╗   ██╗███████╗    ██╗      ██████╗      ██╗ █████╗" + ansiReset)
	fmt.Println(ansiCyan + "██╔══██╗██║   ██║██╔═══██╗██║   ██║██╔════╝    ██║     ██╔═══██╗     ██║██╔══██╗" + ansiReset)
	fmt.Println(ansiCyan + "██║  ██║██║   ██║██║   ██║██║   ██║█████╗      ██║     ██║   ██║     ██║███████║" + ansiReset)
	fmt.Println(ansiCyan + "██║  ██║██║   ██║██║▄▄ ██║██║   ██║██╔══╝      ██║     ██║   ██║██   ██║██╔══██║" + ansiReset)
	fmt.Println(ansiCyan + "██████╔╝╚██████╔╝╚██████╔╝╚██████╔╝███████╗    ███████╗╚██████╔╝╚█████╔╝██║  ██║" + ansiReset)
	fmt.Println(ansiCyan + "╚═════╝  ╚═════╝  ╚══▀▀═╝  ╚═════╝ ╚══════╝    ╚══════╝ ╚═════╝  ╚════╝ ╚═╝  ╚═╝" + ansiReset)
	fmt.Println(ansiGreen + ansiBold + "Duque Loja API" + ansiReset)
	fmt.Println(ansiDim + "--------------------------------------------------------------" + ansiReset)
}

func isWeakSecret(secret string) bool {
	if len(secret) < 32 {
		return true
	}
	normalized := strings.ToLower(secret)
	for _, marker := range []string{"change-me", "change-in-production", "your-secret-key"} {
		if strings.Contains(normalized, marker) {
			return true
		}
	}
	return false
}
