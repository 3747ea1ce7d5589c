package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cadastro_api/internal/config"
	"cadastro_api/internal/dao/mysql"
	myredis "cadastro_api/internal/dao/redis"
	"cadastro_api/internal/handler"
	"cadastro_api/internal/https_server"
	"cadastro_api/internal/infrastructure/logger"
	"cadastro_api/internal/infrastructure/mq"
	"cadastro_api/internal/service"
	"cadastro_api/pkg/util/jwt"

	"go.uber.org/zap"
)

func main() {
	// 1. config
	conf := config.GetConfig()

	// 2. logger
	if err := logger.Init(&conf.LogConfig, conf.MainConfig.AppName, conf.MainConfig.Mode); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer zap.L().Sync()
	zap.L().Info("logger ready")

	// 3. jwt
	jwt.Init(conf.JWTConfig.Secret, conf.JWTConfig.Issuer, conf.JWTConfig.ExpiryHours)

	// 4. mysql
	repos, err := mysql.Init(conf.MysqlConfig)
	if err != nil {
		zap.L().Fatal("init mysql failed", zap.Error(err))
	}
	defer repos.Close()
	zap.L().Info("mysql ready")

	// 5. redis
	cache, err := myredis.Init(conf.RedisConfig)
	if err != nil {
		zap.L().Fatal("init redis failed", zap.Error(err))
	}
	defer cache.Close()
	zap.L().Info("redis ready")

	// 6. usuario events
	publisher := mq.NewPublisher(conf.KafkaConfig)
	defer publisher.Close()
	zap.L().Info("publisher ready", zap.String("mode", conf.KafkaConfig.MessageMode))

	// 7. services and handlers
	svc := service.NewServices(repos, cache, publisher)
	handlers := handler.NewHandlers(svc)
	if err := handler.InitTrans(conf.I18nConfig.Locale); err != nil {
		zap.L().Fatal("init validator translations failed", zap.Error(err))
	}

	// 8. http
	engine := https_server.Init(handlers, svc.Usuario, conf)
	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port),
		Handler: engine,
	}
	go func() {
		zap.L().Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("server running fault", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("server shutdown", zap.Error(err))
	}
	zap.L().Info("server stopped")
}
