package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/bobursolih/market-backend/cmd/config"
	redisclient "github.com/bobursolih/market-backend/cmd/redis"
	redisRepo "github.com/bobursolih/market-backend/repository/redis"
	"github.com/bobursolih/market-backend/thirdparty/rabbitmq"
	"github.com/bobursolih/market-backend/utils/logger"
)

// alertworker drains the low stock queue and forwards alerts to the
// configured webhook, deduplicating per product through redis.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, "alertworker"); err != nil {
		panic(err)
	}
	defer logger.Close()

	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	RedisRepo := redisRepo.NewRepository()

	consumer, err := rabbitmq.NewConsumer(
		cfg.RabbitMQ.Host,
		cfg.RabbitMQ.Port,
		cfg.RabbitMQ.User,
		cfg.RabbitMQ.Password,
		cfg.Alert.WebhookURL,
		RedisRepo,
		cfg.Alert.DedupeWindow,
	)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer func() {
		_ = consumer.Close()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}

	logger.Info("alert worker running",
		zap.String("webhook", cfg.Alert.WebhookURL),
		zap.Duration("dedupe", cfg.Alert.DedupeWindow),
	)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("alert worker shutting down")
}
