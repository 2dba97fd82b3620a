package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/oopsididitagain335/futurecommon/bot"
	"github.com/oopsididitagain335/futurecommon/config"
	"github.com/oopsididitagain335/futurecommon/handler/review"
	"github.com/oopsididitagain335/futurecommon/logger"
	"github.com/oopsididitagain335/futurecommon/registry"
	"github.com/oopsididitagain335/futurecommon/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zl := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer zl.Sync()

	reg := registry.New()
	policy := cfg.Policy()

	review.NewHandler(reg, zl).Register()

	b, err := bot.New(cfg, zl)
	if err != nil {
		zl.Fatal("create bot", zap.Error(err))
	}
	if err := b.Start(); err != nil {
		zl.Fatal("start bot", zap.Error(err))
	}
	defer b.Stop()

	notifier := review.NewNotifier(b.Session(), cfg.Discord.ReviewChannelID, policy, zl)
	srv := web.NewServer(cfg.Server, policy, notifier, reg, zl)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := srv.Run(ctx); err != nil {
		zl.Fatal("server error", zap.Error(err))
	}
}
