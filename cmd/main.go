package main

import (
	"context"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	_ "labqueue/docs"

	"labqueue/cmd/command"
	"labqueue/internal/config"
)

// @Title						Очередь на сдачу лабораторных
// @Version					1.0
// @Description				Запись в очередь на защиту лабораторных работ. Клиенты опрашивают состояние очереди.
// @BasePath					/
// @securityDefinitions.apikey	TelegramID
// @in							header
// @name						X-Telegram-ID
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	root := &cobra.Command{Short: "Lab defense queue server"}

	cfg, err := config.Load()
	if err != nil {
		log.WithContext(ctx).Fatal(err)
	}
	logger := cfg.NewLogger()

	root.AddCommand(
		command.Server{Logger: logger}.Command(ctx, cfg),
		command.MigrateCommand{Logger: logger}.Command(ctx, cfg),
	)

	if err := root.Execute(); err != nil {
		logger.WithContext(ctx).Fatalf("failed to execute root command: \n%v", err)
	}
}
