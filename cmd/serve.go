package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/eventtarot/internal/config"
	"github.com/arcanaland/eventtarot/internal/telegram"
)

var pollTimeout int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Telegram bot",
	Long: `Serve starts the Telegram bot with long polling. It answers /start with a
welcome message and /rasclad or the repeat button with a new reading.

Stops gracefully on SIGINT or SIGTERM once the readings in progress are sent.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := cfg.Validate(config.NeedDrive, config.NeedTelegram); err != nil {
			return err
		}

		orchestrator, err := newOrchestrator(ctx, nil)
		if err != nil {
			return err
		}

		botLogger := logger.Named("telegram")
		if err := tgbotapi.SetLogger(zap.NewStdLog(botLogger)); err != nil {
			return fmt.Errorf("failed to set telegram logger: %w", err)
		}

		api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
		if err != nil {
			return fmt.Errorf("failed to connect to telegram: %w", err)
		}
		botLogger.Info("bot started", zap.String("username", api.Self.UserName))

		u := tgbotapi.NewUpdate(0)
		u.Timeout = pollTimeout
		updates := api.GetUpdatesChan(u)

		go func() {
			<-ctx.Done()
			api.StopReceivingUpdates()
		}()

		telegram.New(api, orchestrator, telegram.WithLogger(botLogger)).Run(ctx, updates)

		botLogger.Info("bot stopped")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVar(&pollTimeout, "poll-timeout", 60, "long polling timeout in seconds")
}
