package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/eventtarot/internal/config"
	"github.com/arcanaland/eventtarot/internal/logging"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string

	cfg    *config.Config
	logger = zap.NewNop()
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "eventtarot",
	Short: "Event tarot readings over Telegram and in the terminal",
	Long: `Eventtarot draws a four card spread for event planning: guests, stage shows,
equipment and finances. Card images live in a Google Drive folder and are sent
upright or rotated, together with the card's meaning for that orientation.

Credentials come from the environment (TELEGRAM_BOT_TOKEN, GOOGLE_API_KEY,
FOLDER_ID) or a .env file in the working directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(".env"); err != nil {
			return err
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		if verbose {
			cfg.Log.Level = "debug"
		}
		if cmd.Flags().Changed("log-format") {
			cfg.Log.Format = logFormat
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		if err := initLogger(cfg.Log.Level, cfg.Log.Format); err != nil {
			return err
		}
		logger.Debug("configuration loaded", zap.String("source", cfg.Source))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/eventtarot/config.toml)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	RootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "json", "log encoding: json or console")

	RootCmd.AddCommand(validateCmd)
}

// initLogger replaces the package logger
func initLogger(level, format string) error {
	l, err := logging.New(level, format)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = l
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
