package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/eventtarot/internal/card"
	"github.com/arcanaland/eventtarot/internal/config"
)

var deckSuit string

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Inspect the card catalog",
	Long:  `Commands for inspecting the card catalog and setting up the configuration.`,
}

// deckListCmd represents the deck ls command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List catalog cards grouped by category",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		categories := append([]card.Category{card.MajorArcana}, card.Suits...)
		if deckSuit != "" {
			c := card.Category(deckSuit)
			if !c.IsValid() {
				return fmt.Errorf("unknown suit %q", deckSuit)
			}
			categories = []card.Category{c}
		}

		d, err := loadDeck("")
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%d cards)\n", d.Name, d.Len())
		for _, category := range categories {
			cards := d.ByCategory(category)
			fmt.Fprintln(out)
			fmt.Fprintln(out, colorize.CyanString("%s", category)+colorize.HiBlackString(" · %d", len(cards)))
			for _, c := range cards {
				fmt.Fprintf(out, "  %s\n", colorize.HiWhiteString("%s", c.Name()))
			}
		}
		return nil
	},
}

// deckInitCmd represents the deck init command
var deckInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Args:  cobra.NoArgs,
	// the file named by --config may not exist yet, so nothing is loaded
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := "info"
		if verbose {
			level = "debug"
		}
		return initLogger(level, logFormat)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := cfgFile
		if configPath == "" {
			configPath = config.GetConfigFilePath()
		}

		created, err := config.WriteDefault(configPath)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !created {
			fmt.Fprintln(out, "Config file already exists at:", configPath)
			return nil
		}
		logger.Debug("config file written", zap.String("path", configPath))
		fmt.Fprintln(out, "Config file initialized at:", configPath)
		fmt.Fprintln(out, "Set TELEGRAM_BOT_TOKEN, GOOGLE_API_KEY and FOLDER_ID in the environment or a .env file.")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckInitCmd)

	deckListCmd.Flags().StringVarP(&deckSuit, "suit", "s", "", "only list one category, e.g. Кубки")
}
