package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arcanaland/eventtarot/internal/validator"
)

var (
	validateRemote      bool
	validateConcurrency int
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [catalog]",
	Short: "Validate a card catalog",
	Long: `Validate loads a card catalog (the configured one when no path is given) and
checks it for missing cards and asset file name clashes.

With --remote every card's image is also looked up in the Drive folder.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) == 1 {
			path = args[0]
		}

		d, err := loadDeck(path)
		if err != nil {
			return err
		}

		v := validator.NewValidator(d)
		results := v.Validate()

		if validateRemote {
			locator, err := newLocator(cmd.Context())
			if err != nil {
				return err
			}
			results, err = v.CheckAssets(cmd.Context(), locator, validateConcurrency)
			if err != nil {
				return fmt.Errorf("validation error: %v", err)
			}
		}

		name := d.Path
		if name == "" {
			name = d.Name
		}
		return printResults(cmd.OutOrStdout(), name, results)
	},
}

func init() {
	validateCmd.Flags().BoolVar(&validateRemote, "remote", false, "check that every card has an image in the Drive folder")
	validateCmd.Flags().IntVar(&validateConcurrency, "concurrency", validator.DefaultConcurrency, "parallel lookups with --remote")
}

func printResults(w io.Writer, name string, results validator.ValidationResults) error {
	fmt.Fprintln(w, "Validation Results:")
	fmt.Fprintln(w, "-------------------")

	if len(results.Errors) == 0 {
		fmt.Fprintf(w, "✅ Catalog '%s' is valid.\n", name)
	} else {
		fmt.Fprintf(w, "❌ Catalog '%s' has %d validation errors:\n", name, len(results.Errors))
		for i, err := range results.Errors {
			fmt.Fprintf(w, "%d. %s\n", i+1, err)
		}
	}

	if len(results.Warnings) > 0 {
		fmt.Fprintln(w, "\nWarnings:")
		for i, warn := range results.Warnings {
			fmt.Fprintf(w, "%d. %s\n", i+1, warn)
		}
	}

	if len(results.Errors) > 0 {
		return fmt.Errorf("validation failed")
	}
	return nil
}
