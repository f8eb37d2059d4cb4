package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/eventtarot/internal/asset"
)

var namesCmd = &cobra.Command{
	Use:   "names",
	Short: "Print the image file name expected for every card",
	Long: `Names prints one line per card: the file name its image must have in the
Drive folder, a tab, and the card name. Use it when preparing the images.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeck("")
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, c := range d.Cards() {
			fmt.Fprintf(out, "%s\t%s\n", asset.FileName(c), c.Name())
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(namesCmd)
}
