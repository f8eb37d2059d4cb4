package cmd

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/eventtarot/internal/ansi"
	"github.com/arcanaland/eventtarot/internal/reading"
)

var (
	drawOut   string
	drawSeed  uint64
	drawNoArt bool
	drawWidth int
)

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Draw a reading in the terminal",
	Long: `Draw runs one reading against the configured Drive folder and prints it with
ANSI art of every card, oriented the way it was drawn.

Examples:
  eventtarot draw
  eventtarot draw --seed 42 --no-art
  eventtarot draw --out ./reading`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var rng *rand.Rand
		if drawSeed != 0 {
			rng = rand.New(rand.NewPCG(drawSeed, drawSeed))
		}

		orchestrator, err := newOrchestrator(cmd.Context(), rng)
		if err != nil {
			return err
		}

		if drawOut != "" {
			if err := os.MkdirAll(drawOut, 0755); err != nil {
				return fmt.Errorf("error creating output directory: %v", err)
			}
		}

		width, trueColor := terminalWidth()
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, reading.ShufflingText)

		var writeErr error
		index := 0
		r := orchestrator.Stream(cmd.Context(), func(u reading.Unit) {
			index++
			if writeErr != nil {
				return
			}
			writeErr = displayUnit(out, u, width, trueColor && !drawNoArt)
			if writeErr == nil && drawOut != "" && !u.Failed() {
				writeErr = saveUnit(drawOut, index, u)
			}
		})
		if writeErr != nil {
			return writeErr
		}

		if failures := r.Failures(); failures > 0 {
			fmt.Fprintln(out, colorize.YellowString("%d of %d cards could not be shown", failures, len(r.Units)))
		}
		fmt.Fprintln(out, reading.RepeatText)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(drawCmd)

	drawCmd.Flags().StringVarP(&drawOut, "out", "o", "", "directory to save the card images to")
	drawCmd.Flags().Uint64Var(&drawSeed, "seed", 0, "seed for a repeatable reading (0 picks a random one)")
	drawCmd.Flags().BoolVar(&drawNoArt, "no-art", false, "print captions only")
	drawCmd.Flags().IntVar(&drawWidth, "art-width", 24, "width of the ANSI art in columns")
}

// terminalWidth returns the stdout width and whether stdout is a terminal
func terminalWidth() (int, bool) {
	fd := int(os.Stdout.Fd())
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		width = 80
	}
	return width, term.IsTerminal(fd)
}

// displayUnit prints the card art on the left and its caption on the right
func displayUnit(w io.Writer, u reading.Unit, width int, withArt bool) error {
	var art string
	if withArt && !u.Failed() {
		img, _, err := image.Decode(bytes.NewReader(u.Image))
		if err == nil {
			b := img.Bounds()
			// terminal cells are about twice as tall as wide
			height := drawWidth * b.Dy() / max(b.Dx(), 1) / 2
			art = ansi.Render(img, drawWidth, max(height, 1), true)
		}
	}

	infoWidth := width - 2
	if art != "" {
		infoWidth -= drawWidth + 4
	}

	var info []string
	info = append(info, colorize.CyanString("%s", u.Position.Label))
	if u.Failed() {
		// the first line repeats the position label
		lines := strings.Split(u.ErrorText(), "\n")[1:]
		for _, line := range lines {
			for _, wrapped := range ansi.Wrap(line, infoWidth) {
				info = append(info, colorize.RedString("%s", wrapped))
			}
		}
	} else {
		orientation := colorize.GreenString("%s", u.OrientationLabel())
		if u.Reversed {
			orientation = colorize.MagentaString("%s", u.OrientationLabel())
		}
		info = append(info, colorize.HiWhiteString("%s", u.CardName)+" · "+orientation)
		info = append(info, "")
		info = append(info, ansi.Wrap("➡️ "+u.Meaning, infoWidth)...)
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return ansi.SideBySide(w, art, info, 4)
}

// saveUnit writes the delivered image as <position>_<file name>
func saveUnit(dir string, index int, u reading.Unit) error {
	name := fmt.Sprintf("%d_%s", index, u.FileName)
	if err := os.WriteFile(filepath.Join(dir, name), u.Image, 0644); err != nil {
		return fmt.Errorf("error saving %s: %v", name, err)
	}
	return nil
}
