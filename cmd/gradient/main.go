// Command gradient prints a linear RGB gradient as source array literals.
// It generates the palette ramp tables used by the viewer's station labels.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"sprawl/pkg/gradient"
)

func main() {
	if err := newGradientCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newGradientCmd creates the gradient command
func newGradientCmd() *cobra.Command {
	var (
		steps    int
		startHex string
	)

	cmd := &cobra.Command{
		Use:   "gradient <target-hex>",
		Short: "Print a linear RGB gradient as source array literals",
		Long: `Print a linear RGB gradient between a start color and the given
target color, one "[0xRR, 0xGG, 0xBB]," line per step. The defaults match
the viewer's label palette ramps: 10 steps starting from 0x373343.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := gradient.ParseHex(startHex)
			if err != nil {
				return fmt.Errorf("invalid start color: %w", err)
			}

			end, err := gradient.ParseHex(args[0])
			if err != nil {
				return fmt.Errorf("invalid target color: %w", err)
			}

			colors, err := gradient.Linear(start, end, steps)
			if err != nil {
				return err
			}

			// Swatches are a terminal nicety only; piped output stays a
			// clean array literal per line.
			swatches := isatty.IsTerminal(os.Stdout.Fd())

			out := cmd.OutOrStdout()
			for _, c := range colors {
				if swatches {
					block := lipgloss.NewStyle().
						Background(lipgloss.Color("#" + c.Hex())).
						Render("      ")
					fmt.Fprintf(out, "%s  %s\n", c.ArrayLiteral(), block)
				} else {
					fmt.Fprintln(out, c.ArrayLiteral())
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&steps, "steps", gradient.RampSteps, "number of gradient steps, including both endpoints")
	cmd.Flags().StringVar(&startHex, "start", gradient.Start.Hex(), "start color as a 6-digit hex string")

	return cmd
}
