package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/calegray/lacquer/internal/theme"
)

var schemesCmd = &cobra.Command{
	Use:   "schemes",
	Short: "List the built-in color schemes",
	RunE:  runSchemes,
}

func init() {
	rootCmd.AddCommand(schemesCmd)
}

func runSchemes(cmd *cobra.Command, args []string) error {
	nameStyle := lipgloss.NewStyle().Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("243"))

	out := cmd.OutOrStdout()
	for _, name := range theme.Names() {
		preset := theme.Presets[name]

		appearance := "dark"
		if preset.IsLight {
			appearance = "light"
		}

		// One swatch per chromatic ramp, sampled mid-ramp.
		var swatches string
		for _, ramp := range []theme.Ramp{
			preset.Ramps.Red, preset.Ramps.Orange, preset.Ramps.Yellow,
			preset.Ramps.Green, preset.Ramps.Cyan, preset.Ramps.Blue,
			preset.Ramps.Violet, preset.Ramps.Magenta,
		} {
			swatches += lipgloss.NewStyle().Foreground(lipgloss.Color(ramp.Hex(0.5))).Render("██")
		}

		fmt.Fprintf(out, "%s %s (%s)\n    %s\n",
			swatches,
			nameStyle.Render(name),
			appearance,
			descStyle.Render(preset.Description),
		)
	}
	return nil
}
