package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/calegray/lacquer/internal/config"
	"github.com/calegray/lacquer/internal/log"
	"github.com/calegray/lacquer/internal/ui/preview"
	"github.com/calegray/lacquer/internal/watcher"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Inspect the style tree interactively",
	Long: `Preview opens a terminal UI over the configured scheme. Panels are
listed on the left; the selected panel's resolved fragments render on
the right with color swatches. Interaction and toggle states can be
simulated from the keyboard to inspect every bundle variant.

When a scheme file is configured and auto_reload is enabled, edits to
the file rebuild the scheme live.`,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	if err := config.Validate(cfg); err != nil {
		return err
	}

	scheme, err := config.ResolveScheme(cfg)
	if err != nil {
		return err
	}

	model := preview.New(scheme, fontsFromConfig(cfg))
	p := tea.NewProgram(model, tea.WithAltScreen())

	// Live reload only applies to file-backed schemes.
	if cfg.AutoReload && cfg.SchemeFile != "" {
		w, err := watcher.New(watcher.DefaultConfig(cfg.SchemeFile))
		if err != nil {
			return fmt.Errorf("creating watcher: %w", err)
		}
		defer func() { _ = w.Stop() }()

		onChange, err := w.Start()
		if err != nil {
			return fmt.Errorf("starting watcher: %w", err)
		}

		go func() {
			for range onChange {
				reloaded, err := config.ResolveScheme(cfg)
				if err != nil {
					log.ErrorErr(log.CatWatcher, "scheme reload failed", err)
					continue
				}
				p.Send(preview.SchemeReloadedMsg{Scheme: reloaded})
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running preview: %w", err)
	}
	return nil
}
