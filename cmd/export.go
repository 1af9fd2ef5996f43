package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/calegray/lacquer/internal/config"
	"github.com/calegray/lacquer/internal/log"
	"github.com/calegray/lacquer/internal/style"
	"github.com/calegray/lacquer/internal/styletree"
	"github.com/calegray/lacquer/internal/watcher"
)

var (
	exportOutput string
	exportWatch  bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the resolved style tree as JSON",
	Long: `Export builds the configured scheme, assembles the full style tree
and writes it as indented JSON to the output path or stdout.

With --watch the tree is rebuilt and rewritten every time the scheme
file changes. Watching requires a scheme file; built-in presets never
change on disk.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "",
		"output path (default: stdout)")
	exportCmd.Flags().BoolVarP(&exportWatch, "watch", "w", false,
		"rebuild on scheme file changes")
	rootCmd.AddCommand(exportCmd)
}

// buildTree assembles the style tree the active configuration selects.
func buildTree(cfg config.Config) (style.Style, error) {
	scheme, err := config.ResolveScheme(cfg)
	if err != nil {
		return nil, err
	}
	r := styletree.NewResolver(scheme, fontsFromConfig(cfg))
	return styletree.App(r), nil
}

// fontsFromConfig maps configured fonts onto resolver fonts, falling
// back to the defaults for unset fields.
func fontsFromConfig(cfg config.Config) styletree.Fonts {
	fonts := styletree.DefaultFonts()
	if cfg.Fonts.UI != "" {
		fonts.UI = cfg.Fonts.UI
	}
	if cfg.Fonts.Buffer != "" {
		fonts.Buffer = cfg.Fonts.Buffer
	}
	if cfg.Fonts.UISize > 0 {
		fonts.UISize = cfg.Fonts.UISize
	}
	if cfg.Fonts.BufferSize > 0 {
		fonts.BufferSize = cfg.Fonts.BufferSize
	}
	return fonts
}

func runExport(cmd *cobra.Command, args []string) error {
	if err := config.Validate(cfg); err != nil {
		return err
	}

	output := exportOutput
	if output == "" {
		output = cfg.Output
	}

	if err := exportOnce(output); err != nil {
		return err
	}

	if !exportWatch {
		return nil
	}
	if cfg.SchemeFile == "" {
		return fmt.Errorf("--watch requires a scheme file (use --scheme-file or scheme_file in config)")
	}
	if output == "" {
		return fmt.Errorf("--watch requires an output path (stdout would interleave rebuilds)")
	}

	w, err := watcher.New(watcher.DefaultConfig(cfg.SchemeFile))
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer func() { _ = w.Stop() }()

	onChange, err := w.Start()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "watching %s, ctrl+c to stop\n", cfg.SchemeFile)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	for {
		select {
		case <-onChange:
			log.Info(log.CatWatcher, "scheme file changed", "path", cfg.SchemeFile)
			if err := exportOnce(output); err != nil {
				// A half-saved file often parses badly; keep watching.
				log.ErrorErr(log.CatExport, "rebuild failed", err)
				fmt.Fprintf(cmd.ErrOrStderr(), "rebuild failed: %v\n", err)
				continue
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "rebuilt %s\n", output)
		case <-sig:
			return nil
		}
	}
}

// exportOnce builds the tree and writes it to output, or stdout when
// output is empty.
func exportOnce(output string) error {
	tree, err := buildTree(cfg)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding style tree: %w", err)
	}
	data = append(data, '\n')

	if output == "" {
		_, err := os.Stdout.Write(data)
		return err
	}

	log.Debug(log.CatExport, "writing style tree", "path", output, "bytes", len(data))
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	return nil
}
