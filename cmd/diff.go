package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/calegray/lacquer/internal/theme"
)

var (
	diffDeleteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	diffInsertStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
)

var diffCmd = &cobra.Command{
	Use:   "diff <scheme-a> <scheme-b>",
	Short: "Diff the style trees of two schemes",
	Long: `Diff builds both schemes, exports each style tree as JSON and prints
a colored line diff. Arguments name built-in presets or scheme YAML
files; a path is recognized by its file existing on disk.`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	left, err := treeJSON(args[0])
	if err != nil {
		return err
	}
	right, err := treeJSON(args[1])
	if err != nil {
		return err
	}

	if left == right {
		fmt.Fprintf(cmd.OutOrStdout(), "schemes produce identical style trees\n")
		return nil
	}

	dmp := diffmatchpatch.New()
	lineLeft, lineRight, lines := dmp.DiffLinesToChars(left, right)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(lineLeft, lineRight, false), lines)

	out := cmd.OutOrStdout()
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			fmt.Fprint(out, renderDiffBlock(d.Text, "-", diffDeleteStyle))
		case diffmatchpatch.DiffInsert:
			fmt.Fprint(out, renderDiffBlock(d.Text, "+", diffInsertStyle))
		case diffmatchpatch.DiffEqual:
			// Unchanged regions are elided; the tree is large and the
			// interesting lines are the changed ones.
		}
	}
	return nil
}

// treeJSON builds the style tree for a preset name or scheme file path
// and returns its indented JSON.
func treeJSON(ref string) (string, error) {
	schemeCfg := cfg
	if _, err := os.Stat(ref); err == nil {
		schemeCfg.SchemeFile = ref
	} else {
		if _, ok := theme.Presets[ref]; !ok {
			return "", fmt.Errorf("unknown scheme %q: not a preset and not a file", ref)
		}
		schemeCfg.Scheme = ref
		schemeCfg.SchemeFile = ""
	}

	tree, err := buildTree(schemeCfg)
	if err != nil {
		return "", fmt.Errorf("building %s: %w", ref, err)
	}
	data, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding %s: %w", ref, err)
	}
	return string(data) + "\n", nil
}

// renderDiffBlock prefixes and colors every line of one diff segment.
func renderDiffBlock(text, prefix string, style lipgloss.Style) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		b.WriteString(style.Render(prefix + " " + line))
		b.WriteString("\n")
	}
	return b.String()
}
