package cmd

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/calegray/lacquer/internal/config"
	"github.com/calegray/lacquer/internal/log"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	debug   bool
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "lacquer",
	Short: "Build and inspect editor color schemes",
	Long: `Lacquer builds editor color schemes from chromatic ramps and
composes them into resolved style trees with per-state variants for
every UI panel.`,
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/lacquer/config.yaml)")
	rootCmd.PersistentFlags().StringP("scheme", "s", "",
		"built-in scheme to render")
	rootCmd.PersistentFlags().StringP("scheme-file", "f", "",
		"path to a scheme YAML file (wins over --scheme)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"write debug logs to lacquer.log")

	// Bind flags to viper
	_ = viper.BindPFlag("scheme", rootCmd.PersistentFlags().Lookup("scheme"))
	_ = viper.BindPFlag("scheme_file", rootCmd.PersistentFlags().Lookup("scheme-file"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("scheme", defaults.Scheme)
	viper.SetDefault("auto_reload", defaults.AutoReload)
	viper.SetDefault("fonts.ui", defaults.Fonts.UI)
	viper.SetDefault("fonts.buffer", defaults.Fonts.Buffer)
	viper.SetDefault("fonts.ui_size", defaults.Fonts.UISize)
	viper.SetDefault("fonts.buffer_size", defaults.Fonts.BufferSize)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .lacquer/config.yaml (current directory)
		// 2. ~/.config/lacquer/config.yaml (user config)
		if _, err := os.Stat(".lacquer/config.yaml"); err == nil {
			viper.SetConfigFile(".lacquer/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "lacquer"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .lacquer/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".lacquer/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)

	if debug || os.Getenv("LACQUER_DEBUG") != "" {
		if _, err := log.InitWithTeaLog("lacquer.log", "lacquer"); err == nil {
			log.SetEnabled(true)
		}
	}
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
