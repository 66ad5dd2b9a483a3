package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ironsheep/color-tools-mcp/internal/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Build metadata, set from main via SetVersionInfo.
var (
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

// SetVersionInfo records the values injected with -ldflags.
func SetVersionInfo(v, built, commit string) {
	version, buildTime, gitCommit = v, built, commit
}

// app carries the state shared by one command tree.
type app struct {
	v       *viper.Viper
	cfgFile string
	logger  *slog.Logger
}

// NewRootCmd builds the color-mcp command tree with its own configuration.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "color-mcp",
		Short: "Color conversion tools and MCP server",
		Long: `color-mcp parses hex colors, converts them between RGB, HSL and HSB,
derives lighter, darker and contrasting shades, and renders preview swatches.

Run "color-mcp serve" to expose the same operations as MCP tools over stdio.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.initConfig(); err != nil {
				return err
			}
			return a.initLogging(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("strict-hex", true, "Reject malformed hex colors instead of reading them as transparent black")
	rootCmd.PersistentFlags().Float64("default-amount", 0.1, "Lightness change used when --amount is not given")

	for _, key := range []string{"log-level", "strict-hex", "default-amount"} {
		if err := a.v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key)); err != nil {
			panic(fmt.Sprintf("failed to bind flag: %v", err))
		}
	}

	def := server.DefaultConfig()
	a.v.SetDefault("swatch-width", def.SwatchWidth)
	a.v.SetDefault("swatch-height", def.SwatchCellHeight)
	a.v.SetDefault("ocr-language", def.OCRLanguage)

	rootCmd.AddCommand(
		a.newServeCmd(),
		a.newConvertCmd(),
		a.newAdjustCmd("lighter", "Raise HSL lightness by --amount"),
		a.newAdjustCmd("darker", "Lower HSL lightness by --amount"),
		a.newAdjustCmd("primary", "Darken light colors and lighten dark ones by --amount"),
		a.newContrastCmd(),
		a.newSwatchCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) initConfig() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.AddConfigPath(".")
		a.v.SetConfigType("yaml")
		a.v.SetConfigName("config")
	}

	a.v.SetEnvPrefix("COLORMCP")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

func (a *app) initLogging(w io.Writer) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.v.GetString("log-level"))); err != nil {
		return fmt.Errorf("invalid log level %q", a.v.GetString("log-level"))
	}

	a.logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("Using config file", "path", used)
	}
	return nil
}

// serverConfig maps the resolved configuration onto server.Config.
func (a *app) serverConfig() server.Config {
	return server.Config{
		Version:          version,
		StrictHex:        a.v.GetBool("strict-hex"),
		DefaultAmount:    a.v.GetFloat64("default-amount"),
		SwatchWidth:      a.v.GetInt("swatch-width"),
		SwatchCellHeight: a.v.GetInt("swatch-height"),
		OCRLanguage:      a.v.GetString("ocr-language"),
		Logger:           a.logger,
	}
}
