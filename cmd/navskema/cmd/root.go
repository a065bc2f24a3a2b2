package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/imdario/mergo"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	navskema "github.com/reoring/navskema"
	"github.com/reoring/navskema/i18n"
	"github.com/reoring/navskema/internal/logging"
)

const (
	colorModeAuto   = "auto"
	colorModeNever  = "never"
	colorModeAlways = "always"
)

var supportedColorModes = []string{colorModeAuto, colorModeNever, colorModeAlways}

const longRootCmdDescription = `navskema inspects the compiled-in navigation schema: it looks nodes up,
prints their effective options, validates initial routes and shows how the
native and web adapters bind every navigator.
`

// settings are the persistent options after flags, environment and config
// file have been applied.
type settings struct {
	LogLevel string
	Color    string
	Lang     string
	Format   string
}

// defaultSettings fill whatever a config file or environment left blank.
var defaultSettings = settings{
	LogLevel: "info",
	Color:    colorModeAuto,
	Lang:     "en",
	Format:   "json",
}

// env holds what every subcommand needs.
type env struct {
	schema *navskema.Schema
	v      *viper.Viper
	cfg    settings
}

// NewRootCmd builds the CLI over schema.
func NewRootCmd(schema *navskema.Schema) *cobra.Command {
	e := &env{schema: schema, v: viper.New()}
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:           "navskema",
		Short:         "Inspect the navigation schema shared by the native and web apps.",
		Long:          longRootCmdDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.initConfig(cmd, cfgFile)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (any format viper reads: yaml, json, toml)")
	flags.String("log-level", defaultSettings.LogLevel, "log level: trace, debug, info, warn, error")
	flags.String("color", defaultSettings.Color, fmt.Sprintf("color mode, one of %v", supportedColorModes))
	flags.String("lang", defaultSettings.Lang, "language of validation messages (en, ja)")
	for _, key := range []string{"log-level", "color", "lang"} {
		_ = e.v.BindPFlag(key, flags.Lookup(key))
	}

	rootCmd.AddCommand(
		newFindCmd(e),
		newResolveCmd(e),
		newValidateCmd(e),
		newDumpCmd(e),
		newTreeCmd(e),
		newSchemaCmd(),
		newRenderCmd(e),
		newCheckCmd(e),
		newVersionCmd(),
	)
	return rootCmd
}

func (e *env) initConfig(cmd *cobra.Command, cfgFile string) error {
	e.v.SetEnvPrefix("NAVSKEMA")
	e.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	e.v.AutomaticEnv()
	if cfgFile != "" {
		e.v.SetConfigFile(cfgFile)
		if err := e.v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read config %s", cfgFile)
		}
	}

	e.cfg = settings{
		LogLevel: e.v.GetString("log-level"),
		Color:    e.v.GetString("color"),
		Lang:     e.v.GetString("lang"),
		Format:   e.v.GetString("format"),
	}
	if err := mergo.Merge(&e.cfg, defaultSettings); err != nil {
		return errors.Wrap(err, "apply default settings")
	}

	switch e.cfg.Color {
	case colorModeNever:
		color.NoColor = true
	case colorModeAlways:
		color.NoColor = false
	case colorModeAuto:
	default:
		return errors.Errorf("unsupported color mode %q, expected one of %v", e.cfg.Color, supportedColorModes)
	}

	if _, err := logging.Init(logging.Options{
		Level:        e.cfg.LogLevel,
		DisableColor: color.NoColor,
		Output:       cmd.ErrOrStderr(),
	}); err != nil {
		return errors.Wrap(err, "log level")
	}
	i18n.SetLanguage(e.cfg.Lang)
	return nil
}
