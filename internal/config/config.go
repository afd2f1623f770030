// Package config resolves sheetdef settings from flags, SHEETDEF_* environment
// variables and an optional YAML config file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ukaji3/sheetdef-go/pkg/sheetdef"
	"github.com/ukaji3/sheetdef-go/pkg/sheetdef/infer"
)

const (
	envPrefix = "SHEETDEF"
	fileName  = "sheetdef"
	fileType  = "yaml"
)

// Keys recognized in the config file and environment.
const (
	KeyInputDir       = "input_dir"
	KeyOutputDir      = "output_dir"
	KeyOverlayDir     = "overlay_dir"
	KeyCombinedOutput = "combined_output"
	KeyVersionFile    = "version_file"
	KeyMode           = "mode"
	KeyLinks          = "links"
	KeyCommentPrefix  = "comment_prefix"
	KeyWorkbooks      = "workbooks"
	KeyLogLevel       = "log_level"
)

// Config holds the resolved settings of one run.
type Config struct {
	InputDir       string
	OutputDir      string
	OverlayDir     string
	CombinedOutput string
	VersionFile    string
	Mode           sheetdef.Mode
	Links          infer.Strategy
	CommentPrefix  string
	Workbooks      bool
	LogLevel       slog.Level
}

// New returns a Viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyInputDir, "CSV")
	v.SetDefault(KeyOutputDir, "Definitions")
	v.SetDefault(KeyOverlayDir, "YAML")
	v.SetDefault(KeyCombinedOutput, "Combined_definitions/ex.json")
	v.SetDefault(KeyVersionFile, "")
	v.SetDefault(KeyMode, string(sheetdef.ModeGeneric))
	v.SetDefault(KeyLinks, string(infer.StrategyCombined))
	v.SetDefault(KeyCommentPrefix, "#")
	v.SetDefault(KeyWorkbooks, true)
	v.SetDefault(KeyLogLevel, "info")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags binds each flag whose name matches a key (dashes for
// underscores) so that an explicitly set flag overrides other sources.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if !isKey(key) {
			return
		}
		if bindErr := v.BindPFlag(key, f); bindErr != nil && err == nil {
			err = bindErr
		}
	})
	return err
}

// ReadFile reads path, or sheetdef.yaml from the working directory when
// path is empty. A missing default file is not an error.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName(fileName)
	v.SetConfigType(fileType)
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	return nil
}

// Load resolves and validates the settings held by v.
func Load(v *viper.Viper) (Config, error) {
	mode, err := sheetdef.ParseMode(v.GetString(KeyMode))
	if err != nil {
		return Config{}, err
	}
	links, err := infer.ParseStrategy(v.GetString(KeyLinks))
	if err != nil {
		return Config{}, err
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString(KeyLogLevel))); err != nil {
		return Config{}, fmt.Errorf("invalid log level: %s", v.GetString(KeyLogLevel))
	}

	return Config{
		InputDir:       v.GetString(KeyInputDir),
		OutputDir:      v.GetString(KeyOutputDir),
		OverlayDir:     v.GetString(KeyOverlayDir),
		CombinedOutput: v.GetString(KeyCombinedOutput),
		VersionFile:    v.GetString(KeyVersionFile),
		Mode:           mode,
		Links:          links,
		CommentPrefix:  v.GetString(KeyCommentPrefix),
		Workbooks:      v.GetBool(KeyWorkbooks),
		LogLevel:       level,
	}, nil
}

// Options converts the settings into sheetdef options.
func (c Config) Options(log *slog.Logger) sheetdef.Options {
	workbooks := c.Workbooks
	return sheetdef.Options{
		Mode:             c.Mode,
		Links:            c.Links,
		CommentPrefix:    c.CommentPrefix,
		IncludeWorkbooks: &workbooks,
		Logger:           log,
	}
}

func isKey(key string) bool {
	switch key {
	case KeyInputDir, KeyOutputDir, KeyOverlayDir, KeyCombinedOutput, KeyVersionFile,
		KeyMode, KeyLinks, KeyCommentPrefix, KeyWorkbooks, KeyLogLevel:
		return true
	}
	return false
}
