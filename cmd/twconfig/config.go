package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/twconfig"
	"github.com/yacobolo/twconfig/internal/report"
)

const (
	defaultSettingsFile = ".twconfig.yaml"
	defaultDocumentFile = "twconfig.yaml"
)

var k = koanf.New(".")

// settingsSections are the top-level groups of the settings file. Env vars
// address them as TWCONFIG_<SECTION>_<KEY>.
var settingsSections = map[string]bool{
	"validate": true,
	"init":     true,
	"export":   true,
	"watch":    true,
}

// loadConfig loads tool settings with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultSettingsFile
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// Only explicitly set flags are loaded; defaults are applied by the
	// getters below so that file and env values are not shadowed.
	fs := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, any) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(fs, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	setupLogger()
	return nil
}

// loadConfigFromPath loads settings from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading settings file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("TWCONFIG_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable to a settings key:
//
//	TWCONFIG_VERBOSE -> verbose
//	TWCONFIG_VALIDATE_STRICT -> validate.strict
//	TWCONFIG_VALIDATE_MAX_SAME_ISSUES -> validate.max-same-issues
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, "TWCONFIG_"))
	if section, rest, ok := strings.Cut(s, "_"); ok && settingsSections[section] {
		return section + "." + strings.ReplaceAll(rest, "_", "-")
	}
	return strings.ReplaceAll(s, "_", "-")
}

// documentPath returns the document named on the command line, or the
// configured default.
func documentPath(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return getStringWithFallback("file", "file", defaultDocumentFile)
}

// buildValidateOptions constructs the library's ValidateOptions from koanf state.
func buildValidateOptions() twconfig.ValidateOptions {
	return twconfig.ValidateOptions{
		Root:               getStringWithFallback("root", "validate.root", ""),
		MaxIssuesPerLinter: getIntWithFallback("max-issues-per-linter", "validate.max-issues-per-linter", 0),
		MaxSameIssues:      getIntWithFallback("max-same-issues", "validate.max-same-issues", 0),
		Disable:            getStringsWithFallback("disable", "validate.disable", nil),
	}
}

// buildReportOptions constructs the reporter options from koanf state.
func buildReportOptions() report.Options {
	return report.Options{
		PrintIssuedLines: getBoolWithFallback("print-lines", "validate.print-lines", true),
		PrintLinterName:  getBoolWithFallback("print-linter-name", "validate.print-linter-name", true),
		UseColors:        getBoolWithFallback("color", "color", false),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}

// getDurationWithFallback checks the flag key first, then the config file key, then returns the default.
func getDurationWithFallback(flagKey, configKey string, defaultVal time.Duration) time.Duration {
	if k.Exists(flagKey) {
		return k.Duration(flagKey)
	}
	if k.Exists(configKey) {
		return k.Duration(configKey)
	}
	return defaultVal
}

// getStringsWithFallback checks the flag key first, then the config file key, then returns the default.
// Comma-separated strings (from env vars) are split.
func getStringsWithFallback(flagKey, configKey string, defaultVal []string) []string {
	for _, key := range []string{flagKey, configKey} {
		if !k.Exists(key) {
			continue
		}
		if v := k.Strings(key); len(v) > 0 {
			return v
		}
		if v := k.String(key); v != "" {
			return strings.Split(v, ",")
		}
	}
	return defaultVal
}
