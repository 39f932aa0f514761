package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/twconfig"
)

const validDocument = `content:
  - "./internal/**/*.templ"
safelist:
  - alert-error
theme:
  extend:
    animation:
      slide-in: slide-in 0.5s ease-out forwards
    keyframes:
      slide-in:
        "0%": { transform: translateX(100%), opacity: 0 }
        "100%": { transform: translateX(0), opacity: 1 }
`

// brokenDocument drops the keyframes the slide-in animation runs.
const brokenDocument = `content:
  - "./internal/**/*.templ"
theme:
  extend:
    animation:
      slide-in: slide-in 0.5s ease-out forwards
`

// warningDocument defines keyframes that no animation uses.
const warningDocument = validDocument + `      fade:
        from: { opacity: 0 }
`

// resetCommands clears settings and flag state left by a previous Execute.
func resetCommands() {
	resetKoanf()

	var reset func(cmd *cobra.Command)
	reset = func(cmd *cobra.Command) {
		for _, fs := range []*pflag.FlagSet{cmd.Flags(), cmd.PersistentFlags()} {
			fs.VisitAll(func(f *pflag.Flag) {
				if sv, ok := f.Value.(pflag.SliceValue); ok {
					_ = sv.Replace(nil)
				} else {
					_ = f.Value.Set(f.DefValue)
				}
				f.Changed = false
			})
		}
		for _, sub := range cmd.Commands() {
			reset(sub)
		}
	}
	reset(rootCmd)
}

// execute runs the CLI in dir and returns its stdout.
func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	resetCommands()

	// plain output regardless of the CI environment
	t.Setenv("FORCE_COLOR", "")
	t.Setenv("GITHUB_ACTIONS", "")

	// nil args would make cobra fall back to os.Args
	if args == nil {
		args = []string{}
	}

	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func writeDocument(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	writeDocument(t, dir, "twconfig.yaml", validDocument)

	out, err := execute(t, dir, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "0 issues.")
}

func TestValidateCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	writeDocument(t, dir, "broken.yaml", brokenDocument)

	out, err := execute(t, dir, "validate", "broken.yaml")
	require.ErrorIs(t, err, errValidationFailed)
	assert.Contains(t, out, `broken.yaml:6:7: error: animation "slide-in" has no matching keyframes (keyframes-ref)`)
	assert.Contains(t, out, "* keyframes-ref: 1")
}

func TestValidateCommand_DefaultAndAlias(t *testing.T) {
	dir := t.TempDir()
	writeDocument(t, dir, "twconfig.yaml", brokenDocument)

	_, err := execute(t, dir)
	require.ErrorIs(t, err, errValidationFailed, "root command validates by default")

	_, err = execute(t, dir, "lint", "--file", "twconfig.yaml")
	require.ErrorIs(t, err, errValidationFailed)
}

func TestValidateCommand_Strict(t *testing.T) {
	dir := t.TempDir()
	writeDocument(t, dir, "twconfig.yaml", warningDocument)

	out, err := execute(t, dir, "validate")
	require.NoError(t, err, "warnings do not fail without --strict")
	assert.Contains(t, out, "unused-keyframes")

	_, err = execute(t, dir, "validate", "--strict")
	require.ErrorIs(t, err, errValidationFailed)

	_, err = execute(t, dir, "validate", "--strict", "--disable", "unused-keyframes")
	require.NoError(t, err)
}

func TestValidateCommand_StrictFromSettingsFile(t *testing.T) {
	dir := t.TempDir()
	writeDocument(t, dir, "twconfig.yaml", warningDocument)
	writeDocument(t, dir, ".twconfig.yaml", "validate:\n  strict: true\n")

	_, err := execute(t, dir, "validate")
	require.ErrorIs(t, err, errValidationFailed)
}

func TestValidateCommand_JSONOutput(t *testing.T) {
	dir := t.TempDir()
	writeDocument(t, dir, "twconfig.yaml", brokenDocument)

	out, err := execute(t, dir, "validate", "--output-format", "json")
	require.ErrorIs(t, err, errValidationFailed)

	var decoded struct {
		File    string `json:"file"`
		Summary struct {
			Errors int `json:"errors"`
		} `json:"summary"`
		Issues []struct {
			Line   int    `json:"line"`
			Linter string `json:"linter"`
		} `json:"issues"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "twconfig.yaml", decoded.File)
	assert.Equal(t, 1, decoded.Summary.Errors)
	require.Len(t, decoded.Issues, 1)
	assert.Equal(t, 6, decoded.Issues[0].Line)
	assert.Equal(t, twconfig.RuleKeyframesRef, decoded.Issues[0].Linter)
}

func TestValidateCommand_Quiet(t *testing.T) {
	dir := t.TempDir()
	writeDocument(t, dir, "twconfig.yaml", brokenDocument)

	out, err := execute(t, dir, "validate", "--quiet")
	require.ErrorIs(t, err, errValidationFailed)
	assert.Empty(t, out)
}

func TestValidateCommand_MissingFile(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, dir, "validate", "missing.yaml")
	require.Error(t, err)
	assert.NotErrorIs(t, err, errValidationFailed)
	assert.Contains(t, err.Error(), "missing.yaml")
}

func TestValidateCommand_Root(t *testing.T) {
	dir := t.TempDir()
	writeDocument(t, dir, "twconfig.yaml", validDocument)

	out, err := execute(t, dir, "validate", "--root", ".")
	require.NoError(t, err)
	assert.Contains(t, out, "content-unmatched")

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "internal", "ui"), 0o755))
	writeDocument(t, dir, "internal/ui/alert.templ", `<div class="alert-error"></div>`)

	out, err = execute(t, dir, "validate", "--root", ".")
	require.NoError(t, err)
	assert.Contains(t, out, "0 issues.")
}

func TestInitCommand_CreatesConfigFile(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Created twconfig.yaml")

	// Verify file was created and is valid
	doc, err := twconfig.Load(filepath.Join(dir, "twconfig.yaml"))
	require.NoError(t, err)
	assert.Equal(t, twconfig.Default(), doc.Config)
	assert.Contains(t, string(doc.Source), "# Utility-CSS generator configuration")

	_, err = execute(t, dir, "validate")
	require.NoError(t, err)
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	writeDocument(t, dir, "twconfig.yaml", "existing")

	_, err := execute(t, dir, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	data, err := os.ReadFile(filepath.Join(dir, "twconfig.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "existing", string(data))
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	dir := t.TempDir()
	writeDocument(t, dir, "twconfig.yaml", "existing")

	_, err := execute(t, dir, "init", "--force")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "twconfig.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "slide-in")
}

func TestInitCommand_Formats(t *testing.T) {
	tests := []struct {
		format string
		file   string
		prefix string
	}{
		{"json", "twconfig.json", "{"},
		{"js", "tailwind.config.js", "/** @type"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			dir := t.TempDir()

			_, err := execute(t, dir, "init", "--format", tt.format)
			require.NoError(t, err)

			data, err := os.ReadFile(filepath.Join(dir, tt.file))
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(string(data), tt.prefix), string(data))
		})
	}
}

func TestInitCommand_UnknownFormat(t *testing.T) {
	_, err := execute(t, t.TempDir(), "init", "--format", "toml")
	require.ErrorIs(t, err, twconfig.ErrUnknownFormat)
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	writeDocument(t, dir, "twconfig.yaml", validDocument)

	out, err := execute(t, dir, "export", "--format", "json")
	require.NoError(t, err)

	doc, err := twconfig.Parse([]byte(out), twconfig.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, []string{"alert-error"}, doc.Config.Safelist)
	assert.Equal(t, "0", doc.Config.Theme.Extend.Keyframes["slide-in"]["0%"]["opacity"])
}

func TestExportCommand_OutputFile(t *testing.T) {
	dir := t.TempDir()
	writeDocument(t, dir, "twconfig.yaml", validDocument)

	out, err := execute(t, dir, "export", "-o", "tailwind.config.js")
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(filepath.Join(dir, "tailwind.config.js"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "/** @type {import('tailwindcss').Config} */"))
	assert.Contains(t, string(data), `"slide-in": "slide-in 0.5s ease-out forwards"`)
}

func TestSchemaCommand(t *testing.T) {
	out, err := execute(t, t.TempDir(), "schema")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Contains(t, decoded, "properties")
}

func TestFilesCommand(t *testing.T) {
	dir := t.TempDir()
	writeDocument(t, dir, "twconfig.yaml", validDocument)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "internal", "ui"), 0o755))
	writeDocument(t, dir, "internal/ui/alert.templ", "")
	writeDocument(t, dir, "internal/ui/alert_templ.go", "")

	out, err := execute(t, dir, "files")
	require.NoError(t, err)
	assert.Equal(t, "internal/ui/alert.templ\n", out)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, "twconfig dev\n", out)
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, t.TempDir(), "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "twconfig")
}
