package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/wordlab/bitword.go/configuration"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadJSONFile(t *testing.T) {
	path := writeTempFile(t, "config.json", `{"Output": {"Group": true, "Format": "hex"}}`)

	config := configuration.New()
	require.NoError(t, config.LoadFile(path))

	require.True(t, config.Bool("output.group"))
	require.Equal(t, "hex", config.String("output.format"))
}

func TestLoadYAMLFile(t *testing.T) {
	path := writeTempFile(t, "config.yml", "output:\n  format: bin\n  group: false\n")

	config := configuration.New()
	require.NoError(t, config.LoadFile(path))

	require.Equal(t, "bin", config.String("output.format"))
	require.False(t, config.Bool("output.group"))
}

func TestLoadTOMLFile(t *testing.T) {
	path := writeTempFile(t, "config.toml", "[output]\nformat = \"hex\"\ngroup = true\n")

	config := configuration.New()
	require.NoError(t, config.LoadFile(path))

	require.Equal(t, "hex", config.String("output.format"))
	require.True(t, config.Bool("output.group"))
}

func TestLoadFileErrors(t *testing.T) {
	config := configuration.New()

	require.ErrorIs(t, config.LoadFile(filepath.Join(t.TempDir(), "missing.json")), configuration.ErrConfigDoesNotExist)

	path := writeTempFile(t, "config.ini", "[output]")
	require.ErrorIs(t, config.LoadFile(path), configuration.ErrUnknownConfigFormat)
}

func TestLoadFlagSet(t *testing.T) {
	flagSet := configuration.NewUnsortedFlagSet("test", flag.ContinueOnError)
	flagSet.String("output.format", "bin", "output format")
	flagSet.Bool("output.group", false, "group output into nibbles")
	require.NoError(t, flagSet.Parse([]string{"--output.format=hex"}))

	config := configuration.New()
	require.NoError(t, config.LoadFlagSet(flagSet))

	require.Equal(t, "hex", config.String("output.format"))
	require.False(t, config.Bool("output.group"))
}

func TestFlagSetDoesNotOverrideFileDefaults(t *testing.T) {
	path := writeTempFile(t, "config.json", `{"output": {"format": "hex"}}`)

	config := configuration.New()
	require.NoError(t, config.LoadFile(path))

	// the flag keeps its default, so the file value must survive
	flagSet := configuration.NewUnsortedFlagSet("test", flag.ContinueOnError)
	flagSet.String("output.format", "bin", "output format")
	require.NoError(t, flagSet.Parse(nil))
	require.NoError(t, config.LoadFlagSet(flagSet))

	require.Equal(t, "hex", config.String("output.format"))
}

func TestLoadEnvironmentVars(t *testing.T) {
	path := writeTempFile(t, "config.json", `{"output": {"format": "bin"}}`)

	config := configuration.New()
	require.NoError(t, config.LoadFile(path))

	t.Setenv("BITWORD_OUTPUT_FORMAT", "hex")
	t.Setenv("BITWORD_UNRELATED_KEY", "ignored")
	require.NoError(t, config.LoadEnvironmentVars("BITWORD"))

	require.Equal(t, "hex", config.String("output.format"))
	require.False(t, config.Exists("unrelated.key"))
}
