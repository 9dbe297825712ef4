package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	cmds := rootCmd.Commands()

	names := make(map[string]bool)
	for _, c := range cmds {
		names[c.Name()] = true
	}

	expected := []string{"calculate", "report", "serve"}
	for _, name := range expected {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "csrd-engine", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestCalculateCommand_Flags(t *testing.T) {
	flag := calculateCmd.Flags().Lookup("input")
	require.NotNil(t, flag, "calculate command should have --input flag")
	assert.Equal(t, "-", flag.DefValue)
}

func TestReportCommand_Flags(t *testing.T) {
	for _, tt := range []struct {
		name string
		def  string
	}{
		{"input", "-"},
		{"format", "json"},
		{"output", ""},
	} {
		flag := reportCmd.Flags().Lookup(tt.name)
		require.NotNil(t, flag, "report command should have --%s flag", tt.name)
		assert.Equal(t, tt.def, flag.DefValue)
	}
}

func TestServeCommand_Flags(t *testing.T) {
	flag := serveCmd.Flags().Lookup("port")
	require.NotNil(t, flag, "serve command should have --port flag")
	assert.Equal(t, "0", flag.DefValue)
}
