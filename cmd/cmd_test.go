package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/mattsre/gcw/internal/workflow"
)

func TestVersion(t *testing.T) {
	assert.Equal(t, "dev", Version)
	assert.Equal(t, "unknown", BuildTime)

	assert.NotNil(t, versionCmd)
	assert.Equal(t, "version", versionCmd.Use)
	assert.Equal(t, "Show gcw version information", versionCmd.Short)
}

func TestRootCommand(t *testing.T) {
	assert.NotNil(t, rootCmd)
	assert.Equal(t, "gcw", rootCmd.Use)
	assert.Equal(t, "gcw - Conventional Commit wizard", rootCmd.Short)
	assert.True(t, rootCmd.SilenceErrors)
	assert.True(t, rootCmd.SilenceUsage)
}

func TestCommandFlags(t *testing.T) {
	flags := rootCmd.Flags()

	configFlag := rootCmd.PersistentFlags().Lookup("config")
	assert.NotNil(t, configFlag)
	assert.Equal(t, "string", configFlag.Value.Type())

	pickFlag := flags.Lookup("pick")
	assert.NotNil(t, pickFlag)
	assert.Equal(t, "bool", pickFlag.Value.Type())
	assert.Equal(t, "p", pickFlag.Shorthand)

	dryRunFlag := flags.Lookup("dry-run")
	assert.NotNil(t, dryRunFlag)
	assert.Equal(t, "bool", dryRunFlag.Value.Type())

	verboseFlag := flags.Lookup("verbose")
	assert.NotNil(t, verboseFlag)
	assert.Equal(t, "bool", verboseFlag.Value.Type())
}

func TestHandleErrors(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	defer rootCmd.SetOut(nil)

	t.Run("nil error", func(t *testing.T) {
		assert.NoError(t, handleErrors(nil))
	})

	t.Run("clean-exit sentinels return nil", func(t *testing.T) {
		for _, sentinel := range []error{
			workflow.ErrNoChanges,
			workflow.ErrNothingStaged,
			workflow.ErrAborted,
		} {
			out.Reset()
			assert.NoError(t, handleErrors(sentinel))
			assert.NotEmpty(t, out.String(), "sentinel %v should print a message", sentinel)
		}
	})

	t.Run("nothing staged prints a hint", func(t *testing.T) {
		out.Reset()
		assert.NoError(t, handleErrors(workflow.ErrNothingStaged))
		assert.Contains(t, out.String(), "--pick")
	})

	t.Run("wrapped sentinel still matches", func(t *testing.T) {
		wrapped := errors.Join(errors.New("context"), workflow.ErrAborted)
		assert.NoError(t, handleErrors(wrapped))
	})

	t.Run("repository guard failure propagates", func(t *testing.T) {
		assert.ErrorIs(t, handleErrors(workflow.ErrNotRepository), workflow.ErrNotRepository)
	})

	t.Run("generic error propagates", func(t *testing.T) {
		boom := errors.New("boom")
		assert.ErrorIs(t, handleErrors(boom), boom)
	})
}

func TestInitConfig(t *testing.T) {
	viper.Reset()
	cfgFile = ""

	assert.NotPanics(t, func() {
		initConfig()
	})
	assert.NoError(t, configErr)
}

func TestConfigCommandStructure(t *testing.T) {
	assert.NotNil(t, configCmd)
	assert.Equal(t, "config", configCmd.Use)

	assert.NotNil(t, configShowCmd)
	assert.Equal(t, "show", configShowCmd.Use)

	assert.NotNil(t, configSetCmd)
	assert.Equal(t, "set <key> <value>", configSetCmd.Use)
}

func TestParseConfigValue(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		raw      string
		expected any
		wantErr  bool
	}{
		{name: "strict true", key: "strict", raw: "true", expected: true},
		{name: "signoff false", key: "signoff", raw: "false", expected: false},
		{name: "emoji invalid bool", key: "emoji", raw: "maybe", wantErr: true},
		{name: "editor is free text", key: "editor", raw: "nvim", expected: "nvim"},
		{name: "valid default type", key: "default_type", raw: "feat", expected: "feat"},
		{name: "invalid default type", key: "default_type", raw: "feature", wantErr: true},
		{name: "clearing default type", key: "default_type", raw: "", expected: ""},
		{name: "unknown key", key: "role", raw: "dev", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := parseConfigValue(tt.key, tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestCompletionCommand(t *testing.T) {
	assert.NotNil(t, completionCmd)
	assert.Contains(t, completionCmd.ValidArgs, "bash")
	assert.Contains(t, completionCmd.ValidArgs, "zsh")
	assert.Contains(t, completionCmd.ValidArgs, "fish")
	assert.Contains(t, completionCmd.ValidArgs, "powershell")
}
