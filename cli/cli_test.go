package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/coniks-sys/authskiplist/internal"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	root := NewRootCommand("tool", "short", "long")
	root.AddCommand(NewVersionCommand("tool"))
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "tool v"+internal.Version+"\n", out.String())
}

func TestRunCommandError(t *testing.T) {
	boom := errors.New("boom")
	root := NewRootCommand("tool", "short", "long")
	var got []string
	root.AddCommand(NewRunCommand("do <file>", "Do it.", "Do it.", cobra.ExactArgs(1),
		func(cmd *cobra.Command, args []string) error {
			got = args
			return boom
		}))

	root.SetArgs([]string{"do", "a"})
	assert.ErrorIs(t, root.Execute(), boom)
	assert.Equal(t, []string{"a"}, got)

	root.SetArgs([]string{"do"})
	assert.Error(t, root.Execute())
}

func TestInitCommand(t *testing.T) {
	called := false
	cmd := NewInitCommand("tool", func(*cobra.Command, []string) error {
		called = true
		return nil
	})
	assert.Equal(t, "init", cmd.Use)
	assert.True(t, strings.Contains(cmd.Short, "tool"))
	require.NoError(t, cmd.RunE(cmd, nil))
	assert.True(t, called)
}
