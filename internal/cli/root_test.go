package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRootCmdRegistersCommands(t *testing.T) {
	rootCmd := NewRootCmd("1.2.3", "abc123", "2024-03-09")

	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	require.True(t, names["backup"])
	require.True(t, names["clone"])
	require.True(t, names["doctor"])

	require.Contains(t, rootCmd.Version, "1.2.3")
	require.NotNil(t, rootCmd.PersistentFlags().Lookup("verbose"))
}

func TestBackupCmdFlags(t *testing.T) {
	cmd := newBackupCmd()

	for _, name := range []string{"projects", "dest", "archive", "timestamp-dir", "branches", "remote"} {
		require.NotNil(t, cmd.Flags().Lookup(name), "missing flag %s", name)
	}
}

func TestCloneCmdFlags(t *testing.T) {
	cmd := newCloneCmd()

	for _, name := range []string{"projects", "user", "page-size", "archive-dir", "branches"} {
		require.NotNil(t, cmd.Flags().Lookup(name), "missing flag %s", name)
	}
}
