package tmux

import (
	"testing"

	"github.com/atomicstack/tmux-ui/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func containsSession(sessions []Session, name string) bool {
	for _, s := range sessions {
		if s.Name == name {
			return true
		}
	}
	return false
}

func TestSessionLifecycleIntegration(t *testing.T) {
	socket := testutil.StartTmuxServer(t)
	client := NewClient(socket)

	sessions, err := client.ListSessions()
	require.NoError(t, err)
	require.True(t, containsSession(sessions, "tmux-ui-test"), "placeholder session missing: %#v", sessions)

	require.NoError(t, client.CreateSession("integration"))
	sessions, err = client.ListSessions()
	require.NoError(t, err)
	require.True(t, containsSession(sessions, "integration"))

	require.NoError(t, client.CreateWindow("integration", "extra"))
	windows, err := client.ListWindows("integration")
	require.NoError(t, err)
	assert.Len(t, windows, 2)

	require.NoError(t, client.RenameSession("integration", "renamed"))
	sessions, err = client.ListSessions()
	require.NoError(t, err)
	assert.False(t, containsSession(sessions, "integration"))
	assert.True(t, containsSession(sessions, "renamed"))

	// no clients are attached to a detached server
	client.DetachSession("renamed")

	require.NoError(t, client.KillSession("renamed"))
	sessions, err = client.ListSessions()
	require.NoError(t, err)
	assert.False(t, containsSession(sessions, "renamed"))

	assert.Error(t, client.KillSession("renamed"))
}

func TestListSessionsWithoutServerIntegration(t *testing.T) {
	testutil.RequireTmux(t)
	client := NewClient(t.TempDir() + "/missing.sock")
	sessions, err := client.ListSessions()
	require.NoError(t, err)
	assert.Empty(t, sessions)
}
