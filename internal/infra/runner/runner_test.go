package runner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Run_Success(t *testing.T) {
	client := NewClient()

	out, err := client.Run(context.Background(), t.TempDir(), "echo ok")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)
}

func TestClient_Run_NonZeroExit(t *testing.T) {
	client := NewClient()

	out, err := client.Run(context.Background(), t.TempDir(), "echo failing; exit 3")
	require.Error(t, err)
	assert.Contains(t, out, "failing")
}

func TestClient_Run_UsesDir(t *testing.T) {
	dir := t.TempDir()
	client := NewClient()

	out, err := client.Run(context.Background(), dir, "pwd")
	require.NoError(t, err)
	assert.Contains(t, out, dir)
}
