package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "roomctl", rootCmd.Use)
}

func TestRootCmd_HasVerboseFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag)
	assert.Equal(t, "v", flag.Shorthand)
}

func TestRootCmd_HasAuthTimeoutFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("auth-timeout")
	require.NotNil(t, flag)
	assert.Equal(t, "5m0s", flag.DefValue)
}

func TestVersionCmd(t *testing.T) {
	cleanup := installServices(&mockAuthService{}, &mockRoomService{}, nil, nil)
	defer cleanup()

	SetVersion("1.2.3")
	defer SetVersion("dev")

	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "roomctl version 1.2.3")
}
