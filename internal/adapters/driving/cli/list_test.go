package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roomctl/roomctl/internal/core/domain"
)

func TestListCmd_Empty(t *testing.T) {
	cleanup := installServices(&mockAuthService{}, &mockRoomService{}, nil, nil)
	defer cleanup()

	out, err := execute(t, "list")

	require.NoError(t, err)
	assert.Contains(t, out, "No rooms found")
}

func TestListCmd_SortedByActivity(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2024, 4, d, 10, 0, 0, 0, time.UTC)
	}
	rooms := []domain.Room{
		{ID: "r-old", Title: "Dusty Archive", LastActivity: day(1), Created: day(1)},
		{ID: "r-new", Title: "Daily Standup", LastActivity: day(20), Created: day(2)},
		{ID: "r-quiet", Title: "Quiet Corner", Created: day(10)},
	}
	cleanup := installServices(&mockAuthService{}, &mockRoomService{rooms: rooms}, nil, nil)
	defer cleanup()

	out, err := execute(t, "list")

	require.NoError(t, err)
	assert.Contains(t, out, "Showing 3 most recent rooms")
	// Activity timestamps rendered as YYYY-MM-DD HH:MM.
	assert.Contains(t, out, "2024-04-20 10:00")

	standup := strings.Index(out, "Daily Standup")
	quiet := strings.Index(out, "Quiet Corner")
	dusty := strings.Index(out, "Dusty Archive")
	assert.True(t, standup < quiet && quiet < dusty,
		"rooms not in activity order: %q", out)
}

func TestListCmd_MaxFlagLimitsOutput(t *testing.T) {
	rooms := []domain.Room{
		{ID: "r1", Title: "Alpha", Created: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)},
		{ID: "r2", Title: "Beta", Created: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{ID: "r3", Title: "Gamma", Created: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	cleanup := installServices(&mockAuthService{}, &mockRoomService{rooms: rooms}, nil, nil)
	defer cleanup()

	out, err := execute(t, "list", "--max", "2")

	require.NoError(t, err)
	assert.Contains(t, out, "Showing 2 most recent rooms (limit 2)")
	assert.Contains(t, out, "Alpha")
	assert.Contains(t, out, "Beta")
	assert.NotContains(t, out, "Gamma")
}

func TestListCmd_ListRoomsAlias(t *testing.T) {
	cleanup := installServices(&mockAuthService{}, &mockRoomService{}, nil, nil)
	defer cleanup()

	out, err := execute(t, "list-rooms")

	require.NoError(t, err)
	assert.Contains(t, out, "No rooms found")
}

func TestListCmd_ServiceErrorPropagates(t *testing.T) {
	cleanup := installServices(&mockAuthService{}, &mockRoomService{err: assert.AnError}, nil, nil)
	defer cleanup()

	_, err := execute(t, "list")

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
