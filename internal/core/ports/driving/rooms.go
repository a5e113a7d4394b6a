package driving

import (
	"context"

	"github.com/roomctl/roomctl/internal/core/domain"
)

// RoomService fetches and queries the user's rooms.
type RoomService interface {
	// Find fetches rooms and returns the ones matching name.
	// The second return value is the full fetched set, for callers
	// that want to show alternatives when nothing matched.
	Find(ctx context.Context, name string, opts domain.MatchOptions) (matched, all []domain.Room, err error)

	// List fetches up to max rooms sorted by most recent activity.
	List(ctx context.Context, max int) ([]domain.Room, error)
}
