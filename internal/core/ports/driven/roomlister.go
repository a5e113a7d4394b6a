package driven

import (
	"context"

	"github.com/roomctl/roomctl/internal/core/domain"
)

// RoomLister fetches the rooms the authenticated user is a member of.
type RoomLister interface {
	// ListRooms returns up to max rooms. An unauthorized response from
	// the remote API surfaces as domain.ErrAuthExpired.
	ListRooms(ctx context.Context, accessToken string, max int) ([]domain.Room, error)
}
