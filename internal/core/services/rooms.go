package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/roomctl/roomctl/internal/core/domain"
	"github.com/roomctl/roomctl/internal/core/ports/driven"
	"github.com/roomctl/roomctl/internal/core/ports/driving"
	"github.com/roomctl/roomctl/internal/logger"
)

// searchFetchMax is how many rooms a search fetches. Searches pull more
// than listings so a match near the bottom of the membership is still
// found.
const searchFetchMax = 500

// Ensure Rooms implements the RoomService interface.
var _ driving.RoomService = (*Rooms)(nil)

// Rooms fetches rooms through the directory client and applies the
// in-memory query rules. When the remote API reports the cached token is
// no longer valid, the credential file is deleted so the next invocation
// re-authenticates.
type Rooms struct {
	auth   driving.AuthService
	lister driven.RoomLister
	store  driven.TokenStore
}

// NewRooms wires a room service.
func NewRooms(auth driving.AuthService, lister driven.RoomLister, store driven.TokenStore) *Rooms {
	return &Rooms{auth: auth, lister: lister, store: store}
}

// Find fetches the user's rooms and returns the ones matching name,
// along with the full fetched set.
func (s *Rooms) Find(ctx context.Context, name string, opts domain.MatchOptions) ([]domain.Room, []domain.Room, error) {
	rooms, err := s.fetch(ctx, searchFetchMax)
	if err != nil {
		return nil, nil, err
	}
	matched := domain.MatchRooms(rooms, name, opts)
	logger.Debug("matched %d of %d rooms for %q", len(matched), len(rooms), name)
	return matched, rooms, nil
}

// List fetches up to max rooms sorted by most recent activity.
func (s *Rooms) List(ctx context.Context, max int) ([]domain.Room, error) {
	rooms, err := s.fetch(ctx, max)
	if err != nil {
		return nil, err
	}
	return domain.SortByActivity(rooms), nil
}

func (s *Rooms) fetch(ctx context.Context, max int) ([]domain.Room, error) {
	tokens, err := s.auth.EnsureToken(ctx)
	if err != nil {
		return nil, err
	}

	rooms, err := s.lister.ListRooms(ctx, tokens.AccessToken, max)
	if err != nil {
		if errors.Is(err, domain.ErrAuthExpired) {
			// Self-healing: drop the stale credentials so the next
			// invocation re-runs the authorization flow.
			if clearErr := s.store.Clear(); clearErr != nil {
				logger.Warn("clear stale credentials: %v", clearErr)
			}
			return nil, fmt.Errorf("%w: stored tokens removed, run the command again to re-authenticate", domain.ErrAuthExpired)
		}
		return nil, err
	}

	logger.Debug("fetched %d rooms (max %d)", len(rooms), max)
	return rooms, nil
}
