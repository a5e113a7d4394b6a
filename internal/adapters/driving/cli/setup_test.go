package cli

import (
	"context"

	"github.com/roomctl/roomctl/internal/core/domain"
)

// mockAuthService is a test double for driving.AuthService.
type mockAuthService struct {
	tokens      *domain.TokenSet
	err         error
	resetErr    error
	resetCalled bool
	ensureCalls int
}

func (m *mockAuthService) EnsureToken(_ context.Context) (*domain.TokenSet, error) {
	m.ensureCalls++
	if m.err != nil {
		return nil, m.err
	}
	return m.tokens, nil
}

func (m *mockAuthService) Reset() error {
	m.resetCalled = true
	return m.resetErr
}

// mockRoomService is a test double for driving.RoomService. It applies
// the real domain matching and sorting rules over a fixed room set.
type mockRoomService struct {
	rooms []domain.Room
	err   error
}

func (m *mockRoomService) Find(_ context.Context, name string, opts domain.MatchOptions) ([]domain.Room, []domain.Room, error) {
	if m.err != nil {
		return nil, nil, m.err
	}
	return domain.MatchRooms(m.rooms, name, opts), m.rooms, nil
}

func (m *mockRoomService) List(_ context.Context, max int) ([]domain.Room, error) {
	if m.err != nil {
		return nil, m.err
	}
	sorted := domain.SortByActivity(m.rooms)
	if len(sorted) > max {
		sorted = sorted[:max]
	}
	return sorted, nil
}

// mockTokenStore is a test double for driven.TokenStore.
type mockTokenStore struct {
	tokens  *domain.TokenSet
	loadErr error
	cleared bool
}

func (m *mockTokenStore) Load() (*domain.TokenSet, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.tokens, nil
}

func (m *mockTokenStore) Save(tokens *domain.TokenSet) error {
	m.tokens = tokens
	return nil
}

func (m *mockTokenStore) Clear() error {
	m.cleared = true
	m.tokens = nil
	return nil
}

// mockProber is a test double for the doctor command's API probe.
type mockProber struct {
	status int
	err    error
}

func (m *mockProber) Ping(_ context.Context) (int, error) {
	return m.status, m.err
}

// installServices swaps in test doubles and returns a cleanup function.
// With roomService non-nil the root command skips production wiring.
func installServices(auth *mockAuthService, rooms *mockRoomService, store *mockTokenStore, probe *mockProber) func() {
	oldAuth, oldRooms, oldStore, oldProber := authService, roomService, tokenStore, prober
	if auth != nil {
		authService = auth
	}
	if rooms != nil {
		roomService = rooms
	}
	if store != nil {
		tokenStore = store
	}
	if probe != nil {
		prober = probe
	}
	return func() {
		authService, roomService, tokenStore, prober = oldAuth, oldRooms, oldStore, oldProber
	}
}
