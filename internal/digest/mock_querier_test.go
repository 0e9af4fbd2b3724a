package digest

import (
	"context"

	"github.com/showupapp/showup/pkg/resolution"
)

type mockQuerier struct {
	users       []string
	resolutions map[string][]resolution.Resolution
	checkIns    map[string][]resolution.CheckIn // keyed by resolution ID
	profiles    map[string]resolution.Profile
	err         error
}

func (m *mockQuerier) ListUserIDs(ctx context.Context) ([]string, error) {
	return m.users, m.err
}

func (m *mockQuerier) ListActiveResolutions(ctx context.Context, userID string) ([]resolution.Resolution, error) {
	return m.resolutions[userID], m.err
}

func (m *mockQuerier) ListRecentCheckIns(ctx context.Context, userID, resolutionID string, limit int) ([]resolution.CheckIn, error) {
	return m.checkIns[resolutionID], m.err
}

func (m *mockQuerier) GetProfile(ctx context.Context, userID string) (resolution.Profile, error) {
	return m.profiles[userID], m.err
}
