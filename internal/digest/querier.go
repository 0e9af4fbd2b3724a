package digest

import (
	"context"
	"errors"

	"github.com/showupapp/showup/internal/storage"
	"github.com/showupapp/showup/pkg/resolution"
)

// Querier is the read surface a digest run needs. The store satisfies it
// through StoreQuerier; tests use an in-package mock.
type Querier interface {
	ListUserIDs(ctx context.Context) ([]string, error)
	ListActiveResolutions(ctx context.Context, userID string) ([]resolution.Resolution, error)
	ListRecentCheckIns(ctx context.Context, userID, resolutionID string, limit int) ([]resolution.CheckIn, error)
	GetProfile(ctx context.Context, userID string) (resolution.Profile, error)
}

// Notifier delivers one digest email. Transmission outcomes are reported
// back per user; retries and dedup of sends are the dispatcher's problem.
type Notifier interface {
	SendDigest(email, name string, pending []string) error
}

type StoreQuerier struct {
	Store storage.Store
}

func (q *StoreQuerier) ListUserIDs(_ context.Context) ([]string, error) {
	return q.Store.ListUserIDs()
}

func (q *StoreQuerier) ListActiveResolutions(_ context.Context, userID string) ([]resolution.Resolution, error) {
	list, err := q.Store.ListResolutions(userID)
	if err != nil {
		return nil, err
	}
	active := []resolution.Resolution{}
	for _, r := range list {
		if r.Status == resolution.StatusActive {
			active = append(active, r)
		}
	}
	return active, nil
}

func (q *StoreQuerier) ListRecentCheckIns(_ context.Context, userID, resolutionID string, limit int) ([]resolution.CheckIn, error) {
	return q.Store.ListCheckIns(userID, resolutionID, limit)
}

func (q *StoreQuerier) GetProfile(_ context.Context, userID string) (resolution.Profile, error) {
	p, err := q.Store.GetProfile(userID)
	if errors.Is(err, storage.ErrNotFound) {
		return resolution.Profile{}, nil
	}
	return p, err
}

var _ Querier = (*StoreQuerier)(nil)
