// Package memory provides a process-local Store backend. It backs tests and
// the "memory" configuration option, which replaces the throwaway mock-data
// path the hosted app used for demo accounts.
package memory

import (
	"slices"
	"sync"

	"github.com/showupapp/showup/internal/storage"
	"github.com/showupapp/showup/pkg/resolution"
)

type userData struct {
	resolutions map[string]resolution.Resolution
	// check-ins keyed by resolution ID, then by normalized date (unix
	// seconds), so an upsert for the same period replaces in place
	checkIns map[string]map[int64]resolution.CheckIn
	profile  *resolution.Profile
}

type Store struct {
	mu    sync.RWMutex
	users map[string]*userData
}

func New() *Store {
	return &Store{users: map[string]*userData{}}
}

func (s *Store) user(id string) *userData {
	u, ok := s.users[id]
	if !ok {
		u = &userData{
			resolutions: map[string]resolution.Resolution{},
			checkIns:    map[string]map[int64]resolution.CheckIn{},
		}
		s.users[id] = u
	}
	return u
}

func (s *Store) PutResolution(userID string, r resolution.Resolution) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user(userID).resolutions[r.ID] = r
	return nil
}

func (s *Store) GetResolution(userID, id string) (resolution.Resolution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	if !ok {
		return resolution.Resolution{}, storage.ErrNotFound
	}
	r, ok := u.resolutions[id]
	if !ok {
		return resolution.Resolution{}, storage.ErrNotFound
	}
	return r, nil
}

func (s *Store) ListResolutions(userID string) ([]resolution.Resolution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []resolution.Resolution{}
	if u, ok := s.users[userID]; ok {
		for _, r := range u.resolutions {
			out = append(out, r)
		}
	}
	slices.SortFunc(out, func(a, b resolution.Resolution) int {
		return int(a.CreatedAt - b.CreatedAt)
	})
	return out, nil
}

func (s *Store) DeleteResolution(userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return storage.ErrNotFound
	}
	if _, ok := u.resolutions[id]; !ok {
		return storage.ErrNotFound
	}
	delete(u.resolutions, id)
	delete(u.checkIns, id)
	return nil
}

func (s *Store) UpsertCheckIn(userID string, ci resolution.CheckIn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.user(userID)
	byDate, ok := u.checkIns[ci.ResolutionID]
	if !ok {
		byDate = map[int64]resolution.CheckIn{}
		u.checkIns[ci.ResolutionID] = byDate
	}
	byDate[ci.Date.UTC().Unix()] = ci
	return nil
}

func (s *Store) ListCheckIns(userID, resolutionID string, limit int) ([]resolution.CheckIn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []resolution.CheckIn{}
	if u, ok := s.users[userID]; ok {
		for _, ci := range u.checkIns[resolutionID] {
			out = append(out, ci)
		}
	}
	slices.SortFunc(out, func(a, b resolution.CheckIn) int {
		return b.Date.Compare(a.Date)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) PutProfile(userID string, p resolution.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user(userID).profile = &p
	return nil
}

func (s *Store) GetProfile(userID string) (resolution.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	if !ok || u.profile == nil {
		return resolution.Profile{}, storage.ErrNotFound
	}
	return *u.profile, nil
}

func (s *Store) ListUserIDs() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.users))
	for id := range s.users {
		out = append(out, id)
	}
	slices.Sort(out)
	return out, nil
}

func (s *Store) Close() error {
	return nil
}

var _ storage.Store = (*Store)(nil)
