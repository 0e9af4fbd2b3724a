package storage

import (
	"errors"

	"github.com/showupapp/showup/pkg/resolution"
)

// ErrNotFound is returned when a referenced resolution or profile does not
// exist. Read paths computing metrics may treat it as empty history instead
// of an error.
var ErrNotFound = errors.New("not found")

// Store persists resolutions, their check-ins and user profiles. Check-in
// writes are upserts keyed by (resolution, normalized period start): at most
// one record per period survives.
type Store interface {
	PutResolution(userID string, r resolution.Resolution) error
	GetResolution(userID, id string) (resolution.Resolution, error)
	ListResolutions(userID string) ([]resolution.Resolution, error)
	// DeleteResolution removes the resolution and all of its check-ins.
	DeleteResolution(userID, id string) error

	// UpsertCheckIn inserts or replaces the record for the check-in's
	// (resolution, date) pair. The caller normalizes the date first.
	UpsertCheckIn(userID string, c resolution.CheckIn) error
	// ListCheckIns returns check-ins newest first. limit <= 0 means all.
	ListCheckIns(userID, resolutionID string, limit int) ([]resolution.CheckIn, error)

	PutProfile(userID string, p resolution.Profile) error
	GetProfile(userID string) (resolution.Profile, error)

	// ListUserIDs returns every user with stored data, for digest runs.
	ListUserIDs() ([]string, error)

	Close() error
}
