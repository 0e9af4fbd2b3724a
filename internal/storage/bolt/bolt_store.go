package bolt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/showupapp/showup/internal/storage"
	"github.com/showupapp/showup/pkg/resolution"
	"go.etcd.io/bbolt"
)

const (
	rootBucket        = "users"
	resolutionsBucket = "resolutions"
	checkInsBucket    = "checkins"
	profileKey        = "profile"
)

type Store struct {
	db *bbolt.DB
}

func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("open bolt db: %w", err)
	}

	s := &Store{db: db}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(rootBucket))
		return err
	}); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func userBucket(tx *bbolt.Tx, userID, name string) (*bbolt.Bucket, error) {
	users := tx.Bucket([]byte(rootBucket))
	user, err := users.CreateBucketIfNotExists([]byte(userID))
	if err != nil {
		return nil, err
	}
	return user.CreateBucketIfNotExists([]byte(name))
}

// viewUserBucket resolves a nested user bucket without creating it, for use
// inside read transactions. A nil bucket with nil error means no data yet.
func viewUserBucket(tx *bbolt.Tx, userID, name string) (*bbolt.Bucket, error) {
	users := tx.Bucket([]byte(rootBucket))
	if users == nil {
		return nil, errors.New("root bucket missing")
	}
	user := users.Bucket([]byte(userID))
	if user == nil {
		return nil, nil
	}
	return user.Bucket([]byte(name)), nil
}

func (s *Store) PutResolution(userID string, r resolution.Resolution) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := userBucket(tx, userID, resolutionsBucket)
		if err != nil {
			return err
		}
		val, err := json.Marshal(r)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(r.ID), val)
	})
}

func (s *Store) GetResolution(userID, id string) (resolution.Resolution, error) {
	var out resolution.Resolution
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket, err := viewUserBucket(tx, userID, resolutionsBucket)
		if err != nil {
			return err
		}
		if bucket == nil {
			return storage.ErrNotFound
		}
		val := bucket.Get([]byte(id))
		if val == nil {
			return storage.ErrNotFound
		}
		return json.Unmarshal(val, &out)
	})
	return out, err
}

func (s *Store) ListResolutions(userID string) ([]resolution.Resolution, error) {
	out := []resolution.Resolution{}
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket, err := viewUserBucket(tx, userID, resolutionsBucket)
		if err != nil || bucket == nil {
			return err
		}
		return bucket.ForEach(func(_, v []byte) error {
			var r resolution.Resolution
			if err := json.Unmarshal(v, &r); err != nil {
				return err
			}
			out = append(out, r)
			return nil
		})
	})
	return out, err
}

func (s *Store) DeleteResolution(userID, id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		resBucket, err := userBucket(tx, userID, resolutionsBucket)
		if err != nil {
			return err
		}
		if resBucket.Get([]byte(id)) == nil {
			return storage.ErrNotFound
		}
		if err := resBucket.Delete([]byte(id)); err != nil {
			return err
		}

		// check-ins are owned by the resolution and go with it
		ciBucket, err := userBucket(tx, userID, checkInsBucket)
		if err != nil {
			return err
		}
		c := ciBucket.Cursor()
		prefix := []byte(id + "/")
		for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
			if err := c.Delete(); err != nil {
				return err
			}
		}
		return nil
	})
}

// checkInKey builds the upsert key. Normalized RFC3339 dates sort
// lexicographically in time order, so cursor scans come back oldest first.
func checkInKey(resolutionID string, date time.Time) []byte {
	return fmt.Appendf(nil, "%s/%s", resolutionID, date.UTC().Format(time.RFC3339))
}

func (s *Store) UpsertCheckIn(userID string, ci resolution.CheckIn) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := userBucket(tx, userID, checkInsBucket)
		if err != nil {
			return err
		}
		val, err := json.Marshal(ci)
		if err != nil {
			return err
		}
		return bucket.Put(checkInKey(ci.ResolutionID, ci.Date), val)
	})
}

func (s *Store) ListCheckIns(userID, resolutionID string, limit int) ([]resolution.CheckIn, error) {
	out := []resolution.CheckIn{}
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket, err := viewUserBucket(tx, userID, checkInsBucket)
		if err != nil || bucket == nil {
			return err
		}
		c := bucket.Cursor()
		prefix := []byte(resolutionID + "/")
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			var ci resolution.CheckIn
			if err := json.Unmarshal(v, &ci); err != nil {
				return err
			}
			out = append(out, ci)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// newest first
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) PutProfile(userID string, p resolution.Profile) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		users := tx.Bucket([]byte(rootBucket))
		user, err := users.CreateBucketIfNotExists([]byte(userID))
		if err != nil {
			return err
		}
		val, err := json.Marshal(p)
		if err != nil {
			return err
		}
		return user.Put([]byte(profileKey), val)
	})
}

func (s *Store) GetProfile(userID string) (resolution.Profile, error) {
	var out resolution.Profile
	err := s.db.View(func(tx *bbolt.Tx) error {
		user := tx.Bucket([]byte(rootBucket)).Bucket([]byte(userID))
		if user == nil {
			return storage.ErrNotFound
		}
		val := user.Get([]byte(profileKey))
		if val == nil {
			return storage.ErrNotFound
		}
		return json.Unmarshal(val, &out)
	})
	return out, err
}

func (s *Store) ListUserIDs() ([]string, error) {
	out := []string{}
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(rootBucket)).ForEachBucket(func(k []byte) error {
			out = append(out, string(k))
			return nil
		})
	})
	return out, err
}

var _ storage.Store = (*Store)(nil)
