package database

import (
	"encoding/json"
	"fmt"

	"github.com/vikash1kr1209/bireenamedico/utils"

	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

// Storage keys shared by the public site and the admin pages.
const (
	KeyAdminServices  = "adminServices"
	KeyAdminInquiries = "adminInquiries"
	KeyInquiries      = "inquiries"
	KeyCategories     = "categories"
)

var storageBucket = []byte("storage")

// Store is the only boundary to durable storage. Each key holds exactly one
// JSON array. Writes are synchronous and last-write-wins at key granularity;
// there is no cross-key transaction support.
type Store struct {
	db *bolt.DB
}

// NewStore returns a store backed by the given bolt database.
func NewStore(db *bolt.DB) *Store {
	return &Store{db: db}
}

// Get unmarshals the value stored under key into out and reports whether a
// usable value was present. Reads fail soft: a missing or corrupt value is
// treated as absent, never returned as an error.
func (s *Store) Get(key string, out any) bool {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(storageBucket)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			raw = make([]byte, len(v))
			copy(raw, v)
		}
		return nil
	})
	if err != nil {
		utils.GetLogger().Warn("storage read failed, treating key as absent",
			zap.String("key", key), zap.Error(err))
		return false
	}
	if raw == nil {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		utils.GetLogger().Warn("corrupt value in storage, treating key as absent",
			zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Put marshals v and writes it under key, replacing any previous value.
func (s *Store) Put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(storageBucket)
		if err != nil {
			return err
		}
		return b.Put([]byte(key), data)
	})
	if err != nil {
		return fmt.Errorf("failed to persist key %s: %w", key, err)
	}
	return nil
}
