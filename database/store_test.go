package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db := openTestDB(t, filepath.Join(t.TempDir(), "test.db"))
	return NewStore(db)
}

func openTestDB(t *testing.T, path string) *bolt.DB {
	t.Helper()
	db, err := bolt.Open(path, 0o600, nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestStoreGetMissingKey(t *testing.T) {
	store := newTestStore(t)

	var out []string
	assert.False(t, store.Get("adminServices", &out))
	assert.Nil(t, out)
}

func TestStorePutGetRoundTrip(t *testing.T) {
	store := newTestStore(t)

	in := []string{"Website Design", "Support"}
	require.NoError(t, store.Put(KeyCategories, in))

	var out []string
	require.True(t, store.Get(KeyCategories, &out))
	assert.Equal(t, in, out)
}

func TestStoreCorruptValueReadsAsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	db := openTestDB(t, path)
	store := NewStore(db)

	err := db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(storageBucket)
		if err != nil {
			return err
		}
		return b.Put([]byte(KeyAdminInquiries), []byte("{not json"))
	})
	require.NoError(t, err)

	// Reads fail soft: corruption is treated as an absent key.
	var out []string
	assert.False(t, store.Get(KeyAdminInquiries, &out))
}

func TestStoreLastWriteWins(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Put(KeyCategories, []string{"first"}))
	require.NoError(t, store.Put(KeyCategories, []string{"second"}))

	var out []string
	require.True(t, store.Get(KeyCategories, &out))
	assert.Equal(t, []string{"second"}, out)
}

func TestStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := bolt.Open(path, 0o600, nil)
	require.NoError(t, err)
	require.NoError(t, NewStore(db).Put(KeyCategories, []string{"Support"}))
	require.NoError(t, db.Close())

	store := NewStore(openTestDB(t, path))
	var out []string
	require.True(t, store.Get(KeyCategories, &out))
	assert.Equal(t, []string{"Support"}, out)
}
