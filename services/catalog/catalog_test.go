package catalog

import (
	"path/filepath"
	"testing"

	"github.com/vikash1kr1209/bireenamedico/database"
	"github.com/vikash1kr1209/bireenamedico/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
)

func openTestDB(t *testing.T, path string) *bolt.DB {
	t.Helper()
	db, err := bolt.Open(path, 0o600, nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func newTestCatalog(t *testing.T) *DefaultServiceCatalog {
	t.Helper()
	db := openTestDB(t, filepath.Join(t.TempDir(), "test.db"))
	return &DefaultServiceCatalog{Store: database.NewStore(db)}
}

func TestListSeedsDefaultCatalog(t *testing.T) {
	cat := newTestCatalog(t)

	services := cat.List()
	require.Len(t, services, 2)
	assert.Equal(t, "Pharmacy Website Design", services[0].Name)
	assert.Equal(t, "Online Medicine Store", services[1].Name)

	// The seed is persisted, not just materialized in memory.
	var stored []models.Service
	require.True(t, cat.Store.Get(database.KeyAdminServices, &stored))
	assert.Equal(t, services, stored)
}

func TestCreateAssignsUniqueIDs(t *testing.T) {
	cat := newTestCatalog(t)

	first, err := cat.Create(models.Service{Name: "Prescription Upload Feature", Category: "Special Features", Price: "₹12,000"})
	require.NoError(t, err)
	second, err := cat.Create(models.Service{Name: "Pharmacy Inventory System", Category: "Special Features", Price: "₹18,000"})
	require.NoError(t, err)

	assert.NotZero(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, cat.List(), 4)
}

func TestCreateNormalizesPrice(t *testing.T) {
	cat := newTestCatalog(t)

	created, err := cat.Create(models.Service{Name: "Healthcare Landing Page", Category: "Website Design", Price: "15,000"})
	require.NoError(t, err)
	assert.Equal(t, "₹15,000", created.Price)

	// Already-prefixed prices stay untouched.
	created, err = cat.Create(models.Service{Name: "Pharmacy Website Support", Category: "Support", Price: "₹5,000/month"})
	require.NoError(t, err)
	assert.Equal(t, "₹5,000/month", created.Price)
}

func TestUpdateKeepsPosition(t *testing.T) {
	cat := newTestCatalog(t)
	services := cat.List()
	first := services[0]

	updated, err := cat.Update(first.ID, models.Service{
		Name:     "Pharmacy Website Redesign",
		Category: first.Category,
		Price:    "30,000",
		Status:   models.ServicePublished,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, updated.ID)
	assert.Equal(t, "₹30,000", updated.Price)

	services = cat.List()
	require.Len(t, services, 2)
	assert.Equal(t, "Pharmacy Website Redesign", services[0].Name)
	assert.Equal(t, "Online Medicine Store", services[1].Name)
}

func TestUpdateUnknownID(t *testing.T) {
	cat := newTestCatalog(t)

	_, err := cat.Update(999999, models.Service{Name: "Ghost", Category: "Support", Price: "₹1"})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestDeleteRemovesService(t *testing.T) {
	cat := newTestCatalog(t)
	services := cat.List()

	require.NoError(t, cat.Delete(services[0].ID))

	remaining := cat.List()
	require.Len(t, remaining, 1)
	assert.Equal(t, services[1].ID, remaining[0].ID)
}

func TestDeleteUnknownIDIsNoOp(t *testing.T) {
	cat := newTestCatalog(t)
	before := cat.List()

	require.NoError(t, cat.Delete(999999))
	assert.Equal(t, before, cat.List())
}

func TestListByCategory(t *testing.T) {
	cat := newTestCatalog(t)
	_, err := cat.Create(models.Service{Name: "Pharmacy Website Support", Category: "Support", Price: "₹5,000/month"})
	require.NoError(t, err)

	// Case-insensitive substring match, the way the page filter works.
	assert.Len(t, cat.ListByCategory("website"), 2)
	assert.Len(t, cat.ListByCategory("support"), 1)
	assert.Len(t, cat.ListByCategory("all"), 3)
	assert.Len(t, cat.ListByCategory(""), 3)
	assert.Empty(t, cat.ListByCategory("nonexistent"))
}

func TestCatalogRoundTripAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := bolt.Open(path, 0o600, nil)
	require.NoError(t, err)
	cat := &DefaultServiceCatalog{Store: database.NewStore(db)}

	created, err := cat.Create(models.Service{
		Name:        "Prescription Upload Feature",
		Category:    "Special Features",
		Icon:        "fas fa-file-upload",
		Description: "Add prescription upload capability",
		Price:       "12,000",
		Timeline:    "1-2 weeks",
		Status:      models.ServicePublished,
		Features:    "Secure Upload, Digital Verification",
	})
	require.NoError(t, err)
	seeded := cat.List()
	require.NoError(t, cat.Delete(seeded[0].ID))
	require.NoError(t, db.Close())

	// A fresh session over the same file sees exactly the surviving records.
	reopened := &DefaultServiceCatalog{Store: database.NewStore(openTestDB(t, path))}
	services := reopened.List()
	require.Len(t, services, 2)
	assert.Equal(t, "Online Medicine Store", services[0].Name)
	assert.Equal(t, *created, services[1])
}
