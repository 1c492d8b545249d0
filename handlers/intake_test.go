package handlers

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vikash1kr1209/bireenamedico/database"
	"github.com/vikash1kr1209/bireenamedico/models"
	"github.com/vikash1kr1209/bireenamedico/services/inquiry"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
)

func newTestLedger(t *testing.T) *inquiry.DefaultInquiryLedger {
	t.Helper()
	db, err := bolt.Open(filepath.Join(t.TempDir(), "test.db"), 0o600, nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &inquiry.DefaultInquiryLedger{Store: database.NewStore(db)}
}

func newIntakeRouter(t *testing.T) (*gin.Engine, *inquiry.DefaultInquiryLedger) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ledger := newTestLedger(t)
	r := gin.New()
	r.POST("/api/inquiries", NewIntakeHandler(ledger).SubmitInquiryHandler)
	return r, ledger
}

const validIntakeBody = `{
	"serviceName": "Pharmacy Website Design",
	"fullName": "Raj Kumar",
	"businessName": "Raj Pharmacy",
	"pharmacyType": "Retail",
	"email": "raj@example.com",
	"phone": "9999999999",
	"city": "Pune",
	"features": ["Responsive Design"]
}`

func TestSubmitInquiry(t *testing.T) {
	r, ledger := newIntakeRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/inquiries", strings.NewReader(validIntakeBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	inquiries := ledger.Load()
	require.Len(t, inquiries, 1)
	assert.Equal(t, "Raj Kumar", inquiries[0].FullName)
	assert.Equal(t, models.InquiryNew, inquiries[0].Status)
}

func TestSubmitInquiryMissingRequiredField(t *testing.T) {
	r, ledger := newIntakeRouter(t)

	// No phone: validation fails at the boundary, nothing reaches storage.
	body := `{"serviceName": "x", "fullName": "A", "businessName": "B", "pharmacyType": "Retail", "email": "a@example.com", "city": "Pune"}`
	req := httptest.NewRequest(http.MethodPost, "/api/inquiries", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please fill all required fields")
	assert.Empty(t, ledger.Load())
}

func TestSubmitInquiryInvalidEmail(t *testing.T) {
	r, ledger := newIntakeRouter(t)

	body := strings.Replace(validIntakeBody, "raj@example.com", "not-an-email", 1)
	req := httptest.NewRequest(http.MethodPost, "/api/inquiries", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, ledger.Load())
}
