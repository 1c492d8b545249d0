package notification

import (
	"path/filepath"
	"testing"

	"github.com/vikash1kr1209/bireenamedico/database"
	"github.com/vikash1kr1209/bireenamedico/models"
	"github.com/vikash1kr1209/bireenamedico/services/inquiry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (*DefaultNotificationService, *inquiry.DefaultInquiryLedger) {
	t.Helper()
	db, err := bolt.Open(filepath.Join(t.TempDir(), "test.db"), 0o600, nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ledger := &inquiry.DefaultInquiryLedger{Store: database.NewStore(db)}
	return &DefaultNotificationService{Ledger: ledger, Logger: zap.NewNop()}, ledger
}

func TestReplyPromotesNewToContacted(t *testing.T) {
	svc, ledger := newTestService(t)
	created, err := ledger.AppendFromExternalSource(models.Inquiry{FullName: "A", Email: "a@example.com"})
	require.NoError(t, err)

	updated, err := svc.Reply(created.ID, "Your website proposal", "Hello!", true, false)
	require.NoError(t, err)
	assert.Equal(t, models.InquiryContacted, updated.Status)
}

func TestReplyKeepsLaterStatuses(t *testing.T) {
	svc, ledger := newTestService(t)
	created, err := ledger.AppendFromExternalSource(models.Inquiry{FullName: "A"})
	require.NoError(t, err)
	_, err = ledger.SetStatus(created.ID, models.InquiryInProgress)
	require.NoError(t, err)

	// Replying only promotes from New; ongoing work is not reset.
	updated, err := svc.Reply(created.ID, "Update", "Progress report", true, true)
	require.NoError(t, err)
	assert.Equal(t, models.InquiryInProgress, updated.Status)
}

func TestReplyRequiresSubjectAndMessage(t *testing.T) {
	svc, ledger := newTestService(t)
	created, err := ledger.AppendFromExternalSource(models.Inquiry{FullName: "A"})
	require.NoError(t, err)

	_, err = svc.Reply(created.ID, "", "body", true, false)
	assert.ErrorIs(t, err, ErrEmptyReply)
	_, err = svc.Reply(created.ID, "subject", "", true, false)
	assert.ErrorIs(t, err, ErrEmptyReply)
}

func TestReplyUnknownInquiry(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Reply(999999, "subject", "body", true, false)
	assert.ErrorIs(t, err, inquiry.ErrInquiryNotFound)
}

func TestContactReturnsDetails(t *testing.T) {
	svc, ledger := newTestService(t)
	created, err := ledger.AppendFromExternalSource(models.Inquiry{FullName: "A", Phone: "9999999999", Email: "a@example.com"})
	require.NoError(t, err)

	inq, err := svc.Contact(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "9999999999", inq.Phone)

	// Contact is a stub: it never changes status.
	assert.Equal(t, models.InquiryNew, ledger.Load()[0].Status)
}

func TestSendProposalSetsStatusUnconditionally(t *testing.T) {
	svc, ledger := newTestService(t)
	created, err := ledger.AppendFromExternalSource(models.Inquiry{FullName: "A"})
	require.NoError(t, err)
	_, err = ledger.SetStatus(created.ID, models.InquiryCompleted)
	require.NoError(t, err)

	updated, err := svc.SendProposal(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InquiryProposalSent, updated.Status)
}
