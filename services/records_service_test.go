package services

import (
	"context"
	"encoding/json"
	"testing"

	"foundation-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{models.ScholarshipPending, models.ScholarshipUnderReview, true},
		{models.ScholarshipUnderReview, models.ScholarshipApproved, true},
		{models.ScholarshipPending, models.ScholarshipApproved, false},
		{models.ScholarshipApproved, models.ScholarshipPending, false},
		{models.ScholarshipUnderReview, models.ScholarshipPending, false},
		{models.ScholarshipApproved, models.ScholarshipApproved, false},
		{models.ScholarshipPending, "ปฏิเสธ", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.ok, CanTransition(c.from, c.to), "%s -> %s", c.from, c.to)
	}
}

func TestScholarshipWorkflow(t *testing.T) {
	ctx := context.Background()
	svc := NewScholarshipService(newTestDB(t))

	app := &models.ScholarshipApplication{FullName: "ด.ญ. มะลิ", SchoolName: "โรงเรียนบ้านนา", Status: models.ScholarshipApproved}
	require.NoError(t, svc.Submit(ctx, app))
	assert.Equal(t, models.ScholarshipPending, app.Status)

	_, err := svc.ChangeStatus(ctx, app.ID, models.ScholarshipApproved)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	got, err := svc.ChangeStatus(ctx, app.ID, models.ScholarshipUnderReview)
	require.NoError(t, err)
	assert.Equal(t, models.ScholarshipUnderReview, got.Status)

	got, err = svc.ChangeStatus(ctx, app.ID, models.ScholarshipApproved)
	require.NoError(t, err)
	assert.Equal(t, models.ScholarshipApproved, got.Status)

	_, err = svc.ChangeStatus(ctx, app.ID, models.ScholarshipPending)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.ChangeStatus(ctx, 999, models.ScholarshipUnderReview)
	assert.ErrorIs(t, err, ErrNotFound)

	stored, err := svc.Get(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ScholarshipApproved, stored.Status)
	assert.Equal(t, "ด.ญ. มะลิ", stored.FullName)
}

func TestContactMarkReadOnlyTouchesStatus(t *testing.T) {
	ctx := context.Background()
	svc := NewContactService(newTestDB(t))

	msg := &models.ContactMessage{Name: "ก", Email: "a@b.c", Subject: "s", Message: "m", Status: models.MessageRead}
	require.NoError(t, svc.Submit(ctx, msg))
	assert.Equal(t, models.MessageUnread, msg.Status)

	read, err := svc.MarkRead(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MessageRead, read.Status)

	again, err := svc.MarkRead(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MessageRead, again.Status)

	stored, err := svc.Get(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, "ก", stored.Name)
	assert.Equal(t, "s", stored.Subject)
	assert.Equal(t, "m", stored.Message)
	assert.Equal(t, models.MessageRead, stored.Status)

	_, err = svc.MarkRead(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDonationSubmitAndStatus(t *testing.T) {
	ctx := context.Background()
	store := newMemStorage()
	svc := NewDonationService(newTestDB(t), newTestUploader(store))

	d := &models.Donation{FullName: "นายใจดี", Amount: 1500, Status: models.StatusPaid}
	receipt := fileHeaders(t, "receipt", testFile{"slip.png", pngBytes(t, 4, 4)})[0]
	require.NoError(t, svc.Submit(ctx, d, receipt))
	assert.Equal(t, models.StatusPending, d.Status)
	assert.True(t, store.has(d.ReceiptKey))
	assert.Contains(t, d.ReceiptKey, "receipts/")

	_, err := svc.SetStatus(ctx, d.ID, "refunded")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	paid, err := svc.SetStatus(ctx, d.ID, models.StatusPaid)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPaid, paid.Status)
	assert.Equal(t, 1500.0, paid.Amount)

	noSlip := &models.Donation{FullName: "ไม่แนบสลิป", Amount: 100}
	require.NoError(t, svc.Submit(ctx, noSlip, nil))
	assert.Empty(t, noSlip.ReceiptURL)
}

func TestDonationUploadFailureSavesNothing(t *testing.T) {
	ctx := context.Background()
	store := newMemStorage()
	store.failPut = true
	svc := NewDonationService(newTestDB(t), newTestUploader(store))

	err := svc.Submit(ctx, &models.Donation{FullName: "x", Amount: 1},
		fileHeaders(t, "receipt", testFile{"slip.pdf", []byte("%PDF")})[0])
	require.Error(t, err)

	n, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStudentFindByIDCard(t *testing.T) {
	ctx := context.Background()
	svc := NewStudentService(newTestDB(t))

	st := &models.Student{FirstName: "สมหญิง", LastName: "ใจงาม", IDCard: " 1234567890123 ", DepositStatus: models.StatusPaid}
	require.NoError(t, svc.Register(ctx, st))
	assert.Equal(t, models.StatusPending, st.DepositStatus)
	assert.Equal(t, models.StatusPending, st.TuitionStatus)

	found, err := svc.FindByIDCard(ctx, "1234567890123")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, st.ID, found.ID)

	missing, err := svc.FindByIDCard(ctx, "9999999999999")
	require.NoError(t, err)
	assert.Nil(t, missing)

	empty, err := svc.FindByIDCard(ctx, "  ")
	require.NoError(t, err)
	assert.Nil(t, empty)
}

func TestStudentSetStatus(t *testing.T) {
	ctx := context.Background()
	svc := NewStudentService(newTestDB(t))
	st := &models.Student{FirstName: "ก", IDCard: "1111111111111"}
	require.NoError(t, svc.Register(ctx, st))

	paid := models.StatusPaid
	got, err := svc.SetStatus(ctx, st.ID, PaymentStatus{Deposit: &paid})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPaid, got.DepositStatus)
	assert.Equal(t, models.StatusPending, got.TuitionStatus)

	bad := "maybe"
	_, err = svc.SetStatus(ctx, st.ID, PaymentStatus{Tuition: &bad})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.SetStatus(ctx, 999, PaymentStatus{Deposit: &paid})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStudentListByRecruiter(t *testing.T) {
	ctx := context.Background()
	svc := NewStudentService(newTestDB(t))
	for _, r := range []string{"ครูสมศรี", "ครูสมศรี", "ครูวิชัย"} {
		require.NoError(t, svc.Register(ctx, &models.Student{FirstName: "x", RecruiterName: r}))
	}

	got, err := svc.ListByRecruiter(ctx, " ครูสมศรี ")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	none, err := svc.ListByRecruiter(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSettingsUpsert(t *testing.T) {
	ctx := context.Background()
	svc := NewSettingsService(newTestDB(t))

	_, err := svc.Get(ctx, "statistics")
	assert.ErrorIs(t, err, ErrUnknownSetting)
	assert.True(t, IsNotFound(err))

	_, err = svc.Upsert(ctx, "statistics", json.RawMessage(`[{"number":"100+","label":"นักเรียน"}]`))
	require.NoError(t, err)
	_, err = svc.Upsert(ctx, "statistics", json.RawMessage(`[{"number":"200+","label":"นักเรียน"},{"number":"12","label":"ปี"}]`))
	require.NoError(t, err)

	stats, err := svc.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Statistic{{Number: "200+", Label: "นักเรียน"}, {Number: "12", Label: "ปี"}}, stats)

	_, err = svc.Upsert(ctx, "statistics", json.RawMessage(`{broken`))
	assert.Error(t, err)
	_, err = svc.Upsert(ctx, " ", json.RawMessage(`1`))
	assert.Error(t, err)
}

func TestDashboardCounts(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	contacts := NewContactService(db)
	scholarships := NewScholarshipService(db)

	m1 := &models.ContactMessage{Name: "a"}
	m2 := &models.ContactMessage{Name: "b"}
	require.NoError(t, contacts.Submit(ctx, m1))
	require.NoError(t, contacts.Submit(ctx, m2))
	_, err := contacts.MarkRead(ctx, m1.ID)
	require.NoError(t, err)

	app := &models.ScholarshipApplication{FullName: "x"}
	require.NoError(t, scholarships.Submit(ctx, app))

	counts, err := NewDashboardService(db).Counts(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, counts.Messages)
	assert.EqualValues(t, 1, counts.UnreadMessages)
	assert.EqualValues(t, 1, counts.Scholarships)
	assert.EqualValues(t, 1, counts.PendingScholarships)
	assert.Zero(t, counts.News)
}

func TestAdminServiceDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewAdminService(newTestDB(t))

	a, err := svc.Create(ctx, "ผู้ดูแล", "root", "secret")
	require.NoError(t, err)
	b, err := svc.Create(ctx, "ผู้ช่วย", "helper", "secret")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, a.ID, a.ID), ErrSelfDelete)
	require.NoError(t, svc.Delete(ctx, b.ID, a.ID))
	assert.ErrorIs(t, svc.Delete(ctx, b.ID, a.ID), ErrNotFound)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "root", all[0].Username)
}
