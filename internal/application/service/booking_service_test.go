package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/venuedesk/venuedesk-api/internal/domain/entity"
	"github.com/venuedesk/venuedesk-api/internal/domain/enum"
	"github.com/venuedesk/venuedesk-api/pkg/apperror"
)

type bookingFixture struct {
	svc        *BookingService
	bookings   *fakeBookingRepo
	payments   *fakePaymentRepo
	quotations *fakeQuotationRepo
	enquiries  *fakeEnquiryRepo
}

func newBookingFixture() *bookingFixture {
	f := &bookingFixture{
		bookings:   newFakeBookingRepo(),
		quotations: newFakeQuotationRepo(),
		enquiries:  newFakeEnquiryRepo(),
	}
	f.payments = newFakePaymentRepo(f.bookings)
	f.svc = NewBookingService(f.bookings, f.payments, f.quotations, f.enquiries)
	return f
}

func (f *bookingFixture) seedSentQuotation(t *testing.T, owner uuid.UUID, enquiryID *uuid.UUID) *entity.Quotation {
	t.Helper()
	q := &entity.Quotation{
		UserID:     owner,
		EnquiryID:  enquiryID,
		Status:     enum.QuotationStatusSent,
		FinalTotal: 53100,
	}
	require.NoError(t, f.quotations.Create(context.Background(), q))
	return q
}

func TestConfirmQuotationCreatesBooking(t *testing.T) {
	f := newBookingFixture()
	owner := uuid.New()
	enquiry := &entity.Enquiry{Status: enum.EnquiryStatusQuoted}
	require.NoError(t, f.enquiries.Create(context.Background(), enquiry))
	q := f.seedSentQuotation(t, owner, &enquiry.ID)

	booking, err := f.svc.ConfirmQuotation(context.Background(), &ConfirmQuotationInput{
		QuotationID:   q.ID,
		UserID:        owner,
		AdvanceAmount: 10000,
	})
	require.NoError(t, err)

	assert.Equal(t, "BK-000001", booking.Reference)
	assert.Equal(t, enum.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, 53100.0, booking.FinalTotal, "final total frozen from the quotation")
	assert.Equal(t, enum.QuotationStatusConfirmed, q.Status)
	assert.Equal(t, enum.EnquiryStatusWon, enquiry.Status)

	require.Len(t, booking.Payments, 1)
	assert.Equal(t, 10000.0, booking.Payments[0].Amount)
	assert.Equal(t, "cash", booking.Payments[0].Method)
	assert.Equal(t, 43100.0, booking.BalanceDue())
}

func TestConfirmQuotationIsIdempotent(t *testing.T) {
	f := newBookingFixture()
	owner := uuid.New()
	q := f.seedSentQuotation(t, owner, nil)

	first, err := f.svc.ConfirmQuotation(context.Background(), &ConfirmQuotationInput{
		QuotationID: q.ID,
		UserID:      owner,
	})
	require.NoError(t, err)

	second, err := f.svc.ConfirmQuotation(context.Background(), &ConfirmQuotationInput{
		QuotationID: q.ID,
		UserID:      owner,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, f.bookings.byID, 1)
}

func TestConfirmQuotationRequiresSentQuotation(t *testing.T) {
	f := newBookingFixture()
	owner := uuid.New()
	q := &entity.Quotation{UserID: owner, Status: enum.QuotationStatusDraft}
	require.NoError(t, f.quotations.Create(context.Background(), q))

	_, err := f.svc.ConfirmQuotation(context.Background(), &ConfirmQuotationInput{
		QuotationID: q.ID,
		UserID:      owner,
	})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
	assert.Empty(t, f.bookings.byID)
}

func TestConfirmQuotationBlockedWhenCanceled(t *testing.T) {
	f := newBookingFixture()
	owner := uuid.New()
	q := &entity.Quotation{UserID: owner, Status: enum.QuotationStatusCanceled}
	require.NoError(t, f.quotations.Create(context.Background(), q))

	_, err := f.svc.ConfirmQuotation(context.Background(), &ConfirmQuotationInput{
		QuotationID: q.ID,
		UserID:      owner,
	})
	assert.ErrorIs(t, err, apperror.ErrQuotationNotEditable)
}

func TestConfirmQuotationForbiddenForOtherUser(t *testing.T) {
	f := newBookingFixture()
	q := f.seedSentQuotation(t, uuid.New(), nil)

	_, err := f.svc.ConfirmQuotation(context.Background(), &ConfirmQuotationInput{
		QuotationID: q.ID,
		UserID:      uuid.New(),
	})
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestCancelBookingReopensQuotation(t *testing.T) {
	f := newBookingFixture()
	owner := uuid.New()
	q := f.seedSentQuotation(t, owner, nil)

	booking, err := f.svc.ConfirmQuotation(context.Background(), &ConfirmQuotationInput{
		QuotationID: q.ID,
		UserID:      owner,
	})
	require.NoError(t, err)
	require.Equal(t, enum.QuotationStatusConfirmed, q.Status)

	require.NoError(t, f.svc.UpdateBookingStatus(context.Background(), owner, booking.ID, enum.BookingStatusCanceled, false))
	assert.Equal(t, enum.BookingStatusCanceled, booking.Status)
	assert.Equal(t, enum.QuotationStatusSent, q.Status, "canceling the booking reopens the quotation")
}

func TestRecordPaymentValidations(t *testing.T) {
	f := newBookingFixture()
	owner := uuid.New()
	q := f.seedSentQuotation(t, owner, nil)
	booking, err := f.svc.ConfirmQuotation(context.Background(), &ConfirmQuotationInput{
		QuotationID: q.ID,
		UserID:      owner,
	})
	require.NoError(t, err)

	_, err = f.svc.RecordPayment(context.Background(), &RecordPaymentInput{
		BookingID: booking.ID,
		UserID:    owner,
		Amount:    0,
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	paidAt := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	updated, err := f.svc.RecordPayment(context.Background(), &RecordPaymentInput{
		BookingID: booking.ID,
		UserID:    owner,
		Amount:    20000,
		Method:    "upi",
		PaidAt:    &paidAt,
	})
	require.NoError(t, err)
	require.Len(t, updated.Payments, 1)
	assert.Equal(t, "upi", updated.Payments[0].Method)
	assert.Equal(t, paidAt, updated.Payments[0].PaidAt)
}

func TestRecordPaymentBlockedOnCanceledBooking(t *testing.T) {
	f := newBookingFixture()
	owner := uuid.New()
	q := f.seedSentQuotation(t, owner, nil)
	booking, err := f.svc.ConfirmQuotation(context.Background(), &ConfirmQuotationInput{
		QuotationID: q.ID,
		UserID:      owner,
	})
	require.NoError(t, err)
	require.NoError(t, f.svc.UpdateBookingStatus(context.Background(), owner, booking.ID, enum.BookingStatusCanceled, false))

	_, err = f.svc.RecordPayment(context.Background(), &RecordPaymentInput{
		BookingID: booking.ID,
		UserID:    owner,
		Amount:    5000,
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestDeletePaymentChecksOwnership(t *testing.T) {
	f := newBookingFixture()
	owner := uuid.New()
	q := f.seedSentQuotation(t, owner, nil)
	booking, err := f.svc.ConfirmQuotation(context.Background(), &ConfirmQuotationInput{
		QuotationID:   q.ID,
		UserID:        owner,
		AdvanceAmount: 5000,
	})
	require.NoError(t, err)
	require.Len(t, booking.Payments, 1)
	paymentID := booking.Payments[0].ID

	// A payment ID from another booking is not deletable through this one
	err = f.svc.DeletePayment(context.Background(), owner, booking.ID, uuid.New(), false)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)

	require.NoError(t, f.svc.DeletePayment(context.Background(), owner, booking.ID, paymentID, false))
	remaining, err := f.payments.GetByBookingID(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}
