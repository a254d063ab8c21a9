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
	"github.com/venuedesk/venuedesk-api/internal/domain/pricing"
	"github.com/venuedesk/venuedesk-api/pkg/apperror"
)

type quotationFixture struct {
	svc          *QuotationService
	quotations   *fakeQuotationRepo
	lines        *fakeLineRepo
	customers    *fakeCustomerRepo
	enquiries    *fakeEnquiryRepo
	users        *fakeUserRepo
	settingsRepo *fakeSettingsRepo
}

func newQuotationFixture() *quotationFixture {
	f := &quotationFixture{
		quotations:   newFakeQuotationRepo(),
		lines:        newFakeLineRepo(),
		customers:    newFakeCustomerRepo(),
		enquiries:    newFakeEnquiryRepo(),
		users:        newFakeUserRepo(),
		settingsRepo: &fakeSettingsRepo{},
	}
	f.svc = NewQuotationService(
		f.quotations, f.lines, f.customers, f.enquiries, f.users,
		NewSettingsService(f.settingsRepo), nil,
	)
	return f
}

func eventDate(t *testing.T) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", "2026-11-21")
	require.NoError(t, err)
	return d
}

func TestCreateQuotationComputesTotals(t *testing.T) {
	f := newQuotationFixture()
	userID := uuid.New()

	q, err := f.svc.CreateQuotation(context.Background(), &CreateQuotationInput{
		UserID:     userID,
		EventDate:  eventDate(t),
		GuestCount: 150,
		IncludeGST: true,
		Discount:   pricing.DiscountSpec{Type: pricing.DiscountTypePercentage, Value: 10},
		Lines: QuotationLinesInput{
			Venues: []pricing.VenueLine{
				{EventDate: "2026-11-21", Venue: "Grand Lawn", Session: "evening", SessionRate: 50000},
			},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "QT-000001", q.Reference)
	assert.Equal(t, enum.QuotationStatusDraft, q.Status)
	assert.Equal(t, 59000.0, q.VenueRentalTotal)
	assert.Equal(t, 5900.0, q.DiscountAmount)
	assert.Equal(t, 53100.0, q.GrandTotal)
	assert.Equal(t, q.GrandTotal, q.FinalTotal)
	assert.False(t, q.DiscountExceedsLimit, "discount at the ceiling is allowed")
	assert.Len(t, f.lines.venueLines[q.ID], 1)
}

func TestCreateQuotationMovesEnquiryToQuoted(t *testing.T) {
	f := newQuotationFixture()
	enquiry := &entity.Enquiry{Status: enum.EnquiryStatusNew}
	require.NoError(t, f.enquiries.Create(context.Background(), enquiry))

	_, err := f.svc.CreateQuotation(context.Background(), &CreateQuotationInput{
		UserID:    uuid.New(),
		EnquiryID: &enquiry.ID,
		EventDate: eventDate(t),
		Lines: QuotationLinesInput{
			Venues: []pricing.VenueLine{{SessionRate: 10000}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, enum.EnquiryStatusQuoted, enquiry.Status)
}

func TestCreateFromEnquiryPrefillsDraft(t *testing.T) {
	f := newQuotationFixture()
	userID := uuid.New()
	when := eventDate(t)
	enquiry := &entity.Enquiry{
		Status:     enum.EnquiryStatusContacted,
		EventDate:  &when,
		GuestCount: 200,
	}
	require.NoError(t, f.enquiries.Create(context.Background(), enquiry))

	q, err := f.svc.CreateFromEnquiry(context.Background(), userID, enquiry.ID)
	require.NoError(t, err)

	assert.Equal(t, enum.QuotationStatusDraft, q.Status)
	require.NotNil(t, q.EnquiryID)
	assert.Equal(t, enquiry.ID, *q.EnquiryID)
	assert.Equal(t, when, q.EventDate)
	assert.Equal(t, 200, q.GuestCount)
	assert.True(t, q.IncludeGST)
	assert.Equal(t, enum.EnquiryStatusQuoted, enquiry.Status)
}

func TestCreateFromEnquiryUnknownEnquiry(t *testing.T) {
	f := newQuotationFixture()

	_, err := f.svc.CreateFromEnquiry(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestCreateQuotationRejectsUnknownSession(t *testing.T) {
	f := newQuotationFixture()

	_, err := f.svc.CreateQuotation(context.Background(), &CreateQuotationInput{
		UserID:    uuid.New(),
		EventDate: eventDate(t),
		Lines: QuotationLinesInput{
			Venues: []pricing.VenueLine{
				{Venue: "Grand Lawn", Session: "midnight", SessionRate: 50000},
			},
		},
	})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 400, appErr.Code)
	assert.Contains(t, appErr.Message, "midnight")
}

func TestCreateQuotationUnknownCustomer(t *testing.T) {
	f := newQuotationFixture()
	missing := uuid.New()

	_, err := f.svc.CreateQuotation(context.Background(), &CreateQuotationInput{
		UserID:     uuid.New(),
		CustomerID: &missing,
		EventDate:  eventDate(t),
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestUpdateQuotationForbiddenForOtherUser(t *testing.T) {
	f := newQuotationFixture()
	owner := uuid.New()
	q := &entity.Quotation{UserID: owner, Status: enum.QuotationStatusDraft}
	require.NoError(t, f.quotations.Create(context.Background(), q))

	_, err := f.svc.UpdateQuotation(context.Background(), &UpdateQuotationInput{
		UserID:    uuid.New(),
		ID:        q.ID,
		EventDate: eventDate(t),
	})
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestUpdateQuotationBlockedOnceConfirmed(t *testing.T) {
	f := newQuotationFixture()
	owner := uuid.New()
	q := &entity.Quotation{UserID: owner, Status: enum.QuotationStatusConfirmed}
	require.NoError(t, f.quotations.Create(context.Background(), q))

	_, err := f.svc.UpdateQuotation(context.Background(), &UpdateQuotationInput{
		UserID:    owner,
		ID:        q.ID,
		EventDate: eventDate(t),
	})
	assert.ErrorIs(t, err, apperror.ErrQuotationNotEditable)
}

func TestDeleteQuotationBlockedOnceConfirmed(t *testing.T) {
	f := newQuotationFixture()
	owner := uuid.New()
	q := &entity.Quotation{UserID: owner, Status: enum.QuotationStatusConfirmed}
	require.NoError(t, f.quotations.Create(context.Background(), q))

	err := f.svc.DeleteQuotation(context.Background(), owner, q.ID, false)
	assert.ErrorIs(t, err, apperror.ErrQuotationNotEditable)
}

func TestDeleteQuotationRemovesLines(t *testing.T) {
	f := newQuotationFixture()
	owner := uuid.New()

	q, err := f.svc.CreateQuotation(context.Background(), &CreateQuotationInput{
		UserID:    owner,
		EventDate: eventDate(t),
		Lines: QuotationLinesInput{
			Venues: []pricing.VenueLine{{SessionRate: 10000}},
		},
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteQuotation(context.Background(), owner, q.ID, false))
	assert.Empty(t, f.lines.venueLines[q.ID])
	got, _ := f.quotations.GetByID(context.Background(), q.ID)
	assert.Nil(t, got)
}

func TestCheckDiscountPercentageOverCeiling(t *testing.T) {
	f := newQuotationFixture()

	res, err := f.svc.CheckDiscount(context.Background(), &CheckDiscountInput{
		Type:      pricing.DiscountTypePercentage,
		Value:     15,
		BaseTotal: 59000,
	})
	require.NoError(t, err)
	assert.True(t, res.ExceedsLimit)
	assert.Equal(t, 8850.0, res.DiscountAmount)
	assert.Equal(t, 10.0, res.MaxDiscountPercentage)
	assert.Equal(t, 5900.0, res.MaxAmount)
	assert.Contains(t, res.Reason, "10%")
}

func TestCheckDiscountFixedWithinAndOverCeiling(t *testing.T) {
	f := newQuotationFixture()

	within, err := f.svc.CheckDiscount(context.Background(), &CheckDiscountInput{
		Type:      pricing.DiscountTypeFixed,
		Value:     500,
		BaseTotal: 10000,
	})
	require.NoError(t, err)
	assert.False(t, within.ExceedsLimit)
	assert.Equal(t, 500.0, within.DiscountAmount)
	assert.Empty(t, within.Reason)

	over, err := f.svc.CheckDiscount(context.Background(), &CheckDiscountInput{
		Type:      pricing.DiscountTypeFixed,
		Value:     1500,
		BaseTotal: 10000,
	})
	require.NoError(t, err)
	assert.True(t, over.ExceedsLimit)
	assert.Equal(t, 1500.0, over.DiscountAmount)
	assert.NotEmpty(t, over.Reason)
}

func TestCheckDiscountRejectsUnknownType(t *testing.T) {
	f := newQuotationFixture()

	_, err := f.svc.CheckDiscount(context.Background(), &CheckDiscountInput{
		Type:      "coupon",
		Value:     5,
		BaseTotal: 10000,
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestSendQuotationRefusesEmptyMenuPackage(t *testing.T) {
	f := newQuotationFixture()
	owner := uuid.New()
	q := &entity.Quotation{
		UserID: owner,
		Status: enum.QuotationStatusDraft,
		MenuSelections: []entity.QuotationMenuSelection{
			{PackageName: "Silver Veg", PackagePrice: 1200},
		},
	}
	require.NoError(t, f.quotations.Create(context.Background(), q))

	_, err := f.svc.SendQuotation(context.Background(), owner, q.ID, false)
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
	assert.Contains(t, appErr.Message, "Silver Veg")
}

func TestSendQuotationMarksSentAndFlagsBreach(t *testing.T) {
	f := newQuotationFixture()
	owner := uuid.New()
	q := &entity.Quotation{
		UserID:        owner,
		Status:        enum.QuotationStatusDraft,
		IncludeGST:    false,
		DiscountType:  pricing.DiscountTypePercentage,
		DiscountValue: 25,
		VenueLines: []entity.QuotationVenueLine{
			{VenueName: "Grand Lawn", Session: "evening", SessionRate: 100000},
		},
	}
	require.NoError(t, f.quotations.Create(context.Background(), q))

	sent, err := f.svc.SendQuotation(context.Background(), owner, q.ID, false)
	require.NoError(t, err)

	// The breach is flagged but never blocks the send
	assert.Equal(t, enum.QuotationStatusSent, sent.Status)
	assert.True(t, sent.DiscountExceedsLimit)
	assert.Equal(t, 25000.0, sent.DiscountAmount)
	assert.Equal(t, 75000.0, sent.GrandTotal)
}

func TestSendQuotationKeepsDiscountReason(t *testing.T) {
	f := newQuotationFixture()
	owner := uuid.New()
	reason := "repeat client"
	q := &entity.Quotation{
		UserID:         owner,
		Status:         enum.QuotationStatusDraft,
		DiscountType:   pricing.DiscountTypePercentage,
		DiscountValue:  5,
		DiscountReason: &reason,
		VenueLines: []entity.QuotationVenueLine{
			{VenueName: "Grand Lawn", Session: "evening", SessionRate: 50000},
		},
	}
	require.NoError(t, f.quotations.Create(context.Background(), q))

	sent, err := f.svc.SendQuotation(context.Background(), owner, q.ID, false)
	require.NoError(t, err)

	// The submit-time recompute must not erase the audit trail
	require.NotNil(t, sent.DiscountReason)
	assert.Equal(t, "repeat client", *sent.DiscountReason)
}

func TestCreateQuotationStoresZeroDateForMalformedLineDate(t *testing.T) {
	f := newQuotationFixture()

	q, err := f.svc.CreateQuotation(context.Background(), &CreateQuotationInput{
		UserID:    uuid.New(),
		EventDate: eventDate(t),
		Lines: QuotationLinesInput{
			Venues: []pricing.VenueLine{
				{EventDate: "21/11/2026", Venue: "Grand Lawn", SessionRate: 10000},
			},
		},
	})
	require.NoError(t, err)

	lines := f.lines.venueLines[q.ID]
	require.Len(t, lines, 1)
	assert.True(t, lines[0].EventDate.IsZero())
}

func TestSendQuotationBlockedOnceCanceled(t *testing.T) {
	f := newQuotationFixture()
	owner := uuid.New()
	q := &entity.Quotation{UserID: owner, Status: enum.QuotationStatusCanceled}
	require.NoError(t, f.quotations.Create(context.Background(), q))

	_, err := f.svc.SendQuotation(context.Background(), owner, q.ID, false)
	assert.ErrorIs(t, err, apperror.ErrQuotationNotEditable)
}

func TestUpdateQuotationStatusRefusesBareConfirm(t *testing.T) {
	f := newQuotationFixture()
	owner := uuid.New()
	q := &entity.Quotation{UserID: owner, Status: enum.QuotationStatusSent}
	require.NoError(t, f.quotations.Create(context.Background(), q))

	err := f.svc.UpdateQuotationStatus(context.Background(), owner, q.ID, enum.QuotationStatusConfirmed, false)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	// Cancel is a plain status write
	require.NoError(t, f.svc.UpdateQuotationStatus(context.Background(), owner, q.ID, enum.QuotationStatusCanceled, false))
	assert.Equal(t, enum.QuotationStatusCanceled, q.Status)
}
