package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/venuedesk/venuedesk-api/internal/domain/entity"
	"github.com/venuedesk/venuedesk-api/internal/domain/enum"
	"github.com/venuedesk/venuedesk-api/internal/domain/repository"
	"github.com/venuedesk/venuedesk-api/pkg/pagination"
)

// In-memory repository fakes. They implement just enough behavior for the
// service tests: storage by ID, sequential references and status writes.

type fakeQuotationRepo struct {
	byID    map[uuid.UUID]*entity.Quotation
	nextRef int
}

func newFakeQuotationRepo() *fakeQuotationRepo {
	return &fakeQuotationRepo{byID: make(map[uuid.UUID]*entity.Quotation), nextRef: 1}
}

func (r *fakeQuotationRepo) Create(_ context.Context, q *entity.Quotation) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	r.byID[q.ID] = q
	return nil
}

func (r *fakeQuotationRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Quotation, error) {
	return r.byID[id], nil
}

func (r *fakeQuotationRepo) GetByReference(_ context.Context, reference string) (*entity.Quotation, error) {
	for _, q := range r.byID {
		if q.Reference == reference {
			return q, nil
		}
	}
	return nil, nil
}

func (r *fakeQuotationRepo) Update(_ context.Context, q *entity.Quotation) error {
	r.byID[q.ID] = q
	return nil
}

func (r *fakeQuotationRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

func (r *fakeQuotationRepo) List(_ context.Context, userID uuid.UUID, params *repository.QuotationFilterParams) ([]entity.Quotation, int64, error) {
	out := make([]entity.Quotation, 0, len(r.byID))
	for _, q := range r.byID {
		if !params.SkipUserFilter && q.UserID != userID {
			continue
		}
		out = append(out, *q)
	}
	return out, int64(len(out)), nil
}

func (r *fakeQuotationRepo) GetWithLines(_ context.Context, id uuid.UUID) (*entity.Quotation, error) {
	return r.byID[id], nil
}

func (r *fakeQuotationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status enum.QuotationStatus) error {
	if q, ok := r.byID[id]; ok {
		q.Status = status
	}
	return nil
}

func (r *fakeQuotationRepo) GetNextReferenceNumber(_ context.Context) (int, error) {
	n := r.nextRef
	r.nextRef++
	return n, nil
}

type fakeLineRepo struct {
	venueLines map[uuid.UUID][]entity.QuotationVenueLine
	roomLines  map[uuid.UUID][]entity.QuotationRoomLine
	selections map[uuid.UUID][]entity.QuotationMenuSelection
}

func newFakeLineRepo() *fakeLineRepo {
	return &fakeLineRepo{
		venueLines: make(map[uuid.UUID][]entity.QuotationVenueLine),
		roomLines:  make(map[uuid.UUID][]entity.QuotationRoomLine),
		selections: make(map[uuid.UUID][]entity.QuotationMenuSelection),
	}
}

func (r *fakeLineRepo) ReplaceVenueLines(_ context.Context, quotationID uuid.UUID, lines []entity.QuotationVenueLine) error {
	r.venueLines[quotationID] = lines
	return nil
}

func (r *fakeLineRepo) ReplaceRoomLines(_ context.Context, quotationID uuid.UUID, lines []entity.QuotationRoomLine) error {
	r.roomLines[quotationID] = lines
	return nil
}

func (r *fakeLineRepo) ReplaceMenuSelections(_ context.Context, quotationID uuid.UUID, selections []entity.QuotationMenuSelection) error {
	r.selections[quotationID] = selections
	return nil
}

func (r *fakeLineRepo) DeleteByQuotationID(_ context.Context, quotationID uuid.UUID) error {
	delete(r.venueLines, quotationID)
	delete(r.roomLines, quotationID)
	delete(r.selections, quotationID)
	return nil
}

type fakeCustomerRepo struct {
	byID map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{byID: make(map[uuid.UUID]*entity.Customer)}
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.byID[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	return r.byID[id], nil
}

func (r *fakeCustomerRepo) GetByEmail(_ context.Context, email string) (*entity.Customer, error) {
	for _, c := range r.byID {
		if c.Email != nil && *c.Email == email {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) GetByPhone(_ context.Context, phone string) (*entity.Customer, error) {
	for _, c := range r.byID {
		if c.Phone != nil && *c.Phone == phone {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	r.byID[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

func (r *fakeCustomerRepo) List(_ context.Context, userID uuid.UUID, _ *pagination.PaginationParams, _ string, skipUserFilter bool) ([]entity.Customer, int64, error) {
	out := make([]entity.Customer, 0, len(r.byID))
	for _, c := range r.byID {
		if !skipUserFilter && c.UserID != userID {
			continue
		}
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

type fakeEnquiryRepo struct {
	byID    map[uuid.UUID]*entity.Enquiry
	nextRef int
}

func newFakeEnquiryRepo() *fakeEnquiryRepo {
	return &fakeEnquiryRepo{byID: make(map[uuid.UUID]*entity.Enquiry), nextRef: 1}
}

func (r *fakeEnquiryRepo) Create(_ context.Context, e *entity.Enquiry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.byID[e.ID] = e
	return nil
}

func (r *fakeEnquiryRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Enquiry, error) {
	return r.byID[id], nil
}

func (r *fakeEnquiryRepo) GetByReference(_ context.Context, reference string) (*entity.Enquiry, error) {
	for _, e := range r.byID {
		if e.Reference == reference {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeEnquiryRepo) Update(_ context.Context, e *entity.Enquiry) error {
	r.byID[e.ID] = e
	return nil
}

func (r *fakeEnquiryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

func (r *fakeEnquiryRepo) List(_ context.Context, _ *repository.EnquiryFilterParams) ([]entity.Enquiry, int64, error) {
	out := make([]entity.Enquiry, 0, len(r.byID))
	for _, e := range r.byID {
		out = append(out, *e)
	}
	return out, int64(len(out)), nil
}

func (r *fakeEnquiryRepo) UpdateStatus(_ context.Context, id uuid.UUID, status enum.EnquiryStatus) error {
	if e, ok := r.byID[id]; ok {
		e.Status = status
	}
	return nil
}

func (r *fakeEnquiryRepo) GetNextReferenceNumber(_ context.Context) (int, error) {
	n := r.nextRef
	r.nextRef++
	return n, nil
}

func (r *fakeEnquiryRepo) CountByStatus(_ context.Context) (map[enum.EnquiryStatus]int64, error) {
	counts := make(map[enum.EnquiryStatus]int64)
	for _, e := range r.byID {
		counts[e.Status]++
	}
	return counts, nil
}

type fakeUserRepo struct {
	byID map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.byID[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return r.byID[id], nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	r.byID[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, _ *pagination.PaginationParams, _ string) ([]entity.User, int64, error) {
	out := make([]entity.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) GetWithRoles(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return r.byID[id], nil
}

func (r *fakeUserRepo) AssignRole(_ context.Context, _ uuid.UUID, _ uint) error { return nil }
func (r *fakeUserRepo) RemoveRole(_ context.Context, _ uuid.UUID, _ uint) error { return nil }

type fakeSettingsRepo struct {
	settings *entity.SystemSettings
}

func (r *fakeSettingsRepo) Get(_ context.Context) (*entity.SystemSettings, error) {
	return r.settings, nil
}

func (r *fakeSettingsRepo) Create(_ context.Context, s *entity.SystemSettings) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.settings = s
	return nil
}

func (r *fakeSettingsRepo) Update(_ context.Context, s *entity.SystemSettings) error {
	r.settings = s
	return nil
}

type fakeBookingRepo struct {
	byID    map[uuid.UUID]*entity.Booking
	nextRef int
	// payments backs GetWithPayments the way the preloading repository would
	payments *fakePaymentRepo
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{byID: make(map[uuid.UUID]*entity.Booking), nextRef: 1}
}

func (r *fakeBookingRepo) Create(_ context.Context, b *entity.Booking) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	r.byID[b.ID] = b
	return nil
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	return r.byID[id], nil
}

func (r *fakeBookingRepo) GetByReference(_ context.Context, reference string) (*entity.Booking, error) {
	for _, b := range r.byID {
		if b.Reference == reference {
			return b, nil
		}
	}
	return nil, nil
}

func (r *fakeBookingRepo) GetByQuotationID(_ context.Context, quotationID uuid.UUID) (*entity.Booking, error) {
	for _, b := range r.byID {
		if b.QuotationID == quotationID {
			return b, nil
		}
	}
	return nil, nil
}

func (r *fakeBookingRepo) Update(_ context.Context, b *entity.Booking) error {
	r.byID[b.ID] = b
	return nil
}

func (r *fakeBookingRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

func (r *fakeBookingRepo) List(_ context.Context, userID uuid.UUID, params *repository.BookingFilterParams) ([]entity.Booking, int64, error) {
	out := make([]entity.Booking, 0, len(r.byID))
	for _, b := range r.byID {
		if !params.SkipUserFilter && b.UserID != userID {
			continue
		}
		out = append(out, *b)
	}
	return out, int64(len(out)), nil
}

func (r *fakeBookingRepo) GetWithPayments(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	if r.payments != nil {
		loaded := *b
		loaded.Payments, _ = r.payments.GetByBookingID(context.Background(), id)
		return &loaded, nil
	}
	return b, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, status enum.BookingStatus) error {
	if b, ok := r.byID[id]; ok {
		b.Status = status
	}
	return nil
}

func (r *fakeBookingRepo) GetNextReferenceNumber(_ context.Context) (int, error) {
	n := r.nextRef
	r.nextRef++
	return n, nil
}

type fakePaymentRepo struct {
	byID map[uuid.UUID]*entity.BookingPayment
}

func newFakePaymentRepo(bookings *fakeBookingRepo) *fakePaymentRepo {
	r := &fakePaymentRepo{byID: make(map[uuid.UUID]*entity.BookingPayment)}
	bookings.payments = r
	return r
}

func (r *fakePaymentRepo) Create(_ context.Context, p *entity.BookingPayment) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.byID[p.ID] = p
	return nil
}

func (r *fakePaymentRepo) GetByBookingID(_ context.Context, bookingID uuid.UUID) ([]entity.BookingPayment, error) {
	out := make([]entity.BookingPayment, 0)
	for _, p := range r.byID {
		if p.BookingID == bookingID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}
