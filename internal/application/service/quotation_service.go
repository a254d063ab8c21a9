package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/venuedesk/venuedesk-api/internal/domain/entity"
	"github.com/venuedesk/venuedesk-api/internal/domain/enum"
	"github.com/venuedesk/venuedesk-api/internal/domain/pricing"
	"github.com/venuedesk/venuedesk-api/internal/domain/repository"
	"github.com/venuedesk/venuedesk-api/pkg/apperror"
	"github.com/venuedesk/venuedesk-api/pkg/email"
	"github.com/venuedesk/venuedesk-api/pkg/pagination"
	"github.com/venuedesk/venuedesk-api/pkg/proposal"
	"github.com/venuedesk/venuedesk-api/pkg/utils"
)

// QuotationService handles quotation-related operations
type QuotationService struct {
	quotationRepo repository.QuotationRepository
	lineRepo      repository.QuotationLineRepository
	customerRepo  repository.CustomerRepository
	enquiryRepo   repository.EnquiryRepository
	userRepo      repository.UserRepository
	settingsSvc   *SettingsService
	emailService  *email.EmailService
}

// NewQuotationService creates a new quotation service
func NewQuotationService(
	quotationRepo repository.QuotationRepository,
	lineRepo repository.QuotationLineRepository,
	customerRepo repository.CustomerRepository,
	enquiryRepo repository.EnquiryRepository,
	userRepo repository.UserRepository,
	settingsSvc *SettingsService,
	emailService *email.EmailService,
) *QuotationService {
	return &QuotationService{
		quotationRepo: quotationRepo,
		lineRepo:      lineRepo,
		customerRepo:  customerRepo,
		enquiryRepo:   enquiryRepo,
		userRepo:      userRepo,
		settingsSvc:   settingsSvc,
		emailService:  emailService,
	}
}

// QuotationLinesInput carries the three line collections in pricing form.
// The DTO layer owns the lenient JSON parsing; by the time input reaches the
// service the numbers are plain floats.
type QuotationLinesInput struct {
	Venues []pricing.VenueLine
	Rooms  []pricing.RoomLine
	Menus  []pricing.MenuSelection
}

// CreateQuotationInput represents the input for creating a quotation
type CreateQuotationInput struct {
	UserID     uuid.UUID
	CustomerID *uuid.UUID
	EnquiryID  *uuid.UUID
	EventDate  time.Time
	GuestCount int
	IncludeGST bool
	Discount   pricing.DiscountSpec
	Note       *string
	Lines      QuotationLinesInput
}

// CreateQuotation creates a new draft quotation with recomputed totals
func (s *QuotationService) CreateQuotation(ctx context.Context, input *CreateQuotationInput) (*entity.Quotation, error) {
	if err := validateVenueSessions(input.Lines.Venues); err != nil {
		return nil, err
	}

	nextNum, err := s.quotationRepo.GetNextReferenceNumber(ctx)
	if err != nil {
		return nil, err
	}

	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	if input.EnquiryID != nil {
		enquiry, err := s.enquiryRepo.GetByID(ctx, *input.EnquiryID)
		if err != nil {
			return nil, err
		}
		if enquiry == nil {
			return nil, apperror.NewNotFoundError("Enquiry")
		}
	}

	settings, err := s.settingsSvc.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	totals := pricing.ComputeTotals(pricingInputs(input.Lines, input.IncludeGST, input.Discount), settings.MaxDiscountPercentage)

	quotation := &entity.Quotation{
		UserID:     input.UserID,
		CustomerID: input.CustomerID,
		EnquiryID:  input.EnquiryID,
		Reference:  utils.FormatReference("QT", nextNum),
		EventDate:  input.EventDate,
		GuestCount: input.GuestCount,
		IncludeGST: input.IncludeGST,
		Status:     enum.QuotationStatusDraft,
		Note:       input.Note,
	}
	applyDiscountFields(quotation, input.Discount, totals, settings.MaxDiscountPercentage)
	applyTotals(quotation, totals)

	if err := s.quotationRepo.Create(ctx, quotation); err != nil {
		return nil, err
	}

	if err := s.persistLines(ctx, quotation.ID, input.Lines); err != nil {
		return nil, err
	}

	// Move the source enquiry along the funnel
	if input.EnquiryID != nil {
		if err := s.enquiryRepo.UpdateStatus(ctx, *input.EnquiryID, enum.EnquiryStatusQuoted); err != nil {
			log.Printf("Warning: failed to update enquiry status for %s: %v", input.EnquiryID, err)
		}
	}

	return s.quotationRepo.GetWithLines(ctx, quotation.ID)
}

// CreateFromEnquiry opens a draft quotation prefilled from the lead. Lines
// start empty; the draft gets filled in before it is sent.
func (s *QuotationService) CreateFromEnquiry(ctx context.Context, userID, enquiryID uuid.UUID) (*entity.Quotation, error) {
	enquiry, err := s.enquiryRepo.GetByID(ctx, enquiryID)
	if err != nil {
		return nil, err
	}
	if enquiry == nil {
		return nil, apperror.NewNotFoundError("Enquiry")
	}

	eventDate := time.Now()
	if enquiry.EventDate != nil {
		eventDate = *enquiry.EventDate
	}

	return s.CreateQuotation(ctx, &CreateQuotationInput{
		UserID:     userID,
		CustomerID: enquiry.CustomerID,
		EnquiryID:  &enquiryID,
		EventDate:  eventDate,
		GuestCount: enquiry.GuestCount,
		IncludeGST: true,
	})
}

// GetQuotation retrieves a quotation with its lines by ID
func (s *QuotationService) GetQuotation(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	quotation, err := s.quotationRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}
	return quotation, nil
}

// ListQuotationsInput represents the input for listing quotations
type ListQuotationsInput struct {
	UserID     uuid.UUID
	IsAdmin    bool
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.QuotationStatus
	CustomerID *uuid.UUID
	EnquiryID  *uuid.UUID
	EventFrom  *time.Time
	EventTo    *time.Time
}

// ListQuotations lists quotations with filtering
func (s *QuotationService) ListQuotations(ctx context.Context, input *ListQuotationsInput) (*pagination.PaginatedResult[entity.Quotation], error) {
	params := &repository.QuotationFilterParams{
		Pagination:     input.Pagination,
		Search:         input.Search,
		Status:         input.Status,
		CustomerID:     input.CustomerID,
		EnquiryID:      input.EnquiryID,
		EventFrom:      input.EventFrom,
		EventTo:        input.EventTo,
		SkipUserFilter: input.IsAdmin,
	}

	quotations, total, err := s.quotationRepo.List(ctx, input.UserID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(quotations, pag), nil
}

// UpdateQuotationInput represents the input for updating a quotation
type UpdateQuotationInput struct {
	UserID     uuid.UUID
	ID         uuid.UUID
	IsAdmin    bool
	CustomerID *uuid.UUID
	EventDate  time.Time
	GuestCount int
	IncludeGST bool
	Discount   pricing.DiscountSpec
	Note       *string
	Lines      QuotationLinesInput
}

// UpdateQuotation replaces the lines of a draft quotation and recomputes
// its totals. Sent quotations can still be edited; confirmed and canceled
// ones cannot.
func (s *QuotationService) UpdateQuotation(ctx context.Context, input *UpdateQuotationInput) (*entity.Quotation, error) {
	quotation, err := s.quotationRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}

	if !input.IsAdmin && quotation.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}

	if quotation.Status == enum.QuotationStatusConfirmed || quotation.Status == enum.QuotationStatusCanceled {
		return nil, apperror.ErrQuotationNotEditable
	}

	if err := validateVenueSessions(input.Lines.Venues); err != nil {
		return nil, err
	}

	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	settings, err := s.settingsSvc.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	totals := pricing.ComputeTotals(pricingInputs(input.Lines, input.IncludeGST, input.Discount), settings.MaxDiscountPercentage)

	quotation.CustomerID = input.CustomerID
	quotation.EventDate = input.EventDate
	quotation.GuestCount = input.GuestCount
	quotation.IncludeGST = input.IncludeGST
	quotation.Note = input.Note
	applyDiscountFields(quotation, input.Discount, totals, settings.MaxDiscountPercentage)
	applyTotals(quotation, totals)

	if err := s.quotationRepo.Update(ctx, quotation); err != nil {
		return nil, err
	}

	if err := s.persistLines(ctx, quotation.ID, input.Lines); err != nil {
		return nil, err
	}

	return s.quotationRepo.GetWithLines(ctx, quotation.ID)
}

// DeleteQuotation deletes a quotation and its lines
func (s *QuotationService) DeleteQuotation(ctx context.Context, userID, id uuid.UUID, isAdmin bool) error {
	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if quotation == nil {
		return apperror.NewNotFoundError("Quotation")
	}

	if !isAdmin && quotation.UserID != userID {
		return apperror.ErrForbidden
	}

	if quotation.Status == enum.QuotationStatusConfirmed {
		return apperror.ErrQuotationNotEditable
	}

	if err := s.lineRepo.DeleteByQuotationID(ctx, id); err != nil {
		return err
	}

	return s.quotationRepo.Delete(ctx, id)
}

// CheckDiscountInput represents a discount pre-check request
type CheckDiscountInput struct {
	Type  pricing.DiscountType
	Value float64
	// BaseTotal is the GST-inclusive subtotal the discount applies to
	BaseTotal float64
}

// CheckDiscountResult is the server's binding verdict on a requested discount
type CheckDiscountResult struct {
	DiscountAmount float64 `json:"discount_amount"`
	ExceedsLimit   bool    `json:"exceeds_limit"`
	// Reason explains the verdict when the limit is exceeded
	Reason                string  `json:"reason"`
	MaxDiscountPercentage float64 `json:"max_discount_percentage"`
	MaxAmount             float64 `json:"max_amount"`
}

// CheckDiscount resolves a requested discount against the configured ceiling.
// Unlike the inline resolver, this check also flags fixed discounts whose
// rupee amount exceeds the ceiling percentage of the base.
func (s *QuotationService) CheckDiscount(ctx context.Context, input *CheckDiscountInput) (*CheckDiscountResult, error) {
	if !input.Type.Valid() {
		return nil, apperror.NewBadRequestError("Unknown discount type")
	}

	settings, err := s.settingsSvc.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	ceiling := settings.MaxDiscountPercentage

	res := pricing.ResolveDiscount(input.Type, input.Value, input.BaseTotal, ceiling)
	maxAmount := input.BaseTotal * ceiling / 100

	exceeds := res.ExceedsLimit
	if input.Type == pricing.DiscountTypeFixed && ceiling > 0 && res.Amount > maxAmount {
		exceeds = true
	}

	reason := ""
	if exceeds {
		if input.Type == pricing.DiscountTypePercentage {
			reason = fmt.Sprintf("Discount exceeds the %.4g%% limit", ceiling)
		} else {
			reason = fmt.Sprintf("Discount exceeds %.4g%% of the total (%s max)",
				ceiling, proposal.FormatINR(maxAmount))
		}
	}

	return &CheckDiscountResult{
		DiscountAmount:        res.Amount,
		ExceedsLimit:          exceeds,
		Reason:                reason,
		MaxDiscountPercentage: ceiling,
		MaxAmount:             maxAmount,
	}, nil
}

// SendQuotation recomputes totals from the stored lines, validates the menu
// selections, marks the quotation sent and raises the admin alert when the
// discount breached the ceiling. The quotation goes out regardless of the
// breach.
func (s *QuotationService) SendQuotation(ctx context.Context, userID, id uuid.UUID, isAdmin bool) (*entity.Quotation, error) {
	quotation, err := s.quotationRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}

	if !isAdmin && quotation.UserID != userID {
		return nil, apperror.ErrForbidden
	}

	if quotation.Status == enum.QuotationStatusConfirmed || quotation.Status == enum.QuotationStatusCanceled {
		return nil, apperror.ErrQuotationNotEditable
	}

	// A selected package with no dishes recorded is an incomplete menu, not
	// an empty one. Refuse to send until it is filled in or removed.
	for _, sel := range quotation.MenuSelections {
		if len(sel.Items) == 0 {
			return nil, apperror.NewUnprocessableError(
				fmt.Sprintf("Menu package %q has no items selected", sel.PackageName))
		}
	}

	settings, err := s.settingsSvc.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	in := quotation.PricingInputs()
	totals := pricing.ComputeTotals(in, settings.MaxDiscountPercentage)
	applyDiscountFields(quotation, in.Discount, totals, settings.MaxDiscountPercentage)
	applyTotals(quotation, totals)
	quotation.Status = enum.QuotationStatusSent

	if err := s.quotationRepo.Update(ctx, quotation); err != nil {
		return nil, err
	}

	if quotation.DiscountExceedsLimit {
		s.notifyDiscountBreach(ctx, quotation, settings)
	}

	return quotation, nil
}

// UpdateQuotationStatus updates the status of a quotation
func (s *QuotationService) UpdateQuotationStatus(ctx context.Context, userID, id uuid.UUID, status enum.QuotationStatus, isAdmin bool) error {
	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if quotation == nil {
		return apperror.NewNotFoundError("Quotation")
	}

	if !isAdmin && quotation.UserID != userID {
		return apperror.ErrForbidden
	}

	// Confirmation goes through the booking flow, not a bare status write
	if status == enum.QuotationStatusConfirmed {
		return apperror.NewBadRequestError("Use the confirm endpoint to convert a quotation")
	}

	return s.quotationRepo.UpdateStatus(ctx, id, status)
}

// GenerateProposal builds the proposal PDF for a quotation. When the line
// data survives, the breakdown is rebuilt from it; otherwise the persisted
// aggregates are used as-is.
func (s *QuotationService) GenerateProposal(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	quotation, err := s.quotationRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if quotation == nil {
		return nil, "", apperror.NewNotFoundError("Quotation")
	}

	settings, err := s.settingsSvc.GetSettings(ctx)
	if err != nil {
		return nil, "", err
	}

	data := s.buildProposalData(quotation, settings)
	pdf, err := proposal.GeneratePDF(data)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("proposal-%s.pdf", quotation.Reference)
	return pdf, filename, nil
}

func (s *QuotationService) buildProposalData(q *entity.Quotation, settings *entity.SystemSettings) *proposal.Data {
	data := &proposal.Data{
		CompanyName:    settings.CompanyName,
		CompanyAddress: deref(settings.CompanyAddress),
		CompanyPhone:   deref(settings.CompanyPhone),
		CompanyEmail:   deref(settings.CompanyEmail),
		CompanyGSTIN:   deref(settings.CompanyGSTIN),

		Reference:  q.Reference,
		Date:       q.CreatedAt.Format("02 Jan 2006"),
		EventDate:  q.EventDate.Format("02 Jan 2006"),
		GuestCount: q.GuestCount,
		Status:     q.Status.String(),

		IncludeGST:     q.IncludeGST,
		DiscountAmount: q.DiscountAmount,
		Note:           deref(q.Note),
	}

	if q.Customer != nil {
		data.CustomerName = q.Customer.Name
		data.CustomerCompany = deref(q.Customer.Company)
		data.CustomerPhone = deref(q.Customer.Phone)
		data.CustomerEmail = deref(q.Customer.Email)
		data.CustomerAddress = deref(q.Customer.Address)
	}

	if q.DiscountType.Valid() && q.DiscountValue > 0 {
		if q.DiscountType == pricing.DiscountTypePercentage {
			data.DiscountLabel = fmt.Sprintf("%.4g%%", q.DiscountValue)
		} else {
			data.DiscountLabel = "flat"
		}
	}

	if q.HasLineData() {
		in := q.PricingInputs()
		t := pricing.RenderBreakdown(in, q.DiscountAmount)
		data.VenueRentalTotal = t.Venue.TotalWithGST
		data.RoomTotal = t.Room.TotalWithGST
		data.MenuTotal = t.Menu.TotalWithGST
		data.BanquetTotal = t.BanquetTotal
		data.TotalWithGST = t.TotalWithGST
		data.GrandTotal = t.GrandTotal
	} else {
		data.VenueRentalTotal = q.VenueRentalTotal
		data.RoomTotal = q.RoomTotal
		data.MenuTotal = q.MenuTotal
		data.BanquetTotal = q.BanquetTotal
		data.TotalWithGST = q.VenueRentalTotal + q.RoomTotal + q.MenuTotal
		data.GrandTotal = q.GrandTotal
	}

	for _, l := range q.VenueLines {
		data.VenueLines = append(data.VenueLines, proposal.VenueLine{
			EventDate: l.EventDate.Format("02 Jan 2006"),
			Venue:     l.VenueName,
			Space:     l.SpaceName,
			Session:   l.Session,
			Rate:      l.SessionRate,
		})
	}

	for _, l := range q.RoomLines {
		data.RoomLines = append(data.RoomLines, proposal.RoomLine{
			Category:      l.Category,
			Rate:          l.Rate,
			NumberOfRooms: l.NumberOfRooms,
			Occupancy:     l.TotalOccupancy,
			LineTotal:     pricing.RoundUp(pricing.RoomLineBase(l.PricingLine())),
		})
	}

	for _, sel := range q.MenuSelections {
		block := proposal.MenuBlock{
			PackageName:  sel.PackageName,
			PackagePrice: sel.PricingSelection().EffectivePackagePrice(),
			BlockTotal:   pricing.RoundUp(pricing.MenuSelectionBase(sel.PricingSelection())),
		}
		for _, it := range sel.Items {
			block.Items = append(block.Items, proposal.MenuItem{
				Name:            it.Name,
				IsPackageItem:   it.IsPackageItem,
				AdditionalPrice: it.AdditionalPrice,
				Quantity:        it.Quantity,
			})
		}
		data.MenuBlocks = append(data.MenuBlocks, block)
	}

	return data
}

// notifyDiscountBreach emails the admin about a quotation sent over the
// discount ceiling. Failures are logged, never surfaced: the send already
// happened.
func (s *QuotationService) notifyDiscountBreach(ctx context.Context, q *entity.Quotation, settings *entity.SystemSettings) {
	if !settings.DiscountAlertsOn || settings.AdminAlertEmail == "" || s.emailService == nil {
		return
	}

	customerName := ""
	if q.Customer != nil {
		customerName = q.Customer.Name
	}

	salesperson := ""
	if user, err := s.userRepo.GetByID(ctx, q.UserID); err == nil && user != nil {
		salesperson = user.FirstName + " " + user.LastName
	}

	label := "flat"
	if q.DiscountType == pricing.DiscountTypePercentage {
		label = fmt.Sprintf("%.4g%%", q.DiscountValue)
	}

	alert := email.DiscountAlert{
		QuotationRef:    q.Reference,
		CustomerName:    customerName,
		SalespersonName: salesperson,
		DiscountLabel:   label,
		DiscountAmount:  proposal.FormatINR(q.DiscountAmount),
		GrandTotal:      proposal.FormatINR(q.GrandTotal),
		CeilingPercent:  fmt.Sprintf("%.4g", settings.MaxDiscountPercentage),
	}

	if err := s.emailService.SendDiscountAlertEmail(settings.AdminAlertEmail, alert); err != nil {
		log.Printf("Warning: failed to send discount alert for %s: %v", q.Reference, err)
	}
}

func (s *QuotationService) persistLines(ctx context.Context, quotationID uuid.UUID, lines QuotationLinesInput) error {
	venueLines := make([]entity.QuotationVenueLine, 0, len(lines.Venues))
	for _, l := range lines.Venues {
		l = pricing.SanitizeVenueLine(l)
		eventDate, err := time.Parse("2006-01-02", l.EventDate)
		if err != nil && l.EventDate != "" {
			log.Printf("Warning: unparseable venue line date %q on quotation %s, storing zero date", l.EventDate, quotationID)
		}
		venueLines = append(venueLines, entity.QuotationVenueLine{
			EventDate:   eventDate,
			VenueName:   l.Venue,
			SpaceName:   l.VenueSpace,
			Session:     l.Session,
			SessionRate: l.SessionRate,
		})
	}
	if err := s.lineRepo.ReplaceVenueLines(ctx, quotationID, venueLines); err != nil {
		return err
	}

	roomLines := make([]entity.QuotationRoomLine, 0, len(lines.Rooms))
	for _, l := range lines.Rooms {
		l = pricing.SanitizeRoomLine(l)
		roomLines = append(roomLines, entity.QuotationRoomLine{
			Category:         l.Category,
			Rate:             l.Rate,
			NumberOfRooms:    l.NumberOfRooms,
			TotalOccupancy:   l.TotalOccupancy,
			DefaultOccupancy: l.DefaultOccupancy,
			MaxOccupancy:     l.MaxOccupancy,
			ExtraPersonRate:  l.ExtraPersonRate,
		})
	}
	if err := s.lineRepo.ReplaceRoomLines(ctx, quotationID, roomLines); err != nil {
		return err
	}

	selections := make([]entity.QuotationMenuSelection, 0, len(lines.Menus))
	for _, sel := range lines.Menus {
		sel = pricing.SanitizeMenuSelection(sel)
		es := entity.QuotationMenuSelection{
			PackageName:        sel.PackageName,
			PackagePrice:       sel.PackagePrice,
			CustomPackagePrice: sel.CustomPackagePrice,
		}
		if sel.PackageID != "" {
			if pid, err := uuid.Parse(sel.PackageID); err == nil {
				es.PackageID = &pid
			}
		}
		for _, it := range sel.Items {
			es.Items = append(es.Items, entity.QuotationMenuItem{
				Name:            it.Name,
				IsPackageItem:   it.IsPackageItem,
				Price:           it.Price,
				AdditionalPrice: it.AdditionalPrice,
				Quantity:        it.Quantity,
			})
		}
		selections = append(selections, es)
	}
	return s.lineRepo.ReplaceMenuSelections(ctx, quotationID, selections)
}

// validateVenueSessions rejects venue lines whose session is not a configured
// slot. An empty session is tolerated; the line still prices by its rate.
func validateVenueSessions(lines []pricing.VenueLine) error {
	for _, l := range lines {
		if l.Session != "" && !enum.SessionType(l.Session).Valid() {
			return apperror.NewBadRequestError(fmt.Sprintf("Unknown session %q", l.Session))
		}
	}
	return nil
}

func pricingInputs(lines QuotationLinesInput, includeGST bool, discount pricing.DiscountSpec) pricing.Inputs {
	return pricing.Inputs{
		Venues:     lines.Venues,
		Rooms:      lines.Rooms,
		Menus:      lines.Menus,
		IncludeGST: includeGST,
		Discount:   discount,
	}
}

func applyTotals(q *entity.Quotation, t pricing.Totals) {
	q.VenueRentalTotal = t.Venue.TotalWithGST
	q.RoomTotal = t.Room.TotalWithGST
	q.MenuTotal = t.Menu.TotalWithGST
	q.BanquetTotal = t.BanquetTotal
	q.GrandTotal = t.GrandTotal
	q.FinalTotal = t.FinalTotal
}

// applyDiscountFields stores the requested discount and the server verdict.
// Fixed discounts are flagged here using the ceiling-percentage-of-base rule
// the check endpoint applies, so the stored flag matches what the check
// would have said.
func applyDiscountFields(q *entity.Quotation, spec pricing.DiscountSpec, t pricing.Totals, ceiling float64) {
	q.DiscountType = spec.Type
	q.DiscountValue = spec.Value
	q.DiscountAmount = t.DiscountAmount
	if spec.Reason != "" {
		reason := spec.Reason
		q.DiscountReason = &reason
	} else {
		q.DiscountReason = nil
	}

	exceeds := t.ExceedsLimit
	if spec.Type == pricing.DiscountTypeFixed && ceiling > 0 && t.TotalWithGST > 0 &&
		t.DiscountAmount > t.TotalWithGST*ceiling/100 {
		exceeds = true
	}
	q.DiscountExceedsLimit = exceeds
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
