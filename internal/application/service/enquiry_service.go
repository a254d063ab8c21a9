package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/venuedesk/venuedesk-api/internal/domain/entity"
	"github.com/venuedesk/venuedesk-api/internal/domain/enum"
	"github.com/venuedesk/venuedesk-api/internal/domain/repository"
	"github.com/venuedesk/venuedesk-api/pkg/apperror"
	"github.com/venuedesk/venuedesk-api/pkg/email"
	"github.com/venuedesk/venuedesk-api/pkg/pagination"
	"github.com/venuedesk/venuedesk-api/pkg/utils"
)

// EnquiryService handles enquiry-related operations
type EnquiryService struct {
	enquiryRepo  repository.EnquiryRepository
	customerRepo repository.CustomerRepository
	settingsSvc  *SettingsService
	emailService *email.EmailService
}

// NewEnquiryService creates a new enquiry service
func NewEnquiryService(
	enquiryRepo repository.EnquiryRepository,
	customerRepo repository.CustomerRepository,
	settingsSvc *SettingsService,
	emailService *email.EmailService,
) *EnquiryService {
	return &EnquiryService{
		enquiryRepo:  enquiryRepo,
		customerRepo: customerRepo,
		settingsSvc:  settingsSvc,
		emailService: emailService,
	}
}

// CreateEnquiryInput represents the input for creating an enquiry
type CreateEnquiryInput struct {
	UserID       *uuid.UUID
	CustomerID   *uuid.UUID
	ContactName  string
	ContactPhone *string
	ContactEmail *string
	EventType    string
	EventDate    *time.Time
	GuestCount   int
	Source       string
	Notes        *string
}

// CreateEnquiry records a new lead and sends the acknowledgement email when
// a contact address is available
func (s *EnquiryService) CreateEnquiry(ctx context.Context, input *CreateEnquiryInput) (*entity.Enquiry, error) {
	nextNum, err := s.enquiryRepo.GetNextReferenceNumber(ctx)
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

	enquiry := &entity.Enquiry{
		UserID:       input.UserID,
		CustomerID:   input.CustomerID,
		Reference:    utils.FormatReference("EQ", nextNum),
		ContactName:  input.ContactName,
		ContactPhone: input.ContactPhone,
		ContactEmail: input.ContactEmail,
		EventType:    input.EventType,
		EventDate:    input.EventDate,
		GuestCount:   input.GuestCount,
		Source:       input.Source,
		Status:       enum.EnquiryStatusNew,
		Notes:        input.Notes,
	}

	if err := s.enquiryRepo.Create(ctx, enquiry); err != nil {
		return nil, err
	}

	s.sendAcknowledgement(ctx, enquiry)

	return enquiry, nil
}

// GetEnquiry retrieves an enquiry by ID
func (s *EnquiryService) GetEnquiry(ctx context.Context, id uuid.UUID) (*entity.Enquiry, error) {
	enquiry, err := s.enquiryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if enquiry == nil {
		return nil, apperror.NewNotFoundError("Enquiry")
	}
	return enquiry, nil
}

// ListEnquiriesInput represents the input for listing enquiries
type ListEnquiriesInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.EnquiryStatus
	Source     string
	EventFrom  *time.Time
	EventTo    *time.Time
}

// ListEnquiries lists enquiries with filtering
func (s *EnquiryService) ListEnquiries(ctx context.Context, input *ListEnquiriesInput) (*pagination.PaginatedResult[entity.Enquiry], error) {
	params := &repository.EnquiryFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Status:     input.Status,
		Source:     input.Source,
		EventFrom:  input.EventFrom,
		EventTo:    input.EventTo,
	}

	enquiries, total, err := s.enquiryRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(enquiries, pag), nil
}

// UpdateEnquiryInput represents the input for updating an enquiry
type UpdateEnquiryInput struct {
	ID           uuid.UUID
	CustomerID   *uuid.UUID
	ContactName  string
	ContactPhone *string
	ContactEmail *string
	EventType    string
	EventDate    *time.Time
	GuestCount   int
	Source       string
	Notes        *string
}

// UpdateEnquiry updates the lead details. Status moves through UpdateEnquiryStatus
// or the quotation flow, never here.
func (s *EnquiryService) UpdateEnquiry(ctx context.Context, input *UpdateEnquiryInput) (*entity.Enquiry, error) {
	enquiry, err := s.enquiryRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if enquiry == nil {
		return nil, apperror.NewNotFoundError("Enquiry")
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

	enquiry.CustomerID = input.CustomerID
	enquiry.ContactName = input.ContactName
	enquiry.ContactPhone = input.ContactPhone
	enquiry.ContactEmail = input.ContactEmail
	enquiry.EventType = input.EventType
	enquiry.EventDate = input.EventDate
	enquiry.GuestCount = input.GuestCount
	enquiry.Source = input.Source
	enquiry.Notes = input.Notes

	if err := s.enquiryRepo.Update(ctx, enquiry); err != nil {
		return nil, err
	}

	return enquiry, nil
}

// UpdateEnquiryStatus moves an enquiry along the funnel by hand. Won is set
// by the booking flow only.
func (s *EnquiryService) UpdateEnquiryStatus(ctx context.Context, id uuid.UUID, status enum.EnquiryStatus) error {
	enquiry, err := s.enquiryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if enquiry == nil {
		return apperror.NewNotFoundError("Enquiry")
	}

	if status == enum.EnquiryStatusWon {
		return apperror.NewBadRequestError("An enquiry is won by confirming its quotation")
	}

	return s.enquiryRepo.UpdateStatus(ctx, id, status)
}

// DeleteEnquiry deletes an enquiry
func (s *EnquiryService) DeleteEnquiry(ctx context.Context, id uuid.UUID) error {
	enquiry, err := s.enquiryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if enquiry == nil {
		return apperror.NewNotFoundError("Enquiry")
	}

	return s.enquiryRepo.Delete(ctx, id)
}

// PromoteToCustomerInput carries the optional overrides when converting the
// enquiry contact into a customer record
type PromoteToCustomerInput struct {
	EnquiryID uuid.UUID
	UserID    uuid.UUID
	Company   *string
	Address   *string
	GSTIN     *string
}

// PromoteToCustomer creates a customer from the enquiry contact details and
// links the enquiry to it. If the enquiry already has a customer, that one is
// returned unchanged.
func (s *EnquiryService) PromoteToCustomer(ctx context.Context, input *PromoteToCustomerInput) (*entity.Customer, error) {
	enquiry, err := s.enquiryRepo.GetByID(ctx, input.EnquiryID)
	if err != nil {
		return nil, err
	}
	if enquiry == nil {
		return nil, apperror.NewNotFoundError("Enquiry")
	}

	if enquiry.CustomerID != nil {
		existing, err := s.customerRepo.GetByID(ctx, *enquiry.CustomerID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	}

	// Reuse a customer with the same phone before creating a duplicate
	if enquiry.ContactPhone != nil && *enquiry.ContactPhone != "" {
		existing, err := s.customerRepo.GetByPhone(ctx, *enquiry.ContactPhone)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			enquiry.CustomerID = &existing.ID
			if err := s.enquiryRepo.Update(ctx, enquiry); err != nil {
				return nil, err
			}
			return existing, nil
		}
	}

	customer := &entity.Customer{
		UserID:  input.UserID,
		Name:    enquiry.ContactName,
		Email:   enquiry.ContactEmail,
		Phone:   enquiry.ContactPhone,
		Company: input.Company,
		Address: input.Address,
		GSTIN:   input.GSTIN,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	enquiry.CustomerID = &customer.ID
	if err := s.enquiryRepo.Update(ctx, enquiry); err != nil {
		return nil, err
	}

	return customer, nil
}

// sendAcknowledgement emails the lead a receipt confirmation. Best effort.
func (s *EnquiryService) sendAcknowledgement(ctx context.Context, enquiry *entity.Enquiry) {
	if s.emailService == nil || enquiry.ContactEmail == nil || *enquiry.ContactEmail == "" {
		return
	}

	settings, err := s.settingsSvc.GetSettings(ctx)
	if err != nil || !settings.EnquiryAcksOn {
		return
	}

	if err := s.emailService.SendEnquiryAckEmail(*enquiry.ContactEmail, enquiry.ContactName, enquiry.Reference); err != nil {
		log.Printf("Warning: failed to send enquiry acknowledgement for %s: %v", enquiry.Reference, err)
	}
}
