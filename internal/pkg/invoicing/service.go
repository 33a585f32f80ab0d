package invoicing

import (
	"errors"
	"fmt"
	"time"

	"github.com/AKM-dv/servicemate/app/models"
	"github.com/AKM-dv/servicemate/internal/pkg/money"
	"github.com/AKM-dv/servicemate/internal/pkg/timeutil"
	"gorm.io/gorm"
)

var (
	// ErrValidation marks a missing/invalid required field; nothing was
	// written.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a reference to a nonexistent lead or plan.
	ErrNotFound = errors.New("not found")
	// ErrNumberConflict marks a numbering collision rejected by the
	// invoice_number unique index. Callers retry invoice creation, which
	// re-invokes allocation.
	ErrNumberConflict = errors.New("invoice number conflict")
)

// Service implements invoice creation and payment recording on top of the
// repository's uniqueness guarantees.
type Service struct {
	repo     Repository
	setupFee money.Money
	now      func() time.Time
}

// NewService creates an invoicing service from an injected repository.
func NewService(repo Repository, setupFee money.Money) *Service {
	return &Service{repo: repo, setupFee: setupFee, now: time.Now}
}

// NewServiceFromDB creates an invoicing service from a GORM DB handle with
// the setup fee from the environment.
func NewServiceFromDB(db *gorm.DB) *Service {
	return NewService(NewRepository(db), SetupFeeFromEnv())
}

// WithNow pins the clock. Used by tests.
func (s *Service) WithNow(now func() time.Time) *Service {
	s.now = now
	return s
}

// CreateInvoiceInput carries the create request. RequestedDiscount applies
// to the one-time setup fee only.
type CreateInvoiceInput struct {
	LeadID            uint
	PlanID            uint
	RequestedDiscount money.Money
	Notes             *string
}

// CreateInvoice prices the invoice, allocates a number and persists the row,
// then re-reads it joined with client and plan. Document rendering happens
// afterwards in the caller; an invoice whose render fails stays valid with a
// null document reference.
func (s *Service) CreateInvoice(in CreateInvoiceInput) (*InvoiceDetails, error) {
	if in.LeadID == 0 || in.PlanID == 0 {
		return nil, fmt.Errorf("%w: lead_id and plan_id required", ErrValidation)
	}

	lead, err := s.repo.GetLead(in.LeadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invalid lead or plan", ErrNotFound)
		}
		return nil, err
	}
	plan, err := s.repo.GetPlan(in.PlanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invalid lead or plan", ErrNotFound)
		}
		return nil, err
	}

	pricing := Price(plan.Price, s.setupFee, in.RequestedDiscount)

	prefix := MonthPrefix(s.now())
	seq, err := s.repo.NextSequence(prefix)
	if err != nil {
		return nil, err
	}
	number := FormatNumber(prefix, seq)

	invoice := &models.Invoice{
		LeadID:           lead.ID,
		PlanID:           plan.ID,
		InvoiceNumber:    number,
		Subtotal:         pricing.Subtotal,
		Tax:              pricing.Tax,
		Total:            pricing.Total,
		SetupFeeAmount:   pricing.SetupFeeAmount,
		SetupFeeDiscount: pricing.SetupFeeDiscount,
		SetupFeeNet:      pricing.SetupFeeNet,
		Notes:            in.Notes,
	}
	if err := s.repo.CreateInvoice(invoice); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: %s", ErrNumberConflict, number)
		}
		return nil, err
	}

	return s.repo.GetInvoiceJoined(number)
}

// GetInvoice returns one invoice joined with its client and plan.
func (s *Service) GetInvoice(number string) (*InvoiceDetails, error) {
	details, err := s.repo.GetInvoiceJoined(number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invoice %s", ErrNotFound, number)
		}
		return nil, err
	}
	return details, nil
}

// AttachDocument persists the rendered document path onto the invoice row.
func (s *Service) AttachDocument(number, path string) error {
	return s.repo.AttachDocument(number, path)
}

// RecordPaymentInput carries a payment recording request. BillingMonth and
// Amount are required; everything else is optional.
type RecordPaymentInput struct {
	LeadID        uint
	BillingMonth  string
	Amount        *money.Money
	PaidOn        *string
	PaymentMethod *string
	Note          *string
	InvoiceID     *uint
}

// RecordPayment upserts the payment row keyed by (lead, billing month).
// Recording twice for the same pair overwrites the first record; it never
// produces a second row and never sums amounts.
func (s *Service) RecordPayment(in RecordPaymentInput) (*models.LeadPayment, error) {
	if in.LeadID == 0 {
		return nil, fmt.Errorf("%w: lead required", ErrValidation)
	}
	if in.BillingMonth == "" || in.Amount == nil {
		return nil, fmt.Errorf("%w: billing month and amount required", ErrValidation)
	}

	if _, err := s.repo.GetLead(in.LeadID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: lead %d", ErrNotFound, in.LeadID)
		}
		return nil, err
	}

	billingMonth, err := timeutil.ParseCivil(in.BillingMonth)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid billing month %q", ErrValidation, in.BillingMonth)
	}

	var paidOn *time.Time
	if in.PaidOn != nil && *in.PaidOn != "" {
		t, err := timeutil.ParseCivil(*in.PaidOn)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid paid_on %q", ErrValidation, *in.PaidOn)
		}
		paidOn = &t
	}

	payment := &models.LeadPayment{
		LeadID:        in.LeadID,
		InvoiceID:     in.InvoiceID,
		BillingMonth:  billingMonth,
		Amount:        *in.Amount,
		PaidOn:        paidOn,
		PaymentMethod: in.PaymentMethod,
		Note:          in.Note,
	}
	if err := s.repo.UpsertPayment(payment); err != nil {
		return nil, err
	}

	return s.repo.GetPayment(in.LeadID, billingMonth)
}
