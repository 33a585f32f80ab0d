package invoicing

import (
	"errors"
	"time"

	"github.com/AKM-dv/servicemate/app/models"
	"github.com/AKM-dv/servicemate/internal/pkg/money"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InvoiceDetails is one invoice row joined with its client and plan, the
// shape the document renderer and the API serializer both consume.
type InvoiceDetails struct {
	ID               uint        `gorm:"column:id" json:"id"`
	LeadID           uint        `gorm:"column:lead_id" json:"lead_id"`
	PlanID           uint        `gorm:"column:plan_id" json:"plan_id"`
	InvoiceNumber    string      `gorm:"column:invoice_number" json:"invoice_number"`
	Subtotal         money.Money `gorm:"column:subtotal" json:"subtotal"`
	Tax              money.Money `gorm:"column:tax" json:"tax"`
	Total            money.Money `gorm:"column:total" json:"total"`
	SetupFeeAmount   money.Money `gorm:"column:setup_fee_amount" json:"setup_fee_amount"`
	SetupFeeDiscount money.Money `gorm:"column:setup_fee_discount" json:"setup_fee_discount"`
	SetupFeeNet      money.Money `gorm:"column:setup_fee_net" json:"setup_fee_net"`
	GeneratedAt      time.Time   `gorm:"column:generated_at" json:"-"`
	Notes            *string     `gorm:"column:notes" json:"notes"`
	PDFURL           *string     `gorm:"column:pdf_url" json:"-"`

	LeadName    *string     `gorm:"column:lead_name" json:"lead_name"`
	LeadEmail   *string     `gorm:"column:lead_email" json:"lead_email"`
	LeadPhone   string      `gorm:"column:lead_phone" json:"lead_phone"`
	LeadAddress *string     `gorm:"column:lead_address" json:"lead_address"`
	BrandName   *string     `gorm:"column:brand_name" json:"brand_name"`
	PlanName    string      `gorm:"column:plan_name" json:"plan_name"`
	PlanPrice   money.Money `gorm:"column:plan_price" json:"plan_price"`
}

// Repository provides the persistence operations the invoicing service
// needs, behind the documented uniqueness constraints.
type Repository interface {
	GetLead(id uint) (*models.Lead, error)
	GetPlan(id uint) (*models.Plan, error)
	// NextSequence atomically increments and reads the per-month counter.
	NextSequence(prefix string) (uint, error)
	CreateInvoice(inv *models.Invoice) error
	GetInvoiceJoined(number string) (*InvoiceDetails, error)
	AttachDocument(number, path string) error
	UpsertPayment(p *models.LeadPayment) error
	GetPayment(leadID uint, billingMonth time.Time) (*models.LeadPayment, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates an invoicing repository backed by GORM.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) GetLead(id uint) (*models.Lead, error) {
	var lead models.Lead
	if err := r.db.First(&lead, id).Error; err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r *gormRepository) GetPlan(id uint) (*models.Plan, error) {
	var plan models.Plan
	if err := r.db.First(&plan, id).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

// NextSequence locks the month's counter row, increments it and returns the
// new value. Sequences never recycle; deleting invoices leaves gaps.
func (r *gormRepository) NextSequence(prefix string) (uint, error) {
	var seq uint
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var counter models.InvoiceCounter
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("month_prefix = ?", prefix).
			First(&counter).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			counter = models.InvoiceCounter{MonthPrefix: prefix, Seq: 1}
			if err := tx.Create(&counter).Error; err != nil {
				return err
			}
			seq = counter.Seq
			return nil
		}
		if err != nil {
			return err
		}
		counter.Seq++
		if err := tx.Save(&counter).Error; err != nil {
			return err
		}
		seq = counter.Seq
		return nil
	})
	return seq, err
}

func (r *gormRepository) CreateInvoice(inv *models.Invoice) error {
	return r.db.Create(inv).Error
}

func (r *gormRepository) GetInvoiceJoined(number string) (*InvoiceDetails, error) {
	var details InvoiceDetails
	err := r.db.Model(&models.Invoice{}).
		Select(`invoices.id, invoices.lead_id, invoices.plan_id, invoices.invoice_number,
			invoices.subtotal, invoices.tax, invoices.total,
			invoices.setup_fee_amount, invoices.setup_fee_discount, invoices.setup_fee_net,
			invoices.generated_at, invoices.notes, invoices.pdf_url,
			leads.name AS lead_name, leads.email AS lead_email, leads.phone AS lead_phone,
			leads.address AS lead_address, leads.brand_name AS brand_name,
			plans.name AS plan_name, plans.price AS plan_price`).
		Joins("JOIN leads ON leads.id = invoices.lead_id").
		Joins("JOIN plans ON plans.id = invoices.plan_id").
		Where("invoices.invoice_number = ?", number).
		Take(&details).Error
	if err != nil {
		return nil, err
	}
	return &details, nil
}

func (r *gormRepository) AttachDocument(number, path string) error {
	return r.db.Model(&models.Invoice{}).
		Where("invoice_number = ?", number).
		Update("pdf_url", path).Error
}

// UpsertPayment replaces any existing row for the same (lead, month) pair in
// a single atomic statement; it never appends a second row for the pair.
func (r *gormRepository) UpsertPayment(p *models.LeadPayment) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "lead_id"},
			{Name: "billing_month"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"amount",
			"paid_on",
			"payment_method",
			"note",
			"invoice_id",
		}),
	}).Create(p).Error
}

func (r *gormRepository) GetPayment(leadID uint, billingMonth time.Time) (*models.LeadPayment, error) {
	var payment models.LeadPayment
	err := r.db.
		Where("lead_id = ? AND billing_month = ?", leadID, billingMonth.Format("2006-01-02")).
		First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}
