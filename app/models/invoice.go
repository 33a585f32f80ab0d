package models

import (
	"time"

	"github.com/AKM-dv/servicemate/internal/pkg/money"
)

// Invoice is an immutable billing record. After creation only PDFURL is
// attached; every monetary column satisfies
// total == subtotal == plan price + setup_fee_net and
// setup_fee_net == setup_fee_amount - setup_fee_discount.
type Invoice struct {
	ID               uint        `gorm:"primaryKey" json:"id"`
	LeadID           uint        `gorm:"not null;index" json:"lead_id"`
	PlanID           uint        `gorm:"not null;index" json:"plan_id"`
	InvoiceNumber    string      `gorm:"type:varchar(64);not null;uniqueIndex:ux_invoices_number" json:"invoice_number"`
	Subtotal         money.Money `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	Tax              money.Money `gorm:"type:decimal(10,2);not null" json:"tax"`
	Total            money.Money `gorm:"type:decimal(10,2);not null" json:"total"`
	SetupFeeAmount   money.Money `gorm:"type:decimal(10,2);not null" json:"setup_fee_amount"`
	SetupFeeDiscount money.Money `gorm:"type:decimal(10,2);not null" json:"setup_fee_discount"`
	SetupFeeNet      money.Money `gorm:"type:decimal(10,2);not null" json:"setup_fee_net"`
	GeneratedAt      time.Time   `gorm:"autoCreateTime" json:"generated_at"`
	Notes            *string     `gorm:"type:text" json:"notes"`
	PDFURL           *string     `gorm:"column:pdf_url;type:varchar(255);default:null" json:"pdf_url"`

	Lead *Lead `gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE" json:"-"`
	Plan *Plan `gorm:"foreignKey:PlanID" json:"-"`
}

// InvoiceCounter holds the per-month sequence backing invoice numbering.
// Rows are incremented under a row lock so two concurrent allocations can
// never read the same value.
type InvoiceCounter struct {
	MonthPrefix string `gorm:"primaryKey;type:varchar(16)"`
	Seq         uint   `gorm:"not null;default:0"`
}

func (InvoiceCounter) TableName() string {
	return "invoice_counters"
}
