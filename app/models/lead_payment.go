package models

import (
	"time"

	"github.com/AKM-dv/servicemate/internal/pkg/money"
)

// LeadPayment records one payment per (lead, calendar billing month). The
// composite unique index makes the pair a hard constraint; recording again
// for the same pair overwrites the mutable fields in place.
type LeadPayment struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	LeadID        uint        `gorm:"not null;uniqueIndex:ux_lead_payments_lead_month,priority:1" json:"lead_id"`
	InvoiceID     *uint       `gorm:"default:null" json:"invoice_id"`
	BillingMonth  time.Time   `gorm:"type:date;not null;uniqueIndex:ux_lead_payments_lead_month,priority:2" json:"billing_month"`
	Amount        money.Money `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaidOn        *time.Time  `gorm:"type:date;default:null" json:"paid_on"`
	PaymentMethod *string     `gorm:"type:varchar(64);default:null" json:"payment_method"`
	Note          *string     `gorm:"type:text" json:"note"`
	CreatedAt     time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"autoUpdateTime" json:"updated_at"`

	Lead    *Lead    `gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE" json:"-"`
	Invoice *Invoice `gorm:"foreignKey:InvoiceID;constraint:OnDelete:SET NULL" json:"-"`
}
